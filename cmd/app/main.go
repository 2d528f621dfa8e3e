package main

import (
	"os"

	"qrpatrol/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
