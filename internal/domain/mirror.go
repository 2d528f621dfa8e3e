package domain

import "time"

// MirrorRow is one spreadsheet row mirrored out of band after a scan is
// recorded. Losing a row never affects the verdict already returned.
type MirrorRow struct {
	SheetID        string    `json:"sheet_id"`
	AreaCity       string    `json:"area_city"`
	GuardName      string    `json:"guard_name"`
	GuardEmail     string    `json:"guard_email"`
	LocationName   string    `json:"location_name"`
	QRID           string    `json:"qr_id"`
	ScannedAt      time.Time `json:"scanned_at"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Address        string    `json:"address,omitempty"`
	IsWithinRadius bool      `json:"is_within_radius"`
	DistanceFromQR float64   `json:"distance_from_qr"`
	Notes          string    `json:"notes,omitempty"`
}
