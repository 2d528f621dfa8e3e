package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// CoordinateFailure reports whether err carries at least one lat/lng field
// failure, so callers can tell bad coordinates apart from other input errors.
func CoordinateFailure(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "lat" || fe.Tag() == "lng" {
			return true
		}
	}
	return false
}
