package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Accepts an optional leading + followed by 10 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// RegisterValidators attaches custom validation rules to gin's binding engine.
// Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", validatePhone)
}
