package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into a single
// "field: rule" style message, first failure wins.
func GetValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "Invalid request"
	}

	first := validationErrors[0]
	field := strings.ToLower(first.Field())
	if first.Param() != "" {
		return fmt.Sprintf("%s: failed on %s=%s", field, first.Tag(), first.Param())
	}
	return fmt.Sprintf("%s: failed on %s", field, first.Tag())
}
