package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's `validate` tags and returns the raw
// validator error (nil when everything passes).
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationError is one failed field, shaped for the error envelope.
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// GetValidationErrors flattens a validator error into field-level details.
func GetValidationErrors(err error) []ValidationError {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []ValidationError{{Field: "", Tag: "invalid", Value: err.Error()}}
	}

	details := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, ValidationError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Value: fmt.Sprintf("%v", fe.Value()),
		})
	}
	return details
}
