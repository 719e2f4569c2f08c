package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationFieldError is one failed rule, keyed for the client.
type ValidationFieldError struct {
	Field string `json:"field"`
	Tag   string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidateStruct runs the validator over a request DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors turns validator errors into a client-friendly list.
func GetValidationErrors(err error) []ValidationFieldError {
	var out []ValidationFieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}

	for _, fe := range validationErrors {
		out = append(out, ValidationFieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}
