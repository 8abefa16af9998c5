// Package validation checks option values with go-playground/validator tags.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// Func validates a converted option value against a validator tag.
// The name is the option long name, used in error messages.
type Func func(value any, tag, name string) error

// NewDefault returns a validation function using a default validator.
func NewDefault() Func {
	return NewWith(validator.New())
}

// NewWith returns a validation function using the given validator,
// which can have custom validations registered.
func NewWith(validate *validator.Validate) Func {
	return func(value any, tag, name string) error {
		if tag == "" {
			return nil
		}

		if err := validate.Var(value, tag); err != nil {
			return &invalidVarError{
				fieldName:    name,
				fieldValue:   value,
				validatorErr: err,
			}
		}

		return nil
	}
}
