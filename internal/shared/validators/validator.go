// Package validators re-exports the go-playground validator types used for
// struct-tag validation of the loaded configuration.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validate aliases validator.Validate.
type Validate = validator.Validate

// ValidationErrors aliases validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError aliases validator.FieldError.
type FieldError = validator.FieldError

// New returns a validator instance.
func New() *Validate {
	return validator.New()
}
