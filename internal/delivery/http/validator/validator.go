// Package validator adapts the shared go-playground validator to echo.
package validator

import (
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/usecase/schema"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: schema.Validator()}
}

// Validate checks request structs bound from query strings and route params.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
