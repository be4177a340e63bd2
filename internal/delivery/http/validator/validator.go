// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "vetclinic/internal/domain/errors"
)

// echoValidator wraps a validator instance so Echo's c.Validate works on
// request structs.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the Echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct validation and maps failures to the domain error
// taxonomy so the error handler renders them consistently.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
