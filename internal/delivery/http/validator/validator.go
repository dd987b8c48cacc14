// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the echo servers.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag violations come back as the
// validator's own error; handlers translate them into 400 responses.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
