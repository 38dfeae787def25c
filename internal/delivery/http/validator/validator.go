// Package validator bridges go-playground/validator into Echo and carries
// the registration/login validation rules.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var usernameChars = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// EchoValidator implements echo.Validator on top of go-playground/validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator with the custom rules registered.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report wire field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// These never return errors for valid tags and non-nil funcs.
	_ = v.RegisterValidation("username_chars", validateUsernameChars)
	_ = v.RegisterValidation("password_strength", validatePasswordStrength)

	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator.
func (ev *EchoValidator) Validate(i any) error {
	return ev.validate.Struct(i)
}

// validateUsernameChars restricts usernames to letters, digits, underscore,
// and hyphen.
func validateUsernameChars(fl validator.FieldLevel) bool {
	return usernameChars.MatchString(fl.Field().String())
}

// validatePasswordStrength requires at least one letter and one digit.
// The length floor is a separate min=8 tag so the two failures report
// distinct rules.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	var hasLetter, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
