package schema

import (
	"strings"

	"acorn/internal/usecase"
)

const (
	// MaxPasswordBytes is the longest password bcrypt hashes without truncation.
	MaxPasswordBytes = 72

	MsgNameTooShort    = "Name must be at least 2 characters."
	MsgNameTooLong     = "Name must be at most 255 characters."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgPasswordShort   = "Password must be at least 6 characters."
	MsgPasswordLong    = "Password must be at most 255 characters."
	MsgPasswordTooMany = "Password must be at most 72 bytes."
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,min=6"`
}

// Credentials are login values whose shape is acceptable for a lookup.
type Credentials struct {
	Email    string
	Password string
}

// ParseLogin reports whether email/password have a shape worth checking against the store.
// Shape failures are not reported per field; sign-in failures are always generic.
func ParseLogin(email, password string) (*Credentials, bool) {
	form := loginForm{Email: NormalizeEmail(email), Password: password}
	if err := validate.Struct(form); err != nil {
		return nil, false
	}

	return &Credentials{Email: form.Email, Password: form.Password}, true
}

type signupForm struct {
	Name     string `form:"name" validate:"required,min=2,max=255"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,min=6,max=255"`
}

var signupMessages = fieldMessages{
	"name.max":     MsgNameTooLong,
	"name":         MsgNameTooShort,
	"email":        MsgInvalidEmail,
	"password.max": MsgPasswordLong,
	"password":     MsgPasswordShort,
}

// SignupFields are validated signup values. Password is the plaintext and must never be logged.
type SignupFields struct {
	Name     string
	Email    string
	Password string
}

// ParseSignup validates name (2-255), email and password (6-255 characters, at most 72 bytes).
func ParseSignup(input usecase.SignupInput) (*SignupFields, usecase.FieldErrors) {
	form := signupForm{
		Name:     strings.TrimSpace(input.Name),
		Email:    NormalizeEmail(input.Email),
		Password: input.Password,
	}

	fieldErrs := collect(form, signupMessages)
	if _, failed := fieldErrs["password"]; !failed && len(form.Password) > MaxPasswordBytes {
		fieldErrs.Add("password", MsgPasswordTooMany)
	}

	if !fieldErrs.Empty() {
		return nil, fieldErrs
	}

	return &SignupFields{Name: form.Name, Email: form.Email, Password: form.Password}, nil
}

// NormalizeEmail trims and lower-cases an address so lookups and the unique index agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
