// Package forms validates sign-in input before it reaches the auth backend.
// It is presentation-layer plumbing: the session core accepts whatever the
// backend accepts, this package only saves users a round-trip for obviously
// broken input.
package forms

import (
	"errors"
	"strings"
)

const minPasswordLength = 8

// Result is the outcome of validating one form. Errors is keyed by field
// name and carries user-displayable messages.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// ValidateCredentials checks a sign-in form.
func ValidateCredentials(email, password string) Result {
	fieldErrors := make(map[string]string)

	if err := CheckEmail(email); err != nil {
		fieldErrors["email"] = err.Error()
	}
	if err := CheckPassword(password); err != nil {
		fieldErrors["password"] = err.Error()
	}

	return Result{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	}
}

// CheckEmail validates a single email field, for use as a per-field form
// validator.
func CheckEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("email must look like name@example.com")
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.ContainsAny(email, " \t") {
		return errors.New("email must look like name@example.com")
	}
	return nil
}

// CheckPassword validates a single password field, for use as a per-field
// form validator.
func CheckPassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
