// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrValidation is returned when required input is missing or does not
	// meet the minimum requirements. Wrapped errors carry the detail.
	ErrValidation = errors.New("validation failed")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails. It deliberately does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOrExpiredToken is returned when a verification or reset token
	// does not match any pending, non-expired token. It deliberately does not
	// distinguish an expired token from one that never existed.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// ErrTokenNotFound is the repository-level signal that a conditional
	// token consumption matched no row.
	ErrTokenNotFound = errors.New("token not found")
)
