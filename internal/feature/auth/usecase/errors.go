// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot tell which of the two occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordTooShort is returned when a registration password fails the
	// minimum length requirement. It marks the failure as client fault.
	ErrPasswordTooShort = errors.New("password is too short")
)
