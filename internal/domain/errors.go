// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when request data fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a numeric identifier is malformed
	// or not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when a request carries no token, an
	// unknown token, or login credentials that do not verify.
	ErrUnauthorized = errors.New("unauthorized")
)
