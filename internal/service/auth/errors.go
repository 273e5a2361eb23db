package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials indicates the username or password did not
	// verify. The message is deliberately generic so that callers cannot
	// distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("username or password wrong")

	// ErrInvalidToken indicates the presented session token matches no user
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")
)
