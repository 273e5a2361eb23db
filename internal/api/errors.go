package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mrglxor/contact-api/internal/api/shared"
	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/service/auth"
	"github.com/mrglxor/contact-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate username on registration. The original surface reports
	// this conflict as 400 rather than 409.
	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "username or password wrong"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"

	case errors.Is(err, store.ErrContactNotFound):
		return "contact is not found"

	case errors.Is(err, store.ErrAddressNotFound):
		return "address is not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "user is not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "username already registered"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError renders a service-layer error as the error envelope
// with the matching status code. Unanticipated errors surface as 500 and
// are logged with their full detail.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		slog.Error("unhandled service error",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()),
			"path", r.URL.Path,
			"method", r.Method)
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}

// ValidationMessages flattens a validator error into one human-readable
// message per failing field, e.g. "firstName is required". Every failing
// field is reported, not just the first.
func ValidationMessages(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{"invalid request data"}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

// fieldMessage maps a single field validation failure to a message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
