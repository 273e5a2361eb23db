package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mrglxor/contact-api/internal/api/shared"
	"github.com/mrglxor/contact-api/internal/domain"
)

// currentUser extracts the authenticated user from the request context.
// The user is placed there by the auth middleware; a missing user means
// the handler was reached without it, which is rejected as unauthorized.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return user, true
}

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// handlePathID is a composite helper that extracts a positive integer ID
// from the path and writes a validation error response if it is malformed.
// Returns the ID and true on success; zero and false after responding.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("%s must be a positive integer", paramName))
		return 0, false
	}
	return id, true
}

// queryPositiveInt reads an optional positive integer query parameter,
// falling back to def when the parameter is absent or empty.
func queryPositiveInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrValidation, name)
	}

	return value, nil
}
