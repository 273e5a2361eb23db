package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mrglxor/contact-api/internal/api/shared"
	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/store"
)

// AuthMiddleware resolves opaque session tokens to user records.
// The Authorization header carries the raw token with no scheme prefix;
// it is matched exactly against the token stored on the user row.
type AuthMiddleware struct {
	userStore store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		userStore: userStore,
	}
}

// Authenticate looks up the user holding the presented token and adds it
// to the request context. Requests with a missing, empty, or unknown
// token are rejected before reaching any resource handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized")
			return
		}

		user, err := m.userStore.GetByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}
			slog.Error("failed to resolve session token", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "authentication error")
			return
		}

		ctx := shared.WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}
