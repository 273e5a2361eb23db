package store

import (
	"context"

	"github.com/mrglxor/contact-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The caller must have hashed the password already; Create never
	// persists plaintext.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user whose session token equals the given
	// token. Returns ErrUserNotFound if no user holds the token.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// Update persists the user's name, hashed password, and session token.
	// The username is immutable and used as the row key.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error
}
