package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := `
		INSERT INTO users (username, password, name, token)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.Username,
		user.HashedPassword,
		user.Name,
		user.Token,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		s.logger.Error("failed to create user",
			"username", user.Username,
			"error", err)
		return MapError(err)
	}

	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, password, name, token
		FROM users
		WHERE username = $1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

// GetByToken implements store.UserStore.GetByToken
func (s *PostgresUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	query := `
		SELECT username, password, name, token
		FROM users
		WHERE token = $1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, token))
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE users
		SET password = $1, name = $2, token = $3
		WHERE username = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		user.HashedPassword,
		user.Name,
		user.Token,
		user.Username,
	)
	if err != nil {
		s.logger.Error("failed to update user",
			"username", user.Username,
			"error", err)
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

// scanUser maps a single user row to a domain.User.
func (s *PostgresUserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var token sql.NullString

	err := row.Scan(&user.Username, &user.HashedPassword, &user.Name, &token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	if token.Valid {
		user.Token = &token.String
	}

	return &user, nil
}
