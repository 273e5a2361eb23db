package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mrglxor/contact-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantIs   error
		original bool
	}{
		{
			name:   "nil stays nil",
			err:    nil,
			wantIs: nil,
		},
		{
			name:   "no rows maps to not found",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped no rows maps to not found",
			err:    fmt.Errorf("query user: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation maps to duplicate",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation maps to invalid entity",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "contacts_username_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check violation maps to invalid entity",
			err:    &pgconn.PgError{Code: "23514", ConstraintName: "some_check"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation maps to invalid entity",
			err:    &pgconn.PgError{Code: "23502", ColumnName: "first_name"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:     "unknown pg error passes through",
			err:      &pgconn.PgError{Code: "57014"},
			original: true,
		},
		{
			name:     "plain error passes through",
			err:      errors.New("dial tcp: connection refused"),
			original: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)

			switch {
			case tt.err == nil:
				assert.NoError(t, mapped)
			case tt.original:
				assert.Equal(t, tt.err, mapped)
			default:
				require.Error(t, mapped)
				assert.ErrorIs(t, mapped, tt.wantIs)
				// The original cause stays in the chain for logging.
				assert.Contains(t, mapped.Error(), tt.wantIs.Error())
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(
		fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
