package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/store"
)

// contactColumns is the column list shared by every contact query.
const contactColumns = "id, username, first_name, last_name, email, phone"

// PostgresContactStore implements the store.ContactStore interface
// using a PostgreSQL database as the storage backend.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the
// ContactStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure PostgresContactStore implements store.ContactStore interface
var _ store.ContactStore = (*PostgresContactStore)(nil)

// Create implements store.ContactStore.Create
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		contact.Username,
		contact.FirstName,
		nullable(contact.LastName),
		nullable(contact.Email),
		nullable(contact.Phone),
	).Scan(&contact.ID)
	if err != nil {
		s.logger.Error("failed to create contact",
			"username", contact.Username,
			"error", err)
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ContactStore.GetByID
func (s *PostgresContactStore) GetByID(ctx context.Context, username string, id int64) (*domain.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE username = $1 AND id = $2
	`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, username, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrContactNotFound
		}
		return nil, MapError(err)
	}

	return contact, nil
}

// Exists implements store.ContactStore.Exists
func (s *PostgresContactStore) Exists(ctx context.Context, username string, id int64) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM contacts
		WHERE username = $1 AND id = $2
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, username, id).Scan(&count); err != nil {
		return false, MapError(err)
	}

	return count == 1, nil
}

// Update implements store.ContactStore.Update
func (s *PostgresContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		contact.FirstName,
		nullable(contact.LastName),
		nullable(contact.Email),
		nullable(contact.Phone),
		contact.ID,
	)
	if err != nil {
		s.logger.Error("failed to update contact",
			"contact_id", contact.ID,
			"error", err)
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrContactNotFound
	}

	return nil
}

// Delete implements store.ContactStore.Delete
func (s *PostgresContactStore) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM contacts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.Error("failed to delete contact",
			"contact_id", id,
			"error", err)
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrContactNotFound
	}

	return nil
}

// Search implements store.ContactStore.Search
// It builds one conjunctive WHERE clause shared by the page query and the
// count query so that paging metadata always agrees with the result set.
func (s *PostgresContactStore) Search(
	ctx context.Context,
	username string,
	filter store.ContactFilter,
) ([]*domain.Contact, int64, error) {
	where, args := buildContactFilter(username, filter)

	countQuery := `SELECT COUNT(*) FROM contacts WHERE ` + where

	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	pageQuery := fmt.Sprintf(
		`SELECT %s FROM contacts WHERE %s ORDER BY id LIMIT $%d OFFSET $%d`,
		contactColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		s.logger.Error("failed to search contacts",
			"username", username,
			"error", err)
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var contacts []*domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return contacts, total, nil
}

// buildContactFilter returns the WHERE clause and its arguments for a
// contact search. The owner username is always the first condition.
func buildContactFilter(username string, filter store.ContactFilter) (string, []any) {
	conds := []string{"username = $1"}
	args := []any{username}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(first_name LIKE $%d OR last_name LIKE $%d)", n, n))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		conds = append(conds, fmt.Sprintf("email LIKE $%d", len(args)))
	}
	if filter.Phone != "" {
		args = append(args, "%"+filter.Phone+"%")
		conds = append(conds, fmt.Sprintf("phone LIKE $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanContact maps a single contact row to a domain.Contact.
// Optional columns are stored as NULL and surface as empty strings.
func scanContact(row rowScanner) (*domain.Contact, error) {
	var contact domain.Contact
	var lastName, email, phone sql.NullString

	err := row.Scan(
		&contact.ID,
		&contact.Username,
		&contact.FirstName,
		&lastName,
		&email,
		&phone,
	)
	if err != nil {
		return nil, err
	}

	contact.LastName = lastName.String
	contact.Email = email.String
	contact.Phone = phone.String

	return &contact, nil
}

// nullable converts an empty string to NULL for optional columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
