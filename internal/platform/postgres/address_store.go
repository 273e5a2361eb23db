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

// addressColumns is the column list shared by every address query.
const addressColumns = "id, contact_id, street, city, province, country, postal_code"

// PostgresAddressStore implements the store.AddressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the
// AddressStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPostgresAddressStore(db store.DBTX, logger *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

// Ensure PostgresAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*PostgresAddressStore)(nil)

// Create implements store.AddressStore.Create
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		address.ContactID,
		nullable(address.Street),
		nullable(address.City),
		nullable(address.Province),
		address.Country,
		address.PostalCode,
	).Scan(&address.ID)
	if err != nil {
		s.logger.Error("failed to create address",
			"contact_id", address.ContactID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// GetByID implements store.AddressStore.GetByID
func (s *PostgresAddressStore) GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE contact_id = $1 AND id = $2
	`

	address, err := scanAddress(s.db.QueryRowContext(ctx, query, contactID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAddressNotFound
		}
		return nil, MapError(err)
	}

	return address, nil
}

// Exists implements store.AddressStore.Exists
func (s *PostgresAddressStore) Exists(ctx context.Context, contactID, id int64) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM addresses
		WHERE contact_id = $1 AND id = $2
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, contactID, id).Scan(&count); err != nil {
		return false, MapError(err)
	}

	return count == 1, nil
}

// Update implements store.AddressStore.Update
func (s *PostgresAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		nullable(address.Street),
		nullable(address.City),
		nullable(address.Province),
		address.Country,
		address.PostalCode,
		address.ID,
	)
	if err != nil {
		s.logger.Error("failed to update address",
			"address_id", address.ID,
			"error", err)
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrAddressNotFound
	}

	return nil
}

// Delete implements store.AddressStore.Delete
func (s *PostgresAddressStore) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM addresses WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.Error("failed to delete address",
			"address_id", id,
			"error", err)
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrAddressNotFound
	}

	return nil
}

// ListByContactID implements store.AddressStore.ListByContactID
func (s *PostgresAddressStore) ListByContactID(ctx context.Context, contactID int64) ([]*domain.Address, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, contactID)
	if err != nil {
		s.logger.Error("failed to list addresses",
			"contact_id", contactID,
			"error", err)
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var addresses []*domain.Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, MapError(err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return addresses, nil
}

// scanAddress maps a single address row to a domain.Address.
// Optional columns are stored as NULL and surface as empty strings.
func scanAddress(row rowScanner) (*domain.Address, error) {
	var address domain.Address
	var street, city, province sql.NullString

	err := row.Scan(
		&address.ID,
		&address.ContactID,
		&street,
		&city,
		&province,
		&address.Country,
		&address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	address.Street = street.String
	address.City = city.String
	address.Province = province.String

	return &address, nil
}
