package store

import (
	"context"

	"github.com/mrglxor/contact-api/internal/domain"
)

// AddressStore defines the interface for address data persistence.
// Lookups are scoped by the parent contact ID; ownership of the contact
// itself is enforced one layer up, in the address service.
type AddressStore interface {
	// Create saves a new address and assigns its generated ID.
	Create(ctx context.Context, address *domain.Address) error

	// GetByID retrieves the address matching both id and parent contact ID.
	// Returns ErrAddressNotFound if no such row exists.
	GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error)

	// Exists reports whether an address matching both id and parent
	// contact ID exists.
	Exists(ctx context.Context, contactID, id int64) (bool, error)

	// Update overwrites the address's street, city, province, country,
	// and postal code. The caller is expected to have verified existence
	// first.
	Update(ctx context.Context, address *domain.Address) error

	// Delete removes the address by ID.
	Delete(ctx context.Context, id int64) error

	// ListByContactID returns all addresses under the given contact,
	// without paging.
	ListByContactID(ctx context.Context, contactID int64) ([]*domain.Address, error)
}
