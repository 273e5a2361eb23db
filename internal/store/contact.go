package store

import (
	"context"

	"github.com/mrglxor/contact-api/internal/domain"
)

// ContactFilter describes the optional substring filters and paging window
// for a contact search. All filters are combined conjunctively; the Name
// filter matches against either the first or the last name.
type ContactFilter struct {
	Name   string
	Email  string
	Phone  string
	Offset int
	Limit  int
}

// ContactStore defines the interface for contact data persistence.
// Every lookup is scoped by the owning username; a contact owned by a
// different user behaves exactly like a missing row.
type ContactStore interface {
	// Create saves a new contact and assigns its generated ID.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByID retrieves the contact matching both id and owner username.
	// Returns ErrContactNotFound if no such row exists.
	GetByID(ctx context.Context, username string, id int64) (*domain.Contact, error)

	// Exists reports whether a contact matching both id and owner
	// username exists.
	Exists(ctx context.Context, username string, id int64) (bool, error)

	// Update overwrites the contact's first name, last name, email, and
	// phone. The caller is expected to have verified ownership first.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes the contact by ID. Addresses under the contact are
	// removed by the schema's cascade rule.
	Delete(ctx context.Context, id int64) error

	// Search returns one page of the owner's contacts matching the filter,
	// together with the total number of matching rows across all pages.
	Search(ctx context.Context, username string, filter ContactFilter) ([]*domain.Contact, int64, error)
}
