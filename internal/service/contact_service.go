package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/store"
)

// ContactInput carries the writable fields of a contact.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// ContactSearch carries the paging window and substring filters for a
// contact search. Page and Size must already be positive.
type ContactSearch struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// Paging describes the page of a search result.
type Paging struct {
	Page      int
	TotalItem int64
	TotalPage int64
}

// ContactService provides ownership-scoped CRUD and search over contacts.
type ContactService interface {
	// Create persists a new contact owned by the given username.
	Create(ctx context.Context, username string, input ContactInput) (*domain.Contact, error)

	// Get returns the contact matching id and owner username.
	// Returns store.ErrContactNotFound otherwise.
	Get(ctx context.Context, username string, id int64) (*domain.Contact, error)

	// Update overwrites the contact's fields after verifying ownership.
	// Returns store.ErrContactNotFound if the contact is missing or owned
	// by another user.
	Update(ctx context.Context, username string, id int64, input ContactInput) (*domain.Contact, error)

	// Remove deletes the contact after verifying ownership. Its addresses
	// are removed by the schema's cascade rule.
	// Returns store.ErrContactNotFound if the contact is missing or owned
	// by another user.
	Remove(ctx context.Context, username string, id int64) error

	// Search returns one page of the owner's contacts matching the filters
	// plus paging metadata computed over the full match count.
	Search(ctx context.Context, username string, search ContactSearch) ([]*domain.Contact, Paging, error)
}

// ContactServiceImpl implements the ContactService interface
type ContactServiceImpl struct {
	contactStore store.ContactStore
	logger       *slog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactStore store.ContactStore, logger *slog.Logger) *ContactServiceImpl {
	return &ContactServiceImpl{
		contactStore: contactStore,
		logger:       logger.With("component", "contact_service"),
	}
}

// Ensure ContactServiceImpl implements ContactService interface
var _ ContactService = (*ContactServiceImpl)(nil)

// Create implements ContactService.Create
func (s *ContactServiceImpl) Create(ctx context.Context, username string, input ContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		Username:  username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := s.contactStore.Create(ctx, contact); err != nil {
		s.logger.Error("failed to create contact",
			"username", username,
			"error", err)
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// Get implements ContactService.Get
func (s *ContactServiceImpl) Get(ctx context.Context, username string, id int64) (*domain.Contact, error) {
	contact, err := s.contactStore.GetByID(ctx, username, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrContactNotFound
		}
		s.logger.Error("failed to get contact",
			"username", username,
			"contact_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}

// Update implements ContactService.Update
func (s *ContactServiceImpl) Update(
	ctx context.Context,
	username string,
	id int64,
	input ContactInput,
) (*domain.Contact, error) {
	if err := s.checkOwnership(ctx, username, id); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		ID:        id,
		Username:  username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := s.contactStore.Update(ctx, contact); err != nil {
		s.logger.Error("failed to update contact",
			"username", username,
			"contact_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// Remove implements ContactService.Remove
func (s *ContactServiceImpl) Remove(ctx context.Context, username string, id int64) error {
	if err := s.checkOwnership(ctx, username, id); err != nil {
		return err
	}

	if err := s.contactStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrContactNotFound
		}
		s.logger.Error("failed to delete contact",
			"username", username,
			"contact_id", id,
			"error", err)
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}

// Search implements ContactService.Search
func (s *ContactServiceImpl) Search(
	ctx context.Context,
	username string,
	search ContactSearch,
) ([]*domain.Contact, Paging, error) {
	filter := store.ContactFilter{
		Name:   search.Name,
		Email:  search.Email,
		Phone:  search.Phone,
		Offset: (search.Page - 1) * search.Size,
		Limit:  search.Size,
	}

	contacts, total, err := s.contactStore.Search(ctx, username, filter)
	if err != nil {
		s.logger.Error("failed to search contacts",
			"username", username,
			"error", err)
		return nil, Paging{}, fmt.Errorf("failed to search contacts: %w", err)
	}

	paging := Paging{
		Page:      search.Page,
		TotalItem: total,
		TotalPage: (total + int64(search.Size) - 1) / int64(search.Size),
	}

	return contacts, paging, nil
}

// checkOwnership verifies that exactly one contact matches the id and
// owner username. The subsequent write is not transactionally tied to
// this check; a concurrent delete between the two is an accepted race.
func (s *ContactServiceImpl) checkOwnership(ctx context.Context, username string, id int64) error {
	exists, err := s.contactStore.Exists(ctx, username, id)
	if err != nil {
		s.logger.Error("failed to check contact ownership",
			"username", username,
			"contact_id", id,
			"error", err)
		return fmt.Errorf("failed to check contact ownership: %w", err)
	}
	if !exists {
		return store.ErrContactNotFound
	}
	return nil
}
