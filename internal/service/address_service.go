package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/store"
)

// AddressInput carries the writable fields of an address.
type AddressInput struct {
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}

// AddressService provides CRUD over the addresses of a contact. Every
// operation first resolves the owning contact for the authenticated user
// and fails with store.ErrContactNotFound before touching address rows.
type AddressService interface {
	// Create persists a new address under the given contact.
	Create(ctx context.Context, username string, contactID int64, input AddressInput) (*domain.Address, error)

	// Get returns the address matching id and parent contact.
	// Returns store.ErrAddressNotFound otherwise.
	Get(ctx context.Context, username string, contactID, id int64) (*domain.Address, error)

	// Update overwrites the address's fields after verifying existence.
	// Returns store.ErrAddressNotFound if no such address exists under
	// the contact.
	Update(ctx context.Context, username string, contactID, id int64, input AddressInput) (*domain.Address, error)

	// Remove deletes the address after verifying existence.
	// Returns store.ErrAddressNotFound if no such address exists under
	// the contact.
	Remove(ctx context.Context, username string, contactID, id int64) error

	// List returns all addresses under the contact, without paging.
	List(ctx context.Context, username string, contactID int64) ([]*domain.Address, error)
}

// AddressServiceImpl implements the AddressService interface
type AddressServiceImpl struct {
	addressStore store.AddressStore
	contactStore store.ContactStore
	logger       *slog.Logger
}

// NewAddressService creates a new AddressService
func NewAddressService(
	addressStore store.AddressStore,
	contactStore store.ContactStore,
	logger *slog.Logger,
) *AddressServiceImpl {
	return &AddressServiceImpl{
		addressStore: addressStore,
		contactStore: contactStore,
		logger:       logger.With("component", "address_service"),
	}
}

// Ensure AddressServiceImpl implements AddressService interface
var _ AddressService = (*AddressServiceImpl)(nil)

// Create implements AddressService.Create
func (s *AddressServiceImpl) Create(
	ctx context.Context,
	username string,
	contactID int64,
	input AddressInput,
) (*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ContactID:  contactID,
		Street:     input.Street,
		City:       input.City,
		Province:   input.Province,
		Country:    input.Country,
		PostalCode: input.PostalCode,
	}

	if err := s.addressStore.Create(ctx, address); err != nil {
		s.logger.Error("failed to create address",
			"username", username,
			"contact_id", contactID,
			"error", err)
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

// Get implements AddressService.Get
func (s *AddressServiceImpl) Get(
	ctx context.Context,
	username string,
	contactID, id int64,
) (*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	address, err := s.addressStore.GetByID(ctx, contactID, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrAddressNotFound
		}
		s.logger.Error("failed to get address",
			"contact_id", contactID,
			"address_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return address, nil
}

// Update implements AddressService.Update
func (s *AddressServiceImpl) Update(
	ctx context.Context,
	username string,
	contactID, id int64,
	input AddressInput,
) (*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	if err := s.checkAddressMustExist(ctx, contactID, id); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ID:         id,
		ContactID:  contactID,
		Street:     input.Street,
		City:       input.City,
		Province:   input.Province,
		Country:    input.Country,
		PostalCode: input.PostalCode,
	}

	if err := s.addressStore.Update(ctx, address); err != nil {
		s.logger.Error("failed to update address",
			"contact_id", contactID,
			"address_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	return address, nil
}

// Remove implements AddressService.Remove
func (s *AddressServiceImpl) Remove(ctx context.Context, username string, contactID, id int64) error {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return err
	}

	if err := s.checkAddressMustExist(ctx, contactID, id); err != nil {
		return err
	}

	if err := s.addressStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrAddressNotFound
		}
		s.logger.Error("failed to delete address",
			"contact_id", contactID,
			"address_id", id,
			"error", err)
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return nil
}

// List implements AddressService.List
func (s *AddressServiceImpl) List(ctx context.Context, username string, contactID int64) ([]*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressStore.ListByContactID(ctx, contactID)
	if err != nil {
		s.logger.Error("failed to list addresses",
			"contact_id", contactID,
			"error", err)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, nil
}

// checkContactMustExist verifies that the contact exists and is owned by
// the requesting user before any address rows are touched.
func (s *AddressServiceImpl) checkContactMustExist(ctx context.Context, username string, contactID int64) error {
	exists, err := s.contactStore.Exists(ctx, username, contactID)
	if err != nil {
		s.logger.Error("failed to check contact ownership",
			"username", username,
			"contact_id", contactID,
			"error", err)
		return fmt.Errorf("failed to check contact ownership: %w", err)
	}
	if !exists {
		return store.ErrContactNotFound
	}
	return nil
}

// checkAddressMustExist verifies that exactly one address matches the id
// and parent contact. As with contacts, the check and the following write
// are not one transaction; the race is accepted.
func (s *AddressServiceImpl) checkAddressMustExist(ctx context.Context, contactID, id int64) error {
	exists, err := s.addressStore.Exists(ctx, contactID, id)
	if err != nil {
		s.logger.Error("failed to check address existence",
			"contact_id", contactID,
			"address_id", id,
			"error", err)
		return fmt.Errorf("failed to check address existence: %w", err)
	}
	if !exists {
		return store.ErrAddressNotFound
	}
	return nil
}
