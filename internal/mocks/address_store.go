package mocks

import (
	"context"
	"sort"

	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing
type MockAddressStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, address *domain.Address) error
	GetByIDFn         func(ctx context.Context, contactID, id int64) (*domain.Address, error)
	ExistsFn          func(ctx context.Context, contactID, id int64) (bool, error)
	UpdateFn          func(ctx context.Context, address *domain.Address) error
	DeleteFn          func(ctx context.Context, id int64) error
	ListByContactIDFn func(ctx context.Context, contactID int64) ([]*domain.Address, error)

	// Data for the default implementation, keyed by address ID
	Addresses map[int64]*domain.Address
	NextID    int64
}

// Ensure MockAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*MockAddressStore)(nil)

// NewMockAddressStore creates a new mock store with initialized defaults
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{
		Addresses: make(map[int64]*domain.Address),
		NextID:    1,
	}
}

// Create implements the AddressStore interface
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}

	address.ID = m.NextID
	m.NextID++
	m.Addresses[address.ID] = address
	return nil
}

// GetByID implements the AddressStore interface
func (m *MockAddressStore) GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, contactID, id)
	}

	address, exists := m.Addresses[id]
	if !exists || address.ContactID != contactID {
		return nil, store.ErrAddressNotFound
	}

	return address, nil
}

// Exists implements the AddressStore interface
func (m *MockAddressStore) Exists(ctx context.Context, contactID, id int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, contactID, id)
	}

	address, exists := m.Addresses[id]
	return exists && address.ContactID == contactID, nil
}

// Update implements the AddressStore interface
func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}

	if _, exists := m.Addresses[address.ID]; !exists {
		return store.ErrAddressNotFound
	}

	m.Addresses[address.ID] = address
	return nil
}

// Delete implements the AddressStore interface
func (m *MockAddressStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Addresses[id]; !exists {
		return store.ErrAddressNotFound
	}

	delete(m.Addresses, id)
	return nil
}

// ListByContactID implements the AddressStore interface
func (m *MockAddressStore) ListByContactID(ctx context.Context, contactID int64) ([]*domain.Address, error) {
	if m.ListByContactIDFn != nil {
		return m.ListByContactIDFn(ctx, contactID)
	}

	var addresses []*domain.Address
	for _, address := range m.Addresses {
		if address.ContactID == contactID {
			addresses = append(addresses, address)
		}
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].ID < addresses[j].ID })

	return addresses, nil
}
