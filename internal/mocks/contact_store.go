package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing
type MockContactStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, contact *domain.Contact) error
	GetByIDFn func(ctx context.Context, username string, id int64) (*domain.Contact, error)
	ExistsFn  func(ctx context.Context, username string, id int64) (bool, error)
	UpdateFn  func(ctx context.Context, contact *domain.Contact) error
	DeleteFn  func(ctx context.Context, id int64) error
	SearchFn  func(ctx context.Context, username string, filter store.ContactFilter) ([]*domain.Contact, int64, error)

	// Data for the default implementation, keyed by contact ID
	Contacts map[int64]*domain.Contact
	NextID   int64
}

// Ensure MockContactStore implements store.ContactStore interface
var _ store.ContactStore = (*MockContactStore)(nil)

// NewMockContactStore creates a new mock store with initialized defaults
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[int64]*domain.Contact),
		NextID:   1,
	}
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	contact.ID = m.NextID
	m.NextID++
	m.Contacts[contact.ID] = contact
	return nil
}

// GetByID implements the ContactStore interface
func (m *MockContactStore) GetByID(ctx context.Context, username string, id int64) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, username, id)
	}

	contact, exists := m.Contacts[id]
	if !exists || contact.Username != username {
		return nil, store.ErrContactNotFound
	}

	return contact, nil
}

// Exists implements the ContactStore interface
func (m *MockContactStore) Exists(ctx context.Context, username string, id int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, username, id)
	}

	contact, exists := m.Contacts[id]
	return exists && contact.Username == username, nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	if _, exists := m.Contacts[contact.ID]; !exists {
		return store.ErrContactNotFound
	}

	m.Contacts[contact.ID] = contact
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Contacts[id]; !exists {
		return store.ErrContactNotFound
	}

	delete(m.Contacts, id)
	return nil
}

// Search implements the ContactStore interface.
// The default implementation mirrors the conjunctive substring filter of
// the real store, ordered by ID.
func (m *MockContactStore) Search(
	ctx context.Context,
	username string,
	filter store.ContactFilter,
) ([]*domain.Contact, int64, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, username, filter)
	}

	var matched []*domain.Contact
	for _, contact := range m.Contacts {
		if contact.Username != username {
			continue
		}
		if !matchesFilter(contact, filter) {
			continue
		}
		matched = append(matched, contact)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))

	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, total, nil
}

// matchesFilter applies the optional substring filters of a search.
func matchesFilter(contact *domain.Contact, filter store.ContactFilter) bool {
	if filter.Name != "" &&
		!strings.Contains(contact.FirstName, filter.Name) &&
		!strings.Contains(contact.LastName, filter.Name) {
		return false
	}
	if filter.Email != "" && !strings.Contains(contact.Email, filter.Email) {
		return false
	}
	if filter.Phone != "" && !strings.Contains(contact.Phone, filter.Phone) {
		return false
	}
	return true
}
