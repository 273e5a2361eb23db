package domain

import "errors"

// Contact validation errors.
var (
	ErrEmptyFirstName   = errors.New("first name cannot be empty")
	ErrFirstNameTooLong = errors.New("first name must be at most 100 characters long")
	ErrEmptyOwner       = errors.New("contact owner cannot be empty")
)

// Contact is an address-book entry owned by exactly one user. Ownership
// is recorded by username and every read or write is filtered by it.
type Contact struct {
	ID        int64  `json:"id"`
	Username  string `json:"-"` // Owning user; never rendered to clients
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Validate checks if the Contact has valid data.
func (c *Contact) Validate() error {
	if c.Username == "" {
		return ErrEmptyOwner
	}
	if c.FirstName == "" {
		return ErrEmptyFirstName
	}
	if len(c.FirstName) > 100 {
		return ErrFirstNameTooLong
	}
	return nil
}
