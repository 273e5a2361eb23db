package domain

import "errors"

// Address validation errors.
var (
	ErrEmptyCountry    = errors.New("country cannot be empty")
	ErrEmptyPostalCode = errors.New("postal code cannot be empty")
	ErrEmptyContactID  = errors.New("address contact ID cannot be empty")
)

// Address belongs to exactly one contact. Access is always gated by
// ownership of the parent contact.
type Address struct {
	ID         int64  `json:"id"`
	ContactID  int64  `json:"-"` // Parent contact; never rendered to clients
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// Validate checks if the Address has valid data.
func (a *Address) Validate() error {
	if a.ContactID <= 0 {
		return ErrEmptyContactID
	}
	if a.Country == "" {
		return ErrEmptyCountry
	}
	if a.PostalCode == "" {
		return ErrEmptyPostalCode
	}
	return nil
}
