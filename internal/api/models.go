package api

import (
	"github.com/mrglxor/contact-api/internal/api/shared"
	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/service"
)

// Common request/response structures

// RegisterUserRequest defines the payload for the user registration endpoint.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name"     validate:"required,max=100"`
}

// LoginUserRequest defines the payload for the user login endpoint.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest defines the payload for the profile update endpoint.
// Both fields are optional; a request supplying neither is a no-op update.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=100"`
}

// UserResponse defines the public fields of a user. The password and its
// hash never appear in any response body.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// ContactRequest defines the payload for contact create and update.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"omitempty,max=100"`
	Email     string `json:"email"     validate:"omitempty,email,max=200"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
}

// ContactResponse defines the public fields of a contact.
type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressRequest defines the payload for address create and update.
type AddressRequest struct {
	Street     string `json:"street"     validate:"omitempty,max=255"`
	City       string `json:"city"       validate:"omitempty,max=100"`
	Province   string `json:"province"   validate:"omitempty,max=100"`
	Country    string `json:"country"    validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=10"`
}

// AddressResponse defines the public fields of an address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// userToResponse converts a domain.User to its public representation.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

// contactToResponse converts a domain.Contact to its public representation.
func contactToResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// contactsToResponse converts a page of contacts. It always returns a
// non-nil slice so that an empty page renders as [] rather than null.
func contactsToResponse(contacts []*domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, contactToResponse(contact))
	}
	return out
}

// addressToResponse converts a domain.Address to its public representation.
func addressToResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

// addressesToResponse converts an address listing. It always returns a
// non-nil slice so that an empty listing renders as [] rather than null.
func addressesToResponse(addresses []*domain.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, addressToResponse(address))
	}
	return out
}

// pagingToResponse converts service paging metadata to its wire form.
func pagingToResponse(paging service.Paging) shared.Paging {
	return shared.Paging{
		Page:      paging.Page,
		TotalItem: paging.TotalItem,
		TotalPage: paging.TotalPage,
	}
}
