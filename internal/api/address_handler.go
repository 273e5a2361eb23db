package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mrglxor/contact-api/internal/api/shared"
	"github.com/mrglxor/contact-api/internal/service"
)

// AddressHandler handles address-related API requests. All routes are
// nested under a contact; the service rejects any request whose contact
// is missing or owned by another user.
type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

// NewAddressHandler creates a new AddressHandler with the given dependencies.
func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		validator:      shared.NewValidator(),
	}
}

// Create handles POST /api/contacts/{contactId}/addresses requests.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	var req AddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	address, err := h.addressService.Create(r.Context(), user.Username, contactID, addressInput(req))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Get handles GET /api/contacts/{contactId}/addresses/{addressId} requests.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	addressID, ok := handlePathID(w, r, "addressId")
	if !ok {
		return
	}

	address, err := h.addressService.Get(r.Context(), user.Username, contactID, addressID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Update handles PUT /api/contacts/{contactId}/addresses/{addressId} requests.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	addressID, ok := handlePathID(w, r, "addressId")
	if !ok {
		return
	}

	var req AddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	address, err := h.addressService.Update(
		r.Context(),
		user.Username,
		contactID,
		addressID,
		addressInput(req),
	)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Remove handles DELETE /api/contacts/{contactId}/addresses/{addressId} requests.
func (h *AddressHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	addressID, ok := handlePathID(w, r, "addressId")
	if !ok {
		return
	}

	if err := h.addressService.Remove(r.Context(), user.Username, contactID, addressID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// List handles GET /api/contacts/{contactId}/addresses requests.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	addresses, err := h.addressService.List(r.Context(), user.Username, contactID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressesToResponse(addresses))
}

// addressInput converts a validated request body to a service input.
func addressInput(req AddressRequest) service.AddressInput {
	return service.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
}
