package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mrglxor/contact-api/internal/api/shared"
	"github.com/mrglxor/contact-api/internal/service"
)

// Contact search paging defaults.
const (
	defaultSearchPage = 1
	defaultSearchSize = 10
)

// ContactHandler handles contact-related API requests.
type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

// NewContactHandler creates a new ContactHandler with the given dependencies.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      shared.NewValidator(),
	}
}

// Create handles POST /api/contacts requests.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	contact, err := h.contactService.Create(r.Context(), user.Username, contactInput(req))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Get handles GET /api/contacts/{contactId} requests.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	contact, err := h.contactService.Get(r.Context(), user.Username, contactID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Update handles PUT /api/contacts/{contactId} requests.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	contact, err := h.contactService.Update(r.Context(), user.Username, contactID, contactInput(req))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Remove handles DELETE /api/contacts/{contactId} requests.
func (h *ContactHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	contactID, ok := handlePathID(w, r, "contactId")
	if !ok {
		return
	}

	if err := h.contactService.Remove(r.Context(), user.Username, contactID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Search handles GET /api/contacts requests.
// Query parameters: page, size, name, email, phone.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	page, err := queryPositiveInt(r, "page", defaultSearchPage)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "page must be a positive integer")
		return
	}

	size, err := queryPositiveInt(r, "size", defaultSearchSize)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "size must be a positive integer")
		return
	}

	search := service.ContactSearch{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
		Page:  page,
		Size:  size,
	}

	contacts, paging, err := h.contactService.Search(r.Context(), user.Username, search)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, http.StatusOK, contactsToResponse(contacts), pagingToResponse(paging))
}

// contactInput converts a validated request body to a service input.
func contactInput(req ContactRequest) service.ContactInput {
	return service.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}
