package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/mocks"
	"github.com/mrglxor/contact-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addressTestEnv bundles the stores behind a mounted address router.
type addressTestEnv struct {
	router       http.Handler
	contactStore *mocks.MockContactStore
	addressStore *mocks.MockAddressStore
	user         *domain.User
	contact      *domain.Contact
}

// newAddressTestEnv seeds one owned contact and mounts the address routes.
func newAddressTestEnv() *addressTestEnv {
	user := testUser("khannedy")
	contactStore := mocks.NewMockContactStore()
	addressStore := mocks.NewMockAddressStore()
	contact := seedContact(contactStore, user.Username, "Eko", "Khannedy", "", "")

	handler := NewAddressHandler(
		service.NewAddressService(addressStore, contactStore, testLogger()),
	)
	router := newTestRouter(user, func(r chi.Router) {
		r.Post("/api/contacts/{contactId}/addresses", handler.Create)
		r.Get("/api/contacts/{contactId}/addresses", handler.List)
		r.Get("/api/contacts/{contactId}/addresses/{addressId}", handler.Get)
		r.Put("/api/contacts/{contactId}/addresses/{addressId}", handler.Update)
		r.Delete("/api/contacts/{contactId}/addresses/{addressId}", handler.Remove)
	})

	return &addressTestEnv{
		router:       router,
		contactStore: contactStore,
		addressStore: addressStore,
		user:         user,
		contact:      contact,
	}
}

// seedAddress inserts an address under the given contact.
func seedAddress(store *mocks.MockAddressStore, contactID int64, street, city, province, country, postalCode string) *domain.Address {
	address := &domain.Address{
		ContactID:  contactID,
		Street:     street,
		City:       city,
		Province:   province,
		Country:    country,
		PostalCode: postalCode,
	}
	address.ID = store.NextID
	store.NextID++
	store.Addresses[address.ID] = address
	return address
}

func TestAddressHandlerCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
		wantErrors []string
	}{
		{
			name: "full address",
			payload: map[string]any{
				"street":     "Jalan Belum Ada",
				"city":       "Jakarta",
				"province":   "DKI Jakarta",
				"country":    "Indonesia",
				"postalCode": "12345",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "required fields only",
			payload: map[string]any{
				"country":    "Indonesia",
				"postalCode": "12345",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing country",
			payload: map[string]any{
				"postalCode": "12345",
			},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"country is required"},
		},
		{
			name: "missing postal code",
			payload: map[string]any{
				"country": "Indonesia",
			},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"postalCode is required"},
		},
		{
			name: "postal code too long",
			payload: map[string]any{
				"country":    "Indonesia",
				"postalCode": "12345678901",
			},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"postalCode must be at most 10 characters long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newAddressTestEnv()
			recorder := httptest.NewRecorder()
			env.router.ServeHTTP(recorder, jsonRequest(t, "POST",
				fmt.Sprintf("/api/contacts/%d/addresses", env.contact.ID), tt.payload))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp AddressResponse
				decodeDataResponse(t, recorder.Body, &resp)
				assert.NotZero(t, resp.ID)
				assert.Equal(t, tt.payload["country"], resp.Country)
				assert.Equal(t, tt.payload["postalCode"], resp.PostalCode)
			} else {
				assert.ElementsMatch(t, tt.wantErrors, decodeErrors(t, recorder.Body))
			}
		})
	}
}

func TestAddressHandlerCreateUnknownContact(t *testing.T) {
	t.Parallel()

	env := newAddressTestEnv()
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, jsonRequest(t, "POST", "/api/contacts/9999/addresses",
		map[string]any{"country": "Indonesia", "postalCode": "12345"}))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, []string{"contact is not found"}, decodeErrors(t, recorder.Body))
	assert.Empty(t, env.addressStore.Addresses)
}

func TestAddressHandlerGet(t *testing.T) {
	t.Parallel()

	env := newAddressTestEnv()
	address := seedAddress(env.addressStore, env.contact.ID,
		"Jalan Belum Ada", "Jakarta", "DKI Jakarta", "Indonesia", "12345")
	otherContact := seedContact(env.contactStore, env.user.Username, "Budi", "", "", "")

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantError  string
	}{
		{
			name:       "existing address",
			target:     fmt.Sprintf("/api/contacts/%d/addresses/%d", env.contact.ID, address.ID),
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown address id",
			target:     fmt.Sprintf("/api/contacts/%d/addresses/9999", env.contact.ID),
			wantStatus: http.StatusNotFound,
			wantError:  "address is not found",
		},
		{
			name:       "address under a different contact",
			target:     fmt.Sprintf("/api/contacts/%d/addresses/%d", otherContact.ID, address.ID),
			wantStatus: http.StatusNotFound,
			wantError:  "address is not found",
		},
		{
			name:       "unknown contact",
			target:     fmt.Sprintf("/api/contacts/9999/addresses/%d", address.ID),
			wantStatus: http.StatusNotFound,
			wantError:  "contact is not found",
		},
		{
			name:       "non-numeric address id",
			target:     fmt.Sprintf("/api/contacts/%d/addresses/xyz", env.contact.ID),
			wantStatus: http.StatusBadRequest,
			wantError:  "addressId must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			env.router.ServeHTTP(recorder, jsonRequest(t, "GET", tt.target, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp AddressResponse
				decodeDataResponse(t, recorder.Body, &resp)
				assert.Equal(t, address.ID, resp.ID)
				assert.Equal(t, "Jalan Belum Ada", resp.Street)
				assert.Equal(t, "Indonesia", resp.Country)
			} else {
				assert.Equal(t, []string{tt.wantError}, decodeErrors(t, recorder.Body))
			}
		})
	}
}

func TestAddressHandlerUpdate(t *testing.T) {
	t.Parallel()

	env := newAddressTestEnv()
	address := seedAddress(env.addressStore, env.contact.ID,
		"Jalan Lama", "Bandung", "Jawa Barat", "Indonesia", "40111")

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, jsonRequest(t, "PUT",
		fmt.Sprintf("/api/contacts/%d/addresses/%d", env.contact.ID, address.ID),
		map[string]any{
			"street":     "Jalan Baru",
			"city":       "Jakarta",
			"country":    "Indonesia",
			"postalCode": "12345",
		}))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp AddressResponse
	decodeDataResponse(t, recorder.Body, &resp)
	assert.Equal(t, address.ID, resp.ID)
	assert.Equal(t, "Jalan Baru", resp.Street)

	// A full replace: the omitted province is cleared.
	stored := env.addressStore.Addresses[address.ID]
	assert.Equal(t, "Jalan Baru", stored.Street)
	assert.Empty(t, stored.Province)
}

func TestAddressHandlerUpdateNotFound(t *testing.T) {
	t.Parallel()

	env := newAddressTestEnv()
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, jsonRequest(t, "PUT",
		fmt.Sprintf("/api/contacts/%d/addresses/9999", env.contact.ID),
		map[string]any{"country": "Indonesia", "postalCode": "12345"}))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, []string{"address is not found"}, decodeErrors(t, recorder.Body))
}

func TestAddressHandlerRemove(t *testing.T) {
	t.Parallel()

	env := newAddressTestEnv()
	address := seedAddress(env.addressStore, env.contact.ID,
		"", "", "", "Indonesia", "12345")

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, jsonRequest(t, "DELETE",
		fmt.Sprintf("/api/contacts/%d/addresses/%d", env.contact.ID, address.ID), nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp string
	decodeDataResponse(t, recorder.Body, &resp)
	assert.Equal(t, "OK", resp)
	assert.NotContains(t, env.addressStore.Addresses, address.ID)

	recorder = httptest.NewRecorder()
	env.router.ServeHTTP(recorder, jsonRequest(t, "DELETE",
		fmt.Sprintf("/api/contacts/%d/addresses/%d", env.contact.ID, address.ID), nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, []string{"address is not found"}, decodeErrors(t, recorder.Body))
}

func TestAddressHandlerList(t *testing.T) {
	t.Parallel()

	env := newAddressTestEnv()
	first := seedAddress(env.addressStore, env.contact.ID, "Jalan A", "", "", "Indonesia", "11111")
	second := seedAddress(env.addressStore, env.contact.ID, "Jalan B", "", "", "Indonesia", "22222")
	otherContact := seedContact(env.contactStore, env.user.Username, "Budi", "", "", "")
	seedAddress(env.addressStore, otherContact.ID, "Jalan C", "", "", "Indonesia", "33333")

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, jsonRequest(t, "GET",
		fmt.Sprintf("/api/contacts/%d/addresses", env.contact.ID), nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []AddressResponse
	decodeDataResponse(t, recorder.Body, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, first.ID, resp[0].ID)
	assert.Equal(t, second.ID, resp[1].ID)
}

func TestAddressHandlerListEmptyIsArray(t *testing.T) {
	t.Parallel()

	env := newAddressTestEnv()
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, jsonRequest(t, "GET",
		fmt.Sprintf("/api/contacts/%d/addresses", env.contact.ID), nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"data":[]`)
}
