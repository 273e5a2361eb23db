package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithURLParam builds a request carrying a chi route parameter.
func requestWithURLParam(name, value string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantID  int64
		wantErr bool
	}{
		{"valid id", "42", 42, false},
		{"one is the smallest valid id", "1", 1, false},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
		{"non-numeric", "abc", 0, true},
		{"empty", "", 0, true},
		{"float", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithURLParam("contactId", tt.value)
			id, err := getPathID(req, "contactId")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestHandlePathIDRespondsOnFailure(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := requestWithURLParam("contactId", "xyz")

	id, ok := handlePathID(recorder, req, "contactId")

	assert.False(t, ok)
	assert.Zero(t, id)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, []string{"contactId must be a positive integer"}, decodeErrors(t, recorder.Body))
}

func TestQueryPositiveInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		def     int
		want    int
		wantErr bool
	}{
		{"absent uses default", "/?other=1", 10, 10, false},
		{"empty uses default", "/?size=", 10, 10, false},
		{"explicit value", "/?size=25", 10, 25, false},
		{"zero rejected", "/?size=0", 10, 0, true},
		{"negative rejected", "/?size=-3", 10, 0, true},
		{"non-numeric rejected", "/?size=ten", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			value, err := queryPositiveInt(req, "size", tt.def)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, value)
			}
		})
	}
}

func TestCurrentUserMissingFromContext(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/current", nil)

	user, ok := currentUser(recorder, req)

	assert.Nil(t, user)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
