package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mrglxor/contact-api/internal/api/shared"
	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher is a deterministic stand-in for bcrypt so handler tests do
// not pay the hashing cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return domain.ErrUnauthorized
	}
	return nil
}

// staticTokens issues the same token on every call.
type staticTokens struct {
	token string
}

func (s staticTokens) Generate() string {
	return s.token
}

// testUser returns a logged-in user for authenticated requests.
func testUser(username string) *domain.User {
	token := "token-" + username
	return &domain.User{
		Username:       username,
		Name:           "Test " + username,
		HashedPassword: "hashed:secret",
		Token:          &token,
	}
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authedRequest builds a JSON request whose context carries the user, as
// the auth middleware would have left it.
func authedRequest(t *testing.T, method, target string, payload any, user *domain.User) *http.Request {
	t.Helper()

	req := jsonRequest(t, method, target, payload)
	return req.WithContext(shared.WithUser(req.Context(), user))
}

// newTestRouter mounts the handler functions on a chi router so that path
// parameters resolve the same way they do in production, with the given
// user injected into every request context.
func newTestRouter(user *domain.User, register func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	if user != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(shared.WithUser(req.Context(), user)))
			})
		})
	}
	r.Group(register)
	return r
}

// jsonDecode decodes a full response body into out.
func jsonDecode(body *bytes.Buffer, out any) error {
	return json.NewDecoder(body).Decode(out)
}

// decodeDataResponse decodes a {"data": ...} envelope into out.
func decodeDataResponse(t *testing.T, body *bytes.Buffer, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// decodeErrors decodes the {"errors": ...} envelope. A single message
// comes back as a one-element slice.
func decodeErrors(t *testing.T, body *bytes.Buffer) []string {
	t.Helper()

	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))

	raw := strings.TrimSpace(string(envelope.Errors))
	if strings.HasPrefix(raw, "[") {
		var list []string
		require.NoError(t, json.Unmarshal(envelope.Errors, &list))
		return list
	}

	var single string
	require.NoError(t, json.Unmarshal(envelope.Errors, &single))
	return []string{single}
}
