package auth

import "github.com/google/uuid"

// TokenGenerator produces opaque session tokens. A token carries no
// embedded structure; it is stored on the user row and compared by
// exact match on every authenticated request.
type TokenGenerator interface {
	// Generate returns a new unique opaque token.
	Generate() string
}

// UUIDTokenGenerator implements TokenGenerator using random UUIDv4 strings.
type UUIDTokenGenerator struct{}

// NewUUIDTokenGenerator creates a new UUIDTokenGenerator.
func NewUUIDTokenGenerator() *UUIDTokenGenerator {
	return &UUIDTokenGenerator{}
}

// Generate implements the TokenGenerator interface.
func (g *UUIDTokenGenerator) Generate() string {
	return uuid.NewString()
}
