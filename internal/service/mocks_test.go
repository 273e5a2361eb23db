package service

import (
	"fmt"
	"io"
	"log/slog"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher is a deterministic stand-in for bcrypt.
type fakeHasher struct {
	hashErr error
}

func (h fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h fakeHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// sequenceTokens issues "token-1", "token-2", ... so tests can observe
// token rotation across logins.
type sequenceTokens struct {
	n int
}

func (s *sequenceTokens) Generate() string {
	s.n++
	return fmt.Sprintf("token-%d", s.n)
}
