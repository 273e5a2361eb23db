package domain

import "errors"

// User validation errors.
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 100 characters long")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNameTooLong         = errors.New("name must be at most 100 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 100 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. The username is the primary
// identifier and never changes after registration.
type User struct {
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	HashedPassword string  `json:"-"` // Never expose the password hash in JSON
	Token          *string `json:"-"` // Session token; nil when logged out
}

// NewUser creates a new User with the given username and display name.
// The caller is responsible for hashing the password and assigning
// HashedPassword before the user is stored.
func NewUser(username, name string) (*User, error) {
	user := &User{
		Username: username,
		Name:     name,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 100 {
		return ErrUsernameTooLong
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if len(u.Name) > 100 {
		return ErrNameTooLong
	}
	return nil
}

// LoggedIn reports whether the user currently holds a session token.
func (u *User) LoggedIn() bool {
	return u.Token != nil && *u.Token != ""
}
