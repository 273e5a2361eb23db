package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrglxor/contact-api/internal/domain"
	"github.com/mrglxor/contact-api/internal/service/auth"
	"github.com/mrglxor/contact-api/internal/store"
)

// UserUpdate carries the optional fields of a profile update. A nil field
// is left untouched; supplying neither is a no-op update.
type UserUpdate struct {
	Name     *string
	Password *string
}

// UserService provides registration, login, profile, and logout operations.
type UserService interface {
	// Register creates a new user with a hashed password and no session
	// token. Returns store.ErrUsernameExists if the username is taken.
	Register(ctx context.Context, username, password, name string) (*domain.User, error)

	// Login verifies the credentials and, on success, persists and returns
	// a fresh opaque session token, replacing any previous one.
	// Returns auth.ErrInvalidCredentials on unknown username or wrong
	// password, without distinguishing the two.
	Login(ctx context.Context, username, password string) (string, error)

	// Update applies the supplied profile changes to the user and returns
	// the updated user.
	Update(ctx context.Context, user *domain.User, update UserUpdate) (*domain.User, error)

	// Logout clears the user's session token.
	Logout(ctx context.Context, user *domain.User) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	tokens    auth.TokenGenerator
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.TokenGenerator,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		tokens:    tokens,
		logger:    logger.With("component", "user_service"),
	}
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// Register implements UserService.Register
func (s *UserServiceImpl) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	user, err := domain.NewUser(username, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"username", username,
			"error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("username already registered", "username", username)
			return nil, err
		}
		s.logger.Error("failed to create user",
			"username", username,
			"error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "username", username)
	return user, nil
}

// Login implements UserService.Login
func (s *UserServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same generic error as a wrong password, to avoid
			// user enumeration.
			return "", auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to get user for login",
			"username", username,
			"error", err)
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	token := s.tokens.Generate()
	user.Token = &token

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to persist session token",
			"username", username,
			"error", err)
		return "", fmt.Errorf("failed to persist session token: %w", err)
	}

	s.logger.Info("user logged in", "username", username)
	return token, nil
}

// Update implements UserService.Update
func (s *UserServiceImpl) Update(ctx context.Context, user *domain.User, update UserUpdate) (*domain.User, error) {
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Password != nil {
		hashed, err := s.hasher.Hash(*update.Password)
		if err != nil {
			s.logger.Error("failed to hash password",
				"username", user.Username,
				"error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user",
			"username", user.Username,
			"error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Logout implements UserService.Logout
func (s *UserServiceImpl) Logout(ctx context.Context, user *domain.User) error {
	user.Token = nil

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to clear session token",
			"username", user.Username,
			"error", err)
		return fmt.Errorf("failed to clear session token: %w", err)
	}

	s.logger.Info("user logged out", "username", user.Username)
	return nil
}
