// Package auth implements account registration, login and the single-session
// current-user pointer.
package auth

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/records"
)

// Validation errors surfaced to the user as transient messages.
var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrEmailTaken       = errors.New("this email is already registered")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be at least 6 characters long")
	ErrUnknownEmail     = errors.New("no account found with this email")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrNotAuthenticated = errors.New("not logged in")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// minPasswordLength is the weakest password accepted at registration.
const minPasswordLength = 6

// Service manages user accounts and the session pointer.
type Service struct {
	store  *records.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires an auth service instance.
func NewService(store *records.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FullName        string
	FarmName        string
	Location        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register validates the input, hashes the password and stores the account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if in.FullName == "" || in.FarmName == "" || in.Location == "" ||
		in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return models.User{}, ErrMissingFields
	}
	if !emailPattern.MatchString(in.Email) {
		return models.User{}, ErrInvalidEmail
	}
	if _, exists := s.store.FindUserByEmail(in.Email); exists {
		return models.User{}, ErrEmailTaken
	}
	if in.Password != in.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	if len(in.Password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return models.User{}, errors.New("failed to register user")
	}

	user, err := s.store.AddUser(ctx, models.User{
		FullName:     in.FullName,
		FarmName:     in.FarmName,
		Location:     in.Location,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	return user, nil
}

// Login verifies the credentials and sets the session pointer.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	user, ok := s.store.FindUserByEmail(email)
	if !ok {
		return models.User{}, ErrUnknownEmail
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrWrongPassword
	}

	if err := s.store.SetCurrentUser(ctx, user); err != nil {
		return models.User{}, err
	}

	s.logger.Info("user logged in", zap.String("email", user.Email))
	return user, nil
}

// Logout clears the session pointer.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.ClearCurrentUser(ctx)
}

// Current returns the active session user.
func (s *Service) Current() (models.User, error) {
	user, ok := s.store.CurrentUser()
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}
	return user, nil
}
