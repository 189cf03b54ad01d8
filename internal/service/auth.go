package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/elegantbudget/budget-go/internal/apperror"
	"github.com/elegantbudget/budget-go/internal/crypto"
	"github.com/elegantbudget/budget-go/internal/model"
	"github.com/elegantbudget/budget-go/internal/repository"
)

// emailPattern is a basic local@domain check applied at login time.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the persistence surface the auth service depends on.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// AuthService handles signup and login business logic. Domain failures are
// returned as coded errors, never panics or raw store errors.
type AuthService struct {
	users       UserStore
	jwtSecret   string
	tokenExpiry time.Duration
	hashCost    int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration, hashCost int) *AuthService {
	return &AuthService{
		users:       users,
		jwtSecret:   secret,
		tokenExpiry: expiry,
		hashCost:    hashCost,
	}
}

// Signup creates a new user account. No token is issued here; the client
// logs in afterwards.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperror.New(apperror.CodeMissingFields,
			"All fields (name, email, password) are required")
	}

	// Pre-check for an existing account. Not atomic on its own; the unique
	// index on email is the race-safe backstop at insert time.
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return apperror.New(apperror.CodeUserExists,
			"User with this email already exists")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return apperror.Wrap(apperror.CodeServerError,
			"Internal server error occurred", err)
	}

	hash, err := crypto.HashPassword(req.Password, s.hashCost)
	if err != nil {
		return apperror.Wrap(apperror.CodeServerError,
			"Internal server error occurred", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return apperror.Wrap(apperror.CodeDuplicateEmail,
				"User with this email already exists", err)
		case errors.Is(err, repository.ErrInvalidData):
			return apperror.Wrap(apperror.CodeValidationError,
				"Invalid user data provided", err)
		default:
			return apperror.Wrap(apperror.CodeServerError,
				"Internal server error occurred", err)
		}
	}

	return nil
}

// Login authenticates a user and returns a signed 30-day bearer token.
// An unknown email and a wrong password produce the identical error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.LoginResponse{}, apperror.New(apperror.CodeMissingFields,
			"Email and password are required")
	}

	if !emailPattern.MatchString(req.Email) {
		return model.LoginResponse{}, apperror.New(apperror.CodeInvalidEmail,
			"Please provide a valid email address")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, apperror.New(apperror.CodeInvalidCredentials,
				"Invalid email or password")
		}
		return model.LoginResponse{}, apperror.Wrap(apperror.CodeServerError,
			"An error occurred during login", err)
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.LoginResponse{}, apperror.New(apperror.CodeInvalidCredentials,
			"Invalid email or password")
	}

	token, err := crypto.GenerateToken(user, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return model.LoginResponse{}, apperror.Wrap(apperror.CodeServerError,
			"An error occurred during login", err)
	}

	return model.LoginResponse{
		Message: "Login successful",
		User:    model.PublicUser(user),
		Token:   token,
	}, nil
}
