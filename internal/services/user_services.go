package services

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"ChecklistAPI/internal/apperr"
	"ChecklistAPI/internal/model"
	"ChecklistAPI/internal/repository"
)

const (
	MinPasswordLen = 6
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type UserService struct {
	Users repository.UserRepository
	Cost  int // bcrypt cost
}

func NewUserService(u repository.UserRepository, cost int) *UserService {
	return &UserService{Users: u, Cost: cost}
}

func (s *UserService) validateEmail(email string) error {
	if email == "" {
		return apperr.Validation("email", "is required")
	}
	if !emailRegex.MatchString(email) {
		return apperr.Validation("email", "invalid email format")
	}
	return nil
}

func (s *UserService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return apperr.Validation("password", "must be at least 6 characters")
	}
	return nil
}

// Register creates a user from email and plaintext password. The hash
// is computed here and nowhere else; the plaintext is never stored.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Validation("email", "already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return nil, err
	}
	return s.Users.Create(ctx, email, string(hash))
}

// Login authenticates by email + password. Failures are uniform: the
// caller cannot tell an unknown email from a wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return u, nil
}
