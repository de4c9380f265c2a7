package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"gatherly/internal/domain"
)

// UserService handles the user directory operations.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create registers a directory user after validating inputs.
// Emails are stored lowercased; duplicates surface domain.ErrDuplicateEmail.
func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}

	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:  strings.TrimSpace(name),
		Email: normalized,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user, validating the identifier shape first.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// Update applies a partial field set. Changing the email to one already
// used by a different user surfaces domain.ErrDuplicateEmail.
func (s *UserService) Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if update.Email != nil {
		normalized, err := normalizeEmail(*update.Email)
		if err != nil {
			return nil, err
		}
		update.Email = &normalized
	}

	return s.users.Update(ctx, id, update)
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	return normalized, nil
}
