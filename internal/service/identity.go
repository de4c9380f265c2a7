package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gatherly/internal/domain"
	"gatherly/internal/identity"
)

// ProfileProvider fetches user profiles from the identity provider.
type ProfileProvider interface {
	GetUser(ctx context.Context, subject string) (*identity.Profile, error)
}

// IdentityService reconciles externally authenticated principals with
// local user records.
type IdentityService struct {
	users    domain.UserRepository
	provider ProfileProvider
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(users domain.UserRepository, provider ProfileProvider) *IdentityService {
	return &IdentityService{users: users, provider: provider}
}

// EnsureUser returns the local user for the given principal subject,
// creating it on first sight. The lookup-then-insert is not transactional;
// a losing concurrent insert surfaces domain.ErrDuplicateSubject, which
// callers map to a conflict, never a server error. Repeated sequential
// calls with the same subject find the existing row.
func (s *IdentityService) EnsureUser(ctx context.Context, subject string) (*domain.User, error) {
	if subject == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetBySubject(ctx, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup user by subject: %w", err)
	}

	// First sight of this principal: pull the profile from the provider.
	// Provider failures fail the whole request; there is no retry.
	profile, err := s.provider.GetUser(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("fetch profile for %s: %w", subject, err)
	}

	email := profile.PrimaryEmail()
	if email == "" {
		return nil, fmt.Errorf("%w: subject %s", domain.ErrMissingEmail, subject)
	}

	user = &domain.User{
		Subject: subject,
		Name:    profile.DisplayName(),
		Email:   strings.ToLower(strings.TrimSpace(email)),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
