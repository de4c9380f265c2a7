package service

import (
	"context"
	"fmt"

	"gatherly/internal/domain"
)

// SeriesService handles series and membership operations.
type SeriesService struct {
	series domain.SeriesRepository
	users  domain.UserRepository
}

// NewSeriesService creates a new SeriesService.
func NewSeriesService(series domain.SeriesRepository, users domain.UserRepository) *SeriesService {
	return &SeriesService{series: series, users: users}
}

// ListForUser returns every series the user is a member of, populated.
func (s *SeriesService) ListForUser(ctx context.Context, userID string) ([]domain.Series, error) {
	return s.series.ListByMember(ctx, userID)
}

// GetByID retrieves a populated series, validating the identifier first.
func (s *SeriesService) GetByID(ctx context.Context, id string) (*domain.Series, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.series.GetByID(ctx, id)
}

// Create creates a series owned by the given user. The owner is always
// the sole initial member; caller-supplied owner or member values are
// never honored.
func (s *SeriesService) Create(ctx context.Context, ownerID, title, description string) (*domain.Series, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	series := &domain.Series{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}
	if err := s.series.Create(ctx, series); err != nil {
		return nil, fmt.Errorf("create series: %w", err)
	}

	// Re-read for the populated representation.
	return s.series.GetByID(ctx, series.ID)
}

// Update applies a partial field set. Ownership is excluded from the
// update set unconditionally; only title and description are mutable.
func (s *SeriesService) Update(ctx context.Context, id string, update domain.SeriesUpdate) (*domain.Series, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if update.Title != nil && *update.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}
	return s.series.Update(ctx, id, update)
}

// Delete removes the series. Invites that referenced it are detached,
// not deleted.
func (s *SeriesService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.series.Delete(ctx, id)
}

// AddMember adds a user to the series member set. Idempotent.
func (s *SeriesService) AddMember(ctx context.Context, seriesID, userID string) error {
	if err := validateID(seriesID); err != nil {
		return err
	}
	if err := validateID(userID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("member user: %w", err)
	}
	return s.series.AddMember(ctx, seriesID, userID)
}

// RemoveMember removes a user from the series member set. The owner is
// always a member and cannot be removed.
func (s *SeriesService) RemoveMember(ctx context.Context, seriesID, userID string) error {
	if err := validateID(seriesID); err != nil {
		return err
	}
	if err := validateID(userID); err != nil {
		return err
	}

	series, err := s.series.GetByID(ctx, seriesID)
	if err != nil {
		return err
	}
	if series.OwnerID == userID {
		return fmt.Errorf("%w: the owner cannot be removed from a series", domain.ErrInvalidInput)
	}

	return s.series.RemoveMember(ctx, seriesID, userID)
}
