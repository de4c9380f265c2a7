package service

import (
	"context"
	"fmt"
	"time"

	"gatherly/internal/domain"
)

// InviteService handles invite operations.
type InviteService struct {
	invites domain.InviteRepository
	series  domain.SeriesRepository
}

// NewInviteService creates a new InviteService.
func NewInviteService(invites domain.InviteRepository, series domain.SeriesRepository) *InviteService {
	return &InviteService{invites: invites, series: series}
}

// List returns all invites.
func (s *InviteService) List(ctx context.Context) ([]domain.Invite, error) {
	return s.invites.List(ctx)
}

// GetByID retrieves an invite, validating the identifier first.
func (s *InviteService) GetByID(ctx context.Context, id string) (*domain.Invite, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.invites.GetByID(ctx, id)
}

// Create persists a new invite. A series association, when given, must
// resolve to an existing series before anything is written.
func (s *InviteService) Create(ctx context.Context, title string, date time.Time, description string, seriesID *string) (*domain.Invite, error) {
	if title == "" || date.IsZero() {
		return nil, fmt.Errorf("%w: title and date are required", domain.ErrInvalidInput)
	}

	if seriesID != nil {
		if err := s.checkSeries(ctx, *seriesID); err != nil {
			return nil, err
		}
	}

	invite := &domain.Invite{
		Title:       title,
		Date:        date,
		Description: description,
		SeriesID:    seriesID,
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("create invite: %w", err)
	}
	return invite, nil
}

// Update applies a partial field set. A non-null series association in
// the update is re-validated exactly as at creation; a null one clears
// the association without validation.
func (s *InviteService) Update(ctx context.Context, id string, update domain.InviteUpdate) (*domain.Invite, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if update.Title != nil && *update.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}
	if update.Date != nil && update.Date.IsZero() {
		return nil, fmt.Errorf("%w: date must not be empty", domain.ErrInvalidInput)
	}

	if update.SeriesIDSet && update.SeriesID != nil {
		if err := s.checkSeries(ctx, *update.SeriesID); err != nil {
			return nil, err
		}
	}

	return s.invites.Update(ctx, id, update)
}

// Delete removes the invite. The owning series' invite list is derived
// by query, so no retraction write is needed.
func (s *InviteService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.invites.Delete(ctx, id)
}

func (s *InviteService) checkSeries(ctx context.Context, seriesID string) error {
	if err := validateID(seriesID); err != nil {
		return err
	}
	if _, err := s.series.GetByID(ctx, seriesID); err != nil {
		return fmt.Errorf("series %s: %w", seriesID, err)
	}
	return nil
}
