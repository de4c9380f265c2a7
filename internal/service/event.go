package service

import (
	"context"
	"fmt"
	"time"

	"gatherly/internal/domain"
)

// EventService handles standalone calendar event operations.
type EventService struct {
	events domain.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(events domain.EventRepository) *EventService {
	return &EventService{events: events}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.events.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, title string, date time.Time, description string) (*domain.Event, error) {
	if title == "" || date.IsZero() {
		return nil, fmt.Errorf("%w: title and date are required", domain.ErrInvalidInput)
	}

	event := &domain.Event{
		Title:       title,
		Date:        date,
		Description: description,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if update.Title != nil && *update.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}

	return s.events.Update(ctx, id, update)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}
