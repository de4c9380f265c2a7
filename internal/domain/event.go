package domain

import (
	"context"
	"time"
)

// Event is a standalone calendar entry, unrelated to series and invites.
type Event struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventUpdate carries a partial field set for updating an event.
type EventUpdate struct {
	Title       *string
	Date        *time.Time
	Description *string
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}
