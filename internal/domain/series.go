package domain

import (
	"context"
	"time"
)

// Series is an owning collection of invites with a membership list that
// controls visibility. The owner is assigned at creation, is always a
// member, and never changes afterwards.
type Series struct {
	ID          string
	Title       string
	Description string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated on reads.
	Owner   *User
	Members []User
	Invites []Invite
}

// SeriesUpdate carries a partial field set for updating a series.
// Ownership is not updatable.
type SeriesUpdate struct {
	Title       *string
	Description *string
}

// SeriesRepository defines persistence operations for series.
// All read operations return series with owner, members and invites
// populated; the invite list is derived from invites referencing the
// series, never stored on the series itself.
type SeriesRepository interface {
	// Create inserts the series and the owner's membership atomically.
	Create(ctx context.Context, series *Series) error
	GetByID(ctx context.Context, id string) (*Series, error)
	ListByMember(ctx context.Context, userID string) ([]Series, error)
	Update(ctx context.Context, id string, update SeriesUpdate) (*Series, error)
	Delete(ctx context.Context, id string) error

	// AddMember is idempotent; adding an existing member is a no-op.
	AddMember(ctx context.Context, seriesID, userID string) error
	RemoveMember(ctx context.Context, seriesID, userID string) error
	HasMember(ctx context.Context, seriesID, userID string) (bool, error)
}
