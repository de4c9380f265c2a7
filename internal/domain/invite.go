package domain

import (
	"context"
	"time"
)

// Invite is a dated item, optionally associated with a series.
type Invite struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	SeriesID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InviteUpdate carries a partial field set for updating an invite.
// SeriesID is tri-state: when SeriesIDSet is false the association is
// untouched; when set with a nil SeriesID the association is cleared.
type InviteUpdate struct {
	Title       *string
	Date        *time.Time
	Description *string
	SeriesID    *string
	SeriesIDSet bool
}

// InviteRepository defines persistence operations for invites.
type InviteRepository interface {
	Create(ctx context.Context, invite *Invite) error
	GetByID(ctx context.Context, id string) (*Invite, error)
	List(ctx context.Context) ([]Invite, error)
	ListBySeries(ctx context.Context, seriesID string) ([]Invite, error)
	Update(ctx context.Context, id string, update InviteUpdate) (*Invite, error)
	Delete(ctx context.Context, id string) error
}
