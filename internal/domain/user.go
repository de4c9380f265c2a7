package domain

import (
	"context"
	"time"
)

// User mirrors an identity-provider principal inside the application.
// Subject is the provider-issued identifier; rows are created lazily by
// identity sync on a principal's first authenticated request.
type User struct {
	ID        string
	Subject   string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries a partial field set for updating a user.
// Nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetBySubject(ctx context.Context, subject string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*User, error)
}
