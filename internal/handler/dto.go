package handler

import (
	"encoding/json"
	"time"

	"gatherly/internal/domain"
)

// Nullable distinguishes an absent JSON field from an explicit null.
// UnmarshalJSON only runs when the key is present, so Set reports
// presence and Value carries the decoded value (nil for null).
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        string `json:"id"`
	Subject   string `json:"subject,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Subject:   u.Subject,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// EventDTO is the JSON representation of an event.
type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toEventDTO(e *domain.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format(time.RFC3339),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func toEventDTOs(events []domain.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i := range events {
		dtos[i] = toEventDTO(&events[i])
	}
	return dtos
}

// InviteDTO is the JSON representation of an invite.
type InviteDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	SeriesID    *string `json:"seriesId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toInviteDTO(i *domain.Invite) InviteDTO {
	return InviteDTO{
		ID:          i.ID,
		Title:       i.Title,
		Date:        i.Date.Format(time.RFC3339),
		Description: i.Description,
		SeriesID:    i.SeriesID,
		CreatedAt:   i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   i.UpdatedAt.Format(time.RFC3339),
	}
}

func toInviteDTOs(invites []domain.Invite) []InviteDTO {
	dtos := make([]InviteDTO, len(invites))
	for i := range invites {
		dtos[i] = toInviteDTO(&invites[i])
	}
	return dtos
}

// SeriesDTO is the JSON representation of a series with its owner,
// members and invites resolved.
type SeriesDTO struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Owner       UserDTO     `json:"owner"`
	Members     []UserDTO   `json:"members"`
	Invites     []InviteDTO `json:"invites"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

func toSeriesDTO(s *domain.Series) SeriesDTO {
	return SeriesDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Owner:       toUserDTO(s.Owner),
		Members:     toUserDTOs(s.Members),
		Invites:     toInviteDTOs(s.Invites),
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

func toSeriesDTOs(series []domain.Series) []SeriesDTO {
	dtos := make([]SeriesDTO, len(series))
	for i := range series {
		dtos[i] = toSeriesDTO(&series[i])
	}
	return dtos
}

// parseDate accepts an RFC3339 timestamp or a plain date.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
