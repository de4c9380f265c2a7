package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gatherly/internal/domain"
)

func TestEventRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	date := time.Date(2026, 11, 5, 19, 30, 0, 0, time.UTC)
	event := &domain.Event{Title: "Launch", Date: date, Description: "Release party"}
	if err := db.Events().Create(ctx, event); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := db.Events().GetByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Title != event.Title || found.Description != event.Description {
		t.Fatalf("round trip mismatch: %+v vs %+v", found, event)
	}
	if !found.Date.Equal(date) {
		t.Fatalf("expected date %v, got %v", date, found.Date)
	}
}

func TestEventRepository_Update_PartialMerge(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	event := &domain.Event{Title: "Original", Date: time.Now(), Description: "Keep me"}
	if err := db.Events().Create(ctx, event); err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "Updated"
	updated, err := db.Events().Update(ctx, event.ID, domain.EventUpdate{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Updated" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Description != "Keep me" {
		t.Fatalf("expected description untouched, got %q", updated.Description)
	}
}

func TestEventRepository_Delete_Twice(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	event := &domain.Event{Title: "Ephemeral", Date: time.Now()}
	if err := db.Events().Create(ctx, event); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Events().Delete(ctx, event.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := db.Events().Delete(ctx, event.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	if _, err := db.Events().GetByID(ctx, event.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
