package service_test

import (
	"context"
	"errors"
	"testing"

	"gatherly/internal/domain"
	"gatherly/internal/service"
)

func TestUserService_Create_NormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())

	user, err := svc.Create(context.Background(), "Casey", "  Casey@Example.COM ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Email != "casey@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestUserService_Create_DuplicateEmailConflict(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())
	ctx := context.Background()

	first, err := svc.Create(ctx, "First", "a@x.com")
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}

	_, err = svc.Create(ctx, "Second", "a@x.com")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The first user is unaffected.
	unchanged, err := svc.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if unchanged.Name != "First" {
		t.Fatalf("expected first user untouched, got %q", unchanged.Name)
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())

	if _, err := svc.Create(context.Background(), "", "x@x.com"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "X", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "X", "not-an-email"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed email, got %v", err)
	}
}

func TestUserService_Update_EmailTakenByOther(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Taken", "taken@x.com"); err != nil {
		t.Fatalf("Create taken: %v", err)
	}
	mine, err := svc.Create(ctx, "Mine", "mine@x.com")
	if err != nil {
		t.Fatalf("Create mine: %v", err)
	}

	taken := "taken@x.com"
	_, err = svc.Update(ctx, mine.ID, domain.UserUpdate{Email: &taken})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Re-asserting your own email is not a conflict.
	own := "mine@x.com"
	if _, err := svc.Update(ctx, mine.ID, domain.UserUpdate{Email: &own}); err != nil {
		t.Fatalf("Update own email: %v", err)
	}
}

func TestUserService_GetByID_InvalidID(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db.Users())

	_, err := svc.GetByID(context.Background(), "nope")
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
