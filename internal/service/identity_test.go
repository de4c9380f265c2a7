package service_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"gatherly/internal/domain"
	"gatherly/internal/identity"
	"gatherly/internal/repository/sqlite"
	"gatherly/internal/service"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedLocalUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Subject: "sub_" + email, Name: "Seed User", Email: email}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// stubProvider serves canned profiles in place of the identity provider.
type stubProvider struct {
	profiles map[string]*identity.Profile
	err      error
	calls    int
}

func (s *stubProvider) GetUser(ctx context.Context, subject string) (*identity.Profile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[subject]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", subject, domain.ErrNotFound)
	}
	return p, nil
}

func profileFor(subject, first, last, username, email string) *identity.Profile {
	return &identity.Profile{
		ID:                    subject,
		FirstName:             first,
		LastName:              last,
		Username:              username,
		PrimaryEmailAddressID: "em_1",
		EmailAddresses:        []identity.EmailAddress{{ID: "em_1", EmailAddress: email}},
	}
}

func TestIdentityService_EnsureUser_CreatesOnFirstSight(t *testing.T) {
	db := newTestDB(t)
	provider := &stubProvider{profiles: map[string]*identity.Profile{
		"sub_new": profileFor("sub_new", "Ada", "Lovelace", "", "Ada@Example.com"),
	}}
	svc := service.NewIdentityService(db.Users(), provider)

	user, err := svc.EnsureUser(context.Background(), "sub_new")
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if user.Name != "Ada Lovelace" {
		t.Fatalf("expected derived name, got %q", user.Name)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Subject != "sub_new" {
		t.Fatalf("expected subject preserved, got %q", user.Subject)
	}
}

func TestIdentityService_EnsureUser_Idempotent(t *testing.T) {
	db := newTestDB(t)
	provider := &stubProvider{profiles: map[string]*identity.Profile{
		"sub_twice": profileFor("sub_twice", "Grace", "Hopper", "", "grace@example.com"),
	}}
	svc := service.NewIdentityService(db.Users(), provider)
	ctx := context.Background()

	first, err := svc.EnsureUser(ctx, "sub_twice")
	if err != nil {
		t.Fatalf("first EnsureUser: %v", err)
	}
	second, err := svc.EnsureUser(ctx, "sub_twice")
	if err != nil {
		t.Fatalf("second EnsureUser: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same user, got %q and %q", first.ID, second.ID)
	}
	if provider.calls != 1 {
		t.Fatalf("expected a single provider lookup, got %d", provider.calls)
	}
}

func TestIdentityService_EnsureUser_NameFallbacks(t *testing.T) {
	db := newTestDB(t)
	provider := &stubProvider{profiles: map[string]*identity.Profile{
		"sub_handle": profileFor("sub_handle", "", "", "ghopper", "h@example.com"),
		"sub_blank":  profileFor("sub_blank", "", "", "", "b@example.com"),
	}}
	svc := service.NewIdentityService(db.Users(), provider)
	ctx := context.Background()

	user, err := svc.EnsureUser(ctx, "sub_handle")
	if err != nil {
		t.Fatalf("EnsureUser handle: %v", err)
	}
	if user.Name != "ghopper" {
		t.Fatalf("expected username fallback, got %q", user.Name)
	}

	user, err = svc.EnsureUser(ctx, "sub_blank")
	if err != nil {
		t.Fatalf("EnsureUser blank: %v", err)
	}
	if user.Name != "Unnamed User" {
		t.Fatalf("expected placeholder name, got %q", user.Name)
	}
}

func TestIdentityService_EnsureUser_MissingEmail(t *testing.T) {
	db := newTestDB(t)
	profile := profileFor("sub_noemail", "No", "Email", "", "x@example.com")
	profile.EmailAddresses = nil
	provider := &stubProvider{profiles: map[string]*identity.Profile{"sub_noemail": profile}}
	svc := service.NewIdentityService(db.Users(), provider)

	_, err := svc.EnsureUser(context.Background(), "sub_noemail")
	if !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}

	// Nothing was persisted.
	if _, err := db.Users().GetBySubject(context.Background(), "sub_noemail"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected no user row, got %v", err)
	}
}

func TestIdentityService_EnsureUser_ProviderFailure(t *testing.T) {
	db := newTestDB(t)
	provider := &stubProvider{err: errors.New("provider down")}
	svc := service.NewIdentityService(db.Users(), provider)

	_, err := svc.EnsureUser(context.Background(), "sub_any")
	if err == nil {
		t.Fatal("expected error when provider lookup fails")
	}
}

func TestIdentityService_EnsureUser_EmptySubject(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewIdentityService(db.Users(), &stubProvider{})

	_, err := svc.EnsureUser(context.Background(), "")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestIdentityService_EnsureUser_ExistingUserSkipsProvider(t *testing.T) {
	db := newTestDB(t)
	user := seedLocalUser(t, db, "existing@example.com")
	provider := &stubProvider{}
	svc := service.NewIdentityService(db.Users(), provider)

	found, err := svc.EnsureUser(context.Background(), user.Subject)
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected existing user, got %q", found.ID)
	}
	if provider.calls != 0 {
		t.Fatalf("expected no provider lookups, got %d", provider.calls)
	}
}
