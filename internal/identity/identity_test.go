package identity_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gatherly/internal/domain"
	"gatherly/internal/identity"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifier_RoundTrip(t *testing.T) {
	v := identity.NewVerifier("secret-a")
	token := signToken(t, "secret-a", jwt.MapClaims{
		"sub": "sub_123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	subject, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "sub_123" {
		t.Fatalf("expected sub_123, got %q", subject)
	}
}

func TestVerifier_Rejects(t *testing.T) {
	v := identity.NewVerifier("secret-a")
	future := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, "secret-b", jwt.MapClaims{"sub": "x", "exp": future})},
		{"expired", signToken(t, "secret-a", jwt.MapClaims{"sub": "x", "exp": time.Now().Add(-time.Minute).Unix()})},
		{"no subject", signToken(t, "secret-a", jwt.MapClaims{"exp": future})},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := v.Verify(tc.token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestVerifier_RejectsUnsignedAlg(t *testing.T) {
	v := identity.NewVerifier("secret-a")

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "sub_none",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := v.Verify(signed); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for alg=none, got %v", err)
	}
}

func TestClient_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key-123" {
			t.Errorf("expected bearer key, got %q", got)
		}
		switch r.URL.Path {
		case "/v1/users/sub_known":
			json.NewEncoder(w).Encode(map[string]any{
				"id":                       "sub_known",
				"first_name":               "Kay",
				"last_name":                "Known",
				"primary_email_address_id": "em_1",
				"email_addresses": []map[string]string{
					{"id": "em_0", "email_address": "old@example.com"},
					{"id": "em_1", "email_address": "kay@example.com"},
				},
			})
		case "/v1/users/sub_missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := identity.NewClient(srv.URL, "key-123")

	profile, err := client.GetUser(context.Background(), "sub_known")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if profile.DisplayName() != "Kay Known" {
		t.Fatalf("expected Kay Known, got %q", profile.DisplayName())
	}
	if profile.PrimaryEmail() != "kay@example.com" {
		t.Fatalf("expected primary email resolved by id, got %q", profile.PrimaryEmail())
	}

	if _, err := client.GetUser(context.Background(), "sub_missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := client.GetUser(context.Background(), "sub_boom"); err == nil {
		t.Fatal("expected error on provider 500")
	}
}

func TestProfile_DisplayNameFallbacks(t *testing.T) {
	cases := []struct {
		name    string
		profile identity.Profile
		want    string
	}{
		{"full name", identity.Profile{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", identity.Profile{FirstName: "Ada"}, "Ada"},
		{"username", identity.Profile{Username: "ada42"}, "ada42"},
		{"nothing", identity.Profile{}, "Unnamed User"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.profile.DisplayName(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestProfile_PrimaryEmailMissing(t *testing.T) {
	p := identity.Profile{
		PrimaryEmailAddressID: "em_gone",
		EmailAddresses:        []identity.EmailAddress{{ID: "em_1", EmailAddress: "x@x.com"}},
	}
	if got := p.PrimaryEmail(); got != "" {
		t.Fatalf("expected empty primary email, got %q", got)
	}
}
