package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"gatherly/internal/domain"
	"gatherly/internal/service"
)

type contextKey string

const (
	userContextKey      contextKey = "user"
	requestIDContextKey contextKey = "requestID"
)

// TokenVerifier validates a session token and returns the principal
// subject it asserts.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFromContext extracts the authenticated local user from the request
// context. Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that protects routes requiring an
// authenticated principal. It verifies the bearer token, runs identity
// sync so a local user row exists for the principal, and injects the
// local user into the request context.
func RequireAuth(verifier TokenVerifier, identities *service.IdentityService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		subject, err := verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		user, err := identities.EnsureUser(r.Context(), subject)
		if err != nil {
			writeServiceError(w, "sync user", err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequestID ensures each request has a request ID. It reads X-Request-ID
// if provided; otherwise it generates a UUID. The value is stored in
// context and echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), requestIDContextKey, rid)
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID, if any.
func RequestIDFromContext(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDContextKey).(string)
	return rid
}
