package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gatherly/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given router.
// Series and invite routes require an authenticated principal; events
// and the user directory are open.
func RegisterRoutes(
	r chi.Router,
	verifier TokenVerifier,
	identities *service.IdentityService,
	events *service.EventService,
	series *service.SeriesService,
	invites *service.InviteService,
	users *service.UserService,
) {
	requireAuth := func(next http.Handler) http.Handler {
		return RequireAuth(verifier, identities, next)
	}

	r.Get("/", HandleRoot)
	r.Get("/healthz", HandleHealthz)

	eh := NewEventHandler(events)
	r.Route("/api/events", func(sr chi.Router) {
		sr.Get("/", eh.HandleList)
		sr.Post("/", eh.HandleCreate)
		sr.Get("/{id}", eh.HandleGet)
		sr.Put("/{id}", eh.HandleUpdate)
		sr.Delete("/{id}", eh.HandleDelete)
	})

	sh := NewSeriesHandler(series)
	r.Route("/api/series", func(sr chi.Router) {
		sr.Use(requireAuth)
		sr.Get("/", sh.HandleList)
		sr.Post("/", sh.HandleCreate)
		sr.Get("/{id}", sh.HandleGet)
		sr.Put("/{id}", sh.HandleUpdate)
		sr.Delete("/{id}", sh.HandleDelete)
		sr.Post("/{id}/members", sh.HandleAddMember)
		sr.Delete("/{id}/members/{userID}", sh.HandleRemoveMember)
	})

	ih := NewInviteHandler(invites)
	r.Route("/api/invites", func(sr chi.Router) {
		sr.Use(requireAuth)
		sr.Get("/", ih.HandleList)
		sr.Post("/", ih.HandleCreate)
		sr.Get("/{id}", ih.HandleGet)
		sr.Put("/{id}", ih.HandleUpdate)
		sr.Delete("/{id}", ih.HandleDelete)
	})

	uh := NewUserHandler(users)
	r.Route("/api/users", func(sr chi.Router) {
		sr.With(requireAuth).Get("/me", uh.HandleMe)
		sr.Post("/", uh.HandleCreate)
		sr.Get("/{id}", uh.HandleGet)
		sr.Put("/{id}", uh.HandleUpdate)
	})
}
