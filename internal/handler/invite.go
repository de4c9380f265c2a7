package handler

import (
	"net/http"

	"gatherly/internal/domain"
	"gatherly/internal/service"
)

// InviteHandler handles invite HTTP requests.
type InviteHandler struct {
	invites *service.InviteService
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(invites *service.InviteService) *InviteHandler {
	return &InviteHandler{invites: invites}
}

// HandleList returns all invites.
// GET /api/invites
func (h *InviteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invites, err := h.invites.List(r.Context())
	if err != nil {
		writeServiceError(w, "list invites", err)
		return
	}
	writeJSON(w, http.StatusOK, toInviteDTOs(invites))
}

// HandleGet returns a single invite.
// GET /api/invites/{id}
func (h *InviteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	invite, err := h.invites.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get invite", err)
		return
	}
	writeJSON(w, http.StatusOK, toInviteDTO(invite))
}

// HandleCreate creates an invite, optionally associated to a series.
// An unknown series fails the request before anything is persisted.
// POST /api/invites
// Request: {"title":"...","date":"...","description":"...","seriesId":"..."}
func (h *InviteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string  `json:"title"`
		Date        string  `json:"date"`
		Description string  `json:"description"`
		SeriesID    *string `json:"seriesId"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Title == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: title and/or date")
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	invite, err := h.invites.Create(r.Context(), req.Title, date, req.Description, req.SeriesID)
	if err != nil {
		writeServiceError(w, "create invite", err)
		return
	}
	writeJSON(w, http.StatusCreated, toInviteDTO(invite))
}

// HandleUpdate applies a partial update. A seriesId present in the
// payload is re-validated; an explicit null clears the association.
// PUT /api/invites/{id}
func (h *InviteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string          `json:"title"`
		Date        *string          `json:"date"`
		Description *string          `json:"description"`
		SeriesID    Nullable[string] `json:"seriesId"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	update := domain.InviteUpdate{
		Title:       req.Title,
		Description: req.Description,
		SeriesID:    req.SeriesID.Value,
		SeriesIDSet: req.SeriesID.Set,
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		update.Date = &date
	}

	invite, err := h.invites.Update(r.Context(), r.PathValue("id"), update)
	if err != nil {
		writeServiceError(w, "update invite", err)
		return
	}
	writeJSON(w, http.StatusOK, toInviteDTO(invite))
}

// HandleDelete removes an invite.
// DELETE /api/invites/{id}
// Response: 204 No Content
func (h *InviteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.invites.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, "delete invite", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
