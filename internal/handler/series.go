package handler

import (
	"net/http"

	"gatherly/internal/domain"
	"gatherly/internal/service"
)

// SeriesHandler handles series HTTP requests. All routes require an
// authenticated principal; the local user comes from the request context.
type SeriesHandler struct {
	series *service.SeriesService
}

// NewSeriesHandler creates a new SeriesHandler.
func NewSeriesHandler(series *service.SeriesService) *SeriesHandler {
	return &SeriesHandler{series: series}
}

// HandleList returns all series the authenticated user is a member of.
// GET /api/series
func (h *SeriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	series, err := h.series.ListForUser(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "list series", err)
		return
	}
	writeJSON(w, http.StatusOK, toSeriesDTOs(series))
}

// HandleGet returns a single populated series.
// GET /api/series/{id}
func (h *SeriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	series, err := h.series.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get series", err)
		return
	}
	writeJSON(w, http.StatusOK, toSeriesDTO(series))
}

// HandleCreate creates a series owned by the authenticated user.
// Owner and members in the request body are ignored; the server assigns
// both.
// POST /api/series
// Request: {"title":"...","description":"..."}
func (h *SeriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Series title is required")
		return
	}

	series, err := h.series.Create(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, "create series", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSeriesDTO(series))
}

// HandleUpdate applies a partial update. The owner field is excluded
// from the update set regardless of the payload.
// PUT /api/series/{id}
func (h *SeriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		// Owner and members are deliberately not decoded.
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	series, err := h.series.Update(r.Context(), r.PathValue("id"), domain.SeriesUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, "update series", err)
		return
	}
	writeJSON(w, http.StatusOK, toSeriesDTO(series))
}

// HandleDelete removes a series. Its invites are detached, not deleted.
// DELETE /api/series/{id}
func (h *SeriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.series.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, "delete series", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Series deleted successfully"})
}

// HandleAddMember adds a user to the series member set.
// POST /api/series/{id}/members
// Request: {"userId":"..."}
func (h *SeriesHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	seriesID := r.PathValue("id")
	if err := h.series.AddMember(r.Context(), seriesID, req.UserID); err != nil {
		writeServiceError(w, "add series member", err)
		return
	}

	series, err := h.series.GetByID(r.Context(), seriesID)
	if err != nil {
		writeServiceError(w, "get series after member add", err)
		return
	}
	writeJSON(w, http.StatusOK, toSeriesDTO(series))
}

// HandleRemoveMember removes a user from the series member set. The
// owner cannot be removed.
// DELETE /api/series/{id}/members/{userID}
func (h *SeriesHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	err := h.series.RemoveMember(r.Context(), r.PathValue("id"), r.PathValue("userID"))
	if err != nil {
		writeServiceError(w, "remove series member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
