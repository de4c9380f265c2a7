package handler

import (
	"net/http"

	"gatherly/internal/domain"
	"gatherly/internal/service"
)

// EventHandler handles event HTTP requests.
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// HandleList returns all events.
// GET /api/events
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		writeServiceError(w, "list events", err)
		return
	}
	writeJSON(w, http.StatusOK, toEventDTOs(events))
}

// HandleGet returns a single event.
// GET /api/events/{id}
func (h *EventHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "get event", err)
		return
	}
	writeJSON(w, http.StatusOK, toEventDTO(event))
}

// HandleCreate creates an event.
// POST /api/events
// Request: {"title":"...","date":"...","description":"..."}
func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Description string `json:"description"`
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

	event, err := h.events.Create(r.Context(), req.Title, date, req.Description)
	if err != nil {
		writeServiceError(w, "create event", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventDTO(event))
}

// HandleUpdate applies a partial update to an event.
// PUT /api/events/{id}
func (h *EventHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string `json:"title"`
		Date        *string `json:"date"`
		Description *string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	update := domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		update.Date = &date
	}

	event, err := h.events.Update(r.Context(), r.PathValue("id"), update)
	if err != nil {
		writeServiceError(w, "update event", err)
		return
	}
	writeJSON(w, http.StatusOK, toEventDTO(event))
}

// HandleDelete removes an event.
// DELETE /api/events/{id}
// Response: 204 No Content
func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, "delete event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
