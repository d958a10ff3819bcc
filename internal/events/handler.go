package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/internal/notify"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Handler serves the SilverCircle events calendar.
type Handler struct {
	repo    Repository
	notices *notify.Center
	logger  *logging.Logger
}

// NewHandler creates an events handler.
func NewHandler(repo Repository, notices *notify.Center, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, notices: notices, logger: logger}
}

// List handles GET /events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	evs, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, evs)
}

// Register handles POST /events/{eventID}/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	ev, err := h.repo.Register(r.Context(), id)
	switch {
	case errors.Is(err, ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrEventFull):
		http.Error(w, "event is at capacity", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("failed to register attendee", "error", err, "event_id", id)
		http.Error(w, "failed to register", http.StatusInternalServerError)
		return
	}

	if sessionID, ok := identity.SessionIDFromContext(r.Context()); ok && h.notices != nil {
		h.notices.Success(sessionID, fmt.Sprintf("Booking confirmed for %s!", ev.Name))
	}
	writeJSON(w, http.StatusOK, ev)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
