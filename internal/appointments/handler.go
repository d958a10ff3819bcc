package appointments

import (
	"encoding/json"
	"net/http"

	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Handler serves the family dashboard's appointment list.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates an appointments handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /appointments for the current session.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	appts, err := h.repo.ListByOwner(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to list appointments", "error", err)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(appts)
}

// Create handles POST /appointments, adding a record outside the booking
// wizard (manual additions, admin backfills).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var appt Appointment
	if err := json.NewDecoder(r.Body).Decode(&appt); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if appt.Service == "" {
		http.Error(w, "service is required", http.StatusBadRequest)
		return
	}
	if appt.Status == "" {
		appt.Status = StatusUpcoming
	}
	if !appt.Status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	added, err := h.repo.Add(r.Context(), sessionID, appt)
	if err != nil {
		h.logger.Error("failed to add appointment", "error", err)
		http.Error(w, "failed to add appointment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(added)
}
