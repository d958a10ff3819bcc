package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Handler exposes the booking wizard over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a booking handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Start handles POST /booking/start.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	st, err := h.service.Start(r.Context(), sessionID)
	if errors.Is(err, ErrNoWizard) {
		http.Error(w, "no service selected", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.Error("failed to start booking", "error", err)
		http.Error(w, "failed to start booking", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, st)
}

// GetState handles GET /booking/state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	st, err := h.service.State(r.Context(), sessionID)
	if errors.Is(err, ErrNoWizard) {
		http.Error(w, "no booking in progress", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to read booking state", "error", err)
		http.Error(w, "failed to read booking state", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

// SelectDateRequest carries the date-step choice as YYYY-MM-DD.
type SelectDateRequest struct {
	Date string `json:"date"`
}

// SelectDate handles POST /booking/date.
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var req SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	st, err := h.service.SelectDate(r.Context(), sessionID, date)
	h.respondWizard(w, st, err)
}

// SelectTimeRequest carries the time-step choice.
type SelectTimeRequest struct {
	Time string `json:"time"`
}

// SelectTime handles POST /booking/time.
func (h *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var req SelectTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	st, err := h.service.SelectTime(r.Context(), sessionID, req.Time)
	h.respondWizard(w, st, err)
}

// BackResponse reports whether backing up exited the flow entirely.
type BackResponse struct {
	Exited bool         `json:"exited"`
	State  *WizardState `json:"state,omitempty"`
}

// Back handles POST /booking/back.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	st, exited, err := h.service.Back(r.Context(), sessionID)
	if errors.Is(err, ErrNoWizard) {
		http.Error(w, "no booking in progress", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to step back", "error", err)
		http.Error(w, "failed to step back", http.StatusInternalServerError)
		return
	}

	resp := BackResponse{Exited: exited}
	if !exited {
		resp.State = &st
	}
	writeJSON(w, http.StatusOK, resp)
}

// Confirm handles POST /booking/confirm.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	appt, err := h.service.Confirm(r.Context(), sessionID)
	switch {
	case errors.Is(err, ErrNoWizard):
		http.Error(w, "no booking in progress", http.StatusConflict)
	case errors.Is(err, ErrNotAtConfirm):
		http.Error(w, "confirmation step not reached", http.StatusConflict)
	case err != nil:
		h.logger.Error("failed to confirm booking", "error", err)
		http.Error(w, "failed to confirm booking", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusCreated, appt)
	}
}

func (h *Handler) respondWizard(w http.ResponseWriter, st WizardState, err error) {
	switch {
	case errors.Is(err, ErrNoWizard):
		http.Error(w, "no booking in progress", http.StatusNotFound)
	case errors.Is(err, ErrDateRequired), errors.Is(err, ErrDateInPast),
		errors.Is(err, ErrTimeRequired), errors.Is(err, ErrUnknownSlot):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case err != nil:
		h.logger.Error("booking step failed", "error", err)
		http.Error(w, "booking step failed", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, st)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
