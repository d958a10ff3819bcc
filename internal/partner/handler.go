package partner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Handler serves the partner dashboard's booking request lists.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a partner handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Pending handles GET /partner/requests.
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	reqs, err := h.service.Pending(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to list pending requests", "error", err)
		http.Error(w, "failed to list requests", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, reqs)
}

// Accepted handles GET /partner/accepted.
func (h *Handler) Accepted(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	reqs, err := h.service.Accepted(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to list accepted bookings", "error", err)
		http.Error(w, "failed to list bookings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, reqs)
}

// Accept handles POST /partner/requests/{requestID}/accept.
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.service.Accept)
}

// Decline handles POST /partner/requests/{requestID}/decline.
func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.service.Decline)
}

func (h *Handler) act(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, sessionID string, id int) (BookingRequest, error)) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "requestID"))
	if err != nil {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	req, err := fn(r.Context(), sessionID, id)
	if errors.Is(err, ErrRequestNotFound) {
		http.Error(w, "request not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update booking request", "error", err, "request_id", id)
		http.Error(w, "failed to update request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
