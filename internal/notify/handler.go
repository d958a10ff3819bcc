package notify

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// SessionResolver extracts the session ID placed on the request context by the
// auth middleware. Injected to keep this package free of session internals.
type SessionResolver func(ctx context.Context) (string, bool)

// Handler exposes the per-session notice feed: a polling drain and a live
// websocket stream.
type Handler struct {
	center  *Center
	hub     *StreamHub
	session SessionResolver
	logger  *logging.Logger
}

// NewHandler creates the notifications handler.
func NewHandler(center *Center, hub *StreamHub, session SessionResolver, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{center: center, hub: hub, session: session, logger: logger}
}

// Drain handles GET /notifications: it returns and clears the session's
// pending notices.
func (h *Handler) Drain(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	notices := h.center.Drain(sessionID)
	if notices == nil {
		notices = []Notice{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(notices)
}

// Stream handles GET /notifications/stream, upgrading to a websocket that
// receives notices as they are pushed.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}
	if h.hub == nil {
		http.Error(w, "streaming disabled", http.StatusNotImplemented)
		return
	}
	h.hub.Serve(w, r, sessionID)
}
