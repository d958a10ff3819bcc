package navigation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Handler exposes the navigation state machine over HTTP.
type Handler struct {
	nav      *Manager
	sessions *identity.Manager
	catalog  catalog.Repository
	logger   *logging.Logger
}

// NewHandler creates a navigation handler.
func NewHandler(nav *Manager, sessions *identity.Manager, cat catalog.Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{nav: nav, sessions: sessions, catalog: cat, logger: logger}
}

// ViewResponse pairs the session's navigation state with its resolved page.
type ViewResponse struct {
	State State `json:"state"`
	Page  Page  `json:"page"`
}

// GetState handles GET /nav/state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, h.nav.State(sessionID))
}

// GetPage handles GET /nav/page, resolving the current view and consuming the
// pending scroll-reset flag.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	st := h.nav.ConsumeState(sessionID)
	writeJSON(w, http.StatusOK, Resolve(st, h.identityFor(r, sessionID)))
}

// GotoRequest names the navigation target.
type GotoRequest struct {
	Route string `json:"route"`
}

// Goto handles POST /nav/goto.
func (h *Handler) Goto(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var req GotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	route, err := ParseRoute(req.Route)
	if err != nil {
		http.Error(w, "unknown route", http.StatusBadRequest)
		return
	}

	if _, err := h.nav.NavigateTo(sessionID, route); err != nil {
		http.Error(w, "unknown route", http.StatusBadRequest)
		return
	}

	h.respondView(w, r, sessionID)
}

// SelectModuleRequest names the clicked service module.
type SelectModuleRequest struct {
	Module string `json:"module"`
}

// SelectModule handles POST /nav/select-module.
func (h *Handler) SelectModule(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var req SelectModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Module == "" {
		http.Error(w, "module is required", http.StatusBadRequest)
		return
	}

	_, err := h.nav.SelectModule(r.Context(), sessionID, req.Module)
	if errors.Is(err, catalog.ErrModuleNotFound) {
		http.Error(w, "unknown module", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to select module", "error", err, "module", req.Module)
		http.Error(w, "failed to select module", http.StatusInternalServerError)
		return
	}

	h.respondView(w, r, sessionID)
}

// SelectServiceRequest names the chosen service within the selected module.
type SelectServiceRequest struct {
	Module    string `json:"module,omitempty"`
	ServiceID int    `json:"serviceId"`
}

// SelectService handles POST /nav/select-service.
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := identity.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var req SelectServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	moduleID := req.Module
	if moduleID == "" {
		moduleID = h.nav.State(sessionID).SelectedModule
	}
	if moduleID == "" {
		http.Error(w, "no module selected", http.StatusConflict)
		return
	}

	services, err := h.catalog.Services(r.Context(), moduleID)
	if errors.Is(err, catalog.ErrModuleNotFound) {
		http.Error(w, "unknown module", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to load services", "error", err, "module", moduleID)
		http.Error(w, "failed to load services", http.StatusInternalServerError)
		return
	}

	for _, svc := range services {
		if svc.ID == req.ServiceID {
			h.nav.SelectService(sessionID, svc)
			h.respondView(w, r, sessionID)
			return
		}
	}
	http.Error(w, "unknown service", http.StatusNotFound)
}

// identityFor loads the session's identity, treating a signed-out session as
// anonymous rather than an error.
func (h *Handler) identityFor(r *http.Request, sessionID string) *identity.Identity {
	id, err := h.sessions.Identity(r.Context(), sessionID)
	if err != nil {
		return nil
	}
	return id
}

func (h *Handler) respondView(w http.ResponseWriter, r *http.Request, sessionID string) {
	st := h.nav.ConsumeState(sessionID)
	writeJSON(w, http.StatusOK, ViewResponse{
		State: st,
		Page:  Resolve(st, h.identityFor(r, sessionID)),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
