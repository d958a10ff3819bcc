package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Handler serves the service catalog.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListModules handles GET /catalog/modules.
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.repo.Modules(r.Context())
	if err != nil {
		h.logger.Error("failed to list modules", "error", err)
		http.Error(w, "failed to list modules", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modules)
}

// ListServices handles GET /catalog/modules/{moduleID}/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "moduleID")

	services, err := h.repo.Services(r.Context(), moduleID)
	if errors.Is(err, ErrModuleNotFound) {
		http.Error(w, "unknown module", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to list services", "error", err, "module", moduleID)
		http.Error(w, "failed to list services", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(services)
}
