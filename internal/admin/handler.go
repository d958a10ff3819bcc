package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/parentsluxuria/wellness-platform/internal/events"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Handler serves the admin console's CRUD tables and stats tiles. Role
// enforcement happens in middleware; handlers assume an admin caller.
type Handler struct {
	store  *Store
	events events.Repository
	logger *logging.Logger
}

// NewHandler creates the admin handler. The events repository is shared with
// the public events module so both surfaces see the same calendar.
func NewHandler(store *Store, evts events.Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, events: evts, logger: logger}
}

// GetStats handles GET /admin/stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListUsers handles GET /admin/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		http.Error(w, "failed to list users", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /admin/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if u.Name == "" || u.Email == "" {
		http.Error(w, "name and email are required", http.StatusBadRequest)
		return
	}
	if u.Status == "" {
		u.Status = "Active"
	}

	created, err := h.store.CreateUser(r.Context(), u)
	if err != nil {
		h.logger.Error("failed to create user", "error", err)
		http.Error(w, "failed to create user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateUser handles PUT /admin/users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var u User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	u.ID = id

	updated, err := h.store.UpdateUser(r.Context(), u)
	h.respondRecord(w, updated, err)
}

// DeleteUser handles DELETE /admin/users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.respondDelete(w, h.store.DeleteUser(r.Context(), id))
}

// ListServices handles GET /admin/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListServices(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		http.Error(w, "failed to list services", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// CreateService handles POST /admin/services.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var row ServiceRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if row.Name == "" || row.Module == "" {
		http.Error(w, "name and module are required", http.StatusBadRequest)
		return
	}

	created, err := h.store.CreateService(r.Context(), row)
	if err != nil {
		h.logger.Error("failed to create service", "error", err)
		http.Error(w, "failed to create service", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateService handles PUT /admin/services/{id}.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var row ServiceRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	row.ID = id

	updated, err := h.store.UpdateService(r.Context(), row)
	h.respondRecord(w, updated, err)
}

// DeleteService handles DELETE /admin/services/{id}.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.respondDelete(w, h.store.DeleteService(r.Context(), id))
}

// ListBookings handles GET /admin/bookings.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListBookings(r.Context())
	if err != nil {
		h.logger.Error("failed to list bookings", "error", err)
		http.Error(w, "failed to list bookings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// CreateBooking handles POST /admin/bookings.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var b Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if b.Service == "" || b.Client == "" {
		http.Error(w, "service and client are required", http.StatusBadRequest)
		return
	}
	if b.Status == "" {
		b.Status = "Pending"
	}

	created, err := h.store.CreateBooking(r.Context(), b)
	if err != nil {
		h.logger.Error("failed to create booking", "error", err)
		http.Error(w, "failed to create booking", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBooking handles PUT /admin/bookings/{id}.
func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var b Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	b.ID = id

	updated, err := h.store.UpdateBooking(r.Context(), b)
	h.respondRecord(w, updated, err)
}

// DeleteBooking handles DELETE /admin/bookings/{id}.
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.respondDelete(w, h.store.DeleteBooking(r.Context(), id))
}

// ListEvents handles GET /admin/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	evs, err := h.events.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, evs)
}

// CreateEvent handles POST /admin/events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var ev events.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if ev.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	created, err := h.events.Create(r.Context(), ev)
	if err != nil {
		h.logger.Error("failed to create event", "error", err)
		http.Error(w, "failed to create event", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateEvent handles PUT /admin/events/{id}.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var ev events.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	ev.ID = id

	updated, err := h.events.Update(r.Context(), ev)
	if errors.Is(err, events.ErrEventNotFound) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update event", "error", err)
		http.Error(w, "failed to update event", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteEvent handles DELETE /admin/events/{id}.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.events.Delete(r.Context(), id)
	if errors.Is(err, events.ErrEventNotFound) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete event", "error", err)
		http.Error(w, "failed to delete event", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondRecord(w http.ResponseWriter, record any, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update record", "error", err)
		http.Error(w, "failed to update record", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) respondDelete(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete record", "error", err)
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
