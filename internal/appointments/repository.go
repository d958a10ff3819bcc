package appointments

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository stores appointments keyed by the owning session or account.
type Repository interface {
	// ListByOwner returns the owner's appointments, newest booking first.
	ListByOwner(ctx context.Context, owner string) ([]Appointment, error)
	// Add records a new appointment at the head of the owner's list.
	Add(ctx context.Context, owner string, appt Appointment) (Appointment, error)
}

// InMemoryRepository keeps appointments in memory. Each owner starts with the
// demo history so the dashboard is never empty.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]Appointment
}

// NewInMemoryRepository creates an empty in-memory appointment store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byOwner: make(map[string][]Appointment)}
}

// ListByOwner returns the owner's appointments, newest first.
func (r *InMemoryRepository) ListByOwner(ctx context.Context, owner string) ([]Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appts := r.ensureSeeded(owner)
	out := make([]Appointment, len(appts))
	copy(out, appts)
	return out, nil
}

// Add prepends a new appointment to the owner's list.
func (r *InMemoryRepository) Add(ctx context.Context, owner string, appt Appointment) (Appointment, error) {
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	appts := r.ensureSeeded(owner)
	r.byOwner[owner] = append([]Appointment{appt}, appts...)
	return appt, nil
}

// ensureSeeded lazily seeds an owner with the demo history. Callers must hold
// the write lock.
func (r *InMemoryRepository) ensureSeeded(owner string) []Appointment {
	if appts, ok := r.byOwner[owner]; ok {
		return appts
	}
	seeded := seedAppointments()
	r.byOwner[owner] = seeded
	return seeded
}

var _ Repository = (*InMemoryRepository)(nil)

func seedAppointments() []Appointment {
	base := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	return []Appointment{
		{ID: uuid.NewString(), Service: "Yoga Session (Single)", Date: "2025-11-12", Time: "10:00 AM", Price: "₹800", Status: StatusUpcoming, Module: "RejuvaFit", Partner: "Yoga Studio Plus", CreatedAt: base.Add(5 * time.Hour)},
		{ID: uuid.NewString(), Service: "Full Body Checkup", Date: "2025-11-15", Time: "9:00 AM", Price: "₹3,999", Status: StatusUpcoming, Module: "NutriScan", Partner: "HealthCare Diagnostics", CreatedAt: base.Add(4 * time.Hour)},
		{ID: uuid.NewString(), Service: "Home Nursing (8 hours)", Date: "2025-10-20", Time: "8:00 AM", Price: "₹2,500", Status: StatusCompleted, Module: "CareNest", Partner: "CareNest Services", CreatedAt: base.Add(3 * time.Hour)},
		{ID: uuid.NewString(), Service: "Weekly Meal Plan - Diabetic Friendly", Date: "2025-11-18", Time: "11:00 AM", Price: "₹1,500", Status: StatusUpcoming, Module: "MealAura", Partner: "MealAura Chef Services", CreatedAt: base.Add(2 * time.Hour)},
		{ID: uuid.NewString(), Service: "Head & Shoulder Massage", Date: "2025-11-20", Time: "2:00 PM", Price: "₹1,200", Status: StatusUpcoming, Module: "BlissTouch", Partner: "Serenity Spa & Wellness", CreatedAt: base.Add(time.Hour)},
		{ID: uuid.NewString(), Service: "Physiotherapy Session", Date: "2025-10-15", Time: "3:00 PM", Price: "₹1,200", Status: StatusCompleted, Module: "RejuvaFit", Partner: "RejuvaFit Clinic", CreatedAt: base},
	}
}
