package catalog

import (
	"context"
	"errors"
	"sync"
)

// ErrModuleNotFound indicates an unknown service module ID.
var ErrModuleNotFound = errors.New("catalog: module not found")

// Module IDs for the six service categories.
const (
	ModuleCareNest     = "carenest"
	ModuleNutriScan    = "nutriscan"
	ModuleMealAura     = "mealaura"
	ModuleRejuvaFit    = "rejuvafit"
	ModuleBlissTouch   = "blisstouch"
	ModuleSilverCircle = "silvercircle"
)

// Module is one of the six service categories shown on the landing page.
// SilverCircle is the community events category and is not bookable through
// the service funnel.
type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Bookable    bool   `json:"bookable"`
}

// Service is a bookable offering inside a module. Prices are fixed display
// values, not computed amounts.
type Service struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Repository serves the module and service catalog.
type Repository interface {
	Modules(ctx context.Context) ([]Module, error)
	Services(ctx context.Context, moduleID string) ([]Service, error)
}

// InMemoryRepository serves the static demo catalog.
type InMemoryRepository struct {
	mu       sync.RWMutex
	modules  []Module
	services map[string][]Service
}

// NewInMemoryRepository creates a catalog repository seeded with the demo data.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		modules:  seedModules(),
		services: seedServices(),
	}
}

// Modules lists all service categories.
func (r *InMemoryRepository) Modules(ctx context.Context) ([]Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out, nil
}

// Services lists the offerings for one module.
func (r *InMemoryRepository) Services(ctx context.Context, moduleID string) ([]Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services, ok := r.services[moduleID]
	if !ok {
		return nil, ErrModuleNotFound
	}
	out := make([]Service, len(services))
	copy(out, services)
	return out, nil
}

var _ Repository = (*InMemoryRepository)(nil)
