package navigation

import (
	"context"
	"fmt"
	"sync"

	"github.com/parentsluxuria/wellness-platform/internal/appointments"
	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/internal/observability/metrics"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// State is a session's complete navigation state: the current route plus the
// selection context carried through the booking funnel. It is owned by the
// Manager; callers receive copies and route every mutation through Manager
// methods.
type State struct {
	Route           Route                     `json:"route"`
	SelectedModule  string                    `json:"selectedModule,omitempty"`
	SelectedService *catalog.Service          `json:"selectedService,omitempty"`
	LastBooking     *appointments.Appointment `json:"lastBooking,omitempty"`

	// scrollPending marks that a transition happened since the page was last
	// resolved, so the next resolved view carries the scroll-reset flag.
	scrollPending bool
}

// Manager owns per-session navigation state. All transitions are synchronous
// in-memory mutations; guards live in page resolution, not here.
type Manager struct {
	mu      sync.Mutex
	states  map[string]*State
	catalog catalog.Repository
	metrics *metrics.AppMetrics
	logger  *logging.Logger
}

// NewManager creates a navigation manager.
func NewManager(cat catalog.Repository, m *metrics.AppMetrics, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{
		states:  make(map[string]*State),
		catalog: cat,
		metrics: m,
		logger:  logger,
	}
}

// stateFor returns the session's live state, creating it at the landing route.
// Callers must hold the lock.
func (m *Manager) stateFor(sessionID string) *State {
	st, ok := m.states[sessionID]
	if !ok {
		st = &State{Route: RouteLanding}
		m.states[sessionID] = st
	}
	return st
}

// State returns a copy of the session's navigation state.
func (m *Manager) State(sessionID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.stateFor(sessionID)
}

// ConsumeState returns a copy of the session's state and clears the pending
// scroll-reset flag, so each transition's reset is observed exactly once.
func (m *Manager) ConsumeState(sessionID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.stateFor(sessionID)
	out := *st
	st.scrollPending = false
	return out
}

// transition applies fn to the session's state and records the side effects
// every transition shares. Callers must not hold the lock.
func (m *Manager) transition(sessionID string, fn func(st *State)) State {
	m.mu.Lock()
	st := m.stateFor(sessionID)
	fn(st)
	st.scrollPending = true
	out := *st
	m.mu.Unlock()

	m.metrics.ObserveNavigation(string(out.Route))
	m.logger.Debug("navigation", "session_id", sessionID, "route", out.Route)
	return out
}

// NavigateTo moves the session to the given route. Selection context is kept;
// guards are applied at page resolution, never here.
func (m *Manager) NavigateTo(sessionID string, route Route) (State, error) {
	if !route.Valid() {
		return State{}, ErrUnknownRoute
	}
	return m.transition(sessionID, func(st *State) {
		st.Route = route
	}), nil
}

// SelectModule handles a service module card click. The events module routes
// straight to the events page; every other module becomes the selected module
// and shows its service list.
func (m *Manager) SelectModule(ctx context.Context, sessionID, moduleID string) (State, error) {
	if moduleID == catalog.ModuleSilverCircle {
		return m.transition(sessionID, func(st *State) {
			st.Route = RouteEvents
		}), nil
	}

	if _, err := m.catalog.Services(ctx, moduleID); err != nil {
		return State{}, fmt.Errorf("navigation: select module: %w", err)
	}
	return m.transition(sessionID, func(st *State) {
		st.SelectedModule = moduleID
		st.Route = RouteServiceList
	}), nil
}

// SelectService stores the chosen service and enters the booking flow.
func (m *Manager) SelectService(sessionID string, svc catalog.Service) State {
	return m.transition(sessionID, func(st *State) {
		st.SelectedService = &svc
		st.Route = RouteBooking
	})
}

// CompleteBooking records the finished booking and shows the success page.
func (m *Manager) CompleteBooking(sessionID string, appt appointments.Appointment) State {
	return m.transition(sessionID, func(st *State) {
		st.LastBooking = &appt
		st.Route = RouteBookingSuccess
	})
}

// RedirectAfterLogin moves the session to its post-login route: admin goes to
// the admin console, everyone else to the dashboard.
func (m *Manager) RedirectAfterLogin(sessionID string, role identity.Role) string {
	target := RouteDashboard
	if role == identity.RoleAdmin {
		target = RouteAdmin
	}
	st := m.transition(sessionID, func(st *State) {
		st.Route = target
	})
	return string(st.Route)
}

// ResetAfterLogout returns the session to the landing page and clears the
// selection context.
func (m *Manager) ResetAfterLogout(sessionID string) {
	m.transition(sessionID, func(st *State) {
		st.Route = RouteLanding
		st.SelectedModule = ""
		st.SelectedService = nil
		st.LastBooking = nil
	})
}

var _ identity.SessionNavigator = (*Manager)(nil)
