package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/parentsluxuria/wellness-platform/internal/appointments"
	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	"github.com/parentsluxuria/wellness-platform/internal/navigation"
	"github.com/parentsluxuria/wellness-platform/internal/notify"
	"github.com/parentsluxuria/wellness-platform/internal/observability/metrics"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("luxuria.internal.booking")

// Service drives the per-session booking wizard. Starting requires a service
// already selected through navigation; confirming writes the appointment,
// updates navigation, and notifies the session.
type Service struct {
	mu      sync.Mutex
	wizards map[string]*Wizard

	nav     *navigation.Manager
	appts   appointments.Repository
	catalog catalog.Repository
	notices *notify.Center
	metrics *metrics.AppMetrics
	logger  *logging.Logger
}

// NewService creates the booking service.
func NewService(nav *navigation.Manager, appts appointments.Repository, cat catalog.Repository, notices *notify.Center, m *metrics.AppMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		wizards: make(map[string]*Wizard),
		nav:     nav,
		appts:   appts,
		catalog: cat,
		notices: notices,
		metrics: m,
		logger:  logger,
	}
}

// WizardState is the serializable view of a session's wizard progress.
type WizardState struct {
	Step      string           `json:"step"`
	Date      string           `json:"date,omitempty"`
	Time      string           `json:"time,omitempty"`
	Service   *catalog.Service `json:"service,omitempty"`
	TimeSlots []string         `json:"timeSlots"`
}

// Start begins a booking flow for the session's selected service.
func (s *Service) Start(ctx context.Context, sessionID string) (WizardState, error) {
	navState := s.nav.State(sessionID)
	if navState.SelectedService == nil {
		return WizardState{}, ErrNoWizard
	}

	s.mu.Lock()
	wz := NewWizard()
	s.wizards[sessionID] = wz
	s.mu.Unlock()

	s.logger.Info("booking started", "session_id", sessionID, "service", navState.SelectedService.Name)
	return s.state(wz, navState.SelectedService), nil
}

// State returns the session's wizard progress.
func (s *Service) State(ctx context.Context, sessionID string) (WizardState, error) {
	wz, err := s.wizard(sessionID)
	if err != nil {
		return WizardState{}, err
	}
	navState := s.nav.State(sessionID)
	return s.state(wz, navState.SelectedService), nil
}

// SelectDate applies the date-step choice.
func (s *Service) SelectDate(ctx context.Context, sessionID string, date time.Time) (WizardState, error) {
	wz, err := s.wizard(sessionID)
	if err != nil {
		return WizardState{}, err
	}

	s.mu.Lock()
	err = wz.SelectDate(date)
	s.mu.Unlock()
	if err != nil {
		return WizardState{}, err
	}
	return s.state(wz, s.nav.State(sessionID).SelectedService), nil
}

// SelectTime applies the time-step choice.
func (s *Service) SelectTime(ctx context.Context, sessionID string, slot string) (WizardState, error) {
	wz, err := s.wizard(sessionID)
	if err != nil {
		return WizardState{}, err
	}

	s.mu.Lock()
	err = wz.SelectTime(slot)
	s.mu.Unlock()
	if err != nil {
		return WizardState{}, err
	}
	return s.state(wz, s.nav.State(sessionID).SelectedService), nil
}

// Back steps the wizard backwards. Backing out of the first step abandons the
// flow and returns navigation to the service list.
func (s *Service) Back(ctx context.Context, sessionID string) (WizardState, bool, error) {
	wz, err := s.wizard(sessionID)
	if err != nil {
		return WizardState{}, false, err
	}

	s.mu.Lock()
	exited := wz.Back()
	if exited {
		delete(s.wizards, sessionID)
	}
	s.mu.Unlock()

	if exited {
		if _, err := s.nav.NavigateTo(sessionID, navigation.RouteServiceList); err != nil {
			return WizardState{}, true, err
		}
		return WizardState{}, true, nil
	}
	return s.state(wz, s.nav.State(sessionID).SelectedService), false, nil
}

// Confirm finishes the wizard: it builds the appointment record, prepends it
// to the session's collection, moves navigation to the success page, and
// notifies the session.
func (s *Service) Confirm(ctx context.Context, sessionID string) (appointments.Appointment, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.confirm")
	defer span.End()

	wz, err := s.wizard(sessionID)
	if err != nil {
		return appointments.Appointment{}, err
	}

	s.mu.Lock()
	if wz.Step != StepConfirm {
		s.mu.Unlock()
		return appointments.Appointment{}, ErrNotAtConfirm
	}
	date := wz.FormattedDate()
	slot := wz.Time
	s.mu.Unlock()

	navState := s.nav.State(sessionID)
	svc := navState.SelectedService
	if svc == nil {
		return appointments.Appointment{}, ErrNoWizard
	}

	appt := appointments.Appointment{
		Service: svc.Name,
		Module:  s.moduleTitle(ctx, navState.SelectedModule),
		Date:    date,
		Time:    slot,
		Price:   svc.Price,
		Status:  appointments.StatusUpcoming,
	}

	added, err := s.appts.Add(ctx, sessionID, appt)
	if err != nil {
		span.RecordError(err)
		return appointments.Appointment{}, fmt.Errorf("booking: record appointment: %w", err)
	}

	s.mu.Lock()
	delete(s.wizards, sessionID)
	s.mu.Unlock()

	s.nav.CompleteBooking(sessionID, added)
	s.metrics.ObserveBookingCompleted()
	if s.notices != nil {
		s.notices.Success(sessionID, "Booking confirmed successfully!")
	}
	s.logger.Info("booking confirmed", "session_id", sessionID, "service", added.Service, "date", added.Date, "time", added.Time)
	return added, nil
}

func (s *Service) wizard(sessionID string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wz, ok := s.wizards[sessionID]
	if !ok {
		return nil, ErrNoWizard
	}
	return wz, nil
}

func (s *Service) state(wz *Wizard, svc *catalog.Service) WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return WizardState{
		Step:      wz.Step.String(),
		Date:      wz.FormattedDate(),
		Time:      wz.Time,
		Service:   svc,
		TimeSlots: TimeSlots(),
	}
}

// moduleTitle resolves a module ID to its display title; the raw ID is used
// when the catalog cannot resolve it.
func (s *Service) moduleTitle(ctx context.Context, moduleID string) string {
	if moduleID == "" {
		return ""
	}
	modules, err := s.catalog.Modules(ctx)
	if err != nil {
		return moduleID
	}
	for _, m := range modules {
		if m.ID == moduleID {
			return m.Title
		}
	}
	return moduleID
}
