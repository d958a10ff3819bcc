package navigation

import (
	"context"
	"errors"
	"testing"

	"github.com/parentsluxuria/wellness-platform/internal/appointments"
	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	"github.com/parentsluxuria/wellness-platform/internal/identity"
)

func newManager() *Manager {
	return NewManager(catalog.NewInMemoryRepository(), nil, nil)
}

func TestInitialStateIsLanding(t *testing.T) {
	m := newManager()

	st := m.State("sess-1")
	if st.Route != RouteLanding {
		t.Errorf("expected landing, got %q", st.Route)
	}
	if st.SelectedModule != "" || st.SelectedService != nil || st.LastBooking != nil {
		t.Errorf("expected empty selection context, got %+v", st)
	}
}

func TestParseRoute(t *testing.T) {
	for _, r := range AllRoutes() {
		got, err := ParseRoute(string(r))
		if err != nil || got != r {
			t.Errorf("ParseRoute(%q) = %q, %v", r, got, err)
		}
	}
	if _, err := ParseRoute("settings"); !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("expected ErrUnknownRoute, got %v", err)
	}
}

func TestNavigateToRejectsUnknownRoute(t *testing.T) {
	m := newManager()

	if _, err := m.NavigateTo("sess-1", Route("nowhere")); !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("expected ErrUnknownRoute, got %v", err)
	}
	if st := m.State("sess-1"); st.Route != RouteLanding {
		t.Errorf("failed navigation must not move the session, got %q", st.Route)
	}
}

func TestSelectModuleRoutesEventsForSilverCircle(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	st, err := m.SelectModule(ctx, "sess-1", catalog.ModuleSilverCircle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Route != RouteEvents {
		t.Errorf("silvercircle should route to events, got %q", st.Route)
	}
	if st.SelectedModule != "" {
		t.Errorf("silvercircle must not become the selected module, got %q", st.SelectedModule)
	}
}

func TestSelectModuleShowsServiceList(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	st, err := m.SelectModule(ctx, "sess-1", catalog.ModuleMealAura)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Route != RouteServiceList || st.SelectedModule != catalog.ModuleMealAura {
		t.Errorf("unexpected state after module select: %+v", st)
	}

	if _, err := m.SelectModule(ctx, "sess-1", "bogus"); !errors.Is(err, catalog.ErrModuleNotFound) {
		t.Errorf("expected ErrModuleNotFound, got %v", err)
	}
}

func TestBookingFunnelTransitions(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	if _, err := m.SelectModule(ctx, "sess-1", catalog.ModuleMealAura); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc := catalog.Service{ID: 1, Name: "Weekly Meal Plan", Price: "₹4,999"}
	st := m.SelectService("sess-1", svc)
	if st.Route != RouteBooking || st.SelectedService == nil || st.SelectedService.Price != "₹4,999" {
		t.Errorf("unexpected state after service select: %+v", st)
	}

	appt := appointments.Appointment{Service: "Weekly Meal Plan", Date: "1/12/2025", Time: "10:00 AM", Price: "₹4,999", Status: appointments.StatusUpcoming}
	st = m.CompleteBooking("sess-1", appt)
	if st.Route != RouteBookingSuccess || st.LastBooking == nil || st.LastBooking.Date != "1/12/2025" {
		t.Errorf("unexpected state after booking completion: %+v", st)
	}
}

func TestRedirectAfterLogin(t *testing.T) {
	m := newManager()

	if got := m.RedirectAfterLogin("sess-1", identity.RoleAdmin); got != string(RouteAdmin) {
		t.Errorf("admin should redirect to admin, got %q", got)
	}
	if got := m.RedirectAfterLogin("sess-2", identity.RoleParent); got != string(RouteDashboard) {
		t.Errorf("parent should redirect to dashboard, got %q", got)
	}
	if got := m.RedirectAfterLogin("sess-3", identity.RolePartner); got != string(RouteDashboard) {
		t.Errorf("partner should redirect to dashboard, got %q", got)
	}
}

func TestResetAfterLogoutClearsEverything(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	if _, err := m.SelectModule(ctx, "sess-1", catalog.ModuleRejuvaFit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.SelectService("sess-1", catalog.Service{ID: 1, Name: "Yoga Session (Single)", Price: "₹800"})
	m.CompleteBooking("sess-1", appointments.Appointment{Service: "Yoga Session (Single)"})

	m.ResetAfterLogout("sess-1")

	st := m.State("sess-1")
	if st.Route != RouteLanding || st.SelectedModule != "" || st.SelectedService != nil || st.LastBooking != nil {
		t.Errorf("logout must fully reset navigation, got %+v", st)
	}
}

func TestScrollResetConsumedOnce(t *testing.T) {
	m := newManager()

	if _, err := m.NavigateTo("sess-1", RouteAbout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := Resolve(m.ConsumeState("sess-1"), nil)
	if !first.ResetScroll {
		t.Error("first resolve after a transition should reset scroll")
	}
	second := Resolve(m.ConsumeState("sess-1"), nil)
	if second.ResetScroll {
		t.Error("scroll reset must be observed exactly once")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newManager()

	if _, err := m.NavigateTo("sess-a", RouteContact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if st := m.State("sess-b"); st.Route != RouteLanding {
		t.Errorf("sessions must not share state, got %q", st.Route)
	}
}
