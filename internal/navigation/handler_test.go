package navigation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	"github.com/parentsluxuria/wellness-platform/internal/identity"
)

func newTestHandler(t *testing.T) (*Handler, *identity.Manager) {
	t.Helper()
	sessions := identity.NewManager(identity.NewDemoProvider(), identity.NewInMemoryStore(0), nil, "test-secret", 0, nil)
	cat := catalog.NewInMemoryRepository()
	nav := NewManager(cat, nil, nil)
	return NewHandler(nav, sessions, cat, nil), sessions
}

func doJSON(t *testing.T, fn http.HandlerFunc, sessionID, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req = req.WithContext(identity.WithSessionID(req.Context(), sessionID))
	w := httptest.NewRecorder()
	fn(w, req)
	return w
}

func startSession(t *testing.T, sessions *identity.Manager) string {
	t.Helper()
	sess, _, err := sessions.StartSession(context.Background())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return sess.ID
}

func TestGotoEndpoint(t *testing.T) {
	h, sessions := newTestHandler(t)
	sessionID := startSession(t, sessions)

	w := doJSON(t, h.Goto, sessionID, http.MethodPost, "/nav/goto", GotoRequest{Route: "about"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var view ViewResponse
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.State.Route != RouteAbout || view.Page.Kind != PageAbout {
		t.Errorf("unexpected view: %+v", view)
	}
	if !view.Page.ResetScroll {
		t.Error("transition response should carry the scroll reset")
	}

	w = doJSON(t, h.Goto, sessionID, http.MethodPost, "/nav/goto", GotoRequest{Route: "nowhere"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown route, got %d", w.Code)
	}
}

func TestSelectModuleEndpoint(t *testing.T) {
	h, sessions := newTestHandler(t)
	sessionID := startSession(t, sessions)

	w := doJSON(t, h.SelectModule, sessionID, http.MethodPost, "/nav/select-module", SelectModuleRequest{Module: catalog.ModuleSilverCircle})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view ViewResponse
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.State.Route != RouteEvents || view.Page.Kind != PageEvents {
		t.Errorf("silvercircle should land on events, got %+v", view)
	}

	w = doJSON(t, h.SelectModule, sessionID, http.MethodPost, "/nav/select-module", SelectModuleRequest{Module: "bogus"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown module, got %d", w.Code)
	}
}

func TestSelectServiceEndpoint(t *testing.T) {
	h, sessions := newTestHandler(t)
	sessionID := startSession(t, sessions)

	if _, err := sessions.Login(context.Background(), sessionID, "rajesh@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	w := doJSON(t, h.SelectService, sessionID, http.MethodPost, "/nav/select-service", SelectServiceRequest{ServiceID: 1})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 without a selected module, got %d", w.Code)
	}

	doJSON(t, h.SelectModule, sessionID, http.MethodPost, "/nav/select-module", SelectModuleRequest{Module: catalog.ModuleMealAura})

	w = doJSON(t, h.SelectService, sessionID, http.MethodPost, "/nav/select-service", SelectServiceRequest{ServiceID: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var view ViewResponse
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Page.Kind != PageBookingFlow || view.Page.Service == nil || view.Page.Service.Price != "₹4,999" {
		t.Errorf("unexpected booking view: %+v", view.Page)
	}

	w = doJSON(t, h.SelectService, sessionID, http.MethodPost, "/nav/select-service", SelectServiceRequest{ServiceID: 42})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown service, got %d", w.Code)
	}
}

func TestGetPageConsumesScrollFlag(t *testing.T) {
	h, sessions := newTestHandler(t)
	sessionID := startSession(t, sessions)

	doJSON(t, h.Goto, sessionID, http.MethodPost, "/nav/goto", GotoRequest{Route: "contact"})

	w := doJSON(t, h.GetPage, sessionID, http.MethodGet, "/nav/page", nil)
	var page Page
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Kind != PageContact || page.ResetScroll {
		t.Errorf("re-reading the page must not reset scroll again: %+v", page)
	}
}
