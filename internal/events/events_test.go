package events

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/internal/notify"
)

func TestSeededCalendar(t *testing.T) {
	repo := NewInMemoryRepository()

	evs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) != 4 {
		t.Fatalf("expected 4 seeded events, got %d", len(evs))
	}
	if evs[0].Name != "Musical Evening with Classical Legends" || evs[0].MaxAttendees != 60 {
		t.Errorf("unexpected first event: %+v", evs[0])
	}
}

func TestRegisterCapacityGuard(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	// Event 2 starts at 28/30; two registrations fill it.
	for i := 0; i < 2; i++ {
		if _, err := repo.Register(ctx, 2); err != nil {
			t.Fatalf("registration %d: %v", i, err)
		}
	}
	if _, err := repo.Register(ctx, 2); !errors.Is(err, ErrEventFull) {
		t.Errorf("expected ErrEventFull, got %v", err)
	}

	ev, _ := repo.Get(ctx, 2)
	if ev.Attendees != 30 {
		t.Errorf("capacity overrun: %d attendees", ev.Attendees)
	}

	if _, err := repo.Register(ctx, 99); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, Event{Name: "Morning Walk Group", Category: "Fitness", MaxAttendees: 25})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 5 {
		t.Errorf("expected next ID 5, got %d", created.ID)
	}

	created.Location = "Lodhi Gardens"
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := repo.Get(ctx, created.ID)
	if got.Location != "Lodhi Gardens" {
		t.Errorf("update not applied: %+v", got)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound after delete, got %v", err)
	}
}

func TestRegisterEndpointNotices(t *testing.T) {
	notices := notify.NewCenter(nil)
	handler := NewHandler(NewInMemoryRepository(), notices, nil)

	r := chi.NewRouter()
	r.Post("/events/{eventID}/register", handler.Register)

	req := httptest.NewRequest(http.MethodPost, "/events/1/register", nil)
	req = req.WithContext(identity.WithSessionID(req.Context(), "sess-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	got := notices.Drain("sess-1")
	if len(got) != 1 || got[0].Message != "Booking confirmed for Musical Evening with Classical Legends!" {
		t.Errorf("unexpected notices: %+v", got)
	}
}
