package events

import (
	"context"
	"errors"
	"sync"
)

// Event errors.
var (
	ErrEventNotFound = errors.New("events: event not found")
	ErrEventFull     = errors.New("events: event is at capacity")
)

// Event is a SilverCircle community gathering.
type Event struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Attendees    int    `json:"attendees"`
	MaxAttendees int    `json:"maxAttendees"`
	Category     string `json:"category"`
	Description  string `json:"description"`
}

// Repository stores community events.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id int) (Event, error)
	// Register adds one attendee, guarded by capacity.
	Register(ctx context.Context, id int) (Event, error)
	Create(ctx context.Context, ev Event) (Event, error)
	Update(ctx context.Context, ev Event) (Event, error)
	Delete(ctx context.Context, id int) error
}

// InMemoryRepository keeps events in memory, seeded with the demo calendar.
type InMemoryRepository struct {
	mu     sync.Mutex
	events []Event
	nextID int
}

// NewInMemoryRepository creates the seeded event store.
func NewInMemoryRepository() *InMemoryRepository {
	seeded := seedEvents()
	return &InMemoryRepository{events: seeded, nextID: len(seeded) + 1}
}

// List returns all events in calendar order.
func (r *InMemoryRepository) List(ctx context.Context) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

// Get returns one event.
func (r *InMemoryRepository) Get(ctx context.Context, id int) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range r.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return Event{}, ErrEventNotFound
}

// Register adds one attendee to the event if capacity allows.
func (r *InMemoryRepository) Register(ctx context.Context, id int) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ev := range r.events {
		if ev.ID != id {
			continue
		}
		if ev.Attendees >= ev.MaxAttendees {
			return Event{}, ErrEventFull
		}
		r.events[i].Attendees++
		return r.events[i], nil
	}
	return Event{}, ErrEventNotFound
}

// Create adds a new event.
func (r *InMemoryRepository) Create(ctx context.Context, ev Event) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev.ID = r.nextID
	r.nextID++
	r.events = append(r.events, ev)
	return ev, nil
}

// Update replaces an event's details, keeping its ID.
func (r *InMemoryRepository) Update(ctx context.Context, ev Event) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == ev.ID {
			r.events[i] = ev
			return ev, nil
		}
	}
	return Event{}, ErrEventNotFound
}

// Delete removes an event.
func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

var _ Repository = (*InMemoryRepository)(nil)

func seedEvents() []Event {
	return []Event{
		{ID: 1, Name: "Musical Evening with Classical Legends", Date: "2025-11-15", Time: "6:00 PM", Location: "Community Center, Sector 12", Attendees: 45, MaxAttendees: 60, Category: "Music", Description: "An evening of classical music performances"},
		{ID: 2, Name: "Art & Craft Workshop", Date: "2025-11-18", Time: "3:00 PM", Location: "Creative Studio, Downtown", Attendees: 28, MaxAttendees: 30, Category: "Art", Description: "Learn pottery and painting techniques"},
		{ID: 3, Name: "Book Club: Monthly Discussion", Date: "2025-11-20", Time: "4:00 PM", Location: "Library Hall, City Center", Attendees: 22, MaxAttendees: 40, Category: "Literature", Description: "Discussion on latest bestseller"},
		{ID: 4, Name: "Gardening Club Meet", Date: "2025-11-25", Time: "10:00 AM", Location: "Botanical Garden", Attendees: 35, MaxAttendees: 50, Category: "Gardening", Description: "Seasonal planting workshop"},
	}
}
