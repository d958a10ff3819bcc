package partner

import (
	"context"
	"errors"
	"sync"
)

// ErrRequestNotFound indicates the booking request is not in the pending list.
// A double accept or decline lands here, which keeps both operations
// exactly-once.
var ErrRequestNotFound = errors.New("partner: booking request not found")

// BookingRequest is an incoming service request shown on the partner dashboard.
type BookingRequest struct {
	ID         int    `json:"id"`
	Service    string `json:"service"`
	ClientName string `json:"clientName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Price      string `json:"price"`
}

// Repository keeps each partner session's pending and accepted request lists.
type Repository interface {
	Pending(ctx context.Context, owner string) ([]BookingRequest, error)
	Accepted(ctx context.Context, owner string) ([]BookingRequest, error)
	// Accept moves a request from pending to accepted, record unchanged.
	Accept(ctx context.Context, owner string, id int) (BookingRequest, error)
	// Decline removes a request from pending.
	Decline(ctx context.Context, owner string, id int) (BookingRequest, error)
}

type ownerLists struct {
	pending  []BookingRequest
	accepted []BookingRequest
}

// InMemoryRepository keeps request lists in memory, seeded with the demo data
// per owner.
type InMemoryRepository struct {
	mu      sync.Mutex
	byOwner map[string]*ownerLists
}

// NewInMemoryRepository creates an empty in-memory request store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byOwner: make(map[string]*ownerLists)}
}

func (r *InMemoryRepository) ensureSeeded(owner string) *ownerLists {
	if lists, ok := r.byOwner[owner]; ok {
		return lists
	}
	lists := &ownerLists{
		pending:  seedPendingRequests(),
		accepted: seedAcceptedBookings(),
	}
	r.byOwner[owner] = lists
	return lists
}

// Pending lists the owner's pending booking requests.
func (r *InMemoryRepository) Pending(ctx context.Context, owner string) ([]BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lists := r.ensureSeeded(owner)
	out := make([]BookingRequest, len(lists.pending))
	copy(out, lists.pending)
	return out, nil
}

// Accepted lists the owner's accepted bookings.
func (r *InMemoryRepository) Accepted(ctx context.Context, owner string) ([]BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lists := r.ensureSeeded(owner)
	out := make([]BookingRequest, len(lists.accepted))
	copy(out, lists.accepted)
	return out, nil
}

// Accept moves the request from pending to accepted.
func (r *InMemoryRepository) Accept(ctx context.Context, owner string, id int) (BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lists := r.ensureSeeded(owner)
	for i, req := range lists.pending {
		if req.ID == id {
			lists.pending = append(lists.pending[:i], lists.pending[i+1:]...)
			lists.accepted = append(lists.accepted, req)
			return req, nil
		}
	}
	return BookingRequest{}, ErrRequestNotFound
}

// Decline removes the request from pending.
func (r *InMemoryRepository) Decline(ctx context.Context, owner string, id int) (BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lists := r.ensureSeeded(owner)
	for i, req := range lists.pending {
		if req.ID == id {
			lists.pending = append(lists.pending[:i], lists.pending[i+1:]...)
			return req, nil
		}
	}
	return BookingRequest{}, ErrRequestNotFound
}

var _ Repository = (*InMemoryRepository)(nil)

func seedPendingRequests() []BookingRequest {
	return []BookingRequest{
		{ID: 1, Service: "Yoga Session (Single)", ClientName: "Rajesh Kumar", Date: "2025-11-10", Time: "10:00 AM", Address: "A-123, Green Park, New Delhi", Phone: "+91 9876543210", Price: "₹800"},
		{ID: 2, Service: "Physiotherapy Session", ClientName: "Meera Sharma", Date: "2025-11-12", Time: "3:00 PM", Address: "B-456, South Extension, Delhi", Phone: "+91 9876543211", Price: "₹1,200"},
	}
}

func seedAcceptedBookings() []BookingRequest {
	return []BookingRequest{
		{ID: 3, Service: "Home Nursing (8 hours)", ClientName: "Anita Patel", Date: "2025-11-08", Time: "9:00 AM", Address: "C-789, Vasant Vihar, Delhi", Phone: "+91 9876543210", Price: "₹2,500"},
	}
}
