package admin

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound indicates an unknown record ID in any admin table.
var ErrNotFound = errors.New("admin: record not found")

// User is a platform account row on the admin users table.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	JoinDate string `json:"joinDate"`
}

// ServiceRow is a catalog entry as managed from the admin console.
type ServiceRow struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Module string `json:"module"`
	Price  string `json:"price"`
	Active bool   `json:"active"`
}

// Booking is a platform-wide booking row visible to admins.
type Booking struct {
	ID      int    `json:"id"`
	Service string `json:"service"`
	Client  string `json:"client"`
	Partner string `json:"partner"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Amount  string `json:"amount"`
}

// Store keeps the admin console's tables in memory, seeded with the demo data.
type Store struct {
	mu       sync.Mutex
	users    []User
	services []ServiceRow
	bookings []Booking

	nextUserID    int
	nextServiceID int
	nextBookingID int
}

// NewStore creates the seeded admin store.
func NewStore() *Store {
	users := seedUsers()
	services := seedServices()
	bookings := seedBookings()
	return &Store{
		users:         users,
		services:      services,
		bookings:      bookings,
		nextUserID:    len(users) + 1,
		nextServiceID: len(services) + 1,
		nextBookingID: len(bookings) + 1,
	}
}

// ListUsers returns all user rows.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// CreateUser adds a user row.
func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, u)
	return u, nil
}

// UpdateUser replaces a user row, keeping its ID.
func (s *Store) UpdateUser(ctx context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// DeleteUser removes a user row.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListServices returns all service rows.
func (s *Store) ListServices(ctx context.Context) ([]ServiceRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ServiceRow, len(s.services))
	copy(out, s.services)
	return out, nil
}

// CreateService adds a service row.
func (s *Store) CreateService(ctx context.Context, row ServiceRow) (ServiceRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = s.nextServiceID
	s.nextServiceID++
	s.services = append(s.services, row)
	return row, nil
}

// UpdateService replaces a service row, keeping its ID.
func (s *Store) UpdateService(ctx context.Context, row ServiceRow) (ServiceRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == row.ID {
			s.services[i] = row
			return row, nil
		}
	}
	return ServiceRow{}, ErrNotFound
}

// DeleteService removes a service row.
func (s *Store) DeleteService(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListBookings returns all booking rows.
func (s *Store) ListBookings(ctx context.Context) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

// CreateBooking adds a booking row.
func (s *Store) CreateBooking(ctx context.Context, b Booking) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextBookingID
	s.nextBookingID++
	s.bookings = append(s.bookings, b)
	return b, nil
}

// UpdateBooking replaces a booking row, keeping its ID.
func (s *Store) UpdateBooking(ctx context.Context, b Booking) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			s.bookings[i] = b
			return b, nil
		}
	}
	return Booking{}, ErrNotFound
}

// DeleteBooking removes a booking row.
func (s *Store) DeleteBooking(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Stats summarizes the tables for the dashboard tiles.
type Stats struct {
	TotalUsers      int    `json:"totalUsers"`
	TotalBookings   int    `json:"totalBookings"`
	ActivePartners  int    `json:"activePartners"`
	PendingPartners int    `json:"pendingPartners"`
	Revenue         string `json:"revenue"`
}

// Stats computes live tile counts. Revenue stays a display figure; no money
// math happens on the string amounts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		TotalUsers:    len(s.users),
		TotalBookings: len(s.bookings),
		Revenue:       "₹2.4L",
	}
	for _, u := range s.users {
		if u.Role != "Partner" {
			continue
		}
		switch u.Status {
		case "Active":
			st.ActivePartners++
		case "Pending":
			st.PendingPartners++
		}
	}
	return st, nil
}

func seedUsers() []User {
	return []User{
		{ID: 1, Name: "Rajesh Kumar", Email: "rajesh@example.com", Role: "Parent", Status: "Active", JoinDate: "2025-10-15"},
		{ID: 2, Name: "Meera Sharma", Email: "meera@example.com", Role: "Parent", Status: "Active", JoinDate: "2025-10-20"},
		{ID: 3, Name: "Dr. Anita Verma", Email: "anita@example.com", Role: "Partner", Status: "Active", JoinDate: "2025-10-12"},
		{ID: 4, Name: "Yoga Studio Plus", Email: "yoga@example.com", Role: "Partner", Status: "Pending", JoinDate: "2025-11-05"},
		{ID: 5, Name: "Suresh Patel", Email: "suresh@example.com", Role: "Parent", Status: "Active", JoinDate: "2025-11-01"},
	}
}

func seedServices() []ServiceRow {
	return []ServiceRow{
		{ID: 1, Name: "Yoga Session (Single)", Module: "RejuvaFit", Price: "₹800", Active: true},
		{ID: 2, Name: "Full Body Checkup", Module: "NutriScan", Price: "₹3,999", Active: true},
		{ID: 3, Name: "Home Nursing (8 hours)", Module: "CareNest", Price: "₹2,500", Active: true},
		{ID: 4, Name: "Weekly Meal Plan", Module: "MealAura", Price: "₹1,500", Active: true},
		{ID: 5, Name: "Spa & Massage", Module: "BlissTouch", Price: "₹1,800", Active: false},
	}
}

func seedBookings() []Booking {
	return []Booking{
		{ID: 1, Service: "Yoga Session", Client: "Rajesh Kumar", Partner: "Yoga Studio Plus", Date: "2025-11-12", Status: "Confirmed", Amount: "₹800"},
		{ID: 2, Service: "Full Body Checkup", Client: "Meera Sharma", Partner: "Dr. Anita Verma", Date: "2025-11-15", Status: "Pending", Amount: "₹3,999"},
		{ID: 3, Service: "Home Nursing", Client: "Suresh Patel", Partner: "CareNest Services", Date: "2025-11-08", Status: "Completed", Amount: "₹2,500"},
		{ID: 4, Service: "Physiotherapy", Client: "Rajesh Kumar", Partner: "RejuvaFit Clinic", Date: "2025-11-10", Status: "Confirmed", Amount: "₹1,200"},
		{ID: 5, Service: "Meal Planning", Client: "Meera Sharma", Partner: "MealAura Chef", Date: "2025-11-14", Status: "Pending", Amount: "₹1,500"},
	}
}
