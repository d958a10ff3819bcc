package appointments

import (
	"errors"
	"time"
)

// ErrAppointmentNotFound indicates an unknown appointment ID.
var ErrAppointmentNotFound = errors.New("appointments: appointment not found")

// Status of an appointment as shown on the family dashboard.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booked service as it appears on the family dashboard.
// Date, Time, and Price are display strings; the catalog carries prices as
// fixed labels (some include units like "/day") so no money math happens here.
type Appointment struct {
	ID        string    `json:"id"`
	Service   string    `json:"service"`
	Module    string    `json:"module"`
	Partner   string    `json:"partner"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Price     string    `json:"price"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
