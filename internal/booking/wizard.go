package booking

import (
	"errors"
	"time"
)

// Wizard errors. All are user-correctable guard failures except
// ErrNoWizard, which means no booking flow is in progress.
var (
	ErrNoWizard      = errors.New("booking: no booking in progress")
	ErrDateRequired  = errors.New("booking: a date must be selected first")
	ErrDateInPast    = errors.New("booking: date cannot be in the past")
	ErrTimeRequired  = errors.New("booking: a time slot must be selected first")
	ErrUnknownSlot   = errors.New("booking: time must be one of the offered slots")
	ErrNotAtConfirm  = errors.New("booking: confirmation step not reached")
	ErrWizardExpired = errors.New("booking: booking flow was abandoned")
)

// Step is the wizard position. The order is fixed: date, time, confirmation.
type Step int

const (
	StepDate Step = iota + 1
	StepTime
	StepConfirm
)

// String names the step for logs and responses.
func (s Step) String() string {
	switch s {
	case StepDate:
		return "date-selection"
	case StepTime:
		return "time-selection"
	case StepConfirm:
		return "confirmation"
	}
	return "unknown"
}

// timeSlots is the fixed set of offered appointment times.
var timeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

// TimeSlots returns the offered appointment times.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func validSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Wizard holds one session's progress through the booking steps.
type Wizard struct {
	Step Step
	Date time.Time
	Time string

	now func() time.Time
}

// NewWizard starts a booking flow at the date step.
func NewWizard() *Wizard {
	return &Wizard{Step: StepDate, now: time.Now}
}

// SelectDate stores the chosen date and advances to time selection.
// Past dates are rejected; today is allowed.
func (wz *Wizard) SelectDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateRequired
	}
	today := wz.now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return ErrDateInPast
	}
	wz.Date = date
	wz.Step = StepTime
	return nil
}

// SelectTime stores the chosen slot and advances to confirmation.
func (wz *Wizard) SelectTime(slot string) error {
	if wz.Step < StepTime {
		return ErrDateRequired
	}
	if slot == "" {
		return ErrTimeRequired
	}
	if !validSlot(slot) {
		return ErrUnknownSlot
	}
	wz.Time = slot
	wz.Step = StepConfirm
	return nil
}

// Back decrements the step. It reports whether the flow was exited entirely,
// which happens when backing out of step 1.
func (wz *Wizard) Back() (exited bool) {
	if wz.Step <= StepDate {
		return true
	}
	wz.Step--
	return false
}

// FormattedDate renders the selected date the way the confirmation page and
// booking record show it: en-IN day/month/year without zero padding.
func (wz *Wizard) FormattedDate() string {
	if wz.Date.IsZero() {
		return ""
	}
	return wz.Date.Format("2/1/2006")
}
