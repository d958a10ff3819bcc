package booking

import (
	"errors"
	"testing"
	"time"
)

func fixedWizard(now time.Time) *Wizard {
	wz := NewWizard()
	wz.now = func() time.Time { return now }
	return wz
}

func TestWizardHappyPath(t *testing.T) {
	now := time.Date(2025, time.November, 1, 15, 0, 0, 0, time.UTC)
	wz := fixedWizard(now)

	if wz.Step != StepDate {
		t.Fatalf("wizard must start at date selection, got %v", wz.Step)
	}

	if err := wz.SelectDate(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wz.Step != StepTime {
		t.Errorf("expected time step, got %v", wz.Step)
	}

	if err := wz.SelectTime("10:00 AM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wz.Step != StepConfirm {
		t.Errorf("expected confirmation step, got %v", wz.Step)
	}

	if got := wz.FormattedDate(); got != "1/12/2025" {
		t.Errorf("expected en-IN formatting 1/12/2025, got %q", got)
	}
}

func TestSelectDateRejectsPast(t *testing.T) {
	now := time.Date(2025, time.November, 1, 15, 0, 0, 0, time.UTC)
	wz := fixedWizard(now)

	if err := wz.SelectDate(time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrDateInPast) {
		t.Errorf("expected ErrDateInPast, got %v", err)
	}
	if wz.Step != StepDate {
		t.Errorf("failed guard must not advance the wizard, got %v", wz.Step)
	}

	// Today is allowed.
	if err := wz.SelectDate(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("booking for today should be allowed: %v", err)
	}
}

func TestSelectTimeGuards(t *testing.T) {
	now := time.Date(2025, time.November, 1, 15, 0, 0, 0, time.UTC)
	wz := fixedWizard(now)

	if err := wz.SelectTime("10:00 AM"); !errors.Is(err, ErrDateRequired) {
		t.Errorf("time before date should fail, got %v", err)
	}

	if err := wz.SelectDate(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := wz.SelectTime(""); !errors.Is(err, ErrTimeRequired) {
		t.Errorf("expected ErrTimeRequired, got %v", err)
	}
	if err := wz.SelectTime("01:00 PM"); !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("off-list slot should fail, got %v", err)
	}
	if err := wz.SelectTime("05:00 PM"); err != nil {
		t.Errorf("last offered slot should work: %v", err)
	}
}

func TestBackSemantics(t *testing.T) {
	now := time.Date(2025, time.November, 1, 15, 0, 0, 0, time.UTC)
	wz := fixedWizard(now)

	if exited := wz.Back(); !exited {
		t.Error("back from step 1 should exit the flow")
	}

	if err := wz.SelectDate(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := wz.SelectTime("09:00 AM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exited := wz.Back(); exited || wz.Step != StepTime {
		t.Errorf("back from confirmation should return to time selection, got exited=%v step=%v", exited, wz.Step)
	}
	if exited := wz.Back(); exited || wz.Step != StepDate {
		t.Errorf("back from time should return to date selection, got exited=%v step=%v", exited, wz.Step)
	}
}

func TestTimeSlotsFixedSet(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	if slots[0] != "09:00 AM" || slots[len(slots)-1] != "05:00 PM" {
		t.Errorf("unexpected slot boundaries: %v", slots)
	}
}
