package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/parentsluxuria/wellness-platform/internal/notify"
)

func TestSeededLists(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	pending, err := repo.Pending(ctx, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 || pending[0].ClientName != "Rajesh Kumar" || pending[1].ClientName != "Meera Sharma" {
		t.Errorf("unexpected pending list: %+v", pending)
	}

	accepted, err := repo.Accepted(ctx, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accepted) != 1 || accepted[0].ClientName != "Anita Patel" {
		t.Errorf("unexpected accepted list: %+v", accepted)
	}
}

func TestAcceptMovesRequestUnchanged(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	moved, err := repo.Accept(ctx, "sess-1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.Service != "Yoga Session (Single)" || moved.Price != "₹800" {
		t.Errorf("record changed during accept: %+v", moved)
	}

	pending, _ := repo.Pending(ctx, "sess-1")
	accepted, _ := repo.Accepted(ctx, "sess-1")
	if len(pending) != 1 || len(accepted) != 2 {
		t.Errorf("expected 1 pending / 2 accepted, got %d / %d", len(pending), len(accepted))
	}

	// Second accept of the same ID is not-found, never a duplicate.
	if _, err := repo.Accept(ctx, "sess-1", 1); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound on double accept, got %v", err)
	}
	accepted, _ = repo.Accepted(ctx, "sess-1")
	if len(accepted) != 2 {
		t.Errorf("double accept must not duplicate, got %d accepted", len(accepted))
	}
}

func TestDeclineRemovesFromPendingOnly(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Decline(ctx, "sess-1", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, _ := repo.Pending(ctx, "sess-1")
	accepted, _ := repo.Accepted(ctx, "sess-1")
	if len(pending) != 1 || len(accepted) != 1 {
		t.Errorf("expected 1 pending / 1 accepted after decline, got %d / %d", len(pending), len(accepted))
	}

	if _, err := repo.Decline(ctx, "sess-1", 99); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestServiceEmitsNotices(t *testing.T) {
	notices := notify.NewCenter(nil)
	svc := NewService(NewInMemoryRepository(), notices, nil, nil)
	ctx := context.Background()

	if _, err := svc.Accept(ctx, "sess-1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Decline(ctx, "sess-1", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := notices.Drain("sess-1")
	if len(got) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(got))
	}
	if got[0].Message != "Booking request accepted!" || got[0].Level != notify.LevelSuccess {
		t.Errorf("unexpected first notice: %+v", got[0])
	}
	if got[1].Message != "Booking request declined." || got[1].Level != notify.LevelInfo {
		t.Errorf("unexpected second notice: %+v", got[1])
	}
}
