package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/parentsluxuria/wellness-platform/internal/notify"
)

func newTestManager(t *testing.T) (*Manager, *notify.Center) {
	t.Helper()
	notices := notify.NewCenter(nil)
	store := NewInMemoryStore(time.Hour)
	return NewManager(NewDemoProvider(), store, notices, "test-secret", time.Hour, nil), notices
}

func TestStartSessionAndTokenRoundtrip(t *testing.T) {
	m, _ := newTestManager(t)

	sess, token, err := m.StartSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID == "" || token == "" {
		t.Fatal("expected session ID and token")
	}
	if sess.Identity != nil {
		t.Error("new session must be anonymous")
	}

	parsed, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != sess.ID {
		t.Errorf("token subject = %s, want %s", parsed, sess.ID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLoginBindsIdentityAndNotifies(t *testing.T) {
	m, notices := newTestManager(t)
	ctx := context.Background()

	sess, _, _ := m.StartSession(ctx)

	id, err := m.Login(ctx, sess.ID, "carenest@partner.com", "whatever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != RolePartner || id.ServiceType != ServiceCareNest {
		t.Errorf("unexpected identity: %+v", id)
	}

	got, err := m.Identity(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "carenest@partner.com" {
		t.Errorf("identity not persisted on session: %+v", got)
	}

	pending := notices.Drain(sess.ID)
	if len(pending) != 1 || pending[0].Level != notify.LevelSuccess {
		t.Errorf("expected one success notice, got %+v", pending)
	}
}

func TestLoginUnknownSession(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Login(context.Background(), "missing", "a@b.com", "pw")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRegisterRoles(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	sess, _, _ := m.StartSession(ctx)

	id, err := m.Register(ctx, sess.ID, "Meera Sharma", "meera@example.com", "secret12", RoleParent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != RoleParent || id.Name != "Meera Sharma" {
		t.Errorf("unexpected identity: %+v", id)
	}
	if id.ServiceType != "" {
		t.Errorf("registration must not assign a service type, got %s", id.ServiceType)
	}

	if _, err := m.Register(ctx, sess.ID, "X", "x@example.com", "secret12", RoleAdmin); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole for admin self-registration, got %v", err)
	}
}

func TestLogoutClearsIdentityKeepsSession(t *testing.T) {
	m, notices := newTestManager(t)
	ctx := context.Background()

	sess, _, _ := m.StartSession(ctx)
	if _, err := m.Login(ctx, sess.ID, "admin@demo.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notices.Clear(sess.ID)

	if err := m.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Identity(ctx, sess.ID); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated after logout, got %v", err)
	}
	// Session itself survives logout.
	if _, err := m.Session(ctx, sess.ID); err != nil {
		t.Errorf("session should outlive logout: %v", err)
	}

	pending := notices.Drain(sess.ID)
	if len(pending) != 1 || pending[0].Level != notify.LevelInfo {
		t.Errorf("expected logout info notice, got %+v", pending)
	}
}

func TestInMemoryStoreExpiry(t *testing.T) {
	store := NewInMemoryStore(time.Millisecond)
	ctx := context.Background()

	sess := &Session{ID: "s1", CreatedAt: time.Now()}
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected expiry, got %v", err)
	}
}
