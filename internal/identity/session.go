package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/parentsluxuria/wellness-platform/internal/notify"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Manager owns session lifecycle: anonymous session creation, login, register,
// logout, and the signed tokens that reference sessions from the outside.
//
// None of the transitions here can fail for business reasons: the auth provider
// is a demonstration shim and always succeeds. Errors surface only for unknown
// sessions or malformed input.
type Manager struct {
	provider AuthProvider
	store    Store
	notices  *notify.Center
	secret   []byte
	ttl      time.Duration
	logger   *logging.Logger
}

// NewManager creates a session manager.
func NewManager(provider AuthProvider, store Store, notices *notify.Center, secret string, ttl time.Duration, logger *logging.Logger) *Manager {
	if provider == nil {
		panic("identity: auth provider required")
	}
	if store == nil {
		panic("identity: session store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		provider: provider,
		store:    store,
		notices:  notices,
		secret:   []byte(secret),
		ttl:      ttl,
		logger:   logger,
	}
}

// StartSession creates an anonymous session and returns it with its token.
func (m *Manager) StartSession(ctx context.Context) (*Session, string, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("identity: start session: %w", err)
	}

	token, err := m.IssueToken(sess.ID)
	if err != nil {
		return nil, "", err
	}

	m.logger.Info("session started", "session_id", sess.ID)
	return sess, token, nil
}

// Login authenticates the credentials and binds the resulting identity to the
// session. The demo provider never rejects, so the only failure mode is an
// unknown session.
func (m *Manager) Login(ctx context.Context, sessionID, email, password string) (*Identity, error) {
	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	id, err := m.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("identity: authenticate: %w", err)
	}

	sess.Identity = id
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("identity: save session: %w", err)
	}

	if m.notices != nil {
		m.notices.Success(sessionID, fmt.Sprintf("Welcome back, %s!", id.Name))
	}
	m.logger.Info("login", "session_id", sessionID, "email", id.Email, "role", id.Role, "service_type", id.ServiceType)
	return id, nil
}

// Register creates an identity with the given role and signs the session in.
// Only parent and partner self-registration is allowed.
func (m *Manager) Register(ctx context.Context, sessionID, name, email, password string, role Role) (*Identity, error) {
	if role != RoleParent && role != RolePartner {
		return nil, ErrInvalidRole
	}

	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	id := &Identity{
		Name:  name,
		Email: email,
		Role:  role,
	}
	sess.Identity = id
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("identity: save session: %w", err)
	}

	if m.notices != nil {
		m.notices.Success(sessionID, fmt.Sprintf("Account created successfully! Welcome, %s!", name))
	}
	m.logger.Info("register", "session_id", sessionID, "email", email, "role", role)
	return id, nil
}

// Logout clears the identity while keeping the session itself alive.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	sess.Identity = nil
	if err := m.store.Put(ctx, sess); err != nil {
		return fmt.Errorf("identity: save session: %w", err)
	}

	if m.notices != nil {
		m.notices.Info(sessionID, "You have been logged out.")
	}
	m.logger.Info("logout", "session_id", sessionID)
	return nil
}

// Identity returns the signed-in identity for the session.
func (m *Manager) Identity(ctx context.Context, sessionID string) (*Identity, error) {
	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Identity == nil {
		return nil, ErrNotAuthenticated
	}
	return sess.Identity, nil
}

// Session returns the full session record.
func (m *Manager) Session(ctx context.Context, sessionID string) (*Session, error) {
	return m.store.Get(ctx, sessionID)
}

// IssueToken signs a session reference token.
func (m *Manager) IssueToken(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("identity: sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a session token and returns the session ID it references.
func (m *Manager) ParseToken(tokenString string) (string, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
