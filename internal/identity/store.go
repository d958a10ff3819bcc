package identity

import (
	"context"
	"sync"
	"time"
)

// Session is the per-visitor server-side state anchor. The identity is nil
// until login; everything is lost when the session expires or is deleted.
type Session struct {
	ID        string    `json:"id"`
	Identity  *Identity `json:"identity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions for their lifetime.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryStore keeps sessions in process memory with TTL-based expiry.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
}

type memorySession struct {
	session   Session
	expiresAt time.Time
}

// NewInMemoryStore creates an in-memory session store.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &InMemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
	}
}

// Put stores or refreshes a session.
func (s *InMemoryStore) Put(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = memorySession{
		session:   *sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get retrieves a live session by ID.
func (s *InMemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	sess := entry.session
	return &sess, nil
}

// Delete removes a session outright.
func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

var _ Store = (*InMemoryStore)(nil)
