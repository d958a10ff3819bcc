package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Level classifies a transient notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice is a transient, non-blocking user-facing notification. Notices are
// queued per session and removed when read; they never gate further interaction.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Center queues notices per session and fans them out to live stream
// subscribers when attached.
type Center struct {
	mu     sync.Mutex
	queues map[string][]Notice
	stream *StreamHub
	logger *logging.Logger
}

// NewCenter creates a notice center.
func NewCenter(logger *logging.Logger) *Center {
	if logger == nil {
		logger = logging.Default()
	}
	return &Center{
		queues: make(map[string][]Notice),
		logger: logger,
	}
}

// AttachStream wires a websocket hub so pushed notices are also broadcast live.
func (c *Center) AttachStream(hub *StreamHub) {
	c.mu.Lock()
	c.stream = hub
	c.mu.Unlock()
}

// Push queues a notice for the session.
func (c *Center) Push(sessionID string, level Level, message string) {
	notice := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	c.queues[sessionID] = append(c.queues[sessionID], notice)
	hub := c.stream
	c.mu.Unlock()

	c.logger.Debug("notice pushed", "session_id", sessionID, "level", level, "message", message)
	if hub != nil {
		hub.Broadcast(sessionID, notice)
	}
}

// Success queues a success notice.
func (c *Center) Success(sessionID, message string) {
	c.Push(sessionID, LevelSuccess, message)
}

// Info queues an info notice.
func (c *Center) Info(sessionID, message string) {
	c.Push(sessionID, LevelInfo, message)
}

// Error queues an error notice.
func (c *Center) Error(sessionID, message string) {
	c.Push(sessionID, LevelError, message)
}

// Drain returns and clears the pending notices for the session.
func (c *Center) Drain(sessionID string) []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.queues[sessionID]
	delete(c.queues, sessionID)
	return pending
}

// Clear discards any pending notices for the session.
func (c *Center) Clear(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.queues, sessionID)
}
