package notify

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// StreamHub pushes notices to websocket subscribers as they happen, so
// dashboards can surface booking activity without polling.
type StreamHub struct {
	mu       sync.Mutex
	conns    map[string][]*websocket.Conn
	upgrader websocket.Upgrader
	logger   *logging.Logger
}

// NewStreamHub creates a websocket hub for notice delivery.
func NewStreamHub(logger *logging.Logger) *StreamHub {
	if logger == nil {
		logger = logging.Default()
	}
	return &StreamHub{
		conns: make(map[string][]*websocket.Conn),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve upgrades the request and subscribes the connection to the session's
// notice stream until the peer disconnects.
func (h *StreamHub) Serve(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("notice stream upgrade failed", "error", err, "session_id", sessionID)
		return
	}

	h.mu.Lock()
	h.conns[sessionID] = append(h.conns[sessionID], conn)
	h.mu.Unlock()

	h.logger.Info("notice stream subscribed", "session_id", sessionID)

	// Reader loop exists only to detect close; clients never send payloads.
	go func() {
		defer h.remove(sessionID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a notice to every live subscriber of the session.
// Connections that fail to write are dropped.
func (h *StreamHub) Broadcast(sessionID string, notice Notice) {
	h.mu.Lock()
	subscribers := append([]*websocket.Conn(nil), h.conns[sessionID]...)
	h.mu.Unlock()

	for _, conn := range subscribers {
		if err := conn.WriteJSON(notice); err != nil {
			h.logger.Debug("notice stream write failed, dropping subscriber", "session_id", sessionID, "error", err)
			h.remove(sessionID, conn)
		}
	}
}

func (h *StreamHub) remove(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	live := h.conns[sessionID][:0]
	for _, c := range h.conns[sessionID] {
		if c != conn {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		delete(h.conns, sessionID)
	} else {
		h.conns[sessionID] = live
	}
	h.mu.Unlock()
	_ = conn.Close()
}
