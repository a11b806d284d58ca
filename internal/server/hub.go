package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/retroenv/retrogolib/log"
)

// event is one message on the feed.
type event struct {
	Type string    `json:"type"`
	Ref  string    `json:"ref,omitempty"`
	Role string    `json:"role,omitempty"`
	Time time.Time `json:"time"`
}

const writeTimeout = 10 * time.Second

// hub fans decode events out to all connected websocket clients.
type hub struct {
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	events  chan event
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: map[*websocket.Conn]struct{}{},
		events:  make(chan event, 64),
	}
}

// handleWebsocket upgrades a connection and registers it with the hub. The
// feed is one-way, client messages are drained and dropped.
func (h *hub) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("upgrading websocket", log.Err(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("websocket client connected", log.String("remote", conn.RemoteAddr().String()))

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
	}
	h.mu.Unlock()
}

// publish queues an event, dropping it when the feed is saturated.
func (h *hub) publish(ev event) {
	ev.Time = time.Now()
	select {
	case h.events <- ev:
	default:
	}
}

// run broadcasts queued events until the context is canceled.
func (h *hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case ev := <-h.events:
			h.broadcast(ev)
		}
	}
}

func (h *hub) broadcast(ev event) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(ev); err != nil {
			h.remove(conn)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
	}
	h.clients = map[*websocket.Conn]struct{}{}
}
