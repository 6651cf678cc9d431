// Package livereload pushes reload notifications to browsers over a
// websocket while the server runs in development.
//
// The hub follows the usual pattern: one goroutine owns registration and
// broadcasting, every client gets a buffered send channel and its own write
// pump, and a client whose buffer fills up is dropped.
package livereload

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/supafox/supafox/internal/logging"
	"github.com/supafox/supafox/internal/security"
)

// Path is where the hub is mounted.
const Path = "/_dev/livereload"

const (
	sendBuffer   = 16
	pingInterval = 30 * time.Second
	writeTimeout = 5 * time.Second
	readLimit    = 512
)

// Message is sent to the browser as JSON.
type Message struct {
	Type      string    `json:"type"`
	Paths     []string  `json:"paths,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ReloadMessage asks clients to reload the page.
func ReloadMessage(paths ...string) Message {
	return Message{Type: "reload", Paths: paths, Timestamp: time.Now().UTC()}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	ip   string
}

// Hub tracks connected browsers.
type Hub struct {
	clients map[*client]struct{}
	mu      sync.RWMutex

	broadcast  chan []byte
	register   chan *client
	unregister chan *client

	logger logging.Logger

	ctx          context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once
}

// NewHub starts a hub. Call Shutdown to release it.
func NewHub(logger logging.Logger) *Hub {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan []byte, 32),
		register:   make(chan *client, 8),
		unregister: make(chan *client, 8),
		logger:     logger.WithComponent("livereload"),
		ctx:        ctx,
		cancel:     cancel,
	}
	go h.run()
	return h
}

// ServeHTTP upgrades the request. Cross-origin upgrades are rejected by
// websocket.Accept, which only allows an Origin matching the Host.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.ctx.Err() != nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	ip := security.ClientIP(r)
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		h.logger.Warn(r.Context(), err, "Websocket upgrade failed", "ip", ip)
		return
	}
	conn.SetReadLimit(readLimit)

	c := &client{conn: conn, send: make(chan []byte, sendBuffer), ip: ip}

	select {
	case h.register <- c:
	case <-h.ctx.Done():
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug(h.ctx, "Live reload client connected", "ip", c.ip, "clients", n)

		case c := <-h.unregister:
			h.remove(c, websocket.StatusNormalClosure, "")

		case message := <-h.broadcast:
			h.mu.RLock()
			var slow []*client
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()
			for _, c := range slow {
				h.remove(c, websocket.StatusPolicyViolation, "client too slow")
			}

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Hub) remove(c *client, code websocket.StatusCode, reason string) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		c.conn.Close(code, reason)
		h.logger.Debug(h.ctx, "Live reload client disconnected", "ip", c.ip, "clients", n)
	}
}

// readPump discards client messages; reading keeps control frames flowing
// and notices when the browser goes away.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.ctx.Done():
		}
	}()

	for {
		if _, _, err := c.conn.Read(h.ctx); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			ctx, cancel := context.WithTimeout(h.ctx, writeTimeout)
			err := c.conn.Write(ctx, websocket.MessageText, message)
			cancel()
			if err != nil {
				return
			}

		case <-ticker.C:
			ctx, cancel := context.WithTimeout(h.ctx, writeTimeout)
			err := c.conn.Ping(ctx)
			cancel()
			if err != nil {
				return
			}

		case <-h.ctx.Done():
			return
		}
	}
}

// Broadcast queues msg for every connected client. It never blocks; when the
// queue is full the message is dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error(h.ctx, err, "Failed to encode live reload message")
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.ctx.Done():
	default:
		h.logger.Warn(h.ctx, nil, "Live reload queue full, dropping message", "type", msg.Type)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown disconnects every client. It is safe to call more than once.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.shutdownOnce.Do(func() {
		h.cancel()

		h.mu.Lock()
		clients := h.clients
		h.clients = make(map[*client]struct{})
		h.mu.Unlock()

		for c := range clients {
			c.conn.Close(websocket.StatusGoingAway, "server shutting down")
		}
		h.logger.Info(ctx, "Live reload hub stopped", "clients", len(clients))
	})
	return nil
}
