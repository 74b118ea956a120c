package websocket

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const (
	FrameSubmit = "submit"
	FrameReset  = "reset"
	FrameState  = "state"
	FrameError  = "error"
)

// InboundFrame is what the browser sends.
type InboundFrame struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// OutboundFrame is either a full state push or an error notice.
type OutboundFrame struct {
	Type     string               `json:"type"`
	Messages []models.ChatMessage `json:"messages,omitempty"`
	Loading  bool                 `json:"loading"`
	Message  string               `json:"message,omitempty"`
}

// Hub gives every websocket connection its own conversation and pushes the
// conversation state back after each change.
type Hub struct {
	mu        sync.Mutex
	clients   map[*client]struct{}
	completer chat.Completer
	limiter   rateLimiter
}

type rateLimiter interface {
	Allow(key string) bool
}

type client struct {
	conn    *websocket.Conn
	ip      string
	writeMu sync.Mutex
	cancel  context.CancelFunc
}

// NewHub builds the chat hub. limiter is shared with POST /api/chat so both paths
// draw from one per-host budget; nil disables throttling.
func NewHub(completer chat.Completer, limiter rateLimiter) *Hub {
	return &Hub{
		clients:   make(map[*client]struct{}),
		completer: completer,
		limiter:   limiter,
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &client{conn: conn, ip: ip, cancel: cancel}
	conv := chat.NewConversation(h.completer, chat.WithObserver(func(s chat.Snapshot) {
		c.send(stateFrame(s))
	}))

	h.register(c)
	c.send(stateFrame(conv.Snapshot()))

	go func() {
		defer h.unregister(c)
		for {
			var frame InboundFrame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			h.dispatch(ctx, c, conv, frame)
		}
	}()
}

func (h *Hub) dispatch(ctx context.Context, c *client, conv *chat.Conversation, frame InboundFrame) {
	switch frame.Type {
	case FrameSubmit:
		if strings.TrimSpace(frame.Text) == "" {
			return
		}
		if h.limiter != nil && !h.limiter.Allow(c.ip) {
			c.send(OutboundFrame{Type: FrameError, Message: middleware.RateLimitedMessage})
			return
		}
		// Submit blocks for the whole upstream call; run it aside so a second
		// submit can be read and rejected while the first is pending.
		go func() {
			if err := conv.Submit(ctx, frame.Text); err != nil {
				c.send(errorFrame(err))
			}
		}()
	case FrameReset:
		if err := conv.Reset(); err != nil {
			c.send(errorFrame(err))
		}
	default:
		c.send(OutboundFrame{Type: FrameError, Message: "Unknown message type: " + frame.Type})
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	log.Printf("WebSocket connected (total: %d)", len(h.clients))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	c.cancel()
	c.conn.Close()
	log.Printf("WebSocket disconnected (total: %d)", len(h.clients))
}

// Connections reports how many sockets are open.
func (h *Hub) Connections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close drops every connection and cancels in-flight replies.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.cancel()
		c.conn.Close()
		delete(h.clients, c)
	}
}

func (c *client) send(frame OutboundFrame) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(frame); err != nil {
		log.Printf("WebSocket write failed: %v", err)
	}
}

func stateFrame(s chat.Snapshot) OutboundFrame {
	return OutboundFrame{Type: FrameState, Messages: s.Messages, Loading: s.Loading}
}

func errorFrame(err error) OutboundFrame {
	msg := err.Error()
	if errors.Is(err, chat.ErrBusy) {
		msg = "Please wait for the current reply to finish."
	}
	return OutboundFrame{Type: FrameError, Message: msg}
}
