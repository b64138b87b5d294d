// internal/ws/hub.go
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"gari-service/internal/pkg/jwt"
	"gari-service/internal/pkg/session"

	"go.uber.org/zap"
)

// Event is pushed to connected sellers, e.g. when a buyer submits an
// inquiry against one of their listings.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub tracks connected seller clients by user ID and fans events out to
// every open connection of a user.
type Hub struct {
	clients map[int64]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client

	verifier       *jwt.Verifier
	sessionManager *session.Manager
	logger         *zap.Logger
}

func NewHub(verifier *jwt.Verifier, sessionManager *session.Manager, logger *zap.Logger) *Hub {
	return &Hub{
		clients:        make(map[int64]map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		verifier:       verifier,
		sessionManager: sessionManager,
		logger:         logger,
	}
}

// Authenticate validates a token and confirms its session is still live.
func (h *Hub) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := h.verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	if _, err := h.sessionManager.GetSession(ctx, claims.UserID, claims.ID); err != nil {
		return nil, err
	}

	return claims, nil
}

// Run processes client registration until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mu.Unlock()
			h.logger.Debug("ws client connected", zap.Int64("user_id", client.userID))

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if conns[client] {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			return
		}
	}
}

// NotifyUser sends an event to every open connection of a user. Users
// without a connection are skipped silently.
func (h *Hub) NotifyUser(userID int64, eventType string, payload interface{}) {
	event := Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal ws event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		select {
		case client.send <- data:
		default:
			// slow consumer, drop the event rather than block
		}
	}
}
