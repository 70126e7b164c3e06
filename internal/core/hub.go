package core

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrDuplicateClient is returned when a client registers twice. Under
// correct session discipline this should not occur.
var ErrDuplicateClient = errors.New("client already registered")

// Hub tracks the set of connected clients and fans outbound messages to all
// of them. Sessions mutate membership concurrently, so the set is
// mutex-guarded and broadcasts iterate a snapshot rather than the live set.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	log     *zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		log:     logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		return ErrDuplicateClient
	}
	h.clients[c] = struct{}{}
	h.log.Info().Str("client_id", c.ID).Str("name", c.Name).Str("remote", c.Remote).Msg("client connected")
	return nil
}

// Unregister removes a client. Absence is not an error: a session may run
// its cleanup after the client is already gone.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	h.log.Info().Str("client_id", c.ID).Str("remote", c.Remote).Msg("client disconnected")
}

// Snapshot returns the current members as a copy safe to iterate while
// membership keeps changing.
func (h *Hub) Snapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		members = append(members, c)
	}
	return members
}

// Broadcast delivers text to every client registered at call time. Delivery
// is independent per client: a stalled or dying peer only loses its own
// copy. Broadcasting to an empty hub is a no-op.
func (h *Hub) Broadcast(text string) {
	for _, c := range h.Snapshot() {
		select {
		case c.Out <- text:
		default:
			// The peer stopped draining; its session will unregister it.
			h.log.Warn().Str("client_id", c.ID).Msg("outbound buffer full, dropping message")
		}
	}
}
