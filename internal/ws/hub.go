package ws

import (
	"sync"
)

// Hub tracks this instance's live connections: which clients belong to
// which identity, and which clients are in which channel group. It is the
// only place connection handles are grouped; the message path just asks it
// who is in a channel's group. Cross-instance state lives in the shared
// cache, never here.
type Hub struct {
	mu         sync.RWMutex
	channels   map[string]map[*Client]struct{}
	identities map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		channels:   make(map[string]map[*Client]struct{}),
		identities: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.identities[client.identity.ID]
	if !ok {
		clients = make(map[*Client]struct{})
		h.identities[client.identity.ID] = clients
	}
	clients[client] = struct{}{}
}

// Unregister removes the client from its identity and from every channel
// group. Groups and identity entries left empty are deleted, so an empty
// tracker never outlives its last connection.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.identities[client.identity.ID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.identities, client.identity.ID)
		}
	}

	for channel, group := range h.channels {
		delete(group, client)
		if len(group) == 0 {
			delete(h.channels, channel)
		}
	}
}

func (h *Hub) Join(channel string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.join(channel, client)
}

// JoinIdentity puts every live connection of the identity into the channel
// group. Connections on other instances are handled by their own hub when
// the same event reaches them.
func (h *Hub) JoinIdentity(channel, identity string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.identities[identity] {
		h.join(channel, client)
	}
}

func (h *Hub) LeaveIdentity(channel, identity string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.channels[channel]
	if !ok {
		return
	}
	for client := range h.identities[identity] {
		delete(group, client)
	}
	if len(group) == 0 {
		delete(h.channels, channel)
	}
}

// DropChannel detaches every local connection from the channel group.
func (h *Hub) DropChannel(channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.channels, channel)
}

// Broadcast enqueues the frame to every connection in the channel group,
// the author's own included. Delivery is best-effort per connection.
func (h *Hub) Broadcast(channel string, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.channels[channel] {
		client.enqueue(frame)
	}
}

// GroupSize reports how many local connections are in the channel group.
func (h *Hub) GroupSize(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.channels[channel])
}

func (h *Hub) join(channel string, client *Client) {
	group, ok := h.channels[channel]
	if !ok {
		group = make(map[*Client]struct{})
		h.channels[channel] = group
	}
	group[client] = struct{}{}
}
