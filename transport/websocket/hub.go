package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Hub routes outbound events to connected clients and groups the two
// participants of a session into one broadcast channel. It is the
// transport-side implementation of the game manager's Messenger.
type Hub struct {
	logger *slog.Logger

	mutex    sync.RWMutex
	clients  map[string]*Client
	channels map[string]map[string]*Client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger,
		clients:  make(map[string]*Client),
		channels: make(map[string]map[string]*Client),
	}
}

// Add - registers a freshly upgraded connection under its player id.
func (that *Hub) Add(client *Client) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	that.clients[client.id] = client
}

// Remove - drops a client from the registry and from every channel, then
// releases its outbound queue. After Remove no event can reach the client.
func (that *Hub) Remove(playerID string) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	client, ok := that.clients[playerID]
	if !ok {
		return
	}

	delete(that.clients, playerID)
	for _, members := range that.channels {
		delete(members, playerID)
	}

	close(client.send)
}

func (that *Hub) Join(channelID, playerID string) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	client, ok := that.clients[playerID]
	if !ok {
		that.logger.Warn("join for unknown player", "playerID", playerID, "channelID", channelID)
		return
	}

	members, ok := that.channels[channelID]
	if !ok {
		members = make(map[string]*Client)
		that.channels[channelID] = members
	}

	members[playerID] = client
}

func (that *Hub) CloseChannel(channelID string) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	delete(that.channels, channelID)
}

func (that *Hub) ToPlayer(playerID, event string, payload any) {
	raw, err := encodeMessage(event, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "event", event, "error", err)
		return
	}

	that.mutex.RLock()
	client, ok := that.clients[playerID]
	that.mutex.RUnlock()

	if !ok {
		that.logger.Debug("player not connected, event dropped", "playerID", playerID, "event", event)
		return
	}

	that.deliver(client, raw, event)
}

func (that *Hub) ToChannel(channelID, event string, payload any) {
	raw, err := encodeMessage(event, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "event", event, "error", err)
		return
	}

	that.mutex.RLock()
	members := make([]*Client, 0, 2)
	for _, client := range that.channels[channelID] {
		members = append(members, client)
	}
	that.mutex.RUnlock()

	for _, client := range members {
		that.deliver(client, raw, event)
	}
}

// deliver - hands the frame to the client's write pump without ever
// blocking the caller; a client that cannot keep up loses events.
func (that *Hub) deliver(client *Client, raw []byte, event string) {
	select {
	case client.send <- raw:
	default:
		that.logger.Warn("client send buffer full, event dropped", "playerID", client.id, "event", event)
	}
}

func encodeMessage(event string, payload any) ([]byte, error) {
	message := Message{Action: event}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		message.Payload = raw
	}

	return json.Marshal(message)
}
