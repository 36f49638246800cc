package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"numero-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "cluster_events"

// clusterEnvelope is what instances exchange over Redis.
type clusterEnvelope struct {
	Origin       string          `json:"origin"`
	TargetUserID string          `json:"target_user_id"` // "*" for everyone
	Message      json.RawMessage `json:"message"`
}

// OutboundMessage is every frame the server writes.
type OutboundMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type Hub struct {
	// UserID -> open connections (one per tab or device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// nil when running single-instance
	rdb        *redis.Client
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// remove drops the client. Its send channel is closed exactly once.
func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			client.close()
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

// ConnectedClients counts local connections of a user.
func (h *Hub) ConnectedClients(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// SendEvent pushes {type, data} to every connection of the user, on every instance.
func (h *Hub) SendEvent(userID uuid.UUID, eventType string, data interface{}) error {
	payload, err := json.Marshal(OutboundMessage{Type: eventType, Data: data})
	if err != nil {
		return err
	}
	h.deliverLocal(userID, payload)
	h.publish(userID.String(), payload)
	return nil
}

// Broadcast pushes {type, data} to everyone connected.
func (h *Hub) Broadcast(eventType string, data interface{}) error {
	payload, err := json.Marshal(OutboundMessage{Type: eventType, Data: data})
	if err != nil {
		return err
	}
	h.deliverAll(payload)
	h.publish("*", payload)
	return nil
}

func (h *Hub) deliverLocal(userID uuid.UUID, payload []byte) {
	h.mu.RLock()
	clients := append([]*Client(nil), h.clients[userID]...)
	h.mu.RUnlock()

	h.deliver(clients, payload)
}

func (h *Hub) deliverAll(payload []byte) {
	h.mu.RLock()
	var all []*Client
	for _, clients := range h.clients {
		all = append(all, clients...)
	}
	h.mu.RUnlock()

	h.deliver(all, payload)
}

// deliver never blocks. A client whose buffer is full is dropped.
func (h *Hub) deliver(clients []*Client, payload []byte) {
	for _, client := range clients {
		if !client.enqueue(payload) {
			h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"user_id": client.UserID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) publish(target string, payload []byte) {
	if h.rdb == nil {
		return
	}
	envelope, err := json.Marshal(clusterEnvelope{
		Origin:       h.instanceID,
		TargetUserID: target,
		Message:      payload,
	})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), clusterChannel, envelope).Err(); err != nil {
		h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
	}
}

// subscribeToRedis delivers events published by other instances to local clients.
func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.handleClusterMessage([]byte(msg.Payload))
	}
}

func (h *Hub) handleClusterMessage(raw []byte) {
	var envelope clusterEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
		return
	}
	if envelope.Origin == h.instanceID {
		return
	}

	if envelope.TargetUserID == "*" {
		h.deliverAll(envelope.Message)
		return
	}

	uid, err := uuid.Parse(envelope.TargetUserID)
	if err != nil {
		return
	}
	h.deliverLocal(uid, envelope.Message)
}
