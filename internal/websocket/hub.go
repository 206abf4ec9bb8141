package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pest-assess-be/internal/model"
	"pest-assess-be/internal/pkg/logger"
)

// Hub fans ops alerts out to every connected dashboard. Redis pub/sub
// carries alerts across instances so a dashboard connected anywhere sees
// every failure.
type Hub struct {
	// Connected dashboards keyed by connection id
	clients map[uuid.UUID]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

const redisAlertChannel = "ops_alerts"

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard connected", map[string]interface{}{"client_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("Hub", "Dashboard disconnected", map[string]interface{}{"client_id": client.ID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an alert to all connected dashboards, local and remote.
func (h *Hub) Broadcast(alert model.OpsAlert) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "ops_alert",
		"data": alert,
	})

	h.broadcastLocal(data)

	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), redisAlertChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed, alert was local only", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client buffer full, dropping connection", map[string]interface{}{"client_id": client.ID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisAlertChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		// The payload is already the serialized frame; relay as-is to
		// local dashboards.
		h.broadcastLocal([]byte(msg.Payload))
	}
}
