package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"hireup-be/internal/entity"
	"hireup-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "dashboard_events"

// Hub fans dashboard notifications out to connected company sessions. A
// company may hold several connections (multiple recruiters, multiple tabs).
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis relays pushes to companies connected to other instances.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
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
			h.clients[client.CompanyID] = append(h.clients[client.CompanyID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"company_id": client.CompanyID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.CompanyID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.CompanyID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.CompanyID]) == 0 {
					delete(h.clients, client.CompanyID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send pushes a notification to every connection of one company. With Redis
// available the push goes through the cluster channel so every instance,
// this one included, delivers to its own clients exactly once.
func (h *Hub) Send(companyID uuid.UUID, notification entity.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_company_id": companyID.String(),
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), clusterChannel, jsonPayload)
		return
	}

	h.deliverLocal(companyID, data)
}

func (h *Hub) deliverLocal(companyID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients := h.clients[companyID]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// Run closes the channel when it processes the unregister.
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"company_id": companyID})
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetCompanyID string          `json:"target_company_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		companyID, err := uuid.Parse(payload.TargetCompanyID)
		if err != nil {
			continue
		}

		h.deliverLocal(companyID, payload.Message)
	}
}
