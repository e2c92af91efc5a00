package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClusterChannel carries pushes between API instances so a user connected to
// another node still receives them.
const ClusterChannel = "mentoria:notifications"

type Hub struct {
	// UserID -> open connections (one per device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	// nil runs the hub single-instance
	rdb *redis.Client

	// tags cluster messages so an instance skips its own
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
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

// join hands the client to Run. It reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave hands the client back to Run; after shutdown it is a no-op.
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

// Connected reports how many sockets the user has open on this instance.
func (h *Hub) Connected(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Send pushes a notification to every device of the user, here and on the
// other instances.
func (h *Hub) Send(userID uuid.UUID, notification *dto.NotificationResponse) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode notification", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(userID, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(clusterMessage{TargetUserID: userID.String(), Origin: h.instanceID, Message: data})
		if err := h.rdb.Publish(context.Background(), ClusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to fan out notification", map[string]interface{}{"error": err.Error()})
		}
	}
}

type clusterMessage struct {
	TargetUserID string          `json:"target_user_id"`
	Origin       string          `json:"origin,omitempty"`
	Message      json.RawMessage `json:"message"`
}

func (h *Hub) deliverLocal(userID uuid.UUID, data []byte) {
	// Held across the sends so remove cannot close a channel mid-send.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": userID})
			go h.leave(client)
		}
	}
}

// subscribeToRedis relays pushes published by other instances.
func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Dropping malformed cluster message", map[string]interface{}{"error": err.Error()})
			continue
		}
		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil || payload.Origin == h.instanceID {
			continue
		}
		if h.Connected(uid) == 0 {
			continue
		}
		h.deliverLocal(uid, payload.Message)
	}
}
