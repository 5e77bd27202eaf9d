package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub держит подключённые вкладки, сгруппированные по id сессии.
type Hub struct {
	sessions   map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Register и Unregister не блокируются после остановки хаба.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Run обслуживает регистрацию клиентов до отмены контекста.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			if h.sessions[client.SessionID] == nil {
				h.sessions[client.SessionID] = make(map[*Client]struct{})
			}
			h.sessions[client.SessionID][client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("WebSocket: клиент зарегистрирован", zap.String("session", client.SessionID))
		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.sessions[client.SessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.sessions, client.SessionID)
	}
	h.logger.Debug("WebSocket: клиент отсоединен", zap.String("session", client.SessionID))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, clients := range h.sessions {
		for c := range clients {
			close(c.Send)
		}
		delete(h.sessions, id)
	}
}

// SendToSession рассылает сообщение всем вкладкам сессии.
// Медленные клиенты с заполненным буфером пропускают сообщение.
func (h *Hub) SendToSession(sessionID string, payload interface{}, messageType string) (int, error) {
	messageBytes, err := json.Marshal(Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return 0, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.sessions[sessionID] {
		select {
		case client.Send <- messageBytes:
			delivered++
		default:
			h.logger.Warn("WebSocket: буфер клиента переполнен, сообщение пропущено", zap.String("session", sessionID))
		}
	}
	return delivered, nil
}

// ClientCount - число подключённых вкладок сессии.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}
