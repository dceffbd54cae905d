package websocket

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// NewUpgrader accepts browser connections only from allowedOrigins. "*" allows
// any origin; requests without an Origin header are not from a browser and pass.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r.Header.Get("Origin"), allowedOrigins)
		},
	}
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(strings.TrimSuffix(a, "/"), u.Scheme+"://"+u.Host) {
			return true
		}
	}
	return false
}

// Hub fans events out to every open connection of a user.
type Hub struct {
	clients    map[string]map[*Client]bool
	mu         sync.RWMutex
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// Stop ends Run and closes every client's send queue.
func (h *Hub) Stop() {
	close(h.done)
}

// Attach hands client to Run. It reports false once the hub has stopped, in
// which case the caller still owns the connection.
func (h *Hub) Attach(client *Client) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.Username]; !ok {
		h.clients[client.Username] = make(map[*Client]bool)
	}
	h.clients[client.Username][client] = true
	log.Debug().Str("client_id", client.ID).Str("username", client.Username).Msg("websocket client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if userClients, ok := h.clients[client.Username]; ok {
		if _, ok := userClients[client]; ok {
			delete(userClients, client)
			close(client.send)
			if len(userClients) == 0 {
				delete(h.clients, client.Username)
			}
			log.Debug().Str("client_id", client.ID).Str("username", client.Username).Msg("websocket client unregistered")
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for username, userClients := range h.clients {
		for client := range userClients {
			close(client.send)
		}
		delete(h.clients, username)
	}
}

func (h *Hub) ClientCount(username string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[username])
}

func (h *Hub) PublishEvent(username string, eventData []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if userClients, ok := h.clients[username]; ok {
		for client := range userClients {
			select {
			case client.send <- eventData:
			default:
				log.Warn().Str("client_id", client.ID).Str("username", username).Msg("websocket send buffer is full, dropping message")
			}
		}
	}
}
