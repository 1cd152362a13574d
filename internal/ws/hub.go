package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks connected clients by user so score events can be delivered
// to just the sessions that care about them.
type Hub struct {
	clients    map[*Client]bool
	byUser     map[uuid.UUID]map[*Client]bool
	broadcast  chan []byte
	direct     chan directMessage
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type directMessage struct {
	userID  uuid.UUID
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		broadcast:  make(chan []byte, 1024),
		direct:     make(chan directMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			if client.userID != uuid.Nil {
				if h.byUser[client.userID] == nil {
					h.byUser[client.userID] = make(map[*Client]bool)
				}
				h.byUser[client.userID][client] = true
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				if peers, ok := h.byUser[client.userID]; ok {
					delete(peers, client)
					if len(peers) == 0 {
						delete(h.byUser, client.userID)
					}
				}
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
			}

		case message := <-h.broadcast:
			for _, client := range h.snapshot(uuid.Nil) {
				h.deliver(client, message)
			}

		case msg := <-h.direct:
			for _, client := range h.snapshot(msg.userID) {
				h.deliver(client, msg.payload)
			}
		}
	}
}

// snapshot returns all clients, or just one user's when userID is set.
func (h *Hub) snapshot(userID uuid.UUID) []*Client {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if userID != uuid.Nil {
		out := make([]*Client, 0, len(h.byUser[userID]))
		for c := range h.byUser[userID] {
			out = append(out, c)
		}
		return out
	}
	out := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}

func (h *Hub) deliver(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		h.unregister <- client
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		if h.logger != nil {
			h.logger.Printf("WS broadcast dropped | reason=buffer_full")
		}
	}
}

// Send delivers a payload to every session of one user.
func (h *Hub) Send(userID uuid.UUID, message []byte) {
	if h == nil || userID == uuid.Nil {
		return
	}
	select {
	case h.direct <- directMessage{userID: userID, payload: message}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS direct dropped | user=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
