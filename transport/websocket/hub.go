package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
	"github.com/gurutej08/Ayhuna-backend/game/service"
	"github.com/gurutej08/Ayhuna-backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Message is the outbound JSON envelope.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// roomMessage pairs a Message with the room it is addressed to.
type roomMessage struct {
	roomCode string
	message  *Message
}

// subscription asks the hub to move a client into a room. The hub closes
// done once the membership change is visible, so the caller can broadcast
// to the room immediately afterwards without racing its own subscription.
type subscription struct {
	client   *Client
	roomCode string
	done     chan struct{}
}

// Hub maintains the set of active clients and routes room broadcasts.
// All of its maps are owned by the Run loop.
type Hub struct {
	service service.GameService

	// All registered clients
	clients map[*Client]bool

	// Clients grouped by room code
	rooms map[string]map[*Client]bool

	// Outbound room broadcasts
	broadcast chan *roomMessage

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Room membership changes
	subscribe chan *subscription
}

// NewHub creates a new WebSocket hub
func NewHub(svc service.GameService) *Hub {
	return &Hub{
		service:    svc,
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan *roomMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		subscribe:  make(chan *subscription),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case sub := <-h.subscribe:
			h.subscribeClient(sub)

		case rm := <-h.broadcast:
			h.broadcastToRoom(rm)
		}
	}
}

// ServeWS handles WebSocket upgrade requests
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", logger.Fields{"error": err.Error()})
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
		id:   uuid.New().String(),
	}

	client.hub.register <- client

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// BroadcastRoomUpdate sends the room snapshot to every client in the room.
func (h *Hub) BroadcastRoomUpdate(roomCode string, state *engine.RoomState) {
	h.broadcast <- &roomMessage{
		roomCode: roomCode,
		message:  &Message{Event: "room-update", Data: state},
	}
}

// BroadcastEvent sends a custom event to all clients in a room
func (h *Hub) BroadcastEvent(roomCode string, event string, data interface{}) {
	h.broadcast <- &roomMessage{
		roomCode: roomCode,
		message:  &Message{Event: event, Data: data},
	}
}

// Subscribe moves a client into a room and waits until the hub has
// applied the change.
func (h *Hub) Subscribe(client *Client, roomCode string) {
	sub := &subscription{
		client:   client,
		roomCode: roomCode,
		done:     make(chan struct{}),
	}
	h.subscribe <- sub
	<-sub.done
}

// registerClient tracks a newly connected client
func (h *Hub) registerClient(client *Client) {
	h.clients[client] = true

	logger.Debug("Client connected", logger.Fields{
		"clientId": client.id,
		"total":    len(h.clients),
	})
}

// unregisterClient removes a client and its room membership
func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	if client.room != "" {
		h.removeFromRoom(client)
	}

	logger.Debug("Client disconnected", logger.Fields{
		"clientId": client.id,
		"total":    len(h.clients),
	})
}

// subscribeClient applies a room membership change
func (h *Hub) subscribeClient(sub *subscription) {
	defer close(sub.done)

	client := sub.client
	if _, ok := h.clients[client]; !ok {
		return
	}

	// A client sits in one room at a time.
	if client.room != "" && client.room != sub.roomCode {
		h.removeFromRoom(client)
	}

	if h.rooms[sub.roomCode] == nil {
		h.rooms[sub.roomCode] = make(map[*Client]bool)
	}
	h.rooms[sub.roomCode][client] = true
	client.room = sub.roomCode

	logger.Debug("Client subscribed to room", logger.Fields{
		"clientId": client.id,
		"roomCode": sub.roomCode,
		"inRoom":   len(h.rooms[sub.roomCode]),
	})
}

// removeFromRoom drops a client from its current room, cleaning up the
// room table when it empties.
func (h *Hub) removeFromRoom(client *Client) {
	if clients, ok := h.rooms[client.room]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, client.room)
		}
	}
	client.room = ""
}

// broadcastToRoom fans a message out to every client in a room
func (h *Hub) broadcastToRoom(rm *roomMessage) {
	data, err := json.Marshal(rm.message)
	if err != nil {
		logger.Error("Failed to marshal broadcast message", logger.Fields{"error": err.Error()})
		return
	}

	if clients, ok := h.rooms[rm.roomCode]; ok {
		for client := range clients {
			select {
			case client.send <- data:
			default:
				// Client's send channel is full, close it
				h.unregisterClient(client)
			}
		}
	}
}
