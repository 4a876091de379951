package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gurutej08/Ayhuna-backend/game/engine"
	"github.com/gurutej08/Ayhuna-backend/game/registry"
	"github.com/gurutej08/Ayhuna-backend/internal/logger"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Client represents one WebSocket connection
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// Connection identifier, recorded against the player's seat
	id string

	// Current room code, owned by the hub's Run loop
	room string
}

// envelope is the inbound JSON frame
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// actionPayload covers the fields of all inbound game actions
type actionPayload struct {
	Player   string      `json:"player"`
	RoomCode string      `json:"roomcode"`
	Chitti   engine.Card `json:"chitti"`
	IsHost   bool        `json:"ishost"`
	Index    *int        `json:"index"`
}

// readPump pumps messages from the WebSocket connection into the game
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("WebSocket read error", logger.Fields{
					"clientId": c.id,
					"error":    err.Error(),
				})
			}
			break
		}
		c.handleMessage(raw)
	}
}

// handleMessage dispatches one inbound frame. Malformed or invalid
// requests are dropped without a reply; the protocol is fire-and-forget.
func (c *Client) handleMessage(raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Debug("Dropping malformed frame", logger.Fields{"clientId": c.id})
		return
	}

	var p actionPayload
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &p); err != nil {
			logger.Debug("Dropping malformed payload", logger.Fields{
				"clientId": c.id,
				"event":    env.Event,
			})
			return
		}
	}

	ctx := context.Background()

	switch env.Event {
	case "create-room":
		c.handleCreateRoom(ctx, &p)
	case "join-room":
		c.handleJoinRoom(ctx, &p)
	case "chitti-into":
		c.handleDeal(ctx, &p)
	case "pass-chitti":
		c.handlePass(ctx, &p)
	case "winner-check":
		c.handleWinnerCheck(ctx, &p)
	default:
		logger.Debug("Dropping unknown event", logger.Fields{
			"clientId": c.id,
			"event":    env.Event,
		})
	}
}

func (c *Client) handleCreateRoom(ctx context.Context, p *actionPayload) {
	info, err := c.hub.service.CreateRoom(ctx, p.RoomCode, p.Player, c.id, "")
	if err != nil {
		if errors.Is(err, registry.ErrRoomAlreadyExists) {
			c.sendEvent("room-error", "Room already exists")
		}
		return
	}

	c.hub.Subscribe(c, info.RoomCode)

	c.sendEvent("room-created", map[string]string{
		"roomcode": info.RoomCode,
		"host":     p.Player,
	})
	c.hub.BroadcastRoomUpdate(info.RoomCode, info.State)
}

func (c *Client) handleJoinRoom(ctx context.Context, p *actionPayload) {
	info, err := c.hub.service.JoinRoom(ctx, p.RoomCode, p.Player, c.id)
	if err != nil {
		return
	}

	c.hub.Subscribe(c, info.RoomCode)
	c.hub.BroadcastRoomUpdate(info.RoomCode, info.State)
}

func (c *Client) handleDeal(ctx context.Context, p *actionPayload) {
	info, err := c.hub.service.DealCard(ctx, p.RoomCode, p.Chitti, p.IsHost)
	if err != nil {
		return
	}

	c.hub.BroadcastRoomUpdate(p.RoomCode, info.State)
}

func (c *Client) handlePass(ctx context.Context, p *actionPayload) {
	result, err := c.hub.service.PassCard(ctx, p.RoomCode, p.Player, p.Index)
	if err != nil {
		return
	}

	// The receiver announcement goes out before the state it describes.
	c.hub.BroadcastEvent(p.RoomCode, "next-player", map[string]interface{}{
		"nextplayer": result.NextPlayer,
		"chitti":     result.Chitti,
	})
	c.hub.BroadcastRoomUpdate(p.RoomCode, result.State)
}

func (c *Client) handleWinnerCheck(ctx context.Context, p *actionPayload) {
	result, err := c.hub.service.CheckWin(ctx, p.RoomCode, p.Player)
	if err != nil {
		return
	}

	switch result.Verdict {
	case engine.VerdictWinner:
		c.hub.BroadcastEvent(p.RoomCode, "game-over", map[string]string{
			"winner": result.Winner,
		})
	case engine.VerdictNotFound:
		// Unknown player, no reply.
	default:
		c.sendEvent("not-winner", result.Reason)
	}
}

// sendEvent queues a message for this client only. Full queues drop the
// message rather than block the game.
func (c *Client) sendEvent(event string, data interface{}) {
	payload, err := json.Marshal(&Message{Event: event, Data: data})
	if err != nil {
		logger.Error("Failed to marshal message", logger.Fields{"error": err.Error()})
		return
	}

	select {
	case c.send <- payload:
	default:
		logger.Debug("Dropping message for slow client", logger.Fields{
			"clientId": c.id,
			"event":    event,
		})
	}
}

// writePump pumps messages from the hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
