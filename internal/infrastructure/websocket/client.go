package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"patipazar/pkg/logger"
)

// Socket protocol message types understood by the read pump.
const (
	MessageTypePing      = "ping"
	MessageTypePong      = "pong"
	MessageTypeJoinRoom  = "join_room"
	MessageTypeLeaveRoom = "leave_room"
)

type WSMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

type roomData struct {
	ConversationID string `json:"conversation_id"`
}

// ReadPump processes inbound control messages until the connection drops.
// Clients only join/leave conversation rooms and ping; all domain actions go
// through the REST API.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error for %s: %v", c.UserID, err)
			}
			break
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Debug("Ignoring malformed socket message from %s", c.UserID)
			continue
		}

		switch msg.Type {
		case MessageTypePing:
			pong, _ := json.Marshal(WSMessage{
				Type:      MessageTypePong,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})
			select {
			case c.Send <- pong:
			default:
			}

		case MessageTypeJoinRoom:
			var data roomData
			if err := json.Unmarshal(msg.Data, &data); err != nil || data.ConversationID == "" {
				continue
			}
			m.JoinRoom(c, "conv:"+data.ConversationID)

		case MessageTypeLeaveRoom:
			var data roomData
			if err := json.Unmarshal(msg.Data, &data); err != nil || data.ConversationID == "" {
				continue
			}
			m.LeaveRoom(c, "conv:"+data.ConversationID)

		default:
			logger.Debug("Unknown socket message type %q from %s", msg.Type, c.UserID)
		}
	}
}

// WritePump drains the send channel onto the wire.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
