package websocket

import (
	"encoding/json"
	"time"

	"patipazar/pkg/logger"
)

type eventEnvelope struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// Fanout adapts the connection manager to the usecase notification boundary.
// Both methods are fire and forget; a failure is logged and never surfaced.
type Fanout struct {
	manager *Manager
}

func NewFanout(manager *Manager) *Fanout {
	return &Fanout{manager: manager}
}

func (f *Fanout) NotifyUser(userID, event string, payload interface{}) {
	raw, err := f.encode(event, payload)
	if err != nil {
		logger.LogNotifyError(event, "user:"+userID, err)
		return
	}
	f.manager.SendToUser(userID, raw)
}

func (f *Fanout) NotifyConversation(conversationID, event string, payload interface{}) {
	raw, err := f.encode(event, payload)
	if err != nil {
		logger.LogNotifyError(event, "conv:"+conversationID, err)
		return
	}
	f.manager.SendToRoom("conv:"+conversationID, raw)
}

func (f *Fanout) encode(event string, payload interface{}) ([]byte, error) {
	return json.Marshal(eventEnvelope{
		Type:      event,
		Data:      payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
