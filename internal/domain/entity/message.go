package entity

import "time"

const (
	MessageTypeText   = "TEXT"
	MessageTypeSystem = "SYSTEM"
)

type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	SenderID       string    `json:"sender_id" firestore:"senderId"`
	Type           string    `json:"type" firestore:"type"` // "TEXT" or "SYSTEM"
	Text           string    `json:"text" firestore:"text"`
	ReadBy         []string  `json:"read_by" firestore:"readBy"`
	DeletedFor     []string  `json:"deleted_for,omitempty" firestore:"deletedFor,omitempty"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}

func (m *Message) IsReadBy(userID string) bool {
	for _, id := range m.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

func (m *Message) IsDeletedFor(userID string) bool {
	for _, id := range m.DeletedFor {
		if id == userID {
			return true
		}
	}
	return false
}
