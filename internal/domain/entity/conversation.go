package entity

import (
	"sort"
	"strings"
	"time"
)

const (
	ContextMatching = "MATCHING"
	ContextAdoption = "ADOPTION"
)

// A Conversation is a thread between exactly two users, optionally scoped to
// a relationship context (an advert plus the kind of relationship). For a
// given participant pair and context at most one conversation exists.
type Conversation struct {
	ID              string    `json:"id" firestore:"id"`
	Participants    []string  `json:"participants" firestore:"participants"` // sorted pair
	ContextKind     string    `json:"context_kind,omitempty" firestore:"contextKind"` // "MATCHING", "ADOPTION" or empty
	ContextAdvertID string    `json:"context_advert_id,omitempty" firestore:"contextAdvertId"`
	LastMessage     string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt   time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

func (c *Conversation) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

// SortParticipants normalizes a pair so that the same two users always
// produce the same ordering regardless of who initiated.
func SortParticipants(a, b string) []string {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair
}

// ConversationKey is the storage-level uniqueness key for a participant pair
// and context. It backs single-winner creation under concurrent accepts.
func ConversationKey(participants []string, contextKind, contextAdvertID string) string {
	sorted := make([]string, len(participants))
	copy(sorted, participants)
	sort.Strings(sorted)
	parts := append(sorted, contextKind, contextAdvertID)
	return strings.Join(parts, "|")
}
