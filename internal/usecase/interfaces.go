package usecase

// Notifier is the realtime fan-out boundary. Implementations push to user
// channels and conversation rooms on a best-effort basis; the workflows never
// depend on delivery succeeding and nothing here returns an error.
type Notifier interface {
	NotifyUser(userID, event string, payload interface{})
	NotifyConversation(conversationID, event string, payload interface{})
}

// Events emitted over the Notifier boundary.
const (
	EventMatch                = "match"
	EventMatchRequest         = "match_request"
	EventMatchAccepted        = "match_accepted"
	EventMatchRejected        = "match_rejected"
	EventMatchCancelled       = "matching_request:cancelled"
	EventApplicationNew       = "adoption_application:new"
	EventApplicationAccepted  = "adoption_application:accepted"
	EventApplicationRejected  = "adoption_application:rejected"
	EventConversationCreated  = "conversation:created"
	EventMessageNew           = "message:new"
	EventNewMessageNudge      = "new_message"
)
