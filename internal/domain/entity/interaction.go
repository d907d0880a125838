package entity

import "time"

const (
	InteractionLike = "like"
	InteractionPass = "pass"
)

// An Interaction is a swipe on someone else's advert. The first interaction
// for a (user, advert) pair is final; it is never updated or deleted.
type Interaction struct {
	ID         string    `json:"id" firestore:"id"`
	FromUserID string    `json:"from_user_id" firestore:"fromUserId"`
	ToAdvertID string    `json:"to_advert_id" firestore:"toAdvertId"`
	ToOwnerID  string    `json:"to_owner_id" firestore:"toOwnerId"`
	Type       string    `json:"type" firestore:"type"` // "like" or "pass"
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
