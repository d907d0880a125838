package entity

import "time"

const (
	MatchRequestPending   = "pending"
	MatchRequestAccepted  = "accepted"
	MatchRequestRejected  = "rejected"
	MatchRequestCancelled = "cancelled"
)

type MatchRequest struct {
	ID           string    `json:"id" firestore:"id"`
	AdvertID     string    `json:"advert_id" firestore:"advertId"` // target advert
	FromAdvertID string    `json:"from_advert_id,omitempty" firestore:"fromAdvertId,omitempty"`
	FromUserID   string    `json:"from_user_id" firestore:"fromUserId"`
	ToUserID     string    `json:"to_user_id" firestore:"toUserId"`
	Note         string    `json:"note,omitempty" firestore:"note,omitempty"`
	Status       string    `json:"status" firestore:"status"` // "pending", "accepted", "rejected", "cancelled"
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (r *MatchRequest) IsPending() bool {
	return r.Status == MatchRequestPending
}
