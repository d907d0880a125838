package entity

import "time"

const (
	ApplicationPending   = "PENDING"
	ApplicationAccepted  = "ACCEPTED"
	ApplicationRejected  = "REJECTED"
	ApplicationCancelled = "CANCELLED"
)

type AdoptionApplication struct {
	ID              string     `json:"id" firestore:"id"`
	ListingID       string     `json:"listing_id" firestore:"listingId"`
	ApplicantUserID string     `json:"applicant_user_id" firestore:"applicantUserId"`
	Status          string     `json:"status" firestore:"status"` // "PENDING", "ACCEPTED", "REJECTED", "CANCELLED"
	Note            string     `json:"note,omitempty" firestore:"note,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty" firestore:"respondedAt,omitempty"`
	CreatedAt       time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time  `json:"updated_at" firestore:"updatedAt"`
}

func (a *AdoptionApplication) IsPending() bool {
	return a.Status == ApplicationPending
}
