package entity

import "time"

// A Favorite bookmarks an advert for a user. A user favorites an advert at
// most once.
type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	AdvertID  string    `json:"advert_id" firestore:"advertId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
