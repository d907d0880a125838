package entity

import "time"

const (
	AdvertTypeAdoption = "adoption"
	AdvertTypeMating   = "mating"
)

const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)

type Advert struct {
	ID         string    `json:"id" firestore:"id"`
	OwnerID    string    `json:"owner_id" firestore:"ownerId"`
	Name       string    `json:"name" firestore:"name"`
	Species    string    `json:"species" firestore:"species"` // "dog", "cat", "bird", "fish", "rodent", "other"
	Breed      string    `json:"breed,omitempty" firestore:"breed,omitempty"`
	Gender     string    `json:"gender" firestore:"gender"` // "male", "female", "unknown"
	AgeMonths  int       `json:"age_months" firestore:"ageMonths"`
	Bio        string    `json:"bio,omitempty" firestore:"bio,omitempty"`
	AdvertType string    `json:"advert_type" firestore:"advertType"` // "adoption" or "mating"
	Images     []string  `json:"images" firestore:"images"`
	Vaccinated bool      `json:"vaccinated" firestore:"vaccinated"`
	IsActive   bool      `json:"is_active" firestore:"isActive"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
