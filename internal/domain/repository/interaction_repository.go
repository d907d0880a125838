package repository

import (
	"context"

	"patipazar/internal/domain/entity"
)

type InteractionRepository interface {
	// Create persists a new interaction. At most one interaction exists per
	// (user, advert) pair; a duplicate create fails with a CONFLICT error.
	Create(ctx context.Context, interaction *entity.Interaction) error

	// GetByUserAndAdvert returns the interaction a user recorded on an
	// advert, or a NOT_FOUND error.
	GetByUserAndAdvert(ctx context.Context, userID, advertID string) (*entity.Interaction, error)

	// FindLikeOntoAdverts returns a like from the given user onto any of the
	// given adverts, or a NOT_FOUND error. Used for mutual-like detection.
	FindLikeOntoAdverts(ctx context.Context, fromUserID string, advertIDs []string) (*entity.Interaction, error)

	// ListAdvertIDsByUser returns every advert id the user has interacted
	// with, for feed exclusion.
	ListAdvertIDsByUser(ctx context.Context, userID string) ([]string, error)
}
