package repository

import (
	"context"

	"patipazar/internal/domain/entity"
)

type FavoriteRepository interface {
	// Create persists a new favorite. A user favorites an advert at most
	// once; a duplicate create fails with a CONFLICT error.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// GetByUserAndAdvert returns the user's favorite on an advert, or a
	// NOT_FOUND error.
	GetByUserAndAdvert(ctx context.Context, userID, advertID string) (*entity.Favorite, error)

	// Delete removes the user's favorite on an advert, or returns a
	// NOT_FOUND error if there is none.
	Delete(ctx context.Context, userID, advertID string) error

	// ListByUser returns the user's favorites, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)
}
