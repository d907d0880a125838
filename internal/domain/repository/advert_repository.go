package repository

import (
	"context"

	"patipazar/internal/domain/entity"
)

type AdvertFeedFilter struct {
	ViewerID         string
	ExcludeAdvertIDs []string
	Page             int
	Limit            int
}

type MatingProfileFilter struct {
	ViewerID string
	Species  string
	Gender   string
}

type AdvertRepository interface {
	Create(ctx context.Context, advert *entity.Advert) error
	GetByID(ctx context.Context, id string) (*entity.Advert, error)
	Update(ctx context.Context, advert *entity.Advert) error
	ListByOwner(ctx context.Context, ownerID string, onlyActive bool) ([]*entity.Advert, error)
	ListFeed(ctx context.Context, filter AdvertFeedFilter) ([]*entity.Advert, int64, error)
	ListMatingProfiles(ctx context.Context, filter MatingProfileFilter) ([]*entity.Advert, error)
}
