package usecase

import (
	"context"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	advertRepo   repository.AdvertRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	advertRepo repository.AdvertRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		advertRepo:   advertRepo,
	}
}

type FavoriteResponse struct {
	*entity.Favorite
	Advert *entity.Advert `json:"advert,omitempty"`
}

// Add bookmarks an advert for the user. Favoriting the same advert twice is
// a BAD_REQUEST, mirroring the duplicate-pending treatment elsewhere but
// without any pending lifecycle behind it.
func (uc *FavoriteUseCase) Add(ctx context.Context, userID, advertID string) (*FavoriteResponse, error) {
	advert, err := uc.advertRepo.GetByID(ctx, advertID)
	if err != nil {
		return nil, err
	}

	favorite := &entity.Favorite{
		UserID:   userID,
		AdvertID: advert.ID,
	}
	if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, "CONFLICT") {
			return nil, errors.BadRequest("Advert is already in favorites", nil)
		}
		return nil, err
	}

	return &FavoriteResponse{Favorite: favorite, Advert: advert}, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, advertID string) error {
	return uc.favoriteRepo.Delete(ctx, userID, advertID)
}

// List returns the user's favorites, newest first, with each advert attached.
// Favorites whose advert has since been removed are skipped.
func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]*FavoriteResponse, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		advert, err := uc.advertRepo.GetByID(ctx, favorite.AdvertID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		responses = append(responses, &FavoriteResponse{Favorite: favorite, Advert: advert})
	}

	return responses, nil
}

// Check reports whether the user has favorited the advert.
func (uc *FavoriteUseCase) Check(ctx context.Context, userID, advertID string) (bool, error) {
	_, err := uc.favoriteRepo.GetByUserAndAdvert(ctx, userID, advertID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
