package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

// favoriteDocID makes the (user, advert) uniqueness constraint a document
// identity, the same way interactions do.
func favoriteDocID(userID, advertID string) string {
	return userID + "_" + advertID
}

func (r *firestoreFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favorite.ID = favoriteDocID(favorite.UserID, favorite.AdvertID)
	favorite.CreatedAt = time.Now()

	_, err := r.client.Collection("favorites").Doc(favorite.ID).Create(ctx, favorite)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Advert already favorited")
		}
		return errors.Internal("Failed to create favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) GetByUserAndAdvert(ctx context.Context, userID, advertID string) (*entity.Favorite, error) {
	doc, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, advertID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Favorite", err)
		}
		return nil, errors.Internal("Failed to get favorite", err)
	}

	var favorite entity.Favorite
	if err := doc.DataTo(&favorite); err != nil {
		return nil, errors.Internal("Failed to parse favorite data", err)
	}

	return &favorite, nil
}

func (r *firestoreFavoriteRepository) Delete(ctx context.Context, userID, advertID string) error {
	ref := r.client.Collection("favorites").Doc(favoriteDocID(userID, advertID))

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Favorite", err)
		}
		return errors.Internal("Failed to get favorite", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	query := r.client.Collection("favorites").Where("userId", "==", userID)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to fetch favorites", err)
	}

	favorites := make([]*entity.Favorite, 0, len(docs))
	for _, doc := range docs {
		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			continue
		}
		favorites = append(favorites, &favorite)
	}

	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})

	return favorites, nil
}
