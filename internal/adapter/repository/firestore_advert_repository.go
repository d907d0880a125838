package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
	"patipazar/pkg/logger"
)

type firestoreAdvertRepository struct {
	client *firestore.Client
}

func NewFirestoreAdvertRepository(client *firestore.Client) repository.AdvertRepository {
	return &firestoreAdvertRepository{
		client: client,
	}
}

func (r *firestoreAdvertRepository) Create(ctx context.Context, advert *entity.Advert) error {
	if advert.ID == "" {
		advert.ID = uuid.New().String()
	}

	now := time.Now()
	advert.CreatedAt = now
	advert.UpdatedAt = now

	_, err := r.client.Collection("adverts").Doc(advert.ID).Set(ctx, advert)
	if err != nil {
		return errors.Internal("Failed to create advert", err)
	}

	return nil
}

func (r *firestoreAdvertRepository) GetByID(ctx context.Context, id string) (*entity.Advert, error) {
	doc, err := r.client.Collection("adverts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Advert", err)
		}
		return nil, errors.Internal("Failed to get advert", err)
	}

	var advert entity.Advert
	if err := doc.DataTo(&advert); err != nil {
		return nil, errors.Internal("Failed to parse advert data", err)
	}

	return &advert, nil
}

func (r *firestoreAdvertRepository) Update(ctx context.Context, advert *entity.Advert) error {
	advert.UpdatedAt = time.Now()

	_, err := r.client.Collection("adverts").Doc(advert.ID).Set(ctx, advert)
	if err != nil {
		return errors.Internal("Failed to update advert", err)
	}

	return nil
}

func (r *firestoreAdvertRepository) ListByOwner(ctx context.Context, ownerID string, onlyActive bool) ([]*entity.Advert, error) {
	query := r.client.Collection("adverts").Where("ownerId", "==", ownerID)
	if onlyActive {
		query = query.Where("isActive", "==", true)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching adverts for owner %s: %v", ownerID, err)
		return nil, errors.Internal("Failed to fetch adverts", err)
	}

	var adverts []*entity.Advert
	for _, doc := range docs {
		var advert entity.Advert
		if err := doc.DataTo(&advert); err != nil {
			continue // Skip malformed documents
		}
		adverts = append(adverts, &advert)
	}

	sort.Slice(adverts, func(i, j int) bool {
		return adverts[i].UpdatedAt.After(adverts[j].UpdatedAt)
	})

	return adverts, nil
}

func (r *firestoreAdvertRepository) ListFeed(ctx context.Context, filter repository.AdvertFeedFilter) ([]*entity.Advert, int64, error) {
	query := r.client.Collection("adverts").Where("isActive", "==", true).OrderBy("createdAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching advert feed: %v", err)
		return nil, 0, errors.Internal("Failed to fetch advert feed", err)
	}

	excluded := make(map[string]bool, len(filter.ExcludeAdvertIDs))
	for _, id := range filter.ExcludeAdvertIDs {
		excluded[id] = true
	}

	var candidates []*entity.Advert
	for _, doc := range docs {
		var advert entity.Advert
		if err := doc.DataTo(&advert); err != nil {
			continue
		}
		if advert.OwnerID == filter.ViewerID || excluded[advert.ID] {
			continue
		}
		candidates = append(candidates, &advert)
	}

	total := int64(len(candidates))

	// Pagination in memory, same as chat listing.
	start := (filter.Page - 1) * filter.Limit
	if start < 0 {
		start = 0
	}
	if start > len(candidates) {
		start = len(candidates)
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > len(candidates) {
		end = len(candidates)
	}

	return candidates[start:end], total, nil
}

func (r *firestoreAdvertRepository) ListMatingProfiles(ctx context.Context, filter repository.MatingProfileFilter) ([]*entity.Advert, error) {
	query := r.client.Collection("adverts").
		Where("advertType", "==", entity.AdvertTypeMating).
		Where("isActive", "==", true)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching mating profiles: %v", err)
		return nil, errors.Internal("Failed to fetch mating profiles", err)
	}

	var adverts []*entity.Advert
	for _, doc := range docs {
		var advert entity.Advert
		if err := doc.DataTo(&advert); err != nil {
			continue
		}
		if advert.OwnerID == filter.ViewerID {
			continue
		}
		if filter.Species != "" && advert.Species != filter.Species {
			continue
		}
		if filter.Gender != "" && advert.Gender != filter.Gender {
			continue
		}
		adverts = append(adverts, &advert)
	}

	sort.Slice(adverts, func(i, j int) bool {
		return adverts[i].CreatedAt.After(adverts[j].CreatedAt)
	})

	return adverts, nil
}
