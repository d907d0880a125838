package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
)

type firestoreInteractionRepository struct {
	client *firestore.Client
}

func NewFirestoreInteractionRepository(client *firestore.Client) repository.InteractionRepository {
	return &firestoreInteractionRepository{
		client: client,
	}
}

// interactionDocID makes the (user, advert) uniqueness constraint a document
// identity, so duplicate swipes fail on Create instead of racing a query.
func interactionDocID(userID, advertID string) string {
	return userID + "_" + advertID
}

func (r *firestoreInteractionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	interaction.ID = interactionDocID(interaction.FromUserID, interaction.ToAdvertID)
	interaction.CreatedAt = time.Now()

	_, err := r.client.Collection("interactions").Doc(interaction.ID).Create(ctx, interaction)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Interaction already recorded")
		}
		return errors.Internal("Failed to create interaction", err)
	}

	return nil
}

func (r *firestoreInteractionRepository) GetByUserAndAdvert(ctx context.Context, userID, advertID string) (*entity.Interaction, error) {
	doc, err := r.client.Collection("interactions").Doc(interactionDocID(userID, advertID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Interaction", err)
		}
		return nil, errors.Internal("Failed to get interaction", err)
	}

	var interaction entity.Interaction
	if err := doc.DataTo(&interaction); err != nil {
		return nil, errors.Internal("Failed to parse interaction data", err)
	}

	return &interaction, nil
}

func (r *firestoreInteractionRepository) FindLikeOntoAdverts(ctx context.Context, fromUserID string, advertIDs []string) (*entity.Interaction, error) {
	if len(advertIDs) == 0 {
		return nil, errors.NotFound("Interaction", nil)
	}

	wanted := make(map[string]bool, len(advertIDs))
	for _, id := range advertIDs {
		wanted[id] = true
	}

	query := r.client.Collection("interactions").
		Where("fromUserId", "==", fromUserID).
		Where("type", "==", entity.InteractionLike)

	iter := query.Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate interactions", err)
		}

		var interaction entity.Interaction
		if err := doc.DataTo(&interaction); err != nil {
			continue
		}
		if wanted[interaction.ToAdvertID] {
			return &interaction, nil
		}
	}

	return nil, errors.NotFound("Interaction", nil)
}

func (r *firestoreInteractionRepository) ListAdvertIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query := r.client.Collection("interactions").Where("fromUserId", "==", userID)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to fetch interactions", err)
	}

	var advertIDs []string
	for _, doc := range docs {
		var interaction entity.Interaction
		if err := doc.DataTo(&interaction); err != nil {
			continue
		}
		advertIDs = append(advertIDs, interaction.ToAdvertID)
	}

	return advertIDs, nil
}
