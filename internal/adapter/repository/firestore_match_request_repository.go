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

type firestoreMatchRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreMatchRequestRepository(client *firestore.Client) repository.MatchRequestRepository {
	return &firestoreMatchRequestRepository{
		client: client,
	}
}

type pendingSlot struct {
	RequestID string    `firestore:"requestId"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func matchPendingSlotID(fromUserID, advertID string) string {
	return fromUserID + "_" + advertID
}

// Create claims the pending slot and writes the request in one transaction.
// The slot document is the pending-scoped uniqueness constraint: two
// concurrent proposals for the same (user, advert) pair cannot both commit.
func (r *firestoreMatchRequestRepository) Create(ctx context.Context, request *entity.MatchRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	request.Status = entity.MatchRequestPending

	slotRef := r.client.Collection("match_request_pending").Doc(matchPendingSlotID(request.FromUserID, request.AdvertID))
	requestRef := r.client.Collection("match_requests").Doc(request.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(slotRef); err == nil {
			return errors.Conflict("Match request already pending")
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Create(slotRef, pendingSlot{RequestID: request.ID, CreatedAt: now}); err != nil {
			return err
		}
		return tx.Set(requestRef, request)
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to create match request", err)
	}

	return nil
}

func (r *firestoreMatchRequestRepository) GetByID(ctx context.Context, id string) (*entity.MatchRequest, error) {
	doc, err := r.client.Collection("match_requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Match request", err)
		}
		return nil, errors.Internal("Failed to get match request", err)
	}

	var request entity.MatchRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse match request data", err)
	}

	return &request, nil
}

func (r *firestoreMatchRequestRepository) GetPending(ctx context.Context, fromUserID, advertID string) (*entity.MatchRequest, error) {
	slotDoc, err := r.client.Collection("match_request_pending").Doc(matchPendingSlotID(fromUserID, advertID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Pending match request", err)
		}
		return nil, errors.Internal("Failed to get pending slot", err)
	}

	var slot pendingSlot
	if err := slotDoc.DataTo(&slot); err != nil {
		return nil, errors.Internal("Failed to parse pending slot", err)
	}

	return r.GetByID(ctx, slot.RequestID)
}

// UpdateStatus writes the transition and releases the pending slot when the
// request leaves the pending state, so the user may re-request later.
func (r *firestoreMatchRequestRepository) UpdateStatus(ctx context.Context, request *entity.MatchRequest) error {
	request.UpdatedAt = time.Now()

	slotRef := r.client.Collection("match_request_pending").Doc(matchPendingSlotID(request.FromUserID, request.AdvertID))
	requestRef := r.client.Collection("match_requests").Doc(request.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(requestRef, request); err != nil {
			return err
		}
		if request.Status != entity.MatchRequestPending {
			return tx.Delete(slotRef)
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to update match request", err)
	}

	return nil
}

func (r *firestoreMatchRequestRepository) ListByToUser(ctx context.Context, toUserID string) ([]*entity.MatchRequest, error) {
	return r.list(ctx, "toUserId", toUserID)
}

func (r *firestoreMatchRequestRepository) ListByFromUser(ctx context.Context, fromUserID string) ([]*entity.MatchRequest, error) {
	return r.list(ctx, "fromUserId", fromUserID)
}

func (r *firestoreMatchRequestRepository) list(ctx context.Context, field, value string) ([]*entity.MatchRequest, error) {
	docs, err := r.client.Collection("match_requests").Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching match requests (%s=%s): %v", field, value, err)
		return nil, errors.Internal("Failed to fetch match requests", err)
	}

	var requests []*entity.MatchRequest
	for _, doc := range docs {
		var request entity.MatchRequest
		if err := doc.DataTo(&request); err != nil {
			continue // Skip malformed documents
		}
		requests = append(requests, &request)
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	return requests, nil
}

func (r *firestoreMatchRequestRepository) ListByFromUserAndAdverts(ctx context.Context, fromUserID string, advertIDs []string) ([]*entity.MatchRequest, error) {
	if len(advertIDs) == 0 {
		return nil, nil
	}

	wanted := make(map[string]bool, len(advertIDs))
	for _, id := range advertIDs {
		wanted[id] = true
	}

	all, err := r.ListByFromUser(ctx, fromUserID)
	if err != nil {
		return nil, err
	}

	var requests []*entity.MatchRequest
	for _, request := range all {
		if wanted[request.AdvertID] {
			requests = append(requests, request)
		}
	}

	return requests, nil
}
