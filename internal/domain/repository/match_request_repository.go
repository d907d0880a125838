package repository

import (
	"context"

	"patipazar/internal/domain/entity"
)

type MatchRequestRepository interface {
	// Create persists a new pending request. A pending-state uniqueness
	// constraint on (fromUserId, advertId) is enforced at the storage layer;
	// a losing concurrent writer gets a CONFLICT error.
	Create(ctx context.Context, request *entity.MatchRequest) error

	GetByID(ctx context.Context, id string) (*entity.MatchRequest, error)

	// GetPending returns the pending request from a user to an advert, or a
	// NOT_FOUND error.
	GetPending(ctx context.Context, fromUserID, advertID string) (*entity.MatchRequest, error)

	// UpdateStatus persists a state transition and releases the pending
	// uniqueness slot so the user may re-request after rejection/cancel.
	UpdateStatus(ctx context.Context, request *entity.MatchRequest) error

	ListByToUser(ctx context.Context, toUserID string) ([]*entity.MatchRequest, error)
	ListByFromUser(ctx context.Context, fromUserID string) ([]*entity.MatchRequest, error)

	// ListByFromUserAndAdverts returns the requester's requests targeting any
	// of the given adverts, used to annotate discovery profiles.
	ListByFromUserAndAdverts(ctx context.Context, fromUserID string, advertIDs []string) ([]*entity.MatchRequest, error)
}
