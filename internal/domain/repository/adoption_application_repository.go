package repository

import (
	"context"

	"patipazar/internal/domain/entity"
)

type AdoptionApplicationRepository interface {
	// Create persists a new pending application. A pending-state uniqueness
	// constraint on (listingId, applicantUserId) is enforced at the storage
	// layer; a losing concurrent writer gets a CONFLICT error.
	Create(ctx context.Context, application *entity.AdoptionApplication) error

	GetByID(ctx context.Context, id string) (*entity.AdoptionApplication, error)

	GetPending(ctx context.Context, listingID, applicantUserID string) (*entity.AdoptionApplication, error)

	// UpdateStatus persists a state transition and releases the pending
	// uniqueness slot.
	UpdateStatus(ctx context.Context, application *entity.AdoptionApplication) error

	ListByListings(ctx context.Context, listingIDs []string) ([]*entity.AdoptionApplication, error)
	ListByApplicant(ctx context.Context, applicantUserID string) ([]*entity.AdoptionApplication, error)
}
