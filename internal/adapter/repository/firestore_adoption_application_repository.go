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

type firestoreAdoptionApplicationRepository struct {
	client *firestore.Client
}

func NewFirestoreAdoptionApplicationRepository(client *firestore.Client) repository.AdoptionApplicationRepository {
	return &firestoreAdoptionApplicationRepository{
		client: client,
	}
}

func applicationPendingSlotID(listingID, applicantUserID string) string {
	return applicantUserID + "_" + listingID
}

// Create claims the pending slot and writes the application in one
// transaction, mirroring the match request repository. A losing concurrent
// applicant gets a CONFLICT error.
func (r *firestoreAdoptionApplicationRepository) Create(ctx context.Context, application *entity.AdoptionApplication) error {
	if application.ID == "" {
		application.ID = uuid.New().String()
	}

	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	application.Status = entity.ApplicationPending

	slotRef := r.client.Collection("adoption_application_pending").
		Doc(applicationPendingSlotID(application.ListingID, application.ApplicantUserID))
	applicationRef := r.client.Collection("adoption_applications").Doc(application.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(slotRef); err == nil {
			return errors.Conflict("Application already pending")
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Create(slotRef, pendingSlot{RequestID: application.ID, CreatedAt: now}); err != nil {
			return err
		}
		return tx.Set(applicationRef, application)
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to create adoption application", err)
	}

	return nil
}

func (r *firestoreAdoptionApplicationRepository) GetByID(ctx context.Context, id string) (*entity.AdoptionApplication, error) {
	doc, err := r.client.Collection("adoption_applications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Adoption application", err)
		}
		return nil, errors.Internal("Failed to get adoption application", err)
	}

	var application entity.AdoptionApplication
	if err := doc.DataTo(&application); err != nil {
		return nil, errors.Internal("Failed to parse adoption application data", err)
	}

	return &application, nil
}

func (r *firestoreAdoptionApplicationRepository) GetPending(ctx context.Context, listingID, applicantUserID string) (*entity.AdoptionApplication, error) {
	slotDoc, err := r.client.Collection("adoption_application_pending").
		Doc(applicationPendingSlotID(listingID, applicantUserID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Pending application", err)
		}
		return nil, errors.Internal("Failed to get pending slot", err)
	}

	var slot pendingSlot
	if err := slotDoc.DataTo(&slot); err != nil {
		return nil, errors.Internal("Failed to parse pending slot", err)
	}

	return r.GetByID(ctx, slot.RequestID)
}

func (r *firestoreAdoptionApplicationRepository) UpdateStatus(ctx context.Context, application *entity.AdoptionApplication) error {
	application.UpdatedAt = time.Now()

	slotRef := r.client.Collection("adoption_application_pending").
		Doc(applicationPendingSlotID(application.ListingID, application.ApplicantUserID))
	applicationRef := r.client.Collection("adoption_applications").Doc(application.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(applicationRef, application); err != nil {
			return err
		}
		if application.Status != entity.ApplicationPending {
			return tx.Delete(slotRef)
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to update adoption application", err)
	}

	return nil
}

func (r *firestoreAdoptionApplicationRepository) ListByListings(ctx context.Context, listingIDs []string) ([]*entity.AdoptionApplication, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	var applications []*entity.AdoptionApplication

	// Firestore "in" queries cap the value list, so chunk the listing ids.
	const chunkSize = 10
	for start := 0; start < len(listingIDs); start += chunkSize {
		end := start + chunkSize
		if end > len(listingIDs) {
			end = len(listingIDs)
		}

		docs, err := r.client.Collection("adoption_applications").
			Where("listingId", "in", listingIDs[start:end]).Documents(ctx).GetAll()
		if err != nil {
			logger.Error("Firestore error while fetching adoption applications: %v", err)
			return nil, errors.Internal("Failed to fetch adoption applications", err)
		}

		for _, doc := range docs {
			var application entity.AdoptionApplication
			if err := doc.DataTo(&application); err != nil {
				continue // Skip malformed documents
			}
			applications = append(applications, &application)
		}
	}

	sortApplications(applications)

	return applications, nil
}

func (r *firestoreAdoptionApplicationRepository) ListByApplicant(ctx context.Context, applicantUserID string) ([]*entity.AdoptionApplication, error) {
	docs, err := r.client.Collection("adoption_applications").
		Where("applicantUserId", "==", applicantUserID).Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching applications for %s: %v", applicantUserID, err)
		return nil, errors.Internal("Failed to fetch adoption applications", err)
	}

	var applications []*entity.AdoptionApplication
	for _, doc := range docs {
		var application entity.AdoptionApplication
		if err := doc.DataTo(&application); err != nil {
			continue
		}
		applications = append(applications, &application)
	}

	sortApplications(applications)

	return applications, nil
}

func sortApplications(applications []*entity.AdoptionApplication) {
	sort.Slice(applications, func(i, j int) bool {
		return applications[i].CreatedAt.After(applications[j].CreatedAt)
	})
}
