package usecase

import (
	"context"
	"time"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
	"patipazar/pkg/logger"
)

type AdoptionApplicationUseCase struct {
	applicationRepo repository.AdoptionApplicationRepository
	advertRepo      repository.AdvertRepository
	userRepo        repository.UserRepository
	conversationUC  *ConversationUseCase
	notifier        Notifier
}

func NewAdoptionApplicationUseCase(
	applicationRepo repository.AdoptionApplicationRepository,
	advertRepo repository.AdvertRepository,
	userRepo repository.UserRepository,
	conversationUC *ConversationUseCase,
	notifier Notifier,
) *AdoptionApplicationUseCase {
	return &AdoptionApplicationUseCase{
		applicationRepo: applicationRepo,
		advertRepo:      advertRepo,
		userRepo:        userRepo,
		conversationUC:  conversationUC,
		notifier:        notifier,
	}
}

type ApplyInput struct {
	ListingID string `json:"listing_id" validate:"required"`
	Note      string `json:"note" validate:"max=1000"`
}

type ApplicationResponse struct {
	*entity.AdoptionApplication
	Applicant      *entity.User   `json:"applicant,omitempty"`
	Listing        *entity.Advert `json:"listing,omitempty"`
	ConversationID string         `json:"conversation_id,omitempty"`
}

// Apply submits an adoption application for a listing. Unlike match
// requests, a duplicate pending application is an error: the caller gets a
// DUPLICATE_PENDING conflict with the existing application attached.
func (uc *AdoptionApplicationUseCase) Apply(ctx context.Context, applicantID string, input ApplyInput) (*ApplicationResponse, error) {
	listing, err := uc.advertRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsActive {
		return nil, errors.NotFound("Advert", nil)
	}
	if listing.AdvertType != entity.AdvertTypeAdoption {
		return nil, errors.InvalidAdvertType("Applications can only target adoption listings")
	}
	if listing.OwnerID == applicantID {
		return nil, errors.SelfAction("You cannot apply to your own listing")
	}

	if existing, err := uc.applicationRepo.GetPending(ctx, listing.ID, applicantID); err == nil {
		return nil, errors.DuplicatePending("You already have a pending application for this listing").
			WithDetails(uc.shape(ctx, existing))
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	application := &entity.AdoptionApplication{
		ListingID:       listing.ID,
		ApplicantUserID: applicantID,
		Note:            input.Note,
		Status:          entity.ApplicationPending,
	}
	if err := uc.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, "CONFLICT") {
			winner, getErr := uc.applicationRepo.GetPending(ctx, listing.ID, applicantID)
			if getErr != nil {
				return nil, getErr
			}
			return nil, errors.DuplicatePending("You already have a pending application for this listing").
				WithDetails(uc.shape(ctx, winner))
		}
		return nil, err
	}

	response := uc.shape(ctx, application)
	uc.notifier.NotifyUser(listing.OwnerID, EventApplicationNew, map[string]interface{}{
		"application": response,
	})

	return response, nil
}

// Respond lets the listing owner accept or reject a pending application.
// Accepting opens the adoption conversation between owner and applicant.
func (uc *AdoptionApplicationUseCase) Respond(ctx context.Context, applicationID, actingUserID, action string) (*ApplicationResponse, error) {
	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	listing, err := uc.advertRepo.GetByID(ctx, application.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != actingUserID {
		return nil, errors.Forbidden("Only the listing owner can respond to this application", nil)
	}

	var nextStatus string
	switch action {
	case "accept":
		nextStatus = entity.ApplicationAccepted
	case "reject":
		nextStatus = entity.ApplicationRejected
	default:
		return nil, errors.BadRequest("Unknown action: "+action, nil)
	}

	if !application.IsPending() {
		return nil, errors.InvalidStatus("This application has already been " + application.Status)
	}

	now := time.Now()
	application.Status = nextStatus
	application.RespondedAt = &now
	application.UpdatedAt = now
	if err := uc.applicationRepo.UpdateStatus(ctx, application); err != nil {
		return nil, err
	}

	response := uc.shape(ctx, application)

	if nextStatus == entity.ApplicationAccepted {
		ensured, err := uc.conversationUC.EnsureConversation(ctx, EnsureConversationInput{
			UserA:           listing.OwnerID,
			UserB:           application.ApplicantUserID,
			ContextKind:     entity.ContextAdoption,
			ContextAdvertID: listing.ID,
			SystemText:      "Sahiplendirme basvurusu kabul edildi.",
			ActingUserID:    actingUserID,
		})
		if err != nil {
			logger.Error("Failed to open conversation for application %s: %v", application.ID, err)
		} else {
			response.ConversationID = ensured.Conversation.ID
			payload := map[string]interface{}{
				"application_id":  application.ID,
				"conversation_id": ensured.Conversation.ID,
			}
			uc.notifier.NotifyUser(application.ApplicantUserID, EventApplicationAccepted, payload)
			uc.notifier.NotifyUser(listing.OwnerID, EventConversationCreated, payload)
			uc.notifier.NotifyConversation(ensured.Conversation.ID, EventMessageNew, map[string]interface{}{
				"message": ensured.SystemMessage,
			})
		}
	} else {
		uc.notifier.NotifyUser(application.ApplicantUserID, EventApplicationRejected, map[string]interface{}{
			"application_id": application.ID,
		})
	}

	return response, nil
}

// Inbox lists applications across all of the owner's adoption listings,
// newest first.
func (uc *AdoptionApplicationUseCase) Inbox(ctx context.Context, ownerID string) ([]*ApplicationResponse, error) {
	adverts, err := uc.advertRepo.ListByOwner(ctx, ownerID, false)
	if err != nil {
		return nil, err
	}

	listingIDs := make([]string, 0, len(adverts))
	for _, advert := range adverts {
		if advert.AdvertType == entity.AdvertTypeAdoption {
			listingIDs = append(listingIDs, advert.ID)
		}
	}
	if len(listingIDs) == 0 {
		return []*ApplicationResponse{}, nil
	}

	applications, err := uc.applicationRepo.ListByListings(ctx, listingIDs)
	if err != nil {
		return nil, err
	}

	return uc.shapeAll(ctx, applications), nil
}

// Sent lists the applications the user has submitted, newest first.
func (uc *AdoptionApplicationUseCase) Sent(ctx context.Context, applicantID string) ([]*ApplicationResponse, error) {
	applications, err := uc.applicationRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return uc.shapeAll(ctx, applications), nil
}

func (uc *AdoptionApplicationUseCase) shapeAll(ctx context.Context, applications []*entity.AdoptionApplication) []*ApplicationResponse {
	responses := make([]*ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, uc.shape(ctx, application))
	}
	return responses
}

func (uc *AdoptionApplicationUseCase) shape(ctx context.Context, application *entity.AdoptionApplication) *ApplicationResponse {
	response := &ApplicationResponse{AdoptionApplication: application}

	if user, err := uc.userRepo.GetByID(ctx, application.ApplicantUserID); err == nil {
		response.Applicant = user
	}
	if advert, err := uc.advertRepo.GetByID(ctx, application.ListingID); err == nil {
		response.Listing = advert
	}

	return response
}
