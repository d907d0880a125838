package usecase

import (
	"context"
	"time"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
	"patipazar/pkg/logger"
)

type MatchRequestUseCase struct {
	matchRequestRepo repository.MatchRequestRepository
	advertRepo       repository.AdvertRepository
	userRepo         repository.UserRepository
	conversationUC   *ConversationUseCase
	notifier         Notifier
}

func NewMatchRequestUseCase(
	matchRequestRepo repository.MatchRequestRepository,
	advertRepo repository.AdvertRepository,
	userRepo repository.UserRepository,
	conversationUC *ConversationUseCase,
	notifier Notifier,
) *MatchRequestUseCase {
	return &MatchRequestUseCase{
		matchRequestRepo: matchRequestRepo,
		advertRepo:       advertRepo,
		userRepo:         userRepo,
		conversationUC:   conversationUC,
		notifier:         notifier,
	}
}

type ProposeMatchInput struct {
	TargetAdvertID    string `json:"target_advert_id" validate:"required"`
	RequesterAdvertID string `json:"requester_advert_id"`
	Note              string `json:"note" validate:"max=500"`
}

type MatchRequestResponse struct {
	*entity.MatchRequest
	FromUser       *entity.User   `json:"from_user,omitempty"`
	ToUser         *entity.User   `json:"to_user,omitempty"`
	Advert         *entity.Advert `json:"advert,omitempty"`
	FromAdvert     *entity.Advert `json:"from_advert,omitempty"`
	ConversationID string         `json:"conversation_id,omitempty"`
}

// Propose sends a mating request from one of the requester's mating adverts
// to a target mating advert. At most one pending request per
// (requester, target advert) exists; a repeated propose while one is pending
// returns the existing request unchanged.
func (uc *MatchRequestUseCase) Propose(ctx context.Context, fromUserID string, input ProposeMatchInput) (*MatchRequestResponse, error) {
	target, err := uc.advertRepo.GetByID(ctx, input.TargetAdvertID)
	if err != nil {
		return nil, err
	}
	if !target.IsActive {
		return nil, errors.NotFound("Advert", nil)
	}
	if target.AdvertType != entity.AdvertTypeMating {
		return nil, errors.InvalidAdvertType("Match requests can only target mating adverts")
	}
	if target.OwnerID == fromUserID {
		return nil, errors.SelfAction("You cannot send a match request to your own advert")
	}

	fromAdvert, err := uc.resolveRequesterAdvert(ctx, fromUserID, input.RequesterAdvertID)
	if err != nil {
		return nil, err
	}

	if err := checkCompatibility(fromAdvert, target); err != nil {
		return nil, err
	}

	if existing, err := uc.matchRequestRepo.GetPending(ctx, fromUserID, target.ID); err == nil {
		return uc.shape(ctx, existing), nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	request := &entity.MatchRequest{
		AdvertID:     target.ID,
		FromAdvertID: fromAdvert.ID,
		FromUserID:   fromUserID,
		ToUserID:     target.OwnerID,
		Note:         input.Note,
		Status:       entity.MatchRequestPending,
	}
	if err := uc.matchRequestRepo.Create(ctx, request); err != nil {
		if errors.Is(err, "CONFLICT") {
			// A concurrent propose won the pending slot; hand back its request.
			winner, getErr := uc.matchRequestRepo.GetPending(ctx, fromUserID, target.ID)
			if getErr != nil {
				return nil, getErr
			}
			return uc.shape(ctx, winner), nil
		}
		return nil, err
	}

	response := uc.shape(ctx, request)
	uc.notifier.NotifyUser(target.OwnerID, EventMatchRequest, map[string]interface{}{
		"request": response,
	})

	return response, nil
}

// resolveRequesterAdvert picks the advert the request is made with. An
// explicit id must belong to the requester and be an active mating advert;
// otherwise the requester's most recently updated active mating advert is
// used.
func (uc *MatchRequestUseCase) resolveRequesterAdvert(ctx context.Context, fromUserID, requesterAdvertID string) (*entity.Advert, error) {
	if requesterAdvertID != "" {
		advert, err := uc.advertRepo.GetByID(ctx, requesterAdvertID)
		if err != nil {
			return nil, err
		}
		if advert.OwnerID != fromUserID {
			return nil, errors.Forbidden("The requester advert does not belong to you", nil)
		}
		if !advert.IsActive || advert.AdvertType != entity.AdvertTypeMating {
			return nil, errors.NoQualifyingAdvert("The requester advert must be an active mating advert")
		}
		return advert, nil
	}

	adverts, err := uc.advertRepo.ListByOwner(ctx, fromUserID, true)
	if err != nil {
		return nil, err
	}

	var best *entity.Advert
	for _, advert := range adverts {
		if advert.AdvertType != entity.AdvertTypeMating {
			continue
		}
		if best == nil || advert.UpdatedAt.After(best.UpdatedAt) {
			best = advert
		}
	}
	if best == nil {
		return nil, errors.NoQualifyingAdvert("You need an active mating advert to send a match request")
	}

	return best, nil
}

// checkCompatibility enforces same species and opposite gender. Unset species
// and unknown gender on either side do not block the request.
func checkCompatibility(from, target *entity.Advert) error {
	if from.Species != "" && target.Species != "" && from.Species != target.Species {
		return errors.IncompatibleAdvert("The adverts are for different species")
	}

	fg, tg := from.Gender, target.Gender
	if fg != "" && fg != entity.GenderUnknown && tg != "" && tg != entity.GenderUnknown && fg == tg {
		return errors.IncompatibleAdvert("The adverts have the same gender")
	}

	return nil
}

// Respond moves a pending request to accepted, rejected or cancelled.
// Accepting opens the matching conversation for the pair.
func (uc *MatchRequestUseCase) Respond(ctx context.Context, requestID, actingUserID, action string) (*MatchRequestResponse, error) {
	request, err := uc.matchRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var nextStatus string
	switch action {
	case "accept":
		if request.ToUserID != actingUserID {
			return nil, errors.Forbidden("Only the advert owner can accept this request", nil)
		}
		nextStatus = entity.MatchRequestAccepted
	case "reject":
		if request.ToUserID != actingUserID {
			return nil, errors.Forbidden("Only the advert owner can reject this request", nil)
		}
		nextStatus = entity.MatchRequestRejected
	case "cancel":
		if request.FromUserID != actingUserID {
			return nil, errors.Forbidden("Only the requester can cancel this request", nil)
		}
		nextStatus = entity.MatchRequestCancelled
	default:
		return nil, errors.BadRequest("Unknown action: "+action, nil)
	}

	if !request.IsPending() {
		return nil, errors.InvalidStatus("This request has already been " + request.Status)
	}

	request.Status = nextStatus
	request.UpdatedAt = time.Now()
	if err := uc.matchRequestRepo.UpdateStatus(ctx, request); err != nil {
		return nil, err
	}

	response := uc.shape(ctx, request)

	switch nextStatus {
	case entity.MatchRequestAccepted:
		ensured, err := uc.conversationUC.EnsureConversation(ctx, EnsureConversationInput{
			UserA:           request.FromUserID,
			UserB:           request.ToUserID,
			ContextKind:     entity.ContextMatching,
			ContextAdvertID: request.AdvertID,
			SystemText:      "Eslestirme istegi kabul edildi.",
			ActingUserID:    actingUserID,
		})
		if err != nil {
			// The acceptance is durable; report the conversation failure
			// without rolling the status back.
			logger.Error("Failed to open conversation for request %s: %v", request.ID, err)
		} else {
			response.ConversationID = ensured.Conversation.ID
			payload := map[string]interface{}{
				"request_id":      request.ID,
				"conversation_id": ensured.Conversation.ID,
			}
			uc.notifier.NotifyUser(request.FromUserID, EventMatchAccepted, payload)
			uc.notifier.NotifyUser(request.ToUserID, EventConversationCreated, payload)
			uc.notifier.NotifyConversation(ensured.Conversation.ID, EventMessageNew, map[string]interface{}{
				"message": ensured.SystemMessage,
			})
		}
	case entity.MatchRequestRejected:
		uc.notifier.NotifyUser(request.FromUserID, EventMatchRejected, map[string]interface{}{
			"request_id": request.ID,
		})
	case entity.MatchRequestCancelled:
		uc.notifier.NotifyUser(request.ToUserID, EventMatchCancelled, map[string]interface{}{
			"request_id": request.ID,
		})
	}

	return response, nil
}

// Inbox lists requests addressed to the user, newest first.
func (uc *MatchRequestUseCase) Inbox(ctx context.Context, userID string) ([]*MatchRequestResponse, error) {
	requests, err := uc.matchRequestRepo.ListByToUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.shapeAll(ctx, requests), nil
}

// Outbox lists requests the user has sent, newest first.
func (uc *MatchRequestUseCase) Outbox(ctx context.Context, userID string) ([]*MatchRequestResponse, error) {
	requests, err := uc.matchRequestRepo.ListByFromUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.shapeAll(ctx, requests), nil
}

func (uc *MatchRequestUseCase) shapeAll(ctx context.Context, requests []*entity.MatchRequest) []*MatchRequestResponse {
	responses := make([]*MatchRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, uc.shape(ctx, request))
	}
	return responses
}

func (uc *MatchRequestUseCase) shape(ctx context.Context, request *entity.MatchRequest) *MatchRequestResponse {
	response := &MatchRequestResponse{MatchRequest: request}

	if user, err := uc.userRepo.GetByID(ctx, request.FromUserID); err == nil {
		response.FromUser = user
	}
	if user, err := uc.userRepo.GetByID(ctx, request.ToUserID); err == nil {
		response.ToUser = user
	}
	if advert, err := uc.advertRepo.GetByID(ctx, request.AdvertID); err == nil {
		response.Advert = advert
	}
	if request.FromAdvertID != "" {
		if advert, err := uc.advertRepo.GetByID(ctx, request.FromAdvertID); err == nil {
			response.FromAdvert = advert
		}
	}

	return response
}
