package usecase

import (
	"context"
	"time"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/internal/infrastructure/ratelimit"
	"patipazar/pkg/errors"
	"patipazar/pkg/logger"
)

type InteractionUseCase struct {
	interactionRepo repository.InteractionRepository
	advertRepo      repository.AdvertRepository
	userRepo        repository.UserRepository
	conversationUC  *ConversationUseCase
	notifier        Notifier
	rateLimiter     *ratelimit.RateLimiter
}

func NewInteractionUseCase(
	interactionRepo repository.InteractionRepository,
	advertRepo repository.AdvertRepository,
	userRepo repository.UserRepository,
	conversationUC *ConversationUseCase,
	notifier Notifier,
	rateLimiter *ratelimit.RateLimiter,
) *InteractionUseCase {
	return &InteractionUseCase{
		interactionRepo: interactionRepo,
		advertRepo:      advertRepo,
		userRepo:        userRepo,
		conversationUC:  conversationUC,
		notifier:        notifier,
		rateLimiter:     rateLimiter,
	}
}

type SwipeResult struct {
	Type        string       `json:"type"`
	Match       bool         `json:"match"`
	MatchedWith *entity.User `json:"matched_with,omitempty"`
	// ReciprocalAdvertID is the actor's advert the counterparty had liked.
	ReciprocalAdvertID string              `json:"reciprocal_advert_id,omitempty"`
	ConversationID     string              `json:"conversation_id,omitempty"`
	Interaction        *entity.Interaction `json:"interaction"`
}

// Like records a like swipe onto an advert and checks whether the advert's
// owner has already liked one of the actor's adverts. A mutual like opens
// (or reuses) the matching conversation and notifies both sides.
func (uc *InteractionUseCase) Like(ctx context.Context, userID, advertID string) (*SwipeResult, error) {
	return uc.swipe(ctx, userID, advertID, entity.InteractionLike)
}

// Pass records a pass swipe. Passes never match and never notify.
func (uc *InteractionUseCase) Pass(ctx context.Context, userID, advertID string) (*SwipeResult, error) {
	return uc.swipe(ctx, userID, advertID, entity.InteractionPass)
}

func (uc *InteractionUseCase) swipe(ctx context.Context, userID, advertID, interactionType string) (*SwipeResult, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "swipe")
	if !allowed {
		logger.Warn("Swipe rate limited: user %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please slow down")
	}

	advert, err := uc.advertRepo.GetByID(ctx, advertID)
	if err != nil {
		return nil, err
	}
	if !advert.IsActive {
		return nil, errors.NotFound("Advert", nil)
	}
	if advert.OwnerID == userID {
		return nil, errors.SelfAction("You cannot swipe on your own advert")
	}

	interaction, err := uc.recordInteraction(ctx, userID, advert, interactionType)
	if err != nil {
		return nil, err
	}

	result := &SwipeResult{
		Type:        interactionType,
		Interaction: interaction,
	}

	if interactionType == entity.InteractionLike {
		if err := uc.detectMutualLike(ctx, userID, advert, result); err != nil {
			// The like itself is durable; a detection failure must not
			// surface as a failed swipe.
			logger.Error("Match detection failed for user %s advert %s: %v", userID, advertID, err)
		}
	}

	return result, nil
}

// recordInteraction creates the interaction row. The first interaction for a
// (user, advert) pair is final: a repeated like is harmless and returns the
// original record, everything else conflicts.
func (uc *InteractionUseCase) recordInteraction(ctx context.Context, userID string, advert *entity.Advert, interactionType string) (*entity.Interaction, error) {
	existing, err := uc.interactionRepo.GetByUserAndAdvert(ctx, userID, advert.ID)
	if err == nil {
		if existing.Type == entity.InteractionLike && interactionType == entity.InteractionLike {
			return existing, nil
		}
		return nil, errors.AlreadyInteracted("You have already responded to this advert")
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	interaction := &entity.Interaction{
		FromUserID: userID,
		ToAdvertID: advert.ID,
		ToOwnerID:  advert.OwnerID,
		Type:       interactionType,
		CreatedAt:  time.Now(),
	}
	if err := uc.interactionRepo.Create(ctx, interaction); err != nil {
		if errors.Is(err, "CONFLICT") {
			// Lost a concurrent-create race; read back the winner.
			winner, getErr := uc.interactionRepo.GetByUserAndAdvert(ctx, userID, advert.ID)
			if getErr != nil {
				return nil, getErr
			}
			if winner.Type == entity.InteractionLike && interactionType == entity.InteractionLike {
				return winner, nil
			}
			return nil, errors.AlreadyInteracted("You have already responded to this advert")
		}
		return nil, err
	}

	return interaction, nil
}

// detectMutualLike checks whether the liked advert's owner has previously
// liked any of the actor's active adverts. The conversation is scoped to the
// advert the actor just liked.
func (uc *InteractionUseCase) detectMutualLike(ctx context.Context, userID string, advert *entity.Advert, result *SwipeResult) error {
	myAdverts, err := uc.advertRepo.ListByOwner(ctx, userID, true)
	if err != nil {
		return err
	}
	if len(myAdverts) == 0 {
		return nil
	}

	myAdvertIDs := make([]string, 0, len(myAdverts))
	for _, a := range myAdverts {
		myAdvertIDs = append(myAdvertIDs, a.ID)
	}

	reverseLike, err := uc.interactionRepo.FindLikeOntoAdverts(ctx, advert.OwnerID, myAdvertIDs)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	// The mutual like is a fact at this point; report it even if opening the
	// conversation fails below.
	result.Match = true
	result.ReciprocalAdvertID = reverseLike.ToAdvertID
	if owner, err := uc.userRepo.GetByID(ctx, advert.OwnerID); err == nil {
		result.MatchedWith = owner
	}

	ensured, err := uc.conversationUC.EnsureConversation(ctx, EnsureConversationInput{
		UserA:           userID,
		UserB:           advert.OwnerID,
		ContextKind:     entity.ContextMatching,
		ContextAdvertID: advert.ID,
		SystemText:      "Eslestiniz! Sohbete baslayin.",
		ActingUserID:    userID,
	})
	if err != nil {
		return err
	}

	result.ConversationID = ensured.Conversation.ID

	matchPayload := map[string]interface{}{
		"conversation_id": ensured.Conversation.ID,
		"advert_id":       advert.ID,
	}
	uc.notifier.NotifyUser(userID, EventMatch, matchPayload)
	uc.notifier.NotifyUser(advert.OwnerID, EventMatch, matchPayload)
	uc.notifier.NotifyUser(advert.OwnerID, EventConversationCreated, map[string]interface{}{
		"conversation_id": ensured.Conversation.ID,
	})

	return nil
}

// ListSwipedAdvertIDs returns every advert id the user has already swiped
// on, used by the feed to exclude seen adverts.
func (uc *InteractionUseCase) ListSwipedAdvertIDs(ctx context.Context, userID string) ([]string, error) {
	return uc.interactionRepo.ListAdvertIDsByUser(ctx, userID)
}
