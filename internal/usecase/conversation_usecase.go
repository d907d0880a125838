package usecase

import (
	"context"
	"strings"
	"time"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/internal/infrastructure/ratelimit"
	"patipazar/pkg/errors"
	"patipazar/pkg/logger"
)

type ConversationUseCase struct {
	conversationRepo repository.ConversationRepository
	advertRepo       repository.AdvertRepository
	userRepo         repository.UserRepository
	notifier         Notifier
	rateLimiter      *ratelimit.RateLimiter
}

func NewConversationUseCase(
	conversationRepo repository.ConversationRepository,
	advertRepo repository.AdvertRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	rateLimiter *ratelimit.RateLimiter,
) *ConversationUseCase {
	return &ConversationUseCase{
		conversationRepo: conversationRepo,
		advertRepo:       advertRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		rateLimiter:      rateLimiter,
	}
}

type EnsureConversationInput struct {
	UserA           string
	UserB           string
	ContextKind     string // "MATCHING", "ADOPTION" or empty
	ContextAdvertID string
	SystemText      string
	ActingUserID    string
}

type EnsureConversationResult struct {
	Conversation  *entity.Conversation
	SystemMessage *entity.Message
}

// EnsureConversation finds or creates the single conversation for a
// participant pair and context, backfills context fields on reuse and appends
// a SYSTEM message marking the transition. Repeated calls with the same key
// reuse the same row; concurrent first calls resolve to a single winner at
// the storage layer.
func (uc *ConversationUseCase) EnsureConversation(ctx context.Context, input EnsureConversationInput) (*EnsureConversationResult, error) {
	if input.UserA == "" || input.UserB == "" {
		return nil, errors.BadRequest("Both participants are required", nil)
	}
	if input.UserA == input.UserB {
		return nil, errors.BadRequest("A conversation needs two distinct participants", nil)
	}

	participants := entity.SortParticipants(input.UserA, input.UserB)
	now := time.Now()

	conversation, err := uc.findExisting(ctx, participants, input.ContextKind, input.ContextAdvertID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if conversation == nil {
		candidate := &entity.Conversation{
			Participants:    participants,
			ContextKind:     input.ContextKind,
			ContextAdvertID: input.ContextAdvertID,
			LastMessage:     input.SystemText,
			LastMessageAt:   now,
		}
		winner, created, err := uc.conversationRepo.CreateKeyed(ctx, candidate)
		if err != nil {
			return nil, err
		}
		conversation = winner
		if !created {
			// Lost the creation race; proceed with the winner's row.
			if err := uc.refreshAndBackfill(ctx, conversation, input, now); err != nil {
				return nil, err
			}
		}
	} else {
		if err := uc.refreshAndBackfill(ctx, conversation, input, now); err != nil {
			return nil, err
		}
	}

	senderID := input.ActingUserID
	if senderID == "" {
		senderID = input.UserB
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		Type:           entity.MessageTypeSystem,
		Text:           input.SystemText,
		ReadBy:         []string{},
	}
	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	return &EnsureConversationResult{
		Conversation:  conversation,
		SystemMessage: message,
	}, nil
}

// findExisting walks the lookup chain: exact context match, then same advert
// regardless of kind, then any conversation between the pair. The loose
// fallbacks keep a prior general chat from being duplicated when a context
// later becomes known.
func (uc *ConversationUseCase) findExisting(ctx context.Context, participants []string, contextKind, contextAdvertID string) (*entity.Conversation, error) {
	if contextKind != "" && contextAdvertID != "" {
		conversation, err := uc.conversationRepo.FindByParticipantsAndContext(ctx, participants, contextKind, contextAdvertID)
		if err == nil {
			return conversation, nil
		}
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}
	if contextAdvertID != "" {
		conversation, err := uc.conversationRepo.FindByParticipantsAndAdvert(ctx, participants, contextAdvertID)
		if err == nil {
			return conversation, nil
		}
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}
	return uc.conversationRepo.FindByParticipants(ctx, participants)
}

// refreshAndBackfill fills context fields that were unknown when the
// conversation was first created, never overwriting populated ones, and
// always bumps the last-message preview.
func (uc *ConversationUseCase) refreshAndBackfill(ctx context.Context, conversation *entity.Conversation, input EnsureConversationInput, now time.Time) error {
	if conversation.ContextKind == "" && input.ContextKind != "" {
		conversation.ContextKind = input.ContextKind
	}
	if conversation.ContextAdvertID == "" && input.ContextAdvertID != "" {
		conversation.ContextAdvertID = input.ContextAdvertID
	}
	conversation.LastMessage = input.SystemText
	conversation.LastMessageAt = now

	return uc.conversationRepo.Update(ctx, conversation)
}

type ConversationResponse struct {
	*entity.Conversation
	OtherUser *entity.User   `json:"other_user,omitempty"`
	Advert    *entity.Advert `json:"advert,omitempty"`
}

type MessageResponse struct {
	*entity.Message
	Sender *entity.User `json:"sender,omitempty"`
}

func (uc *ConversationUseCase) ListMine(ctx context.Context, userID string) ([]*ConversationResponse, error) {
	conversations, err := uc.conversationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		responses = append(responses, uc.shape(ctx, userID, conversation))
	}

	return responses, nil
}

func (uc *ConversationUseCase) GetByID(ctx context.Context, userID, conversationID string) (*ConversationResponse, error) {
	conversation, err := uc.authorized(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	return uc.shape(ctx, userID, conversation), nil
}

type StartConversationInput struct {
	ParticipantID string
	AdvertID      string
}

// StartOrGet opens (or reuses) a conversation the user initiates manually.
// When only an advert is given, the counterparty defaults to its owner and
// the context is derived from the advert's type. No system message is sent.
func (uc *ConversationUseCase) StartOrGet(ctx context.Context, userID string, input StartConversationInput) (*ConversationResponse, error) {
	participantID := input.ParticipantID

	var advert *entity.Advert
	if input.AdvertID != "" {
		var err error
		advert, err = uc.advertRepo.GetByID(ctx, input.AdvertID)
		if err != nil {
			return nil, err
		}
		if participantID == "" {
			participantID = advert.OwnerID
		}
	}

	if participantID == "" {
		return nil, errors.BadRequest("participantId is required", nil)
	}
	if participantID == userID {
		return nil, errors.SelfAction("You cannot start a conversation with yourself")
	}

	contextKind := ""
	defaultLastMessage := ""
	if advert != nil {
		switch advert.AdvertType {
		case entity.AdvertTypeMating:
			contextKind = entity.ContextMatching
			defaultLastMessage = "Eslestirme saglandi"
		case entity.AdvertTypeAdoption:
			contextKind = entity.ContextAdoption
		}
	}

	participants := entity.SortParticipants(userID, participantID)

	conversation, err := uc.findExisting(ctx, participants, contextKind, input.AdvertID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if conversation == nil {
		candidate := &entity.Conversation{
			Participants:    participants,
			ContextKind:     contextKind,
			ContextAdvertID: input.AdvertID,
			LastMessage:     defaultLastMessage,
		}
		if defaultLastMessage != "" {
			candidate.LastMessageAt = time.Now()
		}
		winner, _, err := uc.conversationRepo.CreateKeyed(ctx, candidate)
		if err != nil {
			return nil, err
		}
		conversation = winner
	} else {
		dirty := false
		if conversation.ContextKind == "" && contextKind != "" {
			conversation.ContextKind = contextKind
			dirty = true
		}
		if conversation.ContextAdvertID == "" && input.AdvertID != "" {
			conversation.ContextAdvertID = input.AdvertID
			dirty = true
		}
		if dirty {
			if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
				return nil, err
			}
		}
	}

	return uc.shape(ctx, userID, conversation), nil
}

func (uc *ConversationUseCase) Messages(ctx context.Context, userID, conversationID string) ([]*MessageResponse, error) {
	if _, err := uc.authorized(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	messages, err := uc.conversationRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		if message.IsDeletedFor(userID) {
			masked := *message
			masked.Text = "[deleted]"
			message = &masked
		}
		response := &MessageResponse{Message: message}
		if sender, err := uc.userRepo.GetByID(ctx, message.SenderID); err == nil {
			response.Sender = sender
		}
		responses = append(responses, response)
	}

	return responses, nil
}

func (uc *ConversationUseCase) SendMessage(ctx context.Context, userID, conversationID, text string) (*MessageResponse, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		logger.Warn("SendMessage rate limited: user %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Message text cannot be empty", nil)
	}

	conversation, err := uc.authorized(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Type:           entity.MessageTypeText,
		Text:           text,
		ReadBy:         []string{userID},
	}
	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessage = text
	conversation.LastMessageAt = message.CreatedAt
	if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
		logger.Warn("Failed to update conversation %s after message: %v", conversationID, err)
	}

	response := &MessageResponse{Message: message}
	if sender, err := uc.userRepo.GetByID(ctx, userID); err == nil {
		response.Sender = sender
	}

	uc.notifier.NotifyConversation(conversationID, EventMessageNew, map[string]interface{}{
		"message": response,
	})
	if otherID := conversation.OtherParticipant(userID); otherID != "" {
		senderName := ""
		if response.Sender != nil {
			senderName = response.Sender.Name
		}
		uc.notifier.NotifyUser(otherID, EventNewMessageNudge, map[string]interface{}{
			"conversation_id": conversationID,
			"message":         text,
			"sender_name":     senderName,
			"timestamp":       message.CreatedAt,
		})
	}

	return response, nil
}

func (uc *ConversationUseCase) MarkRead(ctx context.Context, userID, conversationID string) error {
	if _, err := uc.authorized(ctx, userID, conversationID); err != nil {
		return err
	}

	return uc.conversationRepo.MarkMessagesRead(ctx, conversationID, userID)
}

// Delete removes the conversation and its messages. User initiated only;
// workflows never delete conversations.
func (uc *ConversationUseCase) Delete(ctx context.Context, userID, conversationID string) error {
	if _, err := uc.authorized(ctx, userID, conversationID); err != nil {
		return err
	}

	return uc.conversationRepo.Delete(ctx, conversationID)
}

func (uc *ConversationUseCase) DeleteMessageForMe(ctx context.Context, userID, conversationID, messageID string) error {
	if _, err := uc.authorized(ctx, userID, conversationID); err != nil {
		return err
	}

	message, err := uc.conversationRepo.GetMessageByID(ctx, conversationID, messageID)
	if err != nil {
		return err
	}

	if message.IsDeletedFor(userID) {
		return nil
	}
	message.DeletedFor = append(message.DeletedFor, userID)

	return uc.conversationRepo.UpdateMessage(ctx, message)
}

// authorized loads a conversation and hides it from non-participants.
func (uc *ConversationUseCase) authorized(ctx context.Context, userID, conversationID string) (*entity.Conversation, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (uc *ConversationUseCase) shape(ctx context.Context, userID string, conversation *entity.Conversation) *ConversationResponse {
	response := &ConversationResponse{Conversation: conversation}

	if otherID := conversation.OtherParticipant(userID); otherID != "" {
		if other, err := uc.userRepo.GetByID(ctx, otherID); err == nil {
			response.OtherUser = other
		}
	}
	if conversation.ContextAdvertID != "" {
		if advert, err := uc.advertRepo.GetByID(ctx, conversation.ContextAdvertID); err == nil {
			response.Advert = advert
		}
	}

	return response
}
