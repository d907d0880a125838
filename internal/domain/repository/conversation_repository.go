package repository

import (
	"context"

	"patipazar/internal/domain/entity"
)

type ConversationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)

	// Lookup chain used by the registry, strictest first.
	FindByParticipantsAndContext(ctx context.Context, participants []string, contextKind, contextAdvertID string) (*entity.Conversation, error)
	FindByParticipantsAndAdvert(ctx context.Context, participants []string, contextAdvertID string) (*entity.Conversation, error)
	FindByParticipants(ctx context.Context, participants []string) (*entity.Conversation, error)

	// CreateKeyed creates the conversation together with its uniqueness key
	// document in one transaction. If another writer claimed the key first,
	// the winner's conversation is returned with created=false.
	CreateKeyed(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, bool, error)

	Update(ctx context.Context, conversation *entity.Conversation) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// Delete removes the conversation, its uniqueness key and its messages.
	Delete(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error)
	GetMessageByID(ctx context.Context, conversationID, messageID string) (*entity.Message, error)
	UpdateMessage(ctx context.Context, message *entity.Message) error
	MarkMessagesRead(ctx context.Context, conversationID, userID string) error
}
