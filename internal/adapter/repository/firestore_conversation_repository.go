package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
	"patipazar/pkg/logger"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

type conversationKeyDoc struct {
	ConversationID string    `firestore:"conversationId"`
	CreatedAt      time.Time `firestore:"createdAt"`
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.client.Collection("conversations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) FindByParticipantsAndContext(ctx context.Context, participants []string, contextKind, contextAdvertID string) (*entity.Conversation, error) {
	query := r.client.Collection("conversations").
		Where("participants", "==", sortedPair(participants)).
		Where("contextKind", "==", contextKind).
		Where("contextAdvertId", "==", contextAdvertID).
		Limit(1)
	return r.findOne(ctx, query)
}

func (r *firestoreConversationRepository) FindByParticipantsAndAdvert(ctx context.Context, participants []string, contextAdvertID string) (*entity.Conversation, error) {
	query := r.client.Collection("conversations").
		Where("participants", "==", sortedPair(participants)).
		Where("contextAdvertId", "==", contextAdvertID).
		Limit(1)
	return r.findOne(ctx, query)
}

func (r *firestoreConversationRepository) FindByParticipants(ctx context.Context, participants []string) (*entity.Conversation, error) {
	query := r.client.Collection("conversations").
		Where("participants", "==", sortedPair(participants)).
		Limit(1)
	return r.findOne(ctx, query)
}

func (r *firestoreConversationRepository) findOne(ctx context.Context, query firestore.Query) (*entity.Conversation, error) {
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Conversation", nil)
		}
		return nil, errors.Internal("Failed to query conversations", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

// CreateKeyed claims the (participants, context) uniqueness key and writes
// the conversation in one transaction. Exactly one concurrent creator wins;
// the losers get the winner's row back with created=false.
func (r *firestoreConversationRepository) CreateKeyed(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, bool, error) {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	conversation.Participants = sortedPair(conversation.Participants)

	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	key := entity.ConversationKey(conversation.Participants, conversation.ContextKind, conversation.ContextAdvertID)
	keyRef := r.client.Collection("conversation_keys").Doc(key)
	convRef := r.client.Collection("conversations").Doc(conversation.ID)

	var winner *entity.Conversation
	created := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		winner = nil
		created = false

		keyDoc, err := tx.Get(keyRef)
		if err == nil {
			var keyData conversationKeyDoc
			if err := keyDoc.DataTo(&keyData); err != nil {
				return err
			}
			winnerDoc, err := tx.Get(r.client.Collection("conversations").Doc(keyData.ConversationID))
			if err != nil {
				return err
			}
			var existing entity.Conversation
			if err := winnerDoc.DataTo(&existing); err != nil {
				return err
			}
			winner = &existing
			return nil
		}
		if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Create(keyRef, conversationKeyDoc{ConversationID: conversation.ID, CreatedAt: now}); err != nil {
			return err
		}
		if err := tx.Set(convRef, conversation); err != nil {
			return err
		}
		winner = conversation
		created = true
		return nil
	})
	if err != nil {
		return nil, false, errors.Internal("Failed to create conversation", err)
	}

	return winner, created, nil
}

func (r *firestoreConversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	conversation.UpdatedAt = time.Now()

	_, err := r.client.Collection("conversations").Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to update conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	query := r.client.Collection("conversations").Where("participants", "array-contains", userID)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching conversations for user %s: %v", userID, err)
		return nil, errors.Internal("Failed to fetch conversations", err)
	}

	var conversations []*entity.Conversation
	for _, doc := range docs {
		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			continue // Skip malformed documents
		}
		conversations = append(conversations, &conversation)
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt.After(conversations[j].LastMessageAt)
	})

	return conversations, nil
}

func (r *firestoreConversationRepository) Delete(ctx context.Context, id string) error {
	convRef := r.client.Collection("conversations").Doc(id)

	// Messages first, then keys, then the conversation itself.
	messageDocs, err := convRef.Collection("messages").Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to list messages for deletion", err)
	}
	for _, doc := range messageDocs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to delete message", err)
		}
	}

	keyDocs, err := r.client.Collection("conversation_keys").
		Where("conversationId", "==", id).Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to list conversation keys for deletion", err)
	}
	for _, doc := range keyDocs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to delete conversation key", err)
		}
	}

	if _, err := convRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.client.Collection("conversations").Doc(message.ConversationID).
		Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	query := r.client.Collection("conversations").Doc(conversationID).
		Collection("messages").OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error while iterating messages for conversation %s: %v", conversationID, err)
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			logger.Error("Error parsing message data for conversation %s: %v", conversationID, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreConversationRepository) GetMessageByID(ctx context.Context, conversationID, messageID string) (*entity.Message, error) {
	doc, err := r.client.Collection("conversations").Doc(conversationID).
		Collection("messages").Doc(messageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}

	return &message, nil
}

func (r *firestoreConversationRepository) UpdateMessage(ctx context.Context, message *entity.Message) error {
	_, err := r.client.Collection("conversations").Doc(message.ConversationID).
		Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to update message", err)
	}

	return nil
}

func (r *firestoreConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, userID string) error {
	messages, err := r.ListMessages(ctx, conversationID)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if message.SenderID == userID || message.IsReadBy(userID) {
			continue
		}
		message.ReadBy = append(message.ReadBy, userID)
		if err := r.UpdateMessage(ctx, message); err != nil {
			return err
		}
	}

	return nil
}

func sortedPair(participants []string) []string {
	pair := make([]string, len(participants))
	copy(pair, participants)
	sort.Strings(pair)
	return pair
}
