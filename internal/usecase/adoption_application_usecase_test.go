package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patipazar/internal/domain/entity"
	apperrors "patipazar/pkg/errors"
)

func TestApplyAndAccept(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	listing := e.addAdvert("bob", entity.AdvertTypeAdoption, "cat", entity.GenderFemale)

	application, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{
		ListingID: listing.ID,
		Note:      "Kedinizi cok sevdim.",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationPending, application.Status)
	assert.Nil(t, application.RespondedAt)
	assert.True(t, e.notifier.received("user:bob", EventApplicationNew))

	accepted, err := e.applicationUC.Respond(ctx, application.ID, "bob", "accept")
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)
	require.NotEmpty(t, accepted.ConversationID)

	conversation, err := e.conversations.GetByID(ctx, accepted.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, entity.ContextAdoption, conversation.ContextKind)
	assert.Equal(t, listing.ID, conversation.ContextAdvertID)

	messages, err := e.conversations.ListMessages(ctx, accepted.ConversationID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Sahiplendirme basvurusu kabul edildi.", messages[0].Text)

	assert.True(t, e.notifier.received("user:alice", EventApplicationAccepted))
}

func TestDuplicatePendingApplicationConflicts(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	listing := e.addAdvert("bob", entity.AdvertTypeAdoption, "cat", entity.GenderFemale)

	first, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: listing.ID})
	require.NoError(t, err)

	_, err = e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: listing.ID})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "DUPLICATE_PENDING"))

	// The conflict carries the existing application back to the caller.
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	existing, ok := appErr.Details.(*ApplicationResponse)
	require.True(t, ok)
	assert.Equal(t, first.ID, existing.ID)
}

func TestApplyAgainAfterRejection(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	listing := e.addAdvert("bob", entity.AdvertTypeAdoption, "dog", entity.GenderMale)

	first, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: listing.ID})
	require.NoError(t, err)

	rejected, err := e.applicationUC.Respond(ctx, first.ID, "bob", "reject")
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationRejected, rejected.Status)
	require.NotNil(t, rejected.RespondedAt)
	assert.Empty(t, rejected.ConversationID)
	assert.True(t, e.notifier.received("user:alice", EventApplicationRejected))

	second, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: listing.ID})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestApplyValidation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	matingAdvert := e.addAdvert("bob", entity.AdvertTypeMating, "dog", entity.GenderMale)
	ownListing := e.addAdvert("alice", entity.AdvertTypeAdoption, "dog", entity.GenderMale)
	inactive := e.addAdvert("bob", entity.AdvertTypeAdoption, "dog", entity.GenderMale)
	require.NoError(t, e.advertUC.Deactivate(ctx, "bob", inactive.ID))

	_, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: matingAdvert.ID})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INVALID_ADVERT_TYPE"))

	_, err = e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: ownListing.ID})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "SELF_ACTION"))

	_, err = e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: inactive.ID})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestRespondOnlyByListingOwner(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	listing := e.addAdvert("bob", entity.AdvertTypeAdoption, "dog", entity.GenderMale)

	application, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: listing.ID})
	require.NoError(t, err)

	_, err = e.applicationUC.Respond(ctx, application.ID, "carol", "accept")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))

	_, err = e.applicationUC.Respond(ctx, application.ID, "alice", "accept")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))
}

func TestApplicationRespondTwiceIsInvalid(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	listing := e.addAdvert("bob", entity.AdvertTypeAdoption, "dog", entity.GenderMale)

	application, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: listing.ID})
	require.NoError(t, err)

	_, err = e.applicationUC.Respond(ctx, application.ID, "bob", "accept")
	require.NoError(t, err)

	_, err = e.applicationUC.Respond(ctx, application.ID, "bob", "reject")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INVALID_STATUS"))
}

func TestApplicationInboxAndSent(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	bobListing := e.addAdvert("bob", entity.AdvertTypeAdoption, "dog", entity.GenderMale)
	carolListing := e.addAdvert("carol", entity.AdvertTypeAdoption, "cat", entity.GenderFemale)

	_, err := e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: bobListing.ID})
	require.NoError(t, err)
	_, err = e.applicationUC.Apply(ctx, "alice", ApplyInput{ListingID: carolListing.ID})
	require.NoError(t, err)

	inbox, err := e.applicationUC.Inbox(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, bobListing.ID, inbox[0].ListingID)
	require.NotNil(t, inbox[0].Applicant)
	assert.Equal(t, "Alice", inbox[0].Applicant.Name)

	sent, err := e.applicationUC.Sent(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	empty, err := e.applicationUC.Inbox(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
