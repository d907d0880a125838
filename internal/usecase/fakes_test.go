package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/internal/infrastructure/ratelimit"
	"patipazar/pkg/errors"
)

// In-memory repositories mirroring the Firestore adapters' contract: the same
// NOT_FOUND / CONFLICT error codes and the same uniqueness behavior.

type fakeAdvertRepo struct {
	mu      sync.Mutex
	adverts map[string]*entity.Advert
	nextID  int
}

func newFakeAdvertRepo() *fakeAdvertRepo {
	return &fakeAdvertRepo{adverts: make(map[string]*entity.Advert)}
}

func (r *fakeAdvertRepo) Create(ctx context.Context, advert *entity.Advert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if advert.ID == "" {
		r.nextID++
		advert.ID = fmt.Sprintf("advert-%d", r.nextID)
	}
	advert.CreatedAt = time.Now()
	advert.UpdatedAt = advert.CreatedAt
	copied := *advert
	r.adverts[advert.ID] = &copied
	return nil
}

func (r *fakeAdvertRepo) GetByID(ctx context.Context, id string) (*entity.Advert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	advert, ok := r.adverts[id]
	if !ok {
		return nil, errors.NotFound("Advert", nil)
	}
	copied := *advert
	return &copied, nil
}

func (r *fakeAdvertRepo) Update(ctx context.Context, advert *entity.Advert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.adverts[advert.ID]; !ok {
		return errors.NotFound("Advert", nil)
	}
	copied := *advert
	r.adverts[advert.ID] = &copied
	return nil
}

func (r *fakeAdvertRepo) ListByOwner(ctx context.Context, ownerID string, onlyActive bool) ([]*entity.Advert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Advert
	for _, advert := range r.adverts {
		if advert.OwnerID != ownerID {
			continue
		}
		if onlyActive && !advert.IsActive {
			continue
		}
		copied := *advert
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeAdvertRepo) ListFeed(ctx context.Context, filter repository.AdvertFeedFilter) ([]*entity.Advert, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	excluded := make(map[string]bool, len(filter.ExcludeAdvertIDs))
	for _, id := range filter.ExcludeAdvertIDs {
		excluded[id] = true
	}
	var all []*entity.Advert
	for _, advert := range r.adverts {
		if !advert.IsActive || advert.OwnerID == filter.ViewerID || excluded[advert.ID] {
			continue
		}
		copied := *advert
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return []*entity.Advert{}, total, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeAdvertRepo) ListMatingProfiles(ctx context.Context, filter repository.MatingProfileFilter) ([]*entity.Advert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Advert
	for _, advert := range r.adverts {
		if !advert.IsActive || advert.AdvertType != entity.AdvertTypeMating || advert.OwnerID == filter.ViewerID {
			continue
		}
		if filter.Species != "" && advert.Species != filter.Species {
			continue
		}
		if filter.Gender != "" && advert.Gender != filter.Gender {
			continue
		}
		copied := *advert
		out = append(out, &copied)
	}
	return out, nil
}

type fakeInteractionRepo struct {
	mu           sync.Mutex
	interactions map[string]*entity.Interaction // keyed {userID}_{advertID}
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{interactions: make(map[string]*entity.Interaction)}
}

func (r *fakeInteractionRepo) Create(ctx context.Context, interaction *entity.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := interaction.FromUserID + "_" + interaction.ToAdvertID
	if _, ok := r.interactions[key]; ok {
		return errors.Conflict("Interaction already exists")
	}
	interaction.ID = key
	copied := *interaction
	r.interactions[key] = &copied
	return nil
}

func (r *fakeInteractionRepo) GetByUserAndAdvert(ctx context.Context, userID, advertID string) (*entity.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	interaction, ok := r.interactions[userID+"_"+advertID]
	if !ok {
		return nil, errors.NotFound("Interaction", nil)
	}
	copied := *interaction
	return &copied, nil
}

func (r *fakeInteractionRepo) FindLikeOntoAdverts(ctx context.Context, fromUserID string, advertIDs []string) (*entity.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, advertID := range advertIDs {
		if interaction, ok := r.interactions[fromUserID+"_"+advertID]; ok && interaction.Type == entity.InteractionLike {
			copied := *interaction
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Interaction", nil)
}

func (r *fakeInteractionRepo) ListAdvertIDsByUser(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, interaction := range r.interactions {
		if interaction.FromUserID == userID {
			out = append(out, interaction.ToAdvertID)
		}
	}
	return out, nil
}

type fakeMatchRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.MatchRequest
	pending  map[string]string // {fromUserID}_{advertID} -> request id
	nextID   int
}

func newFakeMatchRequestRepo() *fakeMatchRequestRepo {
	return &fakeMatchRequestRepo{
		requests: make(map[string]*entity.MatchRequest),
		pending:  make(map[string]string),
	}
}

func (r *fakeMatchRequestRepo) Create(ctx context.Context, request *entity.MatchRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot := request.FromUserID + "_" + request.AdvertID
	if _, ok := r.pending[slot]; ok {
		return errors.Conflict("Pending request already exists")
	}
	r.nextID++
	request.ID = fmt.Sprintf("request-%d", r.nextID)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	copied := *request
	r.requests[request.ID] = &copied
	r.pending[slot] = request.ID
	return nil
}

func (r *fakeMatchRequestRepo) GetByID(ctx context.Context, id string) (*entity.MatchRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Match request", nil)
	}
	copied := *request
	return &copied, nil
}

func (r *fakeMatchRequestRepo) GetPending(ctx context.Context, fromUserID, advertID string) (*entity.MatchRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.pending[fromUserID+"_"+advertID]
	if !ok {
		return nil, errors.NotFound("Match request", nil)
	}
	copied := *r.requests[id]
	return &copied, nil
}

func (r *fakeMatchRequestRepo) UpdateStatus(ctx context.Context, request *entity.MatchRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[request.ID]
	if !ok {
		return errors.NotFound("Match request", nil)
	}
	if stored.IsPending() && !request.IsPending() {
		delete(r.pending, stored.FromUserID+"_"+stored.AdvertID)
	}
	copied := *request
	r.requests[request.ID] = &copied
	return nil
}

func (r *fakeMatchRequestRepo) ListByToUser(ctx context.Context, toUserID string) ([]*entity.MatchRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MatchRequest
	for _, request := range r.requests {
		if request.ToUserID == toUserID {
			copied := *request
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMatchRequestRepo) ListByFromUser(ctx context.Context, fromUserID string) ([]*entity.MatchRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MatchRequest
	for _, request := range r.requests {
		if request.FromUserID == fromUserID {
			copied := *request
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMatchRequestRepo) ListByFromUserAndAdverts(ctx context.Context, fromUserID string, advertIDs []string) ([]*entity.MatchRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(advertIDs))
	for _, id := range advertIDs {
		wanted[id] = true
	}
	var out []*entity.MatchRequest
	for _, request := range r.requests {
		if request.FromUserID == fromUserID && wanted[request.AdvertID] {
			copied := *request
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*entity.AdoptionApplication
	pending      map[string]string // {applicantUserID}_{listingID} -> application id
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*entity.AdoptionApplication),
		pending:      make(map[string]string),
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *entity.AdoptionApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot := application.ApplicantUserID + "_" + application.ListingID
	if _, ok := r.pending[slot]; ok {
		return errors.Conflict("Pending application already exists")
	}
	r.nextID++
	application.ID = fmt.Sprintf("application-%d", r.nextID)
	application.CreatedAt = time.Now()
	application.UpdatedAt = application.CreatedAt
	copied := *application
	r.applications[application.ID] = &copied
	r.pending[slot] = application.ID
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*entity.AdoptionApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.applications[id]
	if !ok {
		return nil, errors.NotFound("Application", nil)
	}
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) GetPending(ctx context.Context, listingID, applicantUserID string) (*entity.AdoptionApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.pending[applicantUserID+"_"+listingID]
	if !ok {
		return nil, errors.NotFound("Application", nil)
	}
	copied := *r.applications[id]
	return &copied, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, application *entity.AdoptionApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.applications[application.ID]
	if !ok {
		return errors.NotFound("Application", nil)
	}
	if stored.IsPending() && !application.IsPending() {
		delete(r.pending, stored.ApplicantUserID+"_"+stored.ListingID)
	}
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) ListByListings(ctx context.Context, listingIDs []string) ([]*entity.AdoptionApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(listingIDs))
	for _, id := range listingIDs {
		wanted[id] = true
	}
	var out []*entity.AdoptionApplication
	for _, application := range r.applications {
		if wanted[application.ListingID] {
			copied := *application
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantUserID string) ([]*entity.AdoptionApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AdoptionApplication
	for _, application := range r.applications {
		if application.ApplicantUserID == applicantUserID {
			copied := *application
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeConversationRepo struct {
	mu            sync.Mutex
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.Message
	keys          map[string]string // uniqueness key -> conversation id
	nextID        int
	createErr     error // injected failure for CreateKeyed
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
		keys:          make(map[string]string),
	}
}

func (r *fakeConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	copied := *conversation
	return &copied, nil
}

func sameParticipants(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (r *fakeConversationRepo) FindByParticipantsAndContext(ctx context.Context, participants []string, contextKind, contextAdvertID string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conversation := range r.conversations {
		if sameParticipants(conversation.Participants, participants) &&
			conversation.ContextKind == contextKind &&
			conversation.ContextAdvertID == contextAdvertID {
			copied := *conversation
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *fakeConversationRepo) FindByParticipantsAndAdvert(ctx context.Context, participants []string, contextAdvertID string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conversation := range r.conversations {
		if sameParticipants(conversation.Participants, participants) &&
			conversation.ContextAdvertID == contextAdvertID {
			copied := *conversation
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *fakeConversationRepo) FindByParticipants(ctx context.Context, participants []string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conversation := range r.conversations {
		if sameParticipants(conversation.Participants, participants) {
			copied := *conversation
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *fakeConversationRepo) CreateKeyed(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, false, r.createErr
	}
	key := entity.ConversationKey(conversation.Participants, conversation.ContextKind, conversation.ContextAdvertID)
	if winnerID, ok := r.keys[key]; ok {
		copied := *r.conversations[winnerID]
		return &copied, false, nil
	}
	r.nextID++
	conversation.ID = fmt.Sprintf("conversation-%d", r.nextID)
	conversation.CreatedAt = time.Now()
	conversation.UpdatedAt = conversation.CreatedAt
	copied := *conversation
	r.conversations[conversation.ID] = &copied
	r.keys[key] = conversation.ID
	result := copied
	return &result, true, nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conversations[conversation.ID]; !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.UpdatedAt = time.Now()
	copied := *conversation
	r.conversations[conversation.ID] = &copied
	return nil
}

func (r *fakeConversationRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Conversation
	for _, conversation := range r.conversations {
		if conversation.HasParticipant(userID) {
			copied := *conversation
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.After(out[j].LastMessageAt) })
	return out, nil
}

func (r *fakeConversationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conversation, ok := r.conversations[id]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	key := entity.ConversationKey(conversation.Participants, conversation.ContextKind, conversation.ContextAdvertID)
	delete(r.keys, key)
	delete(r.conversations, id)
	delete(r.messages, id)
	return nil
}

func (r *fakeConversationRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	message.ID = fmt.Sprintf("message-%d", r.nextID)
	message.CreatedAt = time.Now()
	copied := *message
	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], &copied)
	return nil
}

func (r *fakeConversationRepo) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Message
	for _, message := range r.messages[conversationID] {
		copied := *message
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeConversationRepo) GetMessageByID(ctx context.Context, conversationID, messageID string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages[conversationID] {
		if message.ID == messageID {
			copied := *message
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *fakeConversationRepo) UpdateMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.messages[message.ConversationID] {
		if stored.ID == message.ID {
			copied := *message
			r.messages[message.ConversationID][i] = &copied
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

func (r *fakeConversationRepo) MarkMessagesRead(ctx context.Context, conversationID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages[conversationID] {
		if !message.IsReadBy(userID) {
			message.ReadBy = append(message.ReadBy, userID)
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) add(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[id] = &entity.User{ID: id, Name: name, CreatedAt: time.Now()}
}

type notifiedEvent struct {
	Target  string // "user:{id}" or "conv:{id}"
	Event   string
	Payload interface{}
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notifiedEvent
}

func (n *fakeNotifier) NotifyUser(userID, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notifiedEvent{Target: "user:" + userID, Event: event, Payload: payload})
}

func (n *fakeNotifier) NotifyConversation(conversationID, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notifiedEvent{Target: "conv:" + conversationID, Event: event, Payload: payload})
}

func (n *fakeNotifier) received(target, event string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, e := range n.events {
		if e.Target == target && e.Event == event {
			return true
		}
	}
	return false
}

// env bundles everything a usecase test needs, wired the same way main does.
type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]*entity.Favorite // keyed {userID}_{advertID}
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*entity.Favorite)}
}

func (r *fakeFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favorite.UserID + "_" + favorite.AdvertID
	if _, ok := r.favorites[key]; ok {
		return errors.Conflict("Advert already favorited")
	}
	favorite.ID = key
	favorite.CreatedAt = time.Now()
	copied := *favorite
	r.favorites[key] = &copied
	return nil
}

func (r *fakeFavoriteRepo) GetByUserAndAdvert(ctx context.Context, userID, advertID string) (*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	favorite, ok := r.favorites[userID+"_"+advertID]
	if !ok {
		return nil, errors.NotFound("Favorite", nil)
	}
	copied := *favorite
	return &copied, nil
}

func (r *fakeFavoriteRepo) Delete(ctx context.Context, userID, advertID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userID + "_" + advertID
	if _, ok := r.favorites[key]; !ok {
		return errors.NotFound("Favorite", nil)
	}
	delete(r.favorites, key)
	return nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var favorites []*entity.Favorite
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			copied := *favorite
			favorites = append(favorites, &copied)
		}
	}
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})
	return favorites, nil
}

type env struct {
	adverts       *fakeAdvertRepo
	interactions  *fakeInteractionRepo
	requests      *fakeMatchRequestRepo
	applications  *fakeApplicationRepo
	conversations *fakeConversationRepo
	favorites     *fakeFavoriteRepo
	users         *fakeUserRepo
	notifier      *fakeNotifier

	advertUC       *AdvertUseCase
	interactionUC  *InteractionUseCase
	matchRequestUC *MatchRequestUseCase
	applicationUC  *AdoptionApplicationUseCase
	conversationUC *ConversationUseCase
	favoriteUC     *FavoriteUseCase
	userUC         *UserUseCase
}

func newEnv() *env {
	e := &env{
		adverts:       newFakeAdvertRepo(),
		interactions:  newFakeInteractionRepo(),
		requests:      newFakeMatchRequestRepo(),
		applications:  newFakeApplicationRepo(),
		conversations: newFakeConversationRepo(),
		favorites:     newFakeFavoriteRepo(),
		users:         newFakeUserRepo(),
		notifier:      &fakeNotifier{},
	}

	limiter := ratelimit.NewRateLimiter(0)

	e.conversationUC = NewConversationUseCase(e.conversations, e.adverts, e.users, e.notifier, limiter)
	e.advertUC = NewAdvertUseCase(e.adverts, e.interactions, e.requests)
	e.interactionUC = NewInteractionUseCase(e.interactions, e.adverts, e.users, e.conversationUC, e.notifier, limiter)
	e.matchRequestUC = NewMatchRequestUseCase(e.requests, e.adverts, e.users, e.conversationUC, e.notifier)
	e.applicationUC = NewAdoptionApplicationUseCase(e.applications, e.adverts, e.users, e.conversationUC, e.notifier)
	e.favoriteUC = NewFavoriteUseCase(e.favorites, e.adverts)
	e.userUC = NewUserUseCase(e.users)

	e.users.add("alice", "Alice")
	e.users.add("bob", "Bob")
	e.users.add("carol", "Carol")

	return e
}

func (e *env) addAdvert(owner, advertType, species, gender string) *entity.Advert {
	advert := &entity.Advert{
		OwnerID:    owner,
		Name:       "Pet of " + owner,
		Species:    species,
		Gender:     gender,
		AdvertType: advertType,
		Images:     []string{},
		IsActive:   true,
	}
	if err := e.adverts.Create(context.Background(), advert); err != nil {
		panic(err)
	}
	return advert
}
