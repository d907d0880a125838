package handler

import (
	"patipazar/internal/usecase"
)

var (
	advertHandler       *AdvertHandler
	interactionHandler  *InteractionHandler
	matchingHandler     *MatchingHandler
	adoptionHandler     *AdoptionHandler
	conversationHandler *ConversationHandler
	favoriteHandler     *FavoriteHandler
	userHandler         *UserHandler
	healthHandler       *HealthHandler
)

func Setup(
	advertUseCase *usecase.AdvertUseCase,
	interactionUseCase *usecase.InteractionUseCase,
	matchRequestUseCase *usecase.MatchRequestUseCase,
	applicationUseCase *usecase.AdoptionApplicationUseCase,
	conversationUseCase *usecase.ConversationUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	userUseCase *usecase.UserUseCase,
) {
	advertHandler = NewAdvertHandler(advertUseCase)
	interactionHandler = NewInteractionHandler(interactionUseCase)
	matchingHandler = NewMatchingHandler(matchRequestUseCase)
	adoptionHandler = NewAdoptionHandler(applicationUseCase)
	conversationHandler = NewConversationHandler(conversationUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	userHandler = NewUserHandler(userUseCase)
	healthHandler = NewHealthHandler()
}

func GetAdvertHandler() *AdvertHandler {
	return advertHandler
}

func GetInteractionHandler() *InteractionHandler {
	return interactionHandler
}

func GetMatchingHandler() *MatchingHandler {
	return matchingHandler
}

func GetAdoptionHandler() *AdoptionHandler {
	return adoptionHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
