package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"patipazar/internal/adapter/api"
	"patipazar/internal/adapter/api/handler"
	apimiddleware "patipazar/internal/adapter/api/middleware"
	"patipazar/internal/adapter/api/router"
	"patipazar/internal/adapter/repository"
	"patipazar/internal/infrastructure/firebase"
	"patipazar/internal/infrastructure/ratelimit"
	"patipazar/internal/infrastructure/websocket"
	"patipazar/internal/usecase"
	"patipazar/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	if cfg.ServiceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	advertRepo := repository.NewFirestoreAdvertRepository(firestoreClient)
	interactionRepo := repository.NewFirestoreInteractionRepository(firestoreClient)
	matchRequestRepo := repository.NewFirestoreMatchRequestRepository(firestoreClient)
	applicationRepo := repository.NewFirestoreAdoptionApplicationRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)

	authClient := firebase.NewAuthClient(fbAuth)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	notifier := websocket.NewFanout(wsManager)

	rateLimiter := ratelimit.NewRateLimiter(int(cfg.MessageRateLimit))
	rateLimiter.StartCleanupRoutine()

	userUseCase := usecase.NewUserUseCase(userRepo)
	conversationUseCase := usecase.NewConversationUseCase(conversationRepo, advertRepo, userRepo, notifier, rateLimiter)
	advertUseCase := usecase.NewAdvertUseCase(advertRepo, interactionRepo, matchRequestRepo)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, advertRepo, userRepo, conversationUseCase, notifier, rateLimiter)
	matchRequestUseCase := usecase.NewMatchRequestUseCase(matchRequestRepo, advertRepo, userRepo, conversationUseCase, notifier)
	applicationUseCase := usecase.NewAdoptionApplicationUseCase(applicationRepo, advertRepo, userRepo, conversationUseCase, notifier)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, advertRepo)

	handler.Setup(advertUseCase, interactionUseCase, matchRequestUseCase, applicationUseCase, conversationUseCase, favoriteUseCase, userUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	wsHandler := handler.NewWebSocketHandler(wsManager, authClient)

	router.Setup(e, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
