package router

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/adapter/api/handler"
	"patipazar/internal/adapter/api/middleware"
)

func SetupInteractionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	interactionHandler := handler.GetInteractionHandler()

	interactions := e.Group("/v1/interactions")
	interactions.Use(authMiddleware.Authenticate)

	interactions.POST("/like", interactionHandler.Like)
	interactions.POST("/pass", interactionHandler.Pass)
}
