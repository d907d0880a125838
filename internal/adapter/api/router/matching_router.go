package router

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/adapter/api/handler"
	"patipazar/internal/adapter/api/middleware"
)

func SetupMatchingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	matchingHandler := handler.GetMatchingHandler()

	requests := e.Group("/v1/match-requests")
	requests.Use(authMiddleware.Authenticate)

	requests.POST("", matchingHandler.Propose)
	requests.GET("/inbox", matchingHandler.Inbox)
	requests.GET("/outbox", matchingHandler.Outbox)
	requests.POST("/:id/accept", matchingHandler.Accept)
	requests.POST("/:id/reject", matchingHandler.Reject)
	requests.POST("/:id/cancel", matchingHandler.Cancel)
}
