package router

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/adapter/api/handler"
	"patipazar/internal/adapter/api/middleware"
)

func SetupConversationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	conversationHandler := handler.GetConversationHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)

	conversations.POST("", conversationHandler.StartConversation)
	conversations.GET("", conversationHandler.MyConversations)
	conversations.GET("/:id", conversationHandler.GetConversation)
	conversations.DELETE("/:id", conversationHandler.DeleteConversation)
	conversations.PUT("/:id/read", conversationHandler.MarkAsRead)

	conversations.GET("/:id/messages", conversationHandler.GetMessages)
	conversations.POST("/:id/messages", conversationHandler.SendMessage)
	conversations.DELETE("/:id/messages/:messageId", conversationHandler.DeleteMessageForMe)
}
