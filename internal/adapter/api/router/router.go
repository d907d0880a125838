package router

import (
	"patipazar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAdvertRouter(e, authMiddleware)
	SetupInteractionRouter(e, authMiddleware)
	SetupMatchingRouter(e, authMiddleware)
	SetupAdoptionRouter(e, authMiddleware)
	SetupConversationRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
