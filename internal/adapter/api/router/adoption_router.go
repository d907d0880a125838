package router

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/adapter/api/handler"
	"patipazar/internal/adapter/api/middleware"
)

func SetupAdoptionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	adoptionHandler := handler.GetAdoptionHandler()

	applications := e.Group("/v1/adoption-applications")
	applications.Use(authMiddleware.Authenticate)

	applications.POST("", adoptionHandler.Apply)
	applications.GET("/inbox", adoptionHandler.Inbox)
	applications.GET("/sent", adoptionHandler.Sent)
	applications.POST("/:id/accept", adoptionHandler.Accept)
	applications.POST("/:id/reject", adoptionHandler.Reject)
}
