package router

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/adapter/api/handler"
	"patipazar/internal/adapter/api/middleware"
)

func SetupAdvertRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	advertHandler := handler.GetAdvertHandler()

	adverts := e.Group("/v1/adverts")
	adverts.Use(authMiddleware.Authenticate)

	adverts.POST("", advertHandler.CreateAdvert)
	adverts.GET("/mine", advertHandler.MyAdverts)
	adverts.GET("/feed", advertHandler.Feed)
	adverts.GET("/matching-profiles", advertHandler.MatingProfiles)
	adverts.GET("/:id", advertHandler.GetAdvert)
	adverts.PUT("/:id", advertHandler.UpdateAdvert)
	adverts.DELETE("/:id", advertHandler.DeactivateAdvert)
}
