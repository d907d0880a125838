package router

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/adapter/api/handler"
	"patipazar/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.POST("", favoriteHandler.AddFavorite)
	favorites.GET("", favoriteHandler.MyFavorites)
	favorites.GET("/check/:advertId", favoriteHandler.CheckFavorite)
	favorites.DELETE("/:advertId", favoriteHandler.RemoveFavorite)
}
