package handler

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/usecase"
	"patipazar/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type addFavoriteRequest struct {
	AdvertID string `json:"advert_id" validate:"required"`
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), userID, req.AdvertID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	advertID := c.Param("advertId")

	if err := h.favoriteUseCase.Remove(c.Request().Context(), userID, advertID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Favorite removed"})
}

func (h *FavoriteHandler) MyFavorites(c echo.Context) error {
	userID := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

// CheckFavorite reports whether the caller has favorited the advert
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	advertID := c.Param("advertId")

	isFavorite, err := h.favoriteUseCase.Check(c.Request().Context(), userID, advertID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"is_favorite": isFavorite})
}
