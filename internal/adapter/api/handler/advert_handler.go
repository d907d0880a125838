package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"patipazar/internal/usecase"
	"patipazar/pkg/response"
)

type AdvertHandler struct {
	advertUseCase *usecase.AdvertUseCase
}

func NewAdvertHandler(advertUseCase *usecase.AdvertUseCase) *AdvertHandler {
	return &AdvertHandler{
		advertUseCase: advertUseCase,
	}
}

// CreateAdvert creates a new pet advert for the authenticated user
func (h *AdvertHandler) CreateAdvert(c echo.Context) error {
	var req usecase.CreateAdvertInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	advert, err := h.advertUseCase.Create(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, advert)
}

func (h *AdvertHandler) GetAdvert(c echo.Context) error {
	advert, err := h.advertUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, advert)
}

func (h *AdvertHandler) UpdateAdvert(c echo.Context) error {
	var req usecase.UpdateAdvertInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	advert, err := h.advertUseCase.Update(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, advert)
}

func (h *AdvertHandler) DeactivateAdvert(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.advertUseCase.Deactivate(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deactivated"})
}

// MyAdverts lists all adverts of the authenticated user, inactive included
func (h *AdvertHandler) MyAdverts(c echo.Context) error {
	userID := c.Get("uid").(string)

	adverts, err := h.advertUseCase.Mine(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, adverts)
}

// Feed returns the swipeable discovery feed for the authenticated user
func (h *AdvertHandler) Feed(c echo.Context) error {
	userID := c.Get("uid").(string)

	page := 1
	limit := 20
	if pageStr := c.QueryParam("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	adverts, total, err := h.advertUseCase.Feed(c.Request().Context(), userID, page, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, adverts, total, page, limit)
}

// MatingProfiles lists other users' mating adverts with request annotations
func (h *AdvertHandler) MatingProfiles(c echo.Context) error {
	userID := c.Get("uid").(string)

	profiles, err := h.advertUseCase.MatingProfiles(
		c.Request().Context(),
		userID,
		c.QueryParam("species"),
		c.QueryParam("gender"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profiles)
}
