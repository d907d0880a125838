package handler

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/usecase"
	"patipazar/pkg/response"
)

type InteractionHandler struct {
	interactionUseCase *usecase.InteractionUseCase
}

func NewInteractionHandler(interactionUseCase *usecase.InteractionUseCase) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
	}
}

type swipeRequest struct {
	AdvertID string `json:"advert_id" validate:"required"`
}

// Like records a like swipe; the result reports whether it produced a match
func (h *InteractionHandler) Like(c echo.Context) error {
	var req swipeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	result, err := h.interactionUseCase.Like(c.Request().Context(), userID, req.AdvertID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// Pass records a pass swipe
func (h *InteractionHandler) Pass(c echo.Context) error {
	var req swipeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	result, err := h.interactionUseCase.Pass(c.Request().Context(), userID, req.AdvertID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}
