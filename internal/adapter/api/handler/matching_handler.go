package handler

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/usecase"
	"patipazar/pkg/response"
)

type MatchingHandler struct {
	matchRequestUseCase *usecase.MatchRequestUseCase
}

func NewMatchingHandler(matchRequestUseCase *usecase.MatchRequestUseCase) *MatchingHandler {
	return &MatchingHandler{
		matchRequestUseCase: matchRequestUseCase,
	}
}

// Propose sends a match request to a mating advert
func (h *MatchingHandler) Propose(c echo.Context) error {
	var req usecase.ProposeMatchInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	request, err := h.matchRequestUseCase.Propose(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *MatchingHandler) Accept(c echo.Context) error {
	return h.respond(c, "accept")
}

func (h *MatchingHandler) Reject(c echo.Context) error {
	return h.respond(c, "reject")
}

func (h *MatchingHandler) Cancel(c echo.Context) error {
	return h.respond(c, "cancel")
}

func (h *MatchingHandler) respond(c echo.Context, action string) error {
	userID := c.Get("uid").(string)

	request, err := h.matchRequestUseCase.Respond(c.Request().Context(), c.Param("id"), userID, action)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

// Inbox lists match requests addressed to the authenticated user
func (h *MatchingHandler) Inbox(c echo.Context) error {
	userID := c.Get("uid").(string)

	requests, err := h.matchRequestUseCase.Inbox(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

// Outbox lists match requests the authenticated user has sent
func (h *MatchingHandler) Outbox(c echo.Context) error {
	userID := c.Get("uid").(string)

	requests, err := h.matchRequestUseCase.Outbox(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}
