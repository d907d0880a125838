package handler

import (
	"github.com/labstack/echo/v4"

	"patipazar/internal/usecase"
	"patipazar/pkg/response"
)

type AdoptionHandler struct {
	applicationUseCase *usecase.AdoptionApplicationUseCase
}

func NewAdoptionHandler(applicationUseCase *usecase.AdoptionApplicationUseCase) *AdoptionHandler {
	return &AdoptionHandler{
		applicationUseCase: applicationUseCase,
	}
}

// Apply submits an adoption application for a listing
func (h *AdoptionHandler) Apply(c echo.Context) error {
	var req usecase.ApplyInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	application, err := h.applicationUseCase.Apply(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, application)
}

func (h *AdoptionHandler) Accept(c echo.Context) error {
	return h.respond(c, "accept")
}

func (h *AdoptionHandler) Reject(c echo.Context) error {
	return h.respond(c, "reject")
}

func (h *AdoptionHandler) respond(c echo.Context, action string) error {
	userID := c.Get("uid").(string)

	application, err := h.applicationUseCase.Respond(c.Request().Context(), c.Param("id"), userID, action)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

// Inbox lists applications across the authenticated user's adoption listings
func (h *AdoptionHandler) Inbox(c echo.Context) error {
	userID := c.Get("uid").(string)

	applications, err := h.applicationUseCase.Inbox(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, applications)
}

// Sent lists the applications the authenticated user has submitted
func (h *AdoptionHandler) Sent(c echo.Context) error {
	userID := c.Get("uid").(string)

	applications, err := h.applicationUseCase.Sent(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, applications)
}
