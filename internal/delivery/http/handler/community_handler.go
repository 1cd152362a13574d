package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"sponsor-scout/internal/delivery/http/middleware"
	"sponsor-scout/internal/pkg/response"
	"sponsor-scout/internal/usecase"
)

type CommunityHandler struct {
	uc usecase.CommunitySignalUsecase
}

type communitySignalRequest struct {
	CompanyName string `json:"company_name"`
	CountryCode string `json:"country_code"`
	Positive    *bool  `json:"positive"`
}

func NewCommunityHandler(uc usecase.CommunitySignalUsecase) *CommunityHandler {
	return &CommunityHandler{uc: uc}
}

func (h *CommunityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Report)
}

func (h *CommunityHandler) Report(c fiber.Ctx) error {
	if _, ok := userIDFromContext(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req communitySignalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Positive == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	err := h.uc.Report(c.Context(), usecase.CommunitySignalInput{
		CompanyName: req.CompanyName,
		CountryCode: req.CountryCode,
		Positive:    *req.Positive,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, nil)
}
