package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"sponsor-scout/internal/delivery/http/dto"
	"sponsor-scout/internal/delivery/http/middleware"
	"sponsor-scout/internal/domain/profile"
	"sponsor-scout/internal/pkg/response"
	"sponsor-scout/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileRequest struct {
	SkillsDomain       []string                     `json:"skills_domain"`
	SkillsCorePM       []string                     `json:"skills_core_pm"`
	SkillsTools        []string                     `json:"skills_tools"`
	SkillsTech         []string                     `json:"skills_tech"`
	RoleFlexibility    dto.RoleFlexibilityPayload   `json:"role_flexibility"`
	PreferredLocations []string                     `json:"preferred_locations"`
	TargetCountries    []string                     `json:"target_countries"`
	SalaryExpectation  dto.SalaryExpectationPayload `json:"salary_expectation"`
	YearsOfExperience  int                          `json:"years_of_experience"`
	Industries         []string                     `json:"industries"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Get)
	r.Put("/", h.Save)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p := profile.Profile{
		SkillsDomain: req.SkillsDomain,
		SkillsCorePM: req.SkillsCorePM,
		SkillsTools:  req.SkillsTools,
		SkillsTech:   req.SkillsTech,
		RoleFlexibility: profile.RoleFlexibility{
			Preferred:  req.RoleFlexibility.Preferred,
			Acceptable: req.RoleFlexibility.Acceptable,
		},
		PreferredLocations: req.PreferredLocations,
		TargetCountries:    req.TargetCountries,
		SalaryExpectation:  profile.SalaryExpectation{Min: req.SalaryExpectation.Min, Max: req.SalaryExpectation.Max},
		YearsOfExperience:  req.YearsOfExperience,
		Industries:         req.Industries,
	}

	saved, err := h.uc.Save(c.Context(), userID, p)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(saved))
}

func userIDFromContext(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(middleware.CtxUserIDKey)
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
