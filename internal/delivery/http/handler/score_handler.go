package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"sponsor-scout/internal/delivery/http/dto"
	"sponsor-scout/internal/delivery/http/middleware"
	"sponsor-scout/internal/pkg/response"
	"sponsor-scout/internal/usecase"
)

type ScoreHandler struct {
	scores usecase.ScoreUsecase
	batch  usecase.BatchScoreUsecase
}

type batchScoreRequest struct {
	PostingIDs []uuid.UUID `json:"posting_ids"`
}

func NewScoreHandler(scores usecase.ScoreUsecase, batch usecase.BatchScoreUsecase) *ScoreHandler {
	return &ScoreHandler{scores: scores, batch: batch}
}

func (h *ScoreHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	// Literal route first so "batch" is never parsed as a posting id.
	r.Post("/batch", h.ScoreBatch)
	r.Get("/", h.List)
	r.Get("/:postingId", h.Get)
	r.Post("/:postingId", h.Score)
}

func (h *ScoreHandler) Score(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	postingID, err := uuid.Parse(c.Params("postingId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid posting id", nil, err)
	}

	rec, err := h.scores.Score(c.Context(), postingID, userID)
	if err != nil {
		return mapScoreUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewScoreResponse(rec))
}

func (h *ScoreHandler) Get(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	postingID, err := uuid.Parse(c.Params("postingId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid posting id", nil, err)
	}

	rec, err := h.scores.Get(c.Context(), postingID, userID)
	if err != nil {
		return mapScoreUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewScoreResponse(rec))
}

func (h *ScoreHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	recs, err := h.scores.ListByUser(c.Context(), userID, limit, offset)
	if err != nil {
		return mapScoreUsecaseError(err)
	}

	out := make([]dto.ScoreResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.NewScoreResponse(rec))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ScoreHandler) ScoreBatch(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req batchScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.batch.ScoreBatch(c.Context(), userID, req.PostingIDs)
	if err != nil {
		return mapScoreUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBatchScoreResponse(out.Scored, out.Failed))
}

func mapScoreUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPostingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Posting not found", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found, create one before scoring", nil, err)
	case errors.Is(err, usecase.ErrScoreNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Score not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
