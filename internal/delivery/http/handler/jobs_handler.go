package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"sponsor-scout/internal/delivery/http/dto"
	"sponsor-scout/internal/delivery/http/middleware"
	"sponsor-scout/internal/pkg/response"
	"sponsor-scout/internal/usecase"
)

type JobsHandler struct {
	uc usecase.IngestUsecase
}

type ingestURLRequest struct {
	URL string `json:"url"`
}

type ingestBatchRequest struct {
	Source string   `json:"source"`
	URLs   []string `json:"urls"`
}

func NewJobsHandler(uc usecase.IngestUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.IngestURL)
	r.Post("/batch", h.IngestBatch)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	ps, err := h.uc.ListPostings(c.Context(), limit, offset)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingListResponse(ps))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid posting id", nil, err)
	}

	p, err := h.uc.GetPosting(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPostingNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Posting not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponse(p))
}

func (h *JobsHandler) IngestURL(c fiber.Ctx) error {
	var req ingestURLRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.IngestURL(c.Context(), req.URL)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid url", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponse(p))
}

func (h *JobsHandler) IngestBatch(c fiber.Ctx) error {
	var req ingestBatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	stats, err := h.uc.IngestBatch(c.Context(), req.Source, req.URLs)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	data := map[string]int{
		"submitted": stats.Submitted,
		"stored":    stats.Stored,
		"failed":    stats.Failed,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
