package handler

import (
	"github.com/gofiber/fiber/v3"

	"sponsor-scout/internal/database"
	"sponsor-scout/internal/infrastructure/cache"
	"sponsor-scout/internal/pkg/response"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports component status. The cache degrades gracefully, so a
// missing Redis is reported but does not fail the check.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}
	status := fiber.StatusOK

	if h.db == nil || h.db.Ping(c.Context()) != nil {
		data["database"] = "unavailable"
		status = fiber.StatusServiceUnavailable
	}
	if h.redis == nil || h.redis.Ping(c.Context()) != nil {
		data["cache"] = "bypassed"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "degraded", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
