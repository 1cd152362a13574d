package routes

import (
	"github.com/gofiber/fiber/v3"

	"sponsor-scout/internal/delivery/http/handler"
	"sponsor-scout/internal/delivery/http/middleware"
)

// Registry wires handlers into the fiber app. Handlers are constructed
// by the app container; this package only owns the URL layout.
type Registry struct {
	health    *handler.HealthHandler
	auth      *handler.AuthHandler
	profile   *handler.ProfileHandler
	jobs      *handler.JobsHandler
	scores    *handler.ScoreHandler
	community *handler.CommunityHandler
	authMw    *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	profile *handler.ProfileHandler,
	jobs *handler.JobsHandler,
	scores *handler.ScoreHandler,
	community *handler.CommunityHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:    health,
		auth:      auth,
		profile:   profile,
		jobs:      jobs,
		scores:    scores,
		community: community,
		authMw:    authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	r.auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.authMw.Middleware())
	r.profile.RegisterRoutes(protected.Group("/profile"))
	r.jobs.RegisterRoutes(protected.Group("/jobs"))
	r.scores.RegisterRoutes(protected.Group("/scores"))
	r.community.RegisterRoutes(protected.Group("/community-signals"))
}
