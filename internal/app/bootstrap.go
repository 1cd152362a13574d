package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"sponsor-scout/internal/delivery/http/handler"
	"sponsor-scout/internal/delivery/http/middleware"
	"sponsor-scout/internal/delivery/http/routes"
	"sponsor-scout/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap assembles the fiber app on top of a wired container and
// starts the websocket hub.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Redis),
		handler.NewAuthHandler(c.AuthUC),
		handler.NewProfileHandler(c.ProfileUC),
		handler.NewJobsHandler(c.IngestUC),
		handler.NewScoreHandler(c.ScoreUC, c.BatchUC),
		handler.NewCommunityHandler(c.CommunityUC),
		middleware.NewAuthMiddleware(c.JWT),
	)
	registry.Register(f)

	wsHandler := ws.NewHandler(c.Hub, c.JWT, c.Logger)
	f.Get("/ws/scores", wsHandler.HandleScoresWS)

	go c.Hub.Run()

	app := &App{Fiber: f, Container: c}
	cleanup := func() error { return c.Close() }
	return app, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
