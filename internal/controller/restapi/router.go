package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/avdeev/courtside-media/config"
	v1 "github.com/avdeev/courtside-media/internal/controller/restapi/v1"
	"github.com/avdeev/courtside-media/internal/usecase"
	"github.com/avdeev/courtside-media/pkg/logger"
)

// @title Courtside media API
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	users usecase.UserUseCase,
	media usecase.MediaUseCase,
	clips usecase.ClipUseCase,
	l logger.Interface,
) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewRoutes(apiV1Group, cfg, users, media, clips, l)
	}
}
