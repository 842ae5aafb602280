package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avdeev/courtside-media/config"
	"github.com/avdeev/courtside-media/internal/usecase"
	"github.com/avdeev/courtside-media/pkg/logger"
)

func NewRoutes(
	apiV1Group fiber.Router,
	cfg *config.Config,
	users usecase.UserUseCase,
	media usecase.MediaUseCase,
	clips usecase.ClipUseCase,
	l logger.Interface,
) {
	r := &V1{
		users:  users,
		media:  media,
		clips:  clips,
		bucket: cfg.GCS.Bucket,
		upload: cfg.Upload,
		logger: l,
	}

	{
		// Users
		apiV1Group.Get("/users", r.listUsers)
		apiV1Group.Post("/users", r.createUser)
		apiV1Group.Get("/users/:id", r.getUser)

		// Media
		apiV1Group.Post("/upload", r.uploadImage)
		apiV1Group.Post("/upload/video", r.uploadVideo)
		apiV1Group.Get("/files", r.listFiles)
		apiV1Group.Get("/files/url/+", r.getFileURL)
		apiV1Group.Delete("/files/+", r.deleteFile)

		// Ops
		apiV1Group.Get("/health", r.healthCheck)
	}
}
