package v1

import (
	"github.com/avdeev/courtside-media/config"
	"github.com/avdeev/courtside-media/internal/usecase"
	"github.com/avdeev/courtside-media/pkg/logger"
)

type V1 struct {
	users usecase.UserUseCase
	media usecase.MediaUseCase
	clips usecase.ClipUseCase

	bucket string
	upload config.Upload

	logger logger.Interface
}
