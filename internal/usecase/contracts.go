package usecase

import (
	"context"
	"io"

	"github.com/avdeev/courtside-media/internal/entity"
)

type (
	UserUseCase interface {
		Create(ctx context.Context, name string, age int, city string) (*entity.User, error)
		ListAll(ctx context.Context) ([]entity.User, error)
		GetByID(ctx context.Context, id int64) (*entity.User, error)
		Count(ctx context.Context) (int64, error)
	}

	MediaUseCase interface {
		Upload(
			ctx context.Context,
			data io.Reader,
			size int64,
			contentType string,
			targetName string,
			allowedTypes []string,
			maxSizeMB float64,
		) (string, error)
		SignedURL(ctx context.Context, name string) (string, error)
		Delete(ctx context.Context, name string) error
		List(ctx context.Context, folder string, maxResults int) ([]entity.StoredObject, error)
	}

	ClipUseCase interface {
		Analyze(ctx context.Context, inputURI string) (*entity.Annotation, error)
	}
)
