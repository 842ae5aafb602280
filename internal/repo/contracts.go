package repo

import (
	"context"
	"io"

	"github.com/avdeev/courtside-media/internal/entity"
)

type (
	// ObjectRepo is the raw bucket surface. Validation and prefix handling
	// live in the media use-case; implementations only talk to the backend.
	ObjectRepo interface {
		Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
		SignedURL(key string) (string, error)
		Exists(ctx context.Context, key string) (bool, error)
		Delete(ctx context.Context, key string) error
		List(ctx context.Context, prefix string, maxResults int) ([]entity.StoredObject, error)
	}

	UserRepo interface {
		Create(ctx context.Context, user *entity.User) error
		ListAll(ctx context.Context) ([]entity.User, error)
		GetByID(ctx context.Context, id int64) (*entity.User, error)
		Count(ctx context.Context) (int64, error)
	}
)
