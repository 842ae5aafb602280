package persistent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/pkg/gcsclient"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

// Signed URLs are valid for exactly one hour from issue time.
const signedURLTTL = time.Hour

type ObjectRepo struct {
	*gcsclient.GCSClient
}

func NewObjectRepo(gcs *gcsclient.GCSClient) *ObjectRepo {
	return &ObjectRepo{gcs}
}

func (r *ObjectRepo) Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	w := r.Bucket().Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, data); err != nil {
		_ = w.Close()

		return fmt.Errorf("ObjectRepo - Upload - io.Copy: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("ObjectRepo - Upload - w.Close: %w", err)
	}

	return nil
}

func (r *ObjectRepo) SignedURL(key string) (string, error) {
	url, err := r.Bucket().SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(signedURLTTL),
	})
	if err != nil {
		return "", fmt.Errorf("ObjectRepo - SignedURL - Bucket.SignedURL: %w", err)
	}

	return url, nil
}

func (r *ObjectRepo) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.Bucket().Object(key).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ObjectRepo - Exists - Object.Attrs: %w", err)
	}

	return true, nil
}

func (r *ObjectRepo) Delete(ctx context.Context, key string) error {
	err := r.Bucket().Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("ObjectRepo - Delete: %w", errs.ErrObjectNotFound)
	}
	if err != nil {
		return fmt.Errorf("ObjectRepo - Delete - Object.Delete: %w", err)
	}

	return nil
}

func (r *ObjectRepo) List(ctx context.Context, prefix string, maxResults int) ([]entity.StoredObject, error) {
	it := r.Bucket().Objects(ctx, &storage.Query{Prefix: prefix})

	objects := make([]entity.StoredObject, 0, maxResults)
	for len(objects) < maxResults {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ObjectRepo - List - it.Next: %w", err)
		}

		objects = append(objects, entity.StoredObject{
			Name:        attrs.Name,
			Size:        attrs.Size,
			ContentType: attrs.ContentType,
			CreatedAt:   attrs.Created,
			UpdatedAt:   attrs.Updated,
		})
	}

	return objects, nil
}
