package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/internal/repo"
	"github.com/avdeev/courtside-media/pkg/logger"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

const maxObjectNameLen = 500

type MediaUseCase struct {
	objectRepo repo.ObjectRepo

	logger logger.Interface
}

func New(objectRepo repo.ObjectRepo, l logger.Interface) *MediaUseCase {
	return &MediaUseCase{
		objectRepo: objectRepo,
		logger:     l,
	}
}

// Upload validates the payload against the allow-list and size limit, then
// writes it to the bucket and returns a one-hour signed URL. Validation runs
// before any backend call, so a rejected payload writes nothing.
func (uc *MediaUseCase) Upload(
	ctx context.Context,
	data io.Reader,
	size int64,
	contentType string,
	targetName string,
	allowedTypes []string,
	maxSizeMB float64,
) (string, error) {
	if len(allowedTypes) > 0 && !slices.Contains(allowedTypes, contentType) {
		return "", fmt.Errorf("MediaUseCase - Upload - content type %q: %w", contentType, errs.ErrInvalidType)
	}

	sizeMB := float64(size) / (1024 * 1024)
	if sizeMB > maxSizeMB {
		return "", fmt.Errorf("MediaUseCase - Upload - %.2f MB (max %v MB): %w", sizeMB, maxSizeMB, errs.ErrTooLarge)
	}

	if err := uc.objectRepo.Upload(ctx, targetName, data, contentType, size); err != nil {
		return "", uc.sanitize(fmt.Errorf("MediaUseCase - Upload - uc.objectRepo.Upload: %w", err))
	}

	url, err := uc.objectRepo.SignedURL(targetName)
	if err != nil {
		return "", uc.sanitize(fmt.Errorf("MediaUseCase - Upload - uc.objectRepo.SignedURL: %w", err))
	}

	return url, nil
}

// SignedURL returns a one-hour URL for an existing object. The existence
// check is not atomic with later use of the URL; a concurrent delete wins.
func (uc *MediaUseCase) SignedURL(ctx context.Context, name string) (string, error) {
	ok, err := uc.objectRepo.Exists(ctx, name)
	if err != nil {
		return "", uc.sanitize(fmt.Errorf("MediaUseCase - SignedURL - uc.objectRepo.Exists: %w", err))
	}
	if !ok {
		return "", fmt.Errorf("MediaUseCase - SignedURL: %w", errs.ErrObjectNotFound)
	}

	url, err := uc.objectRepo.SignedURL(name)
	if err != nil {
		return "", uc.sanitize(fmt.Errorf("MediaUseCase - SignedURL - uc.objectRepo.SignedURL: %w", err))
	}

	return url, nil
}

// Delete removes one object. Deleting the same name twice yields
// errs.ErrObjectNotFound the second time, never silent success.
func (uc *MediaUseCase) Delete(ctx context.Context, name string) error {
	if err := validateObjectName(name); err != nil {
		return err
	}

	if err := uc.objectRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		return uc.sanitize(fmt.Errorf("MediaUseCase - Delete - uc.objectRepo.Delete: %w", err))
	}

	return nil
}

// List returns at most maxResults objects under folder. A non-empty folder
// is treated as a prefix ending in '/', and the zero-byte placeholder object
// named exactly like the prefix is excluded.
func (uc *MediaUseCase) List(ctx context.Context, folder string, maxResults int) ([]entity.StoredObject, error) {
	prefix := folder
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	objects, err := uc.objectRepo.List(ctx, prefix, maxResults)
	if err != nil {
		return nil, uc.sanitize(fmt.Errorf("MediaUseCase - List - uc.objectRepo.List: %w", err))
	}

	result := make([]entity.StoredObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Name == prefix {
			continue
		}
		obj.Filename = obj.Name[strings.LastIndex(obj.Name, "/")+1:]
		result = append(result, obj)
	}

	return result, nil
}

// validateObjectName guards against a credential blob being passed where a
// filename was expected, before anything reaches the backend.
func validateObjectName(name string) error {
	trimmed := strings.TrimSpace(name)

	switch {
	case trimmed == "":
		return fmt.Errorf("MediaUseCase - name is empty: %w", errs.ErrInvalidName)
	case len(name) > maxObjectNameLen:
		return fmt.Errorf("MediaUseCase - name exceeds %d characters: %w", maxObjectNameLen, errs.ErrInvalidName)
	case strings.HasPrefix(trimmed, "{"):
		return fmt.Errorf("MediaUseCase - name looks like a configuration value: %w", errs.ErrInvalidName)
	}

	return nil
}

// sanitize rewrites backend errors whose text carries a JSON-like fragment,
// so credential material is never echoed into a response. The original error
// is still logged server-side.
func (uc *MediaUseCase) sanitize(err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "{") {
		uc.logger.Error(err, "MediaUseCase - backend error suppressed")

		return fmt.Errorf("storage backend misconfigured: %w", errs.ErrConfig)
	}

	return err
}
