package infrastructure

import (
	"context"

	"cloud.google.com/go/videointelligence/apiv1/videointelligencepb"
)

type (
	// VideoAnnotator runs a remote annotation operation for one bucket URI
	// and returns the raw per-video results. The call blocks until the
	// operation finishes or ctx expires.
	VideoAnnotator interface {
		Annotate(ctx context.Context, inputURI string) (*videointelligencepb.VideoAnnotationResults, error)
		Close() error
	}
)
