// Package videointel calls the Video Intelligence API.
package videointel

import (
	"context"
	"errors"
	"fmt"

	videointelligence "cloud.google.com/go/videointelligence/apiv1"
	"cloud.google.com/go/videointelligence/apiv1/videointelligencepb"

	"github.com/avdeev/courtside-media/pkg/gcpauth"
)

type Annotator struct {
	client *videointelligence.Client
}

// New constructs the annotation client from the same credential source the
// storage client uses.
func New(ctx context.Context, credentials string) (*Annotator, error) {
	creds, err := gcpauth.Resolve(credentials)
	if err != nil {
		return nil, fmt.Errorf("Annotator - New - gcpauth.Resolve: %w", err)
	}
	defer creds.Cleanup()

	client, err := videointelligence.NewClient(ctx, creds.ClientOption())
	if err != nil {
		return nil, fmt.Errorf("Annotator - New - videointelligence.NewClient: %w", err)
	}

	return &Annotator{client: client}, nil
}

func (a *Annotator) Annotate(ctx context.Context, inputURI string) (*videointelligencepb.VideoAnnotationResults, error) {
	op, err := a.client.AnnotateVideo(ctx, &videointelligencepb.AnnotateVideoRequest{
		InputUri: inputURI,
		Features: []videointelligencepb.Feature{
			videointelligencepb.Feature_LABEL_DETECTION,
			videointelligencepb.Feature_OBJECT_TRACKING,
			videointelligencepb.Feature_SHOT_CHANGE_DETECTION,
		},
		VideoContext: &videointelligencepb.VideoContext{
			LabelDetectionConfig: &videointelligencepb.LabelDetectionConfig{
				LabelDetectionMode: videointelligencepb.LabelDetectionMode_SHOT_AND_FRAME_MODE,
				StationaryCamera:   true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Annotator - Annotate - client.AnnotateVideo: %w", err)
	}

	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("Annotator - Annotate - op.Wait: %w", err)
	}

	results := resp.GetAnnotationResults()
	if len(results) == 0 {
		return nil, errors.New("Annotator - Annotate - empty annotation results")
	}

	return results[0], nil
}

func (a *Annotator) Close() error {
	return a.client.Close()
}
