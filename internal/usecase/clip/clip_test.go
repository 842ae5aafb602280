package clip

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/videointelligence/apiv1/videointelligencepb"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

type nopLogger struct{}

func (nopLogger) Debug(message interface{}, args ...interface{}) {}
func (nopLogger) Info(message string, args ...interface{})       {}
func (nopLogger) Warn(message string, args ...interface{})       {}
func (nopLogger) Error(message interface{}, args ...interface{}) {}
func (nopLogger) Fatal(message interface{}, args ...interface{}) {}

type fakeAnnotator struct {
	results *videointelligencepb.VideoAnnotationResults
	err     error
	delay   time.Duration

	gotURI string
}

func (f *fakeAnnotator) Annotate(ctx context.Context, inputURI string) (*videointelligencepb.VideoAnnotationResults, error) {
	f.gotURI = inputURI

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	return f.results, f.err
}

func (f *fakeAnnotator) Close() error { return nil }

func label(desc string) *videointelligencepb.LabelAnnotation {
	return &videointelligencepb.LabelAnnotation{
		Entity: &videointelligencepb.Entity{Description: desc},
	}
}

func object(desc string) *videointelligencepb.ObjectTrackingAnnotation {
	return &videointelligencepb.ObjectTrackingAnnotation{
		Entity: &videointelligencepb.Entity{Description: desc},
	}
}

func segment(start, end time.Duration) *videointelligencepb.VideoSegment {
	return &videointelligencepb.VideoSegment{
		StartTimeOffset: durationpb.New(start),
		EndTimeOffset:   durationpb.New(end),
	}
}

func TestAnalyze_KeywordFilterAsymmetry(t *testing.T) {
	fake := &fakeAnnotator{
		results: &videointelligencepb.VideoAnnotationResults{
			SegmentLabelAnnotations: []*videointelligencepb.LabelAnnotation{
				label("Tennis"), label("Racket"), label("Cat"),
			},
			ObjectAnnotations: []*videointelligencepb.ObjectTrackingAnnotation{
				object("Tennis ball"), object("Dog"),
			},
		},
	}
	uc := New(fake, time.Second, nopLogger{})

	ann, err := uc.Analyze(context.Background(), "gs://bucket/clip.mp4")
	require.NoError(t, err)
	require.Equal(t, "gs://bucket/clip.mp4", fake.gotURI)

	require.Equal(t, []string{"Racket", "Tennis"}, ann.Labels)
	require.Equal(t, []string{"Tennis ball"}, ann.Objects)
}

func TestAnalyze_CourtMatchesLabelsOnly(t *testing.T) {
	fake := &fakeAnnotator{
		results: &videointelligencepb.VideoAnnotationResults{
			SegmentLabelAnnotations: []*videointelligencepb.LabelAnnotation{
				label("Court"),
			},
			ObjectAnnotations: []*videointelligencepb.ObjectTrackingAnnotation{
				object("Court"),
			},
		},
	}
	uc := New(fake, time.Second, nopLogger{})

	ann, err := uc.Analyze(context.Background(), "gs://bucket/clip.mp4")
	require.NoError(t, err)

	require.Equal(t, []string{"Court"}, ann.Labels)
	require.Empty(t, ann.Objects)
}

func TestAnalyze_CaseInsensitiveAndDeduplicated(t *testing.T) {
	fake := &fakeAnnotator{
		results: &videointelligencepb.VideoAnnotationResults{
			SegmentLabelAnnotations: []*videointelligencepb.LabelAnnotation{
				label("TENNIS MATCH"), label("TENNIS MATCH"), label("tennis match"),
			},
		},
	}
	uc := New(fake, time.Second, nopLogger{})

	ann, err := uc.Analyze(context.Background(), "gs://bucket/clip.mp4")
	require.NoError(t, err)

	// Dedup is by exact description; case variants stay distinct.
	require.Equal(t, []string{"TENNIS MATCH", "tennis match"}, ann.Labels)
}

func TestAnalyze_ShotsRoundedInOrder(t *testing.T) {
	fake := &fakeAnnotator{
		results: &videointelligencepb.VideoAnnotationResults{
			ShotAnnotations: []*videointelligencepb.VideoSegment{
				segment(0, 1500*time.Millisecond),
				segment(2345678912*time.Nanosecond, 5*time.Second),
			},
		},
	}
	uc := New(fake, time.Second, nopLogger{})

	ann, err := uc.Analyze(context.Background(), "gs://bucket/clip.mp4")
	require.NoError(t, err)

	require.Equal(t, []entity.Shot{
		{Start: 0, End: 1.5},
		{Start: 2.35, End: 5},
	}, ann.Shots)
}

func TestAnalyze_EmptyResults(t *testing.T) {
	fake := &fakeAnnotator{results: &videointelligencepb.VideoAnnotationResults{}}
	uc := New(fake, time.Second, nopLogger{})

	ann, err := uc.Analyze(context.Background(), "gs://bucket/clip.mp4")
	require.NoError(t, err)

	require.Empty(t, ann.Labels)
	require.Empty(t, ann.Objects)
	require.Empty(t, ann.Shots)
	require.NotNil(t, ann.Labels)
	require.NotNil(t, ann.Objects)
}

func TestAnalyze_Timeout(t *testing.T) {
	fake := &fakeAnnotator{delay: 200 * time.Millisecond}
	uc := New(fake, 20*time.Millisecond, nopLogger{})

	_, err := uc.Analyze(context.Background(), "gs://bucket/clip.mp4")
	require.ErrorIs(t, err, errs.ErrAnnotateTimeout)
}

func TestAnalyze_BackendFailure(t *testing.T) {
	fake := &fakeAnnotator{err: errors.New("operation failed upstream")}
	uc := New(fake, time.Second, nopLogger{})

	_, err := uc.Analyze(context.Background(), "gs://bucket/clip.mp4")
	require.ErrorIs(t, err, errs.ErrAnnotation)
}
