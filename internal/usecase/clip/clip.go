// Package clip reduces raw video annotation results to a tennis summary.
package clip

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/videointelligence/apiv1/videointelligencepb"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/internal/infrastructure"
	"github.com/avdeev/courtside-media/pkg/logger"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

var (
	labelKeywords = []string{"tennis", "racket", "ball", "player", "court"}

	// "court" is deliberately absent here: courts are scenery for object
	// tracking, only labels keep them.
	objectKeywords = []string{"tennis", "racket", "ball", "player"}
)

type ClipUseCase struct {
	annotator infrastructure.VideoAnnotator
	timeout   time.Duration

	logger logger.Interface
}

func New(annotator infrastructure.VideoAnnotator, timeout time.Duration, l logger.Interface) *ClipUseCase {
	return &ClipUseCase{
		annotator: annotator,
		timeout:   timeout,
		logger:    l,
	}
}

// Analyze submits the bucket URI for annotation and blocks until the remote
// operation finishes or the configured timeout elapses.
func (uc *ClipUseCase) Analyze(ctx context.Context, inputURI string) (*entity.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	results, err := uc.annotator.Annotate(ctx, inputURI)
	if err != nil {
		uc.logger.Error(err, "ClipUseCase - Analyze - uc.annotator.Annotate")

		if ctx.Err() != nil {
			return nil, fmt.Errorf("ClipUseCase - Analyze - after %v: %w", uc.timeout, errs.ErrAnnotateTimeout)
		}
		return nil, fmt.Errorf("ClipUseCase - Analyze: %w", errs.ErrAnnotation)
	}

	return reduce(results), nil
}

func reduce(results *videointelligencepb.VideoAnnotationResults) *entity.Annotation {
	labels := map[string]struct{}{}
	for _, label := range results.GetSegmentLabelAnnotations() {
		desc := label.GetEntity().GetDescription()
		if matchesAny(desc, labelKeywords) {
			labels[desc] = struct{}{}
		}
	}

	objects := map[string]struct{}{}
	for _, obj := range results.GetObjectAnnotations() {
		desc := obj.GetEntity().GetDescription()
		if matchesAny(desc, objectKeywords) {
			objects[desc] = struct{}{}
		}
	}

	shots := make([]entity.Shot, 0, len(results.GetShotAnnotations()))
	for _, shot := range results.GetShotAnnotations() {
		shots = append(shots, entity.Shot{
			Start: roundSeconds(shot.GetStartTimeOffset()),
			End:   roundSeconds(shot.GetEndTimeOffset()),
		})
	}

	return &entity.Annotation{
		Labels:  sortedKeys(labels),
		Objects: sortedKeys(objects),
		Shots:   shots,
	}
}

func matchesAny(description string, keywords []string) bool {
	desc := strings.ToLower(description)
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}

	return false
}

func roundSeconds(offset *durationpb.Duration) float64 {
	return math.Round(offset.AsDuration().Seconds()*100) / 100
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
