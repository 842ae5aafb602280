package v1

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/avdeev/courtside-media/internal/controller/restapi/v1/response"
	"github.com/avdeev/courtside-media/internal/controller/restapi/v1/validate"
)

// @Summary  	Upload and analyze video
// @Description Uploads a tennis clip, then runs remote annotation on it. The
// @Description uploaded object stays in the bucket even when analysis fails.
// @Tags 		videos
// @Accept 		mpfd
// @Produce 	json
// @Param 		video formData file true "Video file (mp4, mov, mkv)"
// @Success 	200 {object} response.UploadVideo
// @Failure 	400 {object} response.Error "Empty file"
// @Failure 	413 {object} response.Error "File too large"
// @Failure 	415 {object} response.Error "Unsupported format"
// @Failure 	502 {object} response.Error "Annotation failed or timed out"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/upload/video [post]
func (r *V1) uploadVideo(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("video")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "no video file provided")
	}

	if file.Filename == "" {
		return errorResponse(ctx, http.StatusBadRequest, "no selected file")
	}

	reader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadVideo")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer reader.Close()

	targetName := fmt.Sprintf("%s_%s", uuid.New(), file.Filename)

	url, err := r.media.Upload(
		ctx.UserContext(),
		reader,
		file.Size,
		file.Header.Get("Content-Type"),
		targetName,
		validate.AllowedVideoTypes,
		r.upload.VideoMaxSizeMB,
	)
	if err != nil {
		return r.mapError(ctx, err, "uploadVideo")
	}

	annotation, err := r.clips.Analyze(ctx.UserContext(), fmt.Sprintf("gs://%s/%s", r.bucket, targetName))
	if err != nil {
		return r.mapError(ctx, err, "uploadVideo")
	}

	return ctx.JSON(response.UploadVideo{
		VideoURL:      url,
		Filename:      targetName,
		TennisLabels:  annotation.Labels,
		TennisObjects: annotation.Objects,
		Shots:         annotation.Shots,
	})
}
