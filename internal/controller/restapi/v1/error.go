package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/avdeev/courtside-media/internal/controller/restapi/v1/response"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

// mapError translates the error taxonomy into HTTP statuses. Unexpected
// errors are logged and surfaced with a generic message, never raw backend
// text.
func (r *V1) mapError(ctx *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, errs.ErrInvalidType):
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "unsupported file type")
	case errors.Is(err, errs.ErrTooLarge):
		return errorResponse(ctx, http.StatusRequestEntityTooLarge, "file too large")
	case errors.Is(err, errs.ErrInvalidName):
		return errorResponse(ctx, http.StatusBadRequest, "invalid filename format")
	case errors.Is(err, errs.ErrInvalidArgument):
		return errorResponse(ctx, http.StatusBadRequest, "invalid argument")
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, "file not found")
	case errors.Is(err, errs.ErrRecordNotFound):
		return errorResponse(ctx, http.StatusNotFound, "not found")
	case errors.Is(err, errs.ErrConfig):
		r.logger.Error(err, "restapi - v1 - %s", op)

		return errorResponse(ctx, http.StatusInternalServerError, "configuration error")
	case errors.Is(err, errs.ErrAnnotateTimeout), errors.Is(err, errs.ErrAnnotation):
		r.logger.Error(err, "restapi - v1 - %s", op)

		return errorResponse(ctx, http.StatusBadGateway, "video analysis failed")
	default:
		r.logger.Error(err, "restapi - v1 - %s", op)

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}
}
