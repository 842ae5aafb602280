package v1

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/avdeev/courtside-media/internal/controller/restapi/v1/response"
)

// @Summary  	Health check
// @Description Verifies database connectivity
// @Tags 		ops
// @Produce 	json
// @Success 	200 {object} response.Health
// @Failure 	500 {object} response.Health "Database unreachable"
// @Router 		/v1/health [get]
func (r *V1) healthCheck(ctx *fiber.Ctx) error {
	count, err := r.users.Count(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - healthCheck")

		return ctx.Status(http.StatusInternalServerError).JSON(response.Health{
			Status:   "unhealthy",
			Database: "disconnected",
		})
	}

	return ctx.JSON(response.Health{
		Status:    "healthy",
		Database:  "connected",
		UserCount: count,
	})
}
