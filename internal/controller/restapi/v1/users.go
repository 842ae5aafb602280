package v1

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/avdeev/courtside-media/internal/entity"
)

type createUserRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
	City *string `json:"city"`
}

// @Summary  	Create user
// @Description Creates a user record; id and created_at are server-assigned
// @Tags 		users
// @Accept 		json
// @Produce 	json
// @Param 		user body createUserRequest true "User fields"
// @Success 	201 {object} entity.User
// @Failure 	400 {object} response.Error "Missing or invalid fields"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/users [post]
func (r *V1) createUser(ctx *fiber.Ctx) error {
	var req createUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	if req.Name == nil || req.Age == nil || req.City == nil {
		return errorResponse(ctx, http.StatusBadRequest, "missing required fields: name, age, city")
	}

	user, err := r.users.Create(ctx.UserContext(), *req.Name, *req.Age, *req.City)
	if err != nil {
		return r.mapError(ctx, err, "createUser")
	}

	return ctx.Status(http.StatusCreated).JSON(user)
}

// @Summary  	List users
// @Description Returns all users, newest first
// @Tags 		users
// @Produce 	json
// @Success 	200 {array} entity.User
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/users [get]
func (r *V1) listUsers(ctx *fiber.Ctx) error {
	users, err := r.users.ListAll(ctx.UserContext())
	if err != nil {
		return r.mapError(ctx, err, "listUsers")
	}

	if users == nil {
		users = []entity.User{}
	}

	return ctx.JSON(users)
}

// @Summary  	Get user
// @Description Returns one user by id
// @Tags 		users
// @Produce 	json
// @Param 		id path int true "User ID"
// @Success 	200 {object} entity.User
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "User not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/users/{id} [get]
func (r *V1) getUser(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	user, err := r.users.GetByID(ctx.UserContext(), id)
	if err != nil {
		return r.mapError(ctx, err, "getUser")
	}

	return ctx.JSON(user)
}
