package userControllers

import (
	"darasa/controllers"
	"darasa/middleware"
	"darasa/services"
	"darasa/validators"
	"darasa/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	users *services.UserService
}

func New(users *services.UserService) *Controller {
	return &Controller{users: users}
}

func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	return c.JSON(ctl.users.Profile(middleware.CurrentUser(c)))
}

func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.ProfileInput](c, userValidator.ProfileKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	user, err := ctl.users.UpdateProfile(c.UserContext(), middleware.CurrentUser(c).ID, *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(user)
}

// MyRatings lists every rating the current user has given.
func (ctl *Controller) MyRatings(c *fiber.Ctx) error {
	ratings, err := ctl.users.RatingsByUser(c.UserContext(), middleware.CurrentUser(c).ID)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(ratings)
}
