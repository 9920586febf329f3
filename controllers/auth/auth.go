package authController

import (
	"darasa/controllers"
	"darasa/middleware"
	"darasa/services"
	"darasa/validators"
	authValidator "darasa/validators/auth"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	auth *services.AuthService
}

func New(auth *services.AuthService) *Controller {
	return &Controller{auth: auth}
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	// Parse Request Body
	reqData, ok := validators.Validated[services.RegisterInput](c, authValidator.RegisterKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	user, err := ctl.auth.Register(c.UserContext(), *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(user)
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.LoginInput](c, authValidator.LoginKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	token, err := ctl.auth.Login(c.UserContext(), *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(token)
}
