package userRoutes

import (
	"darasa/controllers/userControllers"
	"darasa/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(router fiber.Router, ctl *userControllers.Controller, requireAuth fiber.Handler) {
	userGroup := router.Group("/users")

	userGroup.Get("/me", requireAuth, ctl.GetProfile)
	userGroup.Put("/me", requireAuth, userValidator.UpdateProfile(), ctl.UpdateProfile)
	userGroup.Get("/me/ratings", requireAuth, ctl.MyRatings)
}
