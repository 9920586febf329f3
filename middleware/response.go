package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// DetailResponse writes the error body every failure uses: {"detail": "..."}.
func DetailResponse(c *fiber.Ctx, statusCode int, detail string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"detail": detail,
	})
}

// UnauthorizedResponse adds the bearer challenge to a 401.
func UnauthorizedResponse(c *fiber.Ctx, detail string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return DetailResponse(c, fiber.StatusUnauthorized, detail)
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": "Validation failed!",
		"errors": errors,
	})
}
