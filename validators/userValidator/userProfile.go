package userValidator

import (
	"darasa/services"
	"darasa/validators"

	"github.com/gofiber/fiber/v2"
)

const ProfileKey = "validatedProfile"

func UpdateProfile() fiber.Handler {
	return validators.Body[services.ProfileInput](ProfileKey)
}
