package ratingValidator

import (
	"darasa/services"
	"darasa/validators"

	"github.com/gofiber/fiber/v2"
)

const RatingKey = "validatedRating"

func Rating() fiber.Handler {
	return validators.Body[services.RatingInput](RatingKey)
}

func CourseID() fiber.Handler {
	return validators.PathIDs("course_id")
}

func RatingPath() fiber.Handler {
	return validators.PathIDs("course_id", "rating_id")
}
