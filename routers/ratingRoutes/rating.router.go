package ratingRoutes

import (
	ratingController "darasa/controllers/rating"
	ratingValidator "darasa/validators/rating"

	"github.com/gofiber/fiber/v2"
)

func SetupRatingRoutes(router fiber.Router, ctl *ratingController.Controller, requireAuth fiber.Handler) {
	ratingGroup := router.Group("/courses/:course_id/ratings")

	ratingGroup.Get("/", ratingValidator.CourseID(), ctl.ListRatings)
	ratingGroup.Post("/", requireAuth, ratingValidator.CourseID(), ratingValidator.Rating(), ctl.RateCourse)
	ratingGroup.Delete("/:rating_id", requireAuth, ratingValidator.RatingPath(), ctl.DeleteRating)
}
