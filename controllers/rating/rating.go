package ratingController

import (
	"darasa/controllers"
	"darasa/middleware"
	"darasa/services"
	"darasa/validators"
	ratingValidator "darasa/validators/rating"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	ratings *services.RatingService
}

func New(ratings *services.RatingService) *Controller {
	return &Controller{ratings: ratings}
}

// RateCourse creates the caller's rating or overwrites the one they already gave.
func (ctl *Controller) RateCourse(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.RatingInput](c, ratingValidator.RatingKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	rating, err := ctl.ratings.Rate(c.UserContext(), middleware.CurrentUser(c).ID, validators.PathID(c, "course_id"), *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(rating)
}

func (ctl *Controller) ListRatings(c *fiber.Ctx) error {
	ratings, err := ctl.ratings.List(c.UserContext(), validators.PathID(c, "course_id"))
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(ratings)
}

func (ctl *Controller) DeleteRating(c *fiber.Ctx) error {
	err := ctl.ratings.Delete(
		c.UserContext(),
		middleware.CurrentUser(c).ID,
		validators.PathID(c, "course_id"),
		validators.PathID(c, "rating_id"),
	)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return controllers.Deleted(c, "Rating")
}
