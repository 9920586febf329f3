package courseController

import (
	"darasa/controllers"
	"darasa/middleware"
	"darasa/services"
	"darasa/validators"
	courseValidator "darasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	courses *services.CourseService
}

func New(courses *services.CourseService) *Controller {
	return &Controller{courses: courses}
}

func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	// Get validated request data
	reqData, ok := validators.Validated[services.CourseInput](c, courseValidator.CourseKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Create the course as the current user
	course, err := ctl.courses.Create(c.UserContext(), middleware.CurrentUser(c).ID, *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(course)
}

func (ctl *Controller) GetAllCourses(c *fiber.Ctx) error {
	query, ok := validators.Validated[services.CourseListQuery](c, courseValidator.ListKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	courses, err := ctl.courses.List(c.UserContext(), *query)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(courses)
}

func (ctl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	course, err := ctl.courses.Get(c.UserContext(), validators.PathID(c, "id"))
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(course)
}

func (ctl *Controller) UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.CourseInput](c, courseValidator.CourseKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Only the creator may update
	course, err := ctl.courses.Update(c.UserContext(), middleware.CurrentUser(c).ID, validators.PathID(c, "id"), *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(course)
}

func (ctl *Controller) DeleteCourse(c *fiber.Ctx) error {
	if err := ctl.courses.Delete(c.UserContext(), middleware.CurrentUser(c).ID, validators.PathID(c, "id")); err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return controllers.Deleted(c, "Course")
}
