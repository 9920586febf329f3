package courseRoutes

import (
	courseController "darasa/controllers/course"
	courseValidator "darasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course catalog routes
func SetupCourseRoutes(router fiber.Router, ctl *courseController.Controller, requireAuth fiber.Handler) {
	courseGroup := router.Group("/courses")

	// Public listing and details
	courseGroup.Get("/", courseValidator.CourseList(), ctl.GetAllCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), ctl.GetCourseDetails)

	// Creator-only changes
	courseGroup.Post("/", requireAuth, courseValidator.CreateCourse(), ctl.CreateCourse)
	courseGroup.Put("/:id", requireAuth, courseValidator.CourseID(), courseValidator.UpdateCourse(), ctl.UpdateCourse)
	courseGroup.Delete("/:id", requireAuth, courseValidator.CourseID(), ctl.DeleteCourse)
}
