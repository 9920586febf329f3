package courseValidator

import (
	"strings"

	"darasa/services"
	"darasa/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	CourseKey = "validatedCourse"
	ListKey   = "validatedCourseList"
)

func trimCourse(req *services.CourseInput) map[string]string {
	errors := make(map[string]string)
	req.Title = strings.TrimSpace(req.Title)
	req.YoutubeURL = strings.TrimSpace(req.YoutubeURL)
	if req.Title == "" {
		errors["title"] = "title must not be blank!"
	}
	if req.YoutubeURL == "" {
		errors["youtube_url"] = "youtube_url must not be blank!"
	}
	return errors
}

// CreateCourse and UpdateCourse share one contract: update replaces every field.
func CreateCourse() fiber.Handler {
	return validators.Body[services.CourseInput](CourseKey, trimCourse)
}

func UpdateCourse() fiber.Handler {
	return validators.Body[services.CourseInput](CourseKey, trimCourse)
}

func CourseList() fiber.Handler {
	return validators.Query[services.CourseListQuery](ListKey, func() *services.CourseListQuery {
		return &services.CourseListQuery{Page: 1, PageSize: services.DefaultPageSize}
	})
}

func CourseID() fiber.Handler {
	return validators.PathIDs("id")
}
