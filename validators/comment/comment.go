package commentValidator

import (
	"strings"

	"darasa/services"
	"darasa/validators"

	"github.com/gofiber/fiber/v2"
)

const CommentKey = "validatedComment"

func Comment() fiber.Handler {
	return validators.Body[services.CommentInput](CommentKey, func(req *services.CommentInput) map[string]string {
		if strings.TrimSpace(req.Content) == "" {
			return map[string]string{"content": "content must not be blank!"}
		}
		return nil
	})
}

func CourseID() fiber.Handler {
	return validators.PathIDs("course_id")
}

func CommentPath() fiber.Handler {
	return validators.PathIDs("course_id", "comment_id")
}
