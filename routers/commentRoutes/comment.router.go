package commentRoutes

import (
	commentController "darasa/controllers/comment"
	commentValidator "darasa/validators/comment"

	"github.com/gofiber/fiber/v2"
)

func SetupCommentRoutes(router fiber.Router, ctl *commentController.Controller, requireAuth fiber.Handler) {
	commentGroup := router.Group("/courses/:course_id/comments")

	commentGroup.Get("/", commentValidator.CourseID(), ctl.ListComments)
	commentGroup.Get("/:comment_id", commentValidator.CommentPath(), ctl.GetComment)
	commentGroup.Post("/", requireAuth, commentValidator.CourseID(), commentValidator.Comment(), ctl.AddComment)
	commentGroup.Put("/:comment_id", requireAuth, commentValidator.CommentPath(), commentValidator.Comment(), ctl.EditComment)
	commentGroup.Delete("/:comment_id", requireAuth, commentValidator.CommentPath(), ctl.DeleteComment)
}
