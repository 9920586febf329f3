package commentController

import (
	"darasa/controllers"
	"darasa/middleware"
	"darasa/services"
	"darasa/validators"
	commentValidator "darasa/validators/comment"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	comments *services.CommentService
}

func New(comments *services.CommentService) *Controller {
	return &Controller{comments: comments}
}

func (ctl *Controller) AddComment(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.CommentInput](c, commentValidator.CommentKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	comment, err := ctl.comments.Add(c.UserContext(), middleware.CurrentUser(c).ID, validators.PathID(c, "course_id"), *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(comment)
}

func (ctl *Controller) ListComments(c *fiber.Ctx) error {
	comments, err := ctl.comments.List(c.UserContext(), validators.PathID(c, "course_id"))
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(comments)
}

func (ctl *Controller) GetComment(c *fiber.Ctx) error {
	comment, err := ctl.comments.Get(c.UserContext(), validators.PathID(c, "course_id"), validators.PathID(c, "comment_id"))
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(comment)
}

func (ctl *Controller) EditComment(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.CommentInput](c, commentValidator.CommentKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	comment, err := ctl.comments.Edit(
		c.UserContext(),
		middleware.CurrentUser(c).ID,
		validators.PathID(c, "course_id"),
		validators.PathID(c, "comment_id"),
		*reqData,
	)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(comment)
}

func (ctl *Controller) DeleteComment(c *fiber.Ctx) error {
	err := ctl.comments.Delete(
		c.UserContext(),
		middleware.CurrentUser(c).ID,
		validators.PathID(c, "course_id"),
		validators.PathID(c, "comment_id"),
	)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return controllers.Deleted(c, "Comment")
}
