package controllers

import (
	"errors"

	"darasa/middleware"
	"darasa/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HandleServiceError writes the response for an error returned by a service.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var detail string
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		detail = svcErr.Detail
	}

	switch services.KindOf(err) {
	case services.KindValidation:
		return middleware.DetailResponse(c, fiber.StatusUnprocessableEntity, detail)
	case services.KindNotFound:
		return middleware.DetailResponse(c, fiber.StatusNotFound, detail)
	case services.KindConflict:
		return middleware.DetailResponse(c, fiber.StatusBadRequest, detail)
	case services.KindUnauthorized:
		return middleware.UnauthorizedResponse(c, detail)
	case services.KindForbidden:
		return middleware.DetailResponse(c, fiber.StatusForbidden, detail)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// Deleted is the body every delete endpoint returns on success.
func Deleted(c *fiber.Ctx, entity string) error {
	return c.JSON(services.MessageOut{Detail: entity + " deleted successfully"})
}

// ErrorHandler renders errors that escape the handler chain, such as unknown
// routes and recovered panics, in the same {"detail"} shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "Internal server error"
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		detail = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	}
	return middleware.DetailResponse(c, code, detail)
}
