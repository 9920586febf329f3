package categoryController

import (
	"darasa/controllers"
	"darasa/middleware"
	"darasa/services"
	"darasa/validators"
	categoryValidator "darasa/validators/category"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	categories *services.CategoryService
}

func New(categories *services.CategoryService) *Controller {
	return &Controller{categories: categories}
}

func (ctl *Controller) CreateCategory(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.CategoryInput](c, categoryValidator.CreateKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	category, err := ctl.categories.Create(c.UserContext(), *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(category)
}

func (ctl *Controller) ListCategories(c *fiber.Ctx) error {
	categories, err := ctl.categories.List(c.UserContext())
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(categories)
}

func (ctl *Controller) GetCategory(c *fiber.Ctx) error {
	category, err := ctl.categories.Get(c.UserContext(), validators.PathID(c, "id"))
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(category)
}

func (ctl *Controller) UpdateCategory(c *fiber.Ctx) error {
	reqData, ok := validators.Validated[services.CategoryUpdateInput](c, categoryValidator.UpdateKey)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	category, err := ctl.categories.Update(c.UserContext(), validators.PathID(c, "id"), *reqData)
	if err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return c.JSON(category)
}

func (ctl *Controller) DeleteCategory(c *fiber.Ctx) error {
	if err := ctl.categories.Delete(c.UserContext(), validators.PathID(c, "id")); err != nil {
		return controllers.HandleServiceError(c, err)
	}
	return controllers.Deleted(c, "Category")
}
