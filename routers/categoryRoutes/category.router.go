package categoryRoutes

import (
	categoryController "darasa/controllers/category"
	categoryValidator "darasa/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes mounts the category endpoints. Reads are public;
// writeGuards run before every create, update and delete.
func SetupCategoryRoutes(router fiber.Router, ctl *categoryController.Controller, writeGuards ...fiber.Handler) {
	categoryGroup := router.Group("/categories")

	guarded := func(handlers ...fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, writeGuards...), handlers...)
	}

	categoryGroup.Get("/", ctl.ListCategories)
	categoryGroup.Get("/:id", categoryValidator.CategoryID(), ctl.GetCategory)
	categoryGroup.Post("/", guarded(categoryValidator.CreateCategory(), ctl.CreateCategory)...)
	categoryGroup.Put("/:id", guarded(categoryValidator.CategoryID(), categoryValidator.UpdateCategory(), ctl.UpdateCategory)...)
	categoryGroup.Delete("/:id", guarded(categoryValidator.CategoryID(), ctl.DeleteCategory)...)
}
