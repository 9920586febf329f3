package categoryValidator

import (
	"strings"

	"darasa/services"
	"darasa/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	CreateKey = "validatedCategory"
	UpdateKey = "validatedCategoryUpdate"
)

func CreateCategory() fiber.Handler {
	return validators.Body[services.CategoryInput](CreateKey, func(req *services.CategoryInput) map[string]string {
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return map[string]string{"name": "name must not be blank!"}
		}
		return nil
	})
}

func UpdateCategory() fiber.Handler {
	return validators.Body[services.CategoryUpdateInput](UpdateKey, func(req *services.CategoryUpdateInput) map[string]string {
		if req.Name == nil {
			return nil
		}
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return map[string]string{"name": "name must not be blank!"}
		}
		req.Name = &name
		return nil
	})
}

func CategoryID() fiber.Handler {
	return validators.PathIDs("id")
}
