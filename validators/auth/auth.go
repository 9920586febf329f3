package authValidator

import (
	"regexp"
	"strings"

	"darasa/services"
	"darasa/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	RegisterKey = "validatedRegister"
	LoginKey    = "validatedLogin"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Register validator middleware
func Register() fiber.Handler {
	return validators.Body[services.RegisterInput](RegisterKey, func(req *services.RegisterInput) map[string]string {
		errors := make(map[string]string)
		if !usernamePattern.MatchString(req.Username) {
			errors["username"] = "Username may only contain letters, digits, '.', '_' and '-'!"
		}
		if strings.TrimSpace(req.Password) == "" {
			errors["password"] = "Password must not be blank!"
		}
		return errors
	})
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[services.LoginInput](LoginKey)
}
