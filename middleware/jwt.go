package middleware

import (
	"context"
	"strings"

	"darasa/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	currentUserKey    = "currentUser"
	credentialsDetail = "Could not validate credentials"
)

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

// RequireAuthenticated rejects the request with 401 unless it carries a
// valid bearer token, and stores the token's user for later handlers.
func RequireAuthenticated(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return UnauthorizedResponse(c, credentialsDetail)
		}

		user, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			logrus.WithField("path", c.Path()).Debug("bearer token rejected")
			return UnauthorizedResponse(c, credentialsDetail)
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuthenticated.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return UnauthorizedResponse(c, credentialsDetail)
		}
		if !user.IsAdmin() {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "path": c.Path()}).Warn("admin route denied")
			return DetailResponse(c, fiber.StatusForbidden, "Admin privileges required")
		}
		return c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuthenticated, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
