package routers

import (
	"darasa/config"
	"darasa/controllers"
	authController "darasa/controllers/auth"
	categoryController "darasa/controllers/category"
	commentController "darasa/controllers/comment"
	courseController "darasa/controllers/course"
	ratingController "darasa/controllers/rating"
	"darasa/controllers/userControllers"
	"darasa/middleware"
	"darasa/routers/authRoutes"
	"darasa/routers/categoryRoutes"
	"darasa/routers/commentRoutes"
	"darasa/routers/courseRoutes"
	"darasa/routers/ratingRoutes"
	"darasa/routers/userRoutes"
	"darasa/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires services, controllers and routes into a Fiber app.
func NewApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "darasa",
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	if cfg.Env != "test" {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authService := services.NewAuthService(db, cfg)
	requireAuth := middleware.RequireAuthenticated(authService)

	categoryGuards := []fiber.Handler{requireAuth}
	if cfg.CategoryWritePolicy == config.CategoryWritesAdmin {
		categoryGuards = append(categoryGuards, middleware.RequireAdmin())
	}

	api := app.Group(cfg.APIPrefix)
	authRoutes.SetupAuthRoutes(api, authController.New(authService))
	userRoutes.SetupUserRoutes(api, userControllers.New(services.NewUserService(db)), requireAuth)
	categoryRoutes.SetupCategoryRoutes(api, categoryController.New(services.NewCategoryService(db)), categoryGuards...)
	courseRoutes.SetupCourseRoutes(api, courseController.New(services.NewCourseService(db, cfg.EnforceCourseCategory)), requireAuth)
	commentRoutes.SetupCommentRoutes(api, commentController.New(services.NewCommentService(db)), requireAuth)
	ratingRoutes.SetupRatingRoutes(api, ratingController.New(services.NewRatingService(db)), requireAuth)

	return app
}
