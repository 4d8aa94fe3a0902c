package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pmpro_backend/internals/features/auth/controller"
	rateLimiter "pmpro_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	base := app.Group("/api/auth")
	base.Post("/register", rateLimiter.AuthRateLimiter(), authController.Register)
	base.Post("/login", rateLimiter.AuthRateLimiter(), authController.Login)
}
