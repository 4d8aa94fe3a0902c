package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pmpro_backend/internals/features/hr/stats/controller"
)

func AnalyticsRoutes(app *fiber.App, db *gorm.DB) {
	analyticsController := controller.NewAnalyticsController(db)

	base := app.Group("/api/analytics")
	base.Get("/overview", analyticsController.Overview)
}
