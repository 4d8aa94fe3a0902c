package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pmpro_backend/internals/features/hr/shiftlogs/controller"
	authMiddleware "pmpro_backend/internals/middlewares/auth"
)

func ShiftLogRoutes(app *fiber.App, db *gorm.DB) {
	shiftLogController := controller.NewShiftLogController(db)

	base := app.Group("/api/shift-logs")
	base.Get("/", shiftLogController.List)

	protected := base.Group("/", authMiddleware.Protected())
	protected.Post("/", shiftLogController.Create)
	protected.Patch("/:id", shiftLogController.Update)
	protected.Delete("/:id", shiftLogController.Delete)
}
