package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pmpro_backend/internals/features/hr/sync/controller"
	authMiddleware "pmpro_backend/internals/middlewares/auth"
)

func SnapshotRoutes(app *fiber.App, db *gorm.DB) {
	snapshotController := controller.NewSnapshotController(db)

	base := app.Group("/api/snapshot")
	base.Get("/", snapshotController.Current)
	base.Get("/backup", snapshotController.Backup)
	base.Post("/push", authMiddleware.Protected(), snapshotController.Push)
}
