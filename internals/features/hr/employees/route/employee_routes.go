package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pmpro_backend/internals/features/hr/employees/controller"
	authMiddleware "pmpro_backend/internals/middlewares/auth"
)

// Lecturas abiertas; toda mutación exige JWT de supervisor.
func EmployeeRoutes(app *fiber.App, db *gorm.DB) {
	employeeController := controller.NewEmployeeController(db)

	base := app.Group("/api/employees")

	// 🔓 lecturas
	base.Get("/", employeeController.List)
	base.Get("/export", employeeController.ExportCSV)
	base.Get("/:id", employeeController.GetByID)

	// 🔒 mutaciones
	protected := base.Group("/", authMiddleware.Protected())
	protected.Post("/", employeeController.Create)
	protected.Post("/import", employeeController.ImportCSV)
	protected.Patch("/:id", employeeController.Update)
	protected.Delete("/:id", employeeController.Delete)
	protected.Delete("/", employeeController.BulkClear)

	protected.Post("/:id/incidents", employeeController.AddIncident)
	protected.Post("/:id/coaching", employeeController.AddCoaching)
	protected.Patch("/:id/coaching/:coaching_id", employeeController.SetCoachingStatus)
	protected.Post("/:id/status", employeeController.ChangeStatus)
}
