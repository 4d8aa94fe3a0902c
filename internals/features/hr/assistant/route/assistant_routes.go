package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pmpro_backend/internals/features/hr/assistant/controller"
)

func AssistantRoutes(app *fiber.App, db *gorm.DB) {
	assistantController := controller.NewAssistantController(db)

	base := app.Group("/api/assistant")
	base.Post("/chat", assistantController.Chat)
	base.Get("/analyze/:employee_id", assistantController.Analyze)
}
