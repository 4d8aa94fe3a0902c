package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pmpro_backend/internals/features/hr/attendance/controller"
	authMiddleware "pmpro_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceController := controller.NewAttendanceController(db)

	base := app.Group("/api/attendance")

	// 🔓 lecturas
	base.Get("/daily", attendanceController.Daily)
	base.Get("/daily/report", attendanceController.DailyReport)
	base.Get("/daily/log-template", attendanceController.LogTemplate)
	base.Get("/amonestacion/:employee_id", attendanceController.Amonestacion)

	// 🔒 mutaciones
	protected := base.Group("/", authMiddleware.Protected())
	protected.Post("/mark", attendanceController.Mark)
	protected.Post("/mass", attendanceController.MassMark)
	protected.Post("/autofill-dayoff", attendanceController.AutoFillDayOff)

	// Vista mensual (solo lectura)
	monthly := app.Group("/api/monthly")
	monthly.Get("/", attendanceController.MonthlyCalendar)
	monthly.Get("/patterns", attendanceController.MonthlyPatterns)
	monthly.Get("/export", attendanceController.MonthlyExportCSV)
	monthly.Get("/export.xlsx", attendanceController.MonthlyExportXLSX)
}
