package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "pmpro_backend/internals/features/auth/route"
	assistantRoute "pmpro_backend/internals/features/hr/assistant/route"
	attendanceRoute "pmpro_backend/internals/features/hr/attendance/route"
	employeeRoute "pmpro_backend/internals/features/hr/employees/route"
	shiftLogRoute "pmpro_backend/internals/features/hr/shiftlogs/route"
	analyticsRoute "pmpro_backend/internals/features/hr/stats/route"
	snapshotRoute "pmpro_backend/internals/features/hr/sync/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== HR =====================
	log.Println("[INFO] Setting up EmployeeRoutes...")
	employeeRoute.EmployeeRoutes(app, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(app, db)

	log.Println("[INFO] Setting up ShiftLogRoutes...")
	shiftLogRoute.ShiftLogRoutes(app, db)

	log.Println("[INFO] Setting up AnalyticsRoutes...")
	analyticsRoute.AnalyticsRoutes(app, db)

	log.Println("[INFO] Setting up SnapshotRoutes...")
	snapshotRoute.SnapshotRoutes(app, db)

	log.Println("[INFO] Setting up AssistantRoutes...")
	assistantRoute.AssistantRoutes(app, db)
}
