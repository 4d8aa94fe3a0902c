package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pmpro_backend/internals/constants"
	employeeModel "pmpro_backend/internals/features/hr/employees/model"
	statsService "pmpro_backend/internals/features/hr/stats/service"
	helper "pmpro_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

/* ===================== OVERVIEW ===================== */
// GET /api/analytics/overview
// Panel general: calidad de datos, duplicados, distribución de libranzas,
// balance de staffing, aniversarios del mes y avance del mes.
func (ctrl *AnalyticsController) Overview(c *fiber.Ctx) error {
	emps, err := employeeModel.FindAllWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer el roster")
	}

	actives := make([]employeeModel.EmployeeModel, 0, len(emps))
	for _, e := range emps {
		if e.EmployeeStatusLaboral == constants.WorkActivo {
			actives = append(actives, e)
		}
	}

	dupMap := statsService.CedulaDuplicateMap(emps)
	duplicados := 0
	for _, n := range dupMap {
		if n > 1 {
			duplicados += n
		}
	}

	now := time.Now()
	aniv := statsService.Anniversaries(actives, now)
	anivItems := make([]fiber.Map, 0, len(aniv))
	for i := range aniv {
		anivItems = append(anivItems, fiber.Map{
			"employee_id": aniv[i].EmployeeID,
			"nombre":      aniv[i].EmployeeNombre,
			"antiguedad":  statsService.Seniority(aniv[i].EmployeeFechaIngreso, now),
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_empleados":   len(emps),
		"activos":           len(actives),
		"data_quality":      statsService.DataQualityScore(actives),
		"duplicados":        duplicados,
		"days_off":          statsService.DaysOffDistribution(actives),
		"staffing":          statsService.AnalyzeStaffing(actives),
		"aniversarios":      anivItems,
		"progreso_del_mes":  statsService.MonthProgress(now),
		"supervisor_slots":  statsService.SupervisorSlotMap(emps),
	})
}
