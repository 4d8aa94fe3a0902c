package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pmpro_backend/internals/constants"
	employeeModel "pmpro_backend/internals/features/hr/employees/model"
	statsService "pmpro_backend/internals/features/hr/stats/service"
	helper "pmpro_backend/internals/helpers"
)

/* ===================== REPORTE DEL DÍA ===================== */
// GET /api/attendance/daily/report?date=YYYY-MM-DD
// Texto listo para pegar en el grupo (formato del original).
func (ctrl *AttendanceController) DailyReport(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if _, err := helper.ParseISODate(dateStr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida (YYYY-MM-DD)")
	}

	actives, err := employeeModel.FindActiveWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	st := statsService.ComputeDailyStats(actives, dateStr)

	report := fmt.Sprintf(
		"📊 *REPORTE %s*\n👥 Conv: %d | ✅ Asist: %d\n⚠️ Tard: %d | ❌ Falta: %d\n🏥 Med: %d | 🔵 PNR: %d\n📈 EFE: %d%% | IA: %d%%\n🏝 Libres: %d",
		dateStr, st.TotalConvocados, st.Presentes, st.Tardanzas, st.Faltas,
		st.Medical, st.PNR, st.EFE, st.IA, len(st.Libres),
	)
	return helper.Success(c, "OK", fiber.Map{"report": report})
}

/* ===================== PLANTILLA DE BITÁCORA ===================== */
// GET /api/attendance/daily/log-template?date=YYYY-MM-DD
func (ctrl *AttendanceController) LogTemplate(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if _, err := helper.ParseISODate(dateStr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida (YYYY-MM-DD)")
	}

	actives, err := employeeModel.FindActiveWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	st := statsService.ComputeDailyStats(actives, dateStr)

	template := fmt.Sprintf(`📝 BITÁCORA - %s

🔹 OPERATIVA
- Convocados: %d
- Presentes: %d (%d%%)
- Tardanzas: %d
- Ausencias: %d (%d%%)
- Justificados: %d

🔸 NOVEDADES
- [Escribir aquí incidencias relevantes...]
- [Escribir aquí pendientes...]

✅ Cierre de turno sin novedad mayor.`,
		dateStr, st.TotalConvocados, st.Presentes, st.EFE,
		st.Tardanzas, st.Faltas, st.IA, st.Medical+st.PNR,
	)
	return helper.Success(c, "OK", fiber.Map{"template": template})
}

/* ===================== AMONESTACIÓN ===================== */
// GET /api/attendance/amonestacion/:employee_id?date=YYYY-MM-DD
func (ctrl *AttendanceController) Amonestacion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	dateStr := c.Query("date")
	if _, err := helper.ParseISODate(dateStr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida (YYYY-MM-DD)")
	}

	var emp employeeModel.EmployeeModel
	if err := ctrl.DB.Where("employee_id = ?", id).Take(&emp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Empleado no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	cargo := emp.EmployeeCargo
	if cargo == "" {
		cargo = "N/A"
	}
	sup := emp.EmployeeCsAsignado
	if sup == "" {
		sup = constants.SupervisorSinAsignar
	}

	text := fmt.Sprintf(`Buenas tardes.
Saludos cordiales.

Me dirijo en esta oportunidad para solicitar amonestación para el siguiente colaborador:

- Colaborador: %s
- Cargo: %s
- Cedula: %s
- Fecha: %s
- Motivo: Ausencia Injustificada
- Turno: %s
- Supervisor: %s`,
		emp.EmployeeNombre, cargo, emp.EmployeeCedula, dateStr, emp.EmployeeTurno, sup,
	)
	return helper.Success(c, "OK", fiber.Map{"text": text})
}
