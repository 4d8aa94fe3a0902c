package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	employeeModel "pmpro_backend/internals/features/hr/employees/model"
	ioService "pmpro_backend/internals/features/hr/importexport/service"
	statsService "pmpro_backend/internals/features/hr/stats/service"
	helper "pmpro_backend/internals/helpers"
)

func (ctrl *AttendanceController) monthInputs(c *fiber.Ctx) (string, []statsService.MonthDay, []employeeModel.EmployeeModel, error) {
	monthStr := c.Query("month")
	year, month, err := helper.ParseYearMonth(monthStr)
	if err != nil {
		return "", nil, nil, fiber.NewError(fiber.StatusBadRequest, "Mes inválido (YYYY-MM)")
	}
	actives, err := employeeModel.FindActiveWithLogs(ctrl.DB)
	if err != nil {
		return "", nil, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return monthStr, statsService.MonthDays(year, month), actives, nil
}

/* ===================== CALENDARIO MENSUAL ===================== */
// GET /api/monthly?month=YYYY-MM
// Proyección del mes + matriz empleado×día con el estado mostrado
// (registro explícito > libranza implícita > vacío).
func (ctrl *AttendanceController) MonthlyCalendar(c *fiber.Ctx) error {
	_, days, actives, err := ctrl.monthInputs(c)
	if err != nil {
		return err
	}

	rows := make([]fiber.Map, 0, len(actives))
	for i := range actives {
		statuses := make([]string, 0, len(days))
		for _, d := range days {
			statuses = append(statuses, statsService.DisplayedStatus(&actives[i], d))
		}
		rows = append(rows, fiber.Map{
			"employee_id": actives[i].EmployeeID,
			"nombre":      actives[i].EmployeeNombre,
			"libranza":    actives[i].EmployeeLibranza,
			"statuses":    statuses,
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"days": days,
		"rows": rows,
	})
}

/* ===================== PATRONES ===================== */
// GET /api/monthly/patterns?month=YYYY-MM
func (ctrl *AttendanceController) MonthlyPatterns(c *fiber.Ctx) error {
	monthStr, days, actives, err := ctrl.monthInputs(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", fiber.Map{
		"patterns": statsService.DetectPatterns(actives, days, monthStr),
	})
}

/* ===================== EXPORT MENSUAL ===================== */
// GET /api/monthly/export?month=YYYY-MM
func (ctrl *AttendanceController) MonthlyExportCSV(c *fiber.Ctx) error {
	monthStr, days, actives, err := ctrl.monthInputs(c)
	if err != nil {
		return err
	}

	csv := ioService.ExportMonthlyCSV(actives, days)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="MONTHLY_REPORT_%s.csv"`, monthStr))
	return c.SendString(csv)
}

// GET /api/monthly/export.xlsx?month=YYYY-MM
func (ctrl *AttendanceController) MonthlyExportXLSX(c *fiber.Ctx) error {
	monthStr, days, actives, err := ctrl.monthInputs(c)
	if err != nil {
		return err
	}

	f, err := ioService.BuildMonthlyXLSX(actives, days, monthStr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el XLSX")
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el XLSX")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="MONTHLY_REPORT_%s.xlsx"`, monthStr))
	return c.Send(buf.Bytes())
}
