package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pmpro_backend/internals/constants"
	"pmpro_backend/internals/features/hr/attendance/dto"
	employeeModel "pmpro_backend/internals/features/hr/employees/model"
	statsService "pmpro_backend/internals/features/hr/stats/service"
	syncService "pmpro_backend/internals/features/hr/sync/service"
	helper "pmpro_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ===================== MARCAR ===================== */
// POST /api/attendance/mark
// Sobreescribe el estado de esa fecha (a lo sumo un estado por día).
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var emp employeeModel.EmployeeModel
	if err := ctrl.DB.Where("employee_id = ?", req.EmployeeID).Take(&emp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Empleado no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	emp.SetAttendance(req.Date, constants.AttendanceStatus(req.Status))
	if err := ctrl.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employee_id = ?", emp.EmployeeID).
		Update("employee_attendance_history", emp.EmployeeAttendanceHistory).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo marcar la asistencia")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Asistencia marcada", fiber.Map{
		"employee_id": emp.EmployeeID,
		"date":        req.Date,
		"status":      req.Status,
	})
}

/* ===================== ASISTENCIA MASIVA ===================== */
// POST /api/attendance/mass
func (ctrl *AttendanceController) MassMark(c *fiber.Ctx) error {
	var req dto.MassAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actives, err := employeeModel.FindActiveWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	st := statsService.ComputeDailyStats(actives, req.Date)
	marked := 0
	for i := range st.Convocados {
		e := &st.Convocados[i]
		if _, ok := e.Attendance()[req.Date]; ok {
			continue
		}
		e.SetAttendance(req.Date, constants.AttPresente)
		if err := ctrl.DB.Model(&employeeModel.EmployeeModel{}).
			Where("employee_id = ?", e.EmployeeID).
			Update("employee_attendance_history", e.EmployeeAttendanceHistory).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		marked++
	}

	if marked == 0 {
		return helper.Success(c, "Todos los convocados ya tienen asistencia marcada.", fiber.Map{"marked": 0})
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Asistencia masiva aplicada", fiber.Map{"marked": marked})
}

/* ===================== AUTOCOMPLETAR LIBRES ===================== */
// POST /api/attendance/autofill-dayoff
func (ctrl *AttendanceController) AutoFillDayOff(c *fiber.Ctx) error {
	var req dto.AutoFillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dayOfWeek := helper.DayNameOf(req.Date)
	actives, err := employeeModel.FindActiveWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	marked := 0
	for i := range actives {
		e := &actives[i]
		if e.EmployeeLibranza != dayOfWeek {
			continue
		}
		if _, ok := e.Attendance()[req.Date]; ok {
			continue
		}
		e.SetAttendance(req.Date, constants.AttLibre)
		if err := ctrl.DB.Model(&employeeModel.EmployeeModel{}).
			Where("employee_id = ?", e.EmployeeID).
			Update("employee_attendance_history", e.EmployeeAttendanceHistory).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		marked++
	}

	if marked == 0 {
		return helper.Success(c, "No hay empleados pendientes de marcar Libre para hoy.", fiber.Map{"marked": 0})
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Libres marcados", fiber.Map{"marked": marked})
}

/* ===================== STATS DEL DÍA ===================== */
// GET /api/attendance/daily?date=YYYY-MM-DD
func (ctrl *AttendanceController) Daily(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if _, err := helper.ParseISODate(dateStr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida (YYYY-MM-DD)")
	}

	actives, err := employeeModel.FindActiveWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	st := statsService.ComputeDailyStats(actives, dateStr)

	libres := make([]fiber.Map, 0, len(st.Libres))
	for i := range st.Libres {
		libres = append(libres, fiber.Map{
			"employee_id": st.Libres[i].EmployeeID,
			"nombre":      st.Libres[i].EmployeeNombre,
		})
	}
	convocados := make([]fiber.Map, 0, len(st.Convocados))
	for i := range st.Convocados {
		convocados = append(convocados, fiber.Map{
			"employee_id": st.Convocados[i].EmployeeID,
			"nombre":      st.Convocados[i].EmployeeNombre,
			"status":      st.Convocados[i].Attendance()[dateStr],
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"stats":      st,
		"convocados": convocados,
		"libres":     libres,
	})
}
