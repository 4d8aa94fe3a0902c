package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pmpro_backend/internals/constants"
	"pmpro_backend/internals/features/hr/employees/dto"
	"pmpro_backend/internals/features/hr/employees/model"
	statsService "pmpro_backend/internals/features/hr/stats/service"
	syncService "pmpro_backend/internals/features/hr/sync/service"
	helper "pmpro_backend/internals/helpers"
)

/* ===================== INCIDENCIAS ===================== */
// POST /api/employees/:id/incidents
// El score de confiabilidad se recalcula de forma síncrona tras el append.
func (ctrl *EmployeeController) AddIncident(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.AddIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	emp, err := ctrl.findOne(id)
	if err != nil {
		return err
	}

	date, _ := helper.ParseISODate(req.Date)
	severity := req.Severity
	if severity == "" {
		severity = "Medium"
	}
	inc := model.IncidentModel{
		IncidentEmployeeID: id,
		IncidentDate:       date,
		IncidentType:       constants.IncidentType(req.Type),
		IncidentNote:       req.Note,
		IncidentSeverity:   severity,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inc).Error; err != nil {
			return err
		}
		newScore := statsService.CalculateReliability(append(emp.Incidents, inc))
		return tx.Model(&model.EmployeeModel{}).
			Where("employee_id = ?", id).
			Update("employee_reliability_score", newScore).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la incidencia")
	}

	syncService.WriteThrough(ctrl.DB)

	updated, err := ctrl.findOne(id)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Incidencia registrada", ctrl.toResponse(*updated, map[string]int{}))
}

/* ===================== COACHING ===================== */
// POST /api/employees/:id/coaching
func (ctrl *EmployeeController) AddCoaching(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.AddCoachingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := ctrl.findOne(id); err != nil {
		return err
	}

	date, _ := helper.ParseISODate(req.Date)
	entry := model.CoachingEntryModel{
		CoachingEmployeeID:  id,
		CoachingDate:        date,
		CoachingTopic:       req.Topic,
		CoachingNotes:       req.Notes,
		CoachingActionItems: req.ActionItems,
		CoachingStatus:      constants.CoachingPendiente,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el coaching")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Coaching guardado", entry)
}

// PATCH /api/employees/:id/coaching/:coaching_id
func (ctrl *EmployeeController) SetCoachingStatus(c *fiber.Ctx) error {
	coachingID, err := uuid.Parse(c.Params("coaching_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.SetCoachingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.CoachingEntryModel{}).
		Where("coaching_id = ?", coachingID).
		Update("coaching_status", req.Status)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Coaching no encontrado")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Coaching actualizado", fiber.Map{"coaching_id": coachingID, "status": req.Status})
}

/* ===================== CAMBIO DE STATUS ===================== */
// POST /api/employees/:id/status
// Solo Egreso estampa fecha_fin; cualquier otro estado la limpia.
func (ctrl *EmployeeController) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	emp, err := ctrl.findOne(id)
	if err != nil {
		return err
	}

	date, _ := helper.ParseISODate(req.Date)
	newStatus := constants.WorkStatus(req.Status)

	emp.EmployeeStatusLaboral = newStatus
	if newStatus == constants.WorkEgreso {
		emp.EmployeeFechaFin = &date
	} else {
		emp.EmployeeFechaFin = nil
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.EmployeeModel{}).
			Where("employee_id = ?", id).
			Updates(map[string]interface{}{
				"employee_status_laboral": emp.EmployeeStatusLaboral,
				"employee_fecha_fin":      emp.EmployeeFechaFin,
			}).Error; err != nil {
			return err
		}
		return tx.Create(&model.StatusHistoryModel{
			StatusHistoryEmployeeID: id,
			StatusHistoryStatus:     newStatus,
			StatusHistoryDate:       date,
			StatusHistoryNote:       req.Note,
		}).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo cambiar el status")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Status actualizado", ctrl.toResponse(*emp, map[string]int{}))
}
