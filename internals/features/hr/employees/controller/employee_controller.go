package controller

import (
	"strings"
	"time"

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

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

func (ctrl *EmployeeController) toResponse(m model.EmployeeModel, dupMap map[string]int) dto.EmployeeResponse {
	return dto.NewEmployeeResponse(
		m,
		statsService.ProfileCompleteness(m),
		statsService.Seniority(m.EmployeeFechaIngreso, time.Now()),
		dupMap[m.EmployeeCedula] > 1,
	)
}

/* ===================== LIST ===================== */
// GET /api/employees?q=&status=&only_duplicates=&risk_only=&page=&per_page=
func (ctrl *EmployeeController) List(c *fiber.Ctx) error {
	emps, err := model.FindAllWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer el roster")
	}

	dupMap := statsService.CedulaDuplicateMap(emps)

	statusFilter := c.Query("status", "All")
	search := strings.ToLower(strings.TrimSpace(c.Query("q")))
	onlyDuplicates := c.QueryBool("only_duplicates")
	riskOnly := c.QueryBool("risk_only")

	filtered := make([]model.EmployeeModel, 0, len(emps))
	for _, e := range emps {
		if onlyDuplicates {
			if dupMap[e.EmployeeCedula] > 1 {
				filtered = append(filtered, e)
			}
			continue
		}
		if riskOnly {
			if e.EmployeeReliabilityScore < 90 && e.EmployeeStatusLaboral == constants.WorkActivo {
				filtered = append(filtered, e)
			}
			continue
		}
		if statusFilter != "All" && string(e.EmployeeStatusLaboral) != statusFilter {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.EmployeeNombre), search) &&
			!strings.Contains(e.EmployeeCedula, search) &&
			!strings.Contains(strings.ToLower(e.EmployeeCsAsignado), search) &&
			!strings.Contains(strings.ToLower(e.EmployeeCargo), search) {
			continue
		}
		filtered = append(filtered, e)
	}

	paging := helper.ResolvePaging(c, 50, 200)
	total := int64(len(filtered))
	start := paging.Offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + paging.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]dto.EmployeeResponse, 0, end-start)
	for _, e := range filtered[start:end] {
		items = append(items, ctrl.toResponse(e, dupMap))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* ===================== DETAIL ===================== */
// GET /api/employees/:id
func (ctrl *EmployeeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	emp, err := ctrl.findOne(id)
	if err != nil {
		return err
	}

	emps, _ := model.FindAllWithLogs(ctrl.DB)
	dupMap := statsService.CedulaDuplicateMap(emps)

	return helper.Success(c, "OK", ctrl.toResponse(*emp, dupMap))
}

/* ===================== CREATE ===================== */
// POST /api/employees
// Cédula duplicada entre activos → 409 con duplicate_warning salvo confirm=true.
func (ctrl *EmployeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !req.Confirm {
		emps, err := model.FindAllWithLogs(ctrl.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if statsService.CedulaDuplicateMap(emps)[strings.TrimSpace(req.Cedula)] >= 1 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"code":              fiber.StatusConflict,
				"status":            "duplicate_warning",
				"message":           "Cédula duplicada. ¿Registrar?",
				"duplicate_warning": true,
			})
		}
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el empleado")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Empleado registrado", ctrl.toResponse(m, map[string]int{}))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/employees/:id
func (ctrl *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateEmployeeRequest
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

	if req.Nombre != nil {
		emp.EmployeeNombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Cedula != nil {
		emp.EmployeeCedula = strings.TrimSpace(*req.Cedula)
	}
	if req.Cargo != nil {
		emp.EmployeeCargo = strings.TrimSpace(*req.Cargo)
	}
	if req.Email != nil {
		emp.EmployeeEmail = strings.TrimSpace(*req.Email)
	}
	if req.Turno != nil {
		emp.EmployeeTurno = *req.Turno
	}
	if req.Libranza != nil {
		emp.EmployeeLibranza = *req.Libranza
	}
	if req.CsAsignado != nil {
		emp.EmployeeCsAsignado = strings.TrimSpace(*req.CsAsignado)
	}
	if req.Notes != nil {
		emp.EmployeeNotes = req.Notes
	}
	if req.FechaIngreso != nil {
		if t, err := helper.ParseISODate(*req.FechaIngreso); err == nil {
			emp.EmployeeFechaIngreso = &t
		}
	}
	if req.FechaFin != nil {
		if t, err := helper.ParseISODate(*req.FechaFin); err == nil {
			emp.EmployeeFechaFin = &t
		}
	}

	if err := ctrl.DB.Save(emp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Datos actualizados", ctrl.toResponse(*emp, map[string]int{}))
}

/* ===================== DELETE ===================== */
// DELETE /api/employees/:id — borrado duro, solo por confirmación explícita del usuario
func (ctrl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("incident_employee_id = ?", id).Delete(&model.IncidentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("coaching_employee_id = ?", id).Delete(&model.CoachingEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("status_history_employee_id = ?", id).Delete(&model.StatusHistoryModel{}).Error; err != nil {
			return err
		}
		return tx.Where("employee_id = ?", id).Delete(&model.EmployeeModel{}).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Empleado eliminado", fiber.Map{"employee_id": id})
}

/* ===================== BULK CLEAR ===================== */
// DELETE /api/employees?confirm=true — vacía el roster completo
func (ctrl *EmployeeController) BulkClear(c *fiber.Ctx) error {
	if !c.QueryBool("confirm") {
		return fiber.NewError(fiber.StatusBadRequest, "Se requiere confirm=true para vaciar el roster")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.IncidentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.CoachingEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.StatusHistoryModel{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.EmployeeModel{}).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo vaciar el roster")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Roster vaciado", nil)
}

/* ===================== internos ===================== */

func (ctrl *EmployeeController) findOne(id uuid.UUID) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	err := ctrl.DB.
		Preload("Incidents", func(tx *gorm.DB) *gorm.DB { return tx.Order("incident_date ASC") }).
		Preload("Coaching", func(tx *gorm.DB) *gorm.DB { return tx.Order("coaching_date DESC") }).
		Preload("StatusHistory", func(tx *gorm.DB) *gorm.DB { return tx.Order("status_history_date ASC") }).
		Where("employee_id = ?", id).
		Take(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Empleado no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &emp, nil
}
