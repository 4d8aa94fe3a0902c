package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assistantService "pmpro_backend/internals/features/hr/assistant/service"
	"pmpro_backend/internals/features/hr/assistant/dto"
	employeeModel "pmpro_backend/internals/features/hr/employees/model"
	helper "pmpro_backend/internals/helpers"
)

type AssistantController struct {
	DB *gorm.DB
}

func NewAssistantController(db *gorm.DB) *AssistantController {
	return &AssistantController{DB: db}
}

/* ===================== CHAT ===================== */
// POST /api/assistant/chat
// El historial viaja completo en cada request; el server no guarda estado.
func (ctrl *AssistantController) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
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

	return helper.Success(c, "OK", fiber.Map{
		"answer": assistantService.Chat(req.History, req.Message, actives),
	})
}

/* ===================== ANÁLISIS DE EMPLEADO ===================== */
// GET /api/assistant/analyze/:employee_id
func (ctrl *AssistantController) Analyze(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var emp employeeModel.EmployeeModel
	if err := ctrl.DB.
		Preload("Incidents", func(tx *gorm.DB) *gorm.DB { return tx.Order("incident_date ASC") }).
		Where("employee_id = ?", id).
		Take(&emp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Empleado no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"analysis": assistantService.AnalyzeEmployee(emp),
	})
}
