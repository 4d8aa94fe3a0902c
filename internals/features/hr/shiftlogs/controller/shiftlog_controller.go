package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pmpro_backend/internals/features/hr/shiftlogs/dto"
	"pmpro_backend/internals/features/hr/shiftlogs/model"
	syncService "pmpro_backend/internals/features/hr/sync/service"
	helper "pmpro_backend/internals/helpers"
)

type ShiftLogController struct {
	DB *gorm.DB
}

func NewShiftLogController(db *gorm.DB) *ShiftLogController {
	return &ShiftLogController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/shiftlogs — más reciente primero
func (ctrl *ShiftLogController) List(c *fiber.Ctx) error {
	var logs []model.ShiftLogModel
	if err := ctrl.DB.Order("shift_log_timestamp DESC").Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer la bitácora")
	}

	items := make([]dto.ShiftLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.NewShiftLogResponse(l))
	}
	return helper.Success(c, "OK", fiber.Map{"items": items})
}

/* ===================== CREATE ===================== */
// POST /api/shiftlogs
func (ctrl *ShiftLogController) Create(c *fiber.Ctx) error {
	var req dto.CreateShiftLogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	author := req.Author
	if author == "" {
		author = "Sup"
	}
	m := model.ShiftLogModel{
		ShiftLogTimestamp: time.Now(),
		ShiftLogText:      req.Text,
		ShiftLogAuthor:    author,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar la nota")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Nota registrada", dto.NewShiftLogResponse(m))
}

/* ===================== UPDATE ===================== */
// PATCH /api/shiftlogs/:id — la edición renueva el timestamp
func (ctrl *ShiftLogController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateShiftLogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.ShiftLogModel{}).
		Where("shift_log_id = ?", id).
		Updates(map[string]interface{}{
			"shift_log_text":      req.Text,
			"shift_log_timestamp": time.Now(),
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo editar la nota")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Nota no encontrada")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Nota actualizada", fiber.Map{"shift_log_id": id})
}

/* ===================== DELETE ===================== */
// DELETE /api/shiftlogs/:id
func (ctrl *ShiftLogController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("shift_log_id = ?", id).Delete(&model.ShiftLogModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la nota")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Nota no encontrada")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Nota eliminada", fiber.Map{"shift_log_id": id})
}
