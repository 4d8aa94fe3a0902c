package controller

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"pmpro_backend/internals/features/hr/employees/model"
	ioService "pmpro_backend/internals/features/hr/importexport/service"
	syncService "pmpro_backend/internals/features/hr/sync/service"
	helper "pmpro_backend/internals/helpers"
)

/* ===================== IMPORT CSV ===================== */
// POST /api/employees/import
// Acepta el CSV como multipart (campo "file") o como body crudo.
// Filas malformadas se saltan sin conteo parcial.
func (ctrl *EmployeeController) ImportCSV(c *fiber.Ctx) error {
	text := ""

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer el archivo")
		}
		defer f.Close()
		raw, err := io.ReadAll(f)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer el archivo")
		}
		text = string(raw)
	} else {
		text = string(c.Body())
	}

	if text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "CSV vacío")
	}

	emps := ioService.ParseRosterCSV(text, time.Now())
	if len(emps) == 0 {
		return helper.Success(c, "No se detectaron filas válidas.", fiber.Map{"imported": 0})
	}

	if err := ctrl.DB.CreateInBatches(&emps, 100).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo importar el roster")
	}

	syncService.WriteThrough(ctrl.DB)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Roster importado", fiber.Map{"imported": len(emps)})
}

/* ===================== EXPORT CSV ===================== */
// GET /api/employees/export
// Mismo orden de columnas que el import: el archivo exportado se puede
// reimportar tal cual.
func (ctrl *EmployeeController) ExportCSV(c *fiber.Ctx) error {
	emps, err := model.FindAllWithLogs(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer el roster")
	}

	csv := ioService.ExportRosterCSV(emps)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="PM_PRO_BACKUP.csv"`)
	return c.SendString(csv)
}
