package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	syncService "pmpro_backend/internals/features/hr/sync/service"
	helper "pmpro_backend/internals/helpers"
)

type SnapshotController struct {
	DB *gorm.DB
}

func NewSnapshotController(db *gorm.DB) *SnapshotController {
	return &SnapshotController{DB: db}
}

/* ===================== SNAPSHOT ACTUAL ===================== */
// GET /api/snapshot — estado completo desde la DB (empleados + bitácora)
func (ctrl *SnapshotController) Current(c *fiber.Ctx) error {
	payload, err := syncService.BuildPayload(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo armar el snapshot")
	}
	return helper.Success(c, "OK", payload)
}

/* ===================== ÚLTIMO RESPALDO ===================== */
// GET /api/snapshot/backup — lo que devolvería load(): remoto, o el
// archivo local, o vacío. Útil para verificar que el sync está vivo.
func (ctrl *SnapshotController) Backup(c *fiber.Ctx) error {
	return helper.Success(c, "OK", syncService.Load())
}

/* ===================== PUSH MANUAL ===================== */
// POST /api/snapshot/push — fuerza un write-through fuera de mutación
func (ctrl *SnapshotController) Push(c *fiber.Ctx) error {
	syncService.WriteThrough(ctrl.DB)
	return helper.Success(c, "Sincronización disparada", nil)
}
