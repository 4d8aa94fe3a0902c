package dto

import (
	"github.com/google/uuid"
)

type MarkAttendanceRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string    `json:"status" validate:"required,oneof=Presente Tardanza Falta Medical PNR Libre"`
}

// Asistencia masiva: marca Presente a todos los convocados sin registro.
type MassAttendanceRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Autocompletar libranzas: marca Libre a los activos que libran ese día
// y no tienen registro.
type AutoFillRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
