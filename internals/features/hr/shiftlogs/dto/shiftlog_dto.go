package dto

import (
	"time"

	"github.com/google/uuid"

	"pmpro_backend/internals/features/hr/shiftlogs/model"
)

type CreateShiftLogRequest struct {
	Text   string `json:"text" validate:"required,min=1"`
	Author string `json:"author" validate:"omitempty,max=100"`
}

// Editar reemplaza texto Y timestamp: la nota editada cuenta como nueva.
type UpdateShiftLogRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

type ShiftLogResponse struct {
	ShiftLogID uuid.UUID `json:"shift_log_id"`
	Timestamp  time.Time `json:"timestamp"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
}

func NewShiftLogResponse(m model.ShiftLogModel) ShiftLogResponse {
	return ShiftLogResponse{
		ShiftLogID: m.ShiftLogID,
		Timestamp:  m.ShiftLogTimestamp,
		Text:       m.ShiftLogText,
		Author:     m.ShiftLogAuthor,
	}
}
