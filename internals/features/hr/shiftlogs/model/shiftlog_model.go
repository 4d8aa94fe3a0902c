package model

import (
	"time"

	"github.com/google/uuid"
)

// Bitácora de turno: notas libres con autor, independientes del roster.
type ShiftLogModel struct {
	ShiftLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:shift_log_id" json:"shift_log_id"`

	ShiftLogTimestamp time.Time `gorm:"not null;column:shift_log_timestamp" json:"shift_log_timestamp"`
	ShiftLogText      string    `gorm:"not null;column:shift_log_text" json:"shift_log_text"`
	ShiftLogAuthor    string    `gorm:"not null;default:'Sup';column:shift_log_author" json:"shift_log_author"`

	ShiftLogCreatedAt time.Time `gorm:"column:shift_log_created_at;autoCreateTime" json:"shift_log_created_at"`
}

func (ShiftLogModel) TableName() string { return "shift_logs" }
