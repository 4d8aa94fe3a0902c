package model

import (
	"time"

	"github.com/google/uuid"

	"pmpro_backend/internals/constants"
)

type StatusHistoryModel struct {
	StatusHistoryID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:status_history_id" json:"status_history_id"`
	StatusHistoryEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:status_history_employee_id" json:"status_history_employee_id"`

	StatusHistoryStatus constants.WorkStatus `gorm:"not null;column:status_history_status" json:"status_history_status"`
	StatusHistoryDate   time.Time            `gorm:"type:date;not null;column:status_history_date" json:"status_history_date"`
	StatusHistoryNote   string               `gorm:"column:status_history_note" json:"status_history_note"`

	StatusHistoryCreatedAt time.Time `gorm:"column:status_history_created_at;autoCreateTime" json:"status_history_created_at"`
}

func (StatusHistoryModel) TableName() string { return "status_history" }
