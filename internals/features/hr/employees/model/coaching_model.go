package model

import (
	"time"

	"github.com/google/uuid"
)

type CoachingEntryModel struct {
	CoachingID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:coaching_id" json:"coaching_id"`
	CoachingEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:coaching_employee_id" json:"coaching_employee_id"`

	CoachingDate  time.Time `gorm:"type:date;not null;column:coaching_date" json:"coaching_date"`
	CoachingTopic string    `gorm:"not null;column:coaching_topic" json:"coaching_topic"`
	CoachingNotes string    `gorm:"column:coaching_notes" json:"coaching_notes"`

	// Acuerdos
	CoachingActionItems string `gorm:"column:coaching_action_items" json:"coaching_action_items"`
	CoachingStatus      string `gorm:"not null;default:'Pendiente';column:coaching_status" json:"coaching_status"`

	CoachingCreatedAt time.Time `gorm:"column:coaching_created_at;autoCreateTime" json:"coaching_created_at"`
}

func (CoachingEntryModel) TableName() string { return "coaching_entries" }
