package model

import (
	"time"

	"github.com/google/uuid"

	"pmpro_backend/internals/constants"
)

type IncidentModel struct {
	IncidentID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:incident_id" json:"incident_id"`
	IncidentEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:incident_employee_id" json:"incident_employee_id"`

	IncidentDate     time.Time              `gorm:"type:date;not null;column:incident_date" json:"incident_date"`
	IncidentType     constants.IncidentType `gorm:"not null;column:incident_type" json:"incident_type"`
	IncidentNote     string                 `gorm:"column:incident_note" json:"incident_note"`
	IncidentSeverity string                 `gorm:"not null;default:'Medium';column:incident_severity" json:"incident_severity"`

	IncidentCreatedAt time.Time `gorm:"column:incident_created_at;autoCreateTime" json:"incident_created_at"`
}

func (IncidentModel) TableName() string { return "incidents" }
