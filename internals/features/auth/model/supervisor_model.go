package model

import (
	"time"

	"github.com/google/uuid"
)

type SupervisorModel struct {
	SupervisorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:supervisor_id" json:"supervisor_id"`

	SupervisorNombre   string `gorm:"not null;column:supervisor_nombre" json:"supervisor_nombre"`
	SupervisorEmail    string `gorm:"not null;uniqueIndex;column:supervisor_email" json:"supervisor_email"`
	SupervisorPassword string `gorm:"not null;column:supervisor_password" json:"-"`

	SupervisorCreatedAt time.Time `gorm:"column:supervisor_created_at;autoCreateTime" json:"supervisor_created_at"`
}

func (SupervisorModel) TableName() string { return "supervisors" }
