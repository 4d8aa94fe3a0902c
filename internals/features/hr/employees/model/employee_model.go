package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pmpro_backend/internals/constants"
)

// AttendanceMap: fecha ISO (YYYY-MM-DD) → estado del día.
// A lo sumo un estado por fecha; marcar de nuevo sobreescribe.
type AttendanceMap map[string]constants.AttendanceStatus

type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_id" json:"employee_id"`

	// Identidad
	EmployeeCedula string `gorm:"not null;index;column:employee_cedula" json:"employee_cedula"`
	EmployeeNombre string `gorm:"not null;column:employee_nombre" json:"employee_nombre"`
	EmployeeCargo  string `gorm:"column:employee_cargo" json:"employee_cargo"`
	EmployeeEmail  string `gorm:"column:employee_email" json:"employee_email"`

	// Planificación
	EmployeeTurno      string `gorm:"not null;column:employee_turno" json:"employee_turno"`
	EmployeeLibranza   string `gorm:"not null;column:employee_libranza" json:"employee_libranza"`
	EmployeeCsAsignado string `gorm:"not null;column:employee_cs_asignado" json:"employee_cs_asignado"`

	// Ciclo de vida
	EmployeeStatusLaboral constants.WorkStatus `gorm:"not null;default:'Activo';index;column:employee_status_laboral" json:"employee_status_laboral"`
	EmployeeFechaIngreso  *time.Time           `gorm:"type:date;column:employee_fecha_ingreso" json:"employee_fecha_ingreso,omitempty"`
	EmployeeFechaFin      *time.Time           `gorm:"type:date;column:employee_fecha_fin" json:"employee_fecha_fin,omitempty"`

	// Score denormalizado; se recalcula en cada alta de incidencia.
	EmployeeReliabilityScore int `gorm:"not null;default:100;column:employee_reliability_score" json:"employee_reliability_score"`

	// Mapa disperso fecha→estado (jsonb)
	EmployeeAttendanceHistory datatypes.JSONType[AttendanceMap] `gorm:"type:jsonb;column:employee_attendance_history" json:"employee_attendance_history"`

	EmployeeNotes *string `gorm:"column:employee_notes" json:"employee_notes,omitempty"`

	// Logs hijos
	Incidents     []IncidentModel      `gorm:"foreignKey:IncidentEmployeeID;references:EmployeeID" json:"incidents"`
	Coaching      []CoachingEntryModel `gorm:"foreignKey:CoachingEmployeeID;references:EmployeeID" json:"coaching"`
	StatusHistory []StatusHistoryModel `gorm:"foreignKey:StatusHistoryEmployeeID;references:EmployeeID" json:"status_history"`

	EmployeeCreatedAt time.Time  `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt *time.Time `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }

// Attendance devuelve el mapa (nunca nil).
func (e *EmployeeModel) Attendance() AttendanceMap {
	m := e.EmployeeAttendanceHistory.Data()
	if m == nil {
		m = AttendanceMap{}
	}
	return m
}

// SetAttendance sobreescribe el estado de una fecha (overwrite, no append).
func (e *EmployeeModel) SetAttendance(dateStr string, status constants.AttendanceStatus) {
	m := e.Attendance()
	m[dateStr] = status
	e.EmployeeAttendanceHistory = datatypes.NewJSONType(m)
}

/* =========================================================
 * QUERIES compartidas
 * ========================================================= */

// FindAllWithLogs precarga los logs hijos: el snapshot completo del roster.
func FindAllWithLogs(db *gorm.DB) ([]EmployeeModel, error) {
	var emps []EmployeeModel
	err := db.
		Preload("Incidents", func(tx *gorm.DB) *gorm.DB { return tx.Order("incident_date ASC") }).
		Preload("Coaching", func(tx *gorm.DB) *gorm.DB { return tx.Order("coaching_date DESC") }).
		Preload("StatusHistory", func(tx *gorm.DB) *gorm.DB { return tx.Order("status_history_date ASC") }).
		Order("employee_created_at ASC").
		Find(&emps).Error
	return emps, err
}

// FindActiveWithLogs filtra statusLaboral = Activo (insumo del motor de stats).
func FindActiveWithLogs(db *gorm.DB) ([]EmployeeModel, error) {
	var emps []EmployeeModel
	err := db.
		Preload("Incidents", func(tx *gorm.DB) *gorm.DB { return tx.Order("incident_date ASC") }).
		Where("employee_status_laboral = ?", constants.WorkActivo).
		Order("employee_created_at ASC").
		Find(&emps).Error
	return emps, err
}
