package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
	helper "pmpro_backend/internals/helpers"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). La cédula duplicada NO bloquea: sin confirm=true el
// controller responde un duplicate_warning confirmable.
type CreateEmployeeRequest struct {
	Nombre       string `json:"nombre" validate:"required,max=120"`
	Cedula       string `json:"cedula" validate:"required,max=40"`
	Cargo        string `json:"cargo" validate:"omitempty,max=80"`
	Email        string `json:"email" validate:"omitempty,max=120"`
	FechaIngreso string `json:"fecha_ingreso" validate:"required,datetime=2006-01-02"`
	Turno        string `json:"turno" validate:"omitempty,oneof=AM PM Intermedio"`
	Libranza     string `json:"libranza" validate:"omitempty,oneof=LUNES MARTES MIERCOLES JUEVES VIERNES SABADO DOMINGO"`
	CsAsignado   string `json:"cs_asignado" validate:"omitempty,max=80"`

	Confirm bool `json:"confirm"`
}

// Update (partial JSON)
type UpdateEmployeeRequest struct {
	Nombre       *string `json:"nombre" validate:"omitempty,max=120"`
	Cedula       *string `json:"cedula" validate:"omitempty,max=40"`
	Cargo        *string `json:"cargo" validate:"omitempty,max=80"`
	Email        *string `json:"email" validate:"omitempty,max=120"`
	FechaIngreso *string `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
	FechaFin     *string `json:"fecha_fin" validate:"omitempty,datetime=2006-01-02"`
	Turno        *string `json:"turno" validate:"omitempty,oneof=AM PM Intermedio"`
	Libranza     *string `json:"libranza" validate:"omitempty,oneof=LUNES MARTES MIERCOLES JUEVES VIERNES SABADO DOMINGO"`
	CsAsignado   *string `json:"cs_asignado" validate:"omitempty,max=80"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Activo Egreso CambioArea Licencia"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Note   string `json:"note" validate:"omitempty,max=500"`
}

type AddIncidentRequest struct {
	Type     string `json:"type" validate:"required,oneof=Tardanza Ausencia Conducta Felicitacion Otro"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Note     string `json:"note" validate:"omitempty,max=500"`
	Severity string `json:"severity" validate:"omitempty,oneof=Low Medium High"`
}

type AddCoachingRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Topic       string `json:"topic" validate:"required,oneof=Rendimiento Asistencia Actitud 1-on-1 'Plan de Mejora'"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
	ActionItems string `json:"action_items" validate:"omitempty,max=2000"`
}

type SetCoachingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pendiente Completado"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type EmployeeResponse struct {
	EmployeeID uuid.UUID `json:"employee_id"`

	Cedula       string  `json:"cedula"`
	Nombre       string  `json:"nombre"`
	Cargo        string  `json:"cargo"`
	Email        string  `json:"email"`
	Turno        string  `json:"turno"`
	Libranza     string  `json:"libranza"`
	CsAsignado   string  `json:"cs_asignado"`
	StatusLaboral string `json:"status_laboral"`
	FechaIngreso *string `json:"fecha_ingreso,omitempty"`
	FechaFin     *string `json:"fecha_fin,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	ReliabilityScore    int    `json:"reliability_score"`
	ProfileCompleteness int    `json:"profile_completeness"`
	Seniority           string `json:"seniority"`
	CedulaDuplicada     bool   `json:"cedula_duplicada"`

	AttendanceHistory map[string]constants.AttendanceStatus `json:"attendance_history"`

	Incidents     []IncidentResponse      `json:"incidents"`
	Coaching      []CoachingEntryResponse `json:"coaching"`
	StatusHistory []StatusHistoryResponse `json:"status_history"`
}

type IncidentResponse struct {
	IncidentID uuid.UUID `json:"incident_id"`
	Date       string    `json:"date"`
	Type       string    `json:"type"`
	Note       string    `json:"note"`
	Severity   string    `json:"severity"`
}

type CoachingEntryResponse struct {
	CoachingID  uuid.UUID `json:"coaching_id"`
	Date        string    `json:"date"`
	Topic       string    `json:"topic"`
	Notes       string    `json:"notes"`
	ActionItems string    `json:"action_items"`
	Status      string    `json:"status"`
}

type StatusHistoryResponse struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	Note   string `json:"note"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateEmployeeRequest) ToModel() model.EmployeeModel {
	turno := r.Turno
	if turno == "" {
		turno = constants.DefaultTurno
	}
	libranza := r.Libranza
	if libranza == "" {
		libranza = constants.DefaultLibranza
	}
	cargo := strings.TrimSpace(r.Cargo)
	if cargo == "" {
		cargo = constants.DefaultCargo
	}
	cs := strings.TrimSpace(r.CsAsignado)
	if cs == "" {
		cs = constants.SupervisorSinAsignar
	}

	m := model.EmployeeModel{
		EmployeeNombre:           strings.TrimSpace(r.Nombre),
		EmployeeCedula:           strings.TrimSpace(r.Cedula),
		EmployeeCargo:            cargo,
		EmployeeEmail:            strings.TrimSpace(r.Email),
		EmployeeTurno:            turno,
		EmployeeLibranza:         libranza,
		EmployeeCsAsignado:       cs,
		EmployeeStatusLaboral:    constants.WorkActivo,
		EmployeeReliabilityScore: 100,
	}
	if t, err := helper.ParseISODate(r.FechaIngreso); err == nil {
		m.EmployeeFechaIngreso = &t
	}
	return m
}

func dateStr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(helper.ISODate)
	return &s
}

func NewEmployeeResponse(m model.EmployeeModel, profileScore int, seniority string, cedulaDuplicada bool) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:          m.EmployeeID,
		Cedula:              m.EmployeeCedula,
		Nombre:              m.EmployeeNombre,
		Cargo:               m.EmployeeCargo,
		Email:               m.EmployeeEmail,
		Turno:               m.EmployeeTurno,
		Libranza:            m.EmployeeLibranza,
		CsAsignado:          m.EmployeeCsAsignado,
		StatusLaboral:       string(m.EmployeeStatusLaboral),
		FechaIngreso:        dateStr(m.EmployeeFechaIngreso),
		FechaFin:            dateStr(m.EmployeeFechaFin),
		Notes:               m.EmployeeNotes,
		ReliabilityScore:    m.EmployeeReliabilityScore,
		ProfileCompleteness: profileScore,
		Seniority:           seniority,
		CedulaDuplicada:     cedulaDuplicada,
		AttendanceHistory:   m.Attendance(),
		Incidents:           []IncidentResponse{},
		Coaching:            []CoachingEntryResponse{},
		StatusHistory:       []StatusHistoryResponse{},
	}
	for _, inc := range m.Incidents {
		resp.Incidents = append(resp.Incidents, IncidentResponse{
			IncidentID: inc.IncidentID,
			Date:       inc.IncidentDate.Format(helper.ISODate),
			Type:       string(inc.IncidentType),
			Note:       inc.IncidentNote,
			Severity:   inc.IncidentSeverity,
		})
	}
	for _, co := range m.Coaching {
		resp.Coaching = append(resp.Coaching, CoachingEntryResponse{
			CoachingID:  co.CoachingID,
			Date:        co.CoachingDate.Format(helper.ISODate),
			Topic:       co.CoachingTopic,
			Notes:       co.CoachingNotes,
			ActionItems: co.CoachingActionItems,
			Status:      co.CoachingStatus,
		})
	}
	for _, sh := range m.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, StatusHistoryResponse{
			Status: string(sh.StatusHistoryStatus),
			Date:   sh.StatusHistoryDate.Format(helper.ISODate),
			Note:   sh.StatusHistoryNote,
		})
	}
	return resp
}
