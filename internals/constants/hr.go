package constants

/* =======================================================
 * Estados laborales
 * ======================================================= */

type WorkStatus string

const (
	WorkActivo     WorkStatus = "Activo"
	WorkEgreso     WorkStatus = "Egreso"
	WorkCambioArea WorkStatus = "CambioArea"
	WorkLicencia   WorkStatus = "Licencia"
)

var WorkStatuses = []WorkStatus{WorkActivo, WorkEgreso, WorkCambioArea, WorkLicencia}

func IsValidWorkStatus(s string) bool {
	for _, w := range WorkStatuses {
		if string(w) == s {
			return true
		}
	}
	return false
}

/* =======================================================
 * Estados de asistencia (por día)
 * ======================================================= */

type AttendanceStatus string

const (
	AttPresente AttendanceStatus = "Presente"
	AttTardanza AttendanceStatus = "Tardanza"
	AttFalta    AttendanceStatus = "Falta"
	AttMedical  AttendanceStatus = "Medical"
	AttPNR      AttendanceStatus = "PNR" // Permiso No Remunerado
	AttLibre    AttendanceStatus = "Libre"
)

var AttendanceStatuses = []AttendanceStatus{AttPresente, AttTardanza, AttFalta, AttMedical, AttPNR, AttLibre}

func IsValidAttendanceStatus(s string) bool {
	for _, a := range AttendanceStatuses {
		if string(a) == s {
			return true
		}
	}
	return false
}

/* =======================================================
 * Incidencias y su peso sobre el score de confiabilidad
 * ======================================================= */

type IncidentType string

const (
	IncTardanza     IncidentType = "Tardanza"
	IncAusencia     IncidentType = "Ausencia"
	IncConducta     IncidentType = "Conducta"
	IncFelicitacion IncidentType = "Felicitacion"
	IncOtro         IncidentType = "Otro"
)

// Delta fijo por tipo; se aplica sobre TODO el historial, sin decaimiento.
var IncidentScoreDelta = map[IncidentType]int{
	IncTardanza:     -5,
	IncAusencia:     -15,
	IncConducta:     -20,
	IncFelicitacion: +5,
	IncOtro:         0,
}

/* =======================================================
 * Coaching
 * ======================================================= */

const (
	CoachingPendiente  = "Pendiente"
	CoachingCompletado = "Completado"
)

/* =======================================================
 * Turnos y defaults
 * ======================================================= */

const (
	TurnoAM         = "AM"
	TurnoPM         = "PM"
	TurnoIntermedio = "Intermedio"
)

const (
	DefaultTurno         = TurnoPM
	DefaultLibranza      = "DOMINGO"
	DefaultCargo         = "Agente"
	SupervisorSinAsignar = "Sin Asignar"
)

// Pesos de completitud de perfil (suman 100):
// nombre, cédula, email, cargo, supervisor, fecha ingreso, turno, libranza.
const (
	WeightNombre       = 10
	WeightCedula       = 10
	WeightEmail        = 15
	WeightCargo        = 15
	WeightSupervisor   = 15
	WeightFechaIngreso = 10
	WeightTurno        = 10
	WeightLibranza     = 15
)
