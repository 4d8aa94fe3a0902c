package service

import (
	"math"
	"strings"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

// ProfileCompleteness: suma ponderada de ocho campos presentes/válidos.
// Los pesos suman 100 (ver constants).
func ProfileCompleteness(e model.EmployeeModel) int {
	score := 0
	if strings.TrimSpace(e.EmployeeNombre) != "" {
		score += constants.WeightNombre
	}
	if strings.TrimSpace(e.EmployeeCedula) != "" {
		score += constants.WeightCedula
	}
	if strings.Contains(e.EmployeeEmail, "@") {
		score += constants.WeightEmail
	}
	if strings.TrimSpace(e.EmployeeCargo) != "" {
		score += constants.WeightCargo
	}
	if sup := strings.TrimSpace(e.EmployeeCsAsignado); sup != "" && sup != constants.SupervisorSinAsignar {
		score += constants.WeightSupervisor
	}
	if e.EmployeeFechaIngreso != nil && !e.EmployeeFechaIngreso.IsZero() {
		score += constants.WeightFechaIngreso
	}
	if strings.TrimSpace(e.EmployeeTurno) != "" {
		score += constants.WeightTurno
	}
	if constants.IsValidWeekday(e.EmployeeLibranza) {
		score += constants.WeightLibranza
	}
	return score
}

// DataQualityScore: promedio redondeado de completitud sobre los activos.
// 0 cuando no hay activos.
func DataQualityScore(actives []model.EmployeeModel) int {
	if len(actives) == 0 {
		return 0
	}
	sum := 0
	for _, e := range actives {
		sum += ProfileCompleteness(e)
	}
	return int(math.Round(float64(sum) / float64(len(actives))))
}
