package service

import (
	"strings"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

// CedulaDuplicateMap cuenta cédulas repetidas SOLO entre activos.
// Un registro es duplicado si su conteo > 1; nunca se bloquea el alta.
func CedulaDuplicateMap(emps []model.EmployeeModel) map[string]int {
	counts := map[string]int{}
	for _, e := range emps {
		if e.EmployeeStatusLaboral == constants.WorkActivo {
			counts[e.EmployeeCedula]++
		}
	}
	return counts
}

// SupervisorSlotKey: (turno, supervisor normalizado) → clave del mapa.
func SupervisorSlotKey(turno, supervisor string) string {
	return turno + "-" + strings.ToLower(strings.TrimSpace(supervisor))
}

// SupervisorSlotMap cuenta activos por slot turno+supervisor,
// excluyendo el centinela "Sin Asignar".
func SupervisorSlotMap(emps []model.EmployeeModel) map[string]int {
	counts := map[string]int{}
	for _, e := range emps {
		if e.EmployeeStatusLaboral != constants.WorkActivo {
			continue
		}
		sup := strings.TrimSpace(e.EmployeeCsAsignado)
		if sup == "" || sup == constants.SupervisorSinAsignar {
			continue
		}
		counts[SupervisorSlotKey(e.EmployeeTurno, sup)]++
	}
	return counts
}
