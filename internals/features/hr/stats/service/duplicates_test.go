package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

func emp(cedula string, status constants.WorkStatus, turno, sup string) model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeCedula:        cedula,
		EmployeeStatusLaboral: status,
		EmployeeTurno:         turno,
		EmployeeCsAsignado:    sup,
	}
}

func TestCedulaDuplicateMapOnlyCountsActivos(t *testing.T) {
	emps := []model.EmployeeModel{
		emp("111", constants.WorkActivo, "PM", "Ana"),
		emp("111", constants.WorkActivo, "AM", "Ana"),
		emp("111", constants.WorkEgreso, "PM", "Ana"), // no cuenta
		emp("222", constants.WorkActivo, "PM", "Ana"),
	}
	m := CedulaDuplicateMap(emps)
	require.Equal(t, 2, m["111"])
	require.Equal(t, 1, m["222"])

	// un egresado con cédula colisionada nunca queda marcado duplicado
	soloEgreso := CedulaDuplicateMap([]model.EmployeeModel{
		emp("111", constants.WorkEgreso, "PM", "Ana"),
		emp("111", constants.WorkLicencia, "PM", "Ana"),
	})
	require.Equal(t, 0, soloEgreso["111"])
}

func TestSupervisorSlotMapNormalizesAndExcludesSentinel(t *testing.T) {
	emps := []model.EmployeeModel{
		emp("1", constants.WorkActivo, "PM", "Carlos "),
		emp("2", constants.WorkActivo, "PM", "  carlos"),
		emp("3", constants.WorkActivo, "AM", "Carlos"), // otro turno, otro slot
		emp("4", constants.WorkActivo, "PM", constants.SupervisorSinAsignar),
		emp("5", constants.WorkEgreso, "PM", "Carlos"),
	}
	m := SupervisorSlotMap(emps)
	require.Equal(t, 2, m[SupervisorSlotKey("PM", "Carlos")])
	require.Equal(t, 1, m[SupervisorSlotKey("AM", "Carlos")])
	require.NotContains(t, m, SupervisorSlotKey("PM", constants.SupervisorSinAsignar))
}
