package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

func fullEmployee() model.EmployeeModel {
	fi := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	return model.EmployeeModel{
		EmployeeNombre:        "Maria Perez",
		EmployeeCedula:        "8-123-456",
		EmployeeEmail:         "maria@empresa.com",
		EmployeeCargo:         "Agente",
		EmployeeCsAsignado:    "Carlos",
		EmployeeFechaIngreso:  &fi,
		EmployeeTurno:         constants.TurnoPM,
		EmployeeLibranza:      "DOMINGO",
		EmployeeStatusLaboral: constants.WorkActivo,
	}
}

func TestProfileCompleteness100OnlyWhenAllFieldsOk(t *testing.T) {
	require.Equal(t, 100, ProfileCompleteness(fullEmployee()))

	mutations := []struct {
		name string
		mut  func(*model.EmployeeModel)
		lost int
	}{
		{"sin nombre", func(e *model.EmployeeModel) { e.EmployeeNombre = " " }, constants.WeightNombre},
		{"sin cedula", func(e *model.EmployeeModel) { e.EmployeeCedula = "" }, constants.WeightCedula},
		{"email sin arroba", func(e *model.EmployeeModel) { e.EmployeeEmail = "maria.empresa.com" }, constants.WeightEmail},
		{"sin cargo", func(e *model.EmployeeModel) { e.EmployeeCargo = "" }, constants.WeightCargo},
		{"supervisor centinela", func(e *model.EmployeeModel) { e.EmployeeCsAsignado = constants.SupervisorSinAsignar }, constants.WeightSupervisor},
		{"sin fecha ingreso", func(e *model.EmployeeModel) { e.EmployeeFechaIngreso = nil }, constants.WeightFechaIngreso},
		{"sin turno", func(e *model.EmployeeModel) { e.EmployeeTurno = "" }, constants.WeightTurno},
		{"libranza invalida", func(e *model.EmployeeModel) { e.EmployeeLibranza = "FERIADO" }, constants.WeightLibranza},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			e := fullEmployee()
			m.mut(&e)
			got := ProfileCompleteness(e)
			require.Equal(t, 100-m.lost, got)
			require.Less(t, got, 100)
		})
	}
}

func TestProfileCompletenessBounds(t *testing.T) {
	require.Equal(t, 0, ProfileCompleteness(model.EmployeeModel{}))
}

func TestDataQualityScore(t *testing.T) {
	require.Equal(t, 0, DataQualityScore(nil))

	empty := model.EmployeeModel{}
	full := fullEmployee()
	// media de 0 y 100 = 50
	require.Equal(t, 50, DataQualityScore([]model.EmployeeModel{empty, full}))
	require.Equal(t, 100, DataQualityScore([]model.EmployeeModel{full, full}))
}
