package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

// 2025-06-02 es lunes
const unLunes = "2025-06-02"

func activo(nombre, libranza string) model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeNombre:        nombre,
		EmployeeLibranza:      libranza,
		EmployeeStatusLaboral: constants.WorkActivo,
	}
}

func TestComputeDailyStatsPartitionsByLibranza(t *testing.T) {
	a := activo("A", "LUNES")
	b := activo("B", "MARTES")

	st := ComputeDailyStats([]model.EmployeeModel{a, b}, unLunes)

	require.Equal(t, "LUNES", st.DiaSemana)
	require.Len(t, st.Convocados, 1)
	require.Equal(t, "B", st.Convocados[0].EmployeeNombre)
	require.Len(t, st.Libres, 1)
	require.Equal(t, "A", st.Libres[0].EmployeeNombre)

	// B convocado sin marca: total 1, presentes 0, EFE 0
	require.Equal(t, 1, st.TotalConvocados)
	require.Equal(t, 0, st.Presentes)
	require.Equal(t, 0, st.EFE)
	require.Equal(t, 0, st.IA)
}

func TestComputeDailyStatsTardanzaCuentaComoPresente(t *testing.T) {
	b := activo("B", "MARTES")
	b.SetAttendance(unLunes, constants.AttTardanza)
	c := activo("C", "MARTES")
	c.SetAttendance(unLunes, constants.AttFalta)

	st := ComputeDailyStats([]model.EmployeeModel{b, c}, unLunes)

	require.Equal(t, 1, st.Presentes)
	require.Equal(t, 1, st.Tardanzas)
	require.Equal(t, 1, st.Faltas)
	require.Equal(t, 2, st.WorkingTotal)
	require.Equal(t, 50, st.EFE)
	require.Equal(t, 50, st.IA)
}

func TestComputeDailyStatsJustificadosDescuentanBase(t *testing.T) {
	mk := func(n string, s constants.AttendanceStatus) model.EmployeeModel {
		e := activo(n, "MARTES")
		e.SetAttendance(unLunes, s)
		return e
	}
	st := ComputeDailyStats([]model.EmployeeModel{
		mk("P1", constants.AttPresente),
		mk("P2", constants.AttPresente),
		mk("M", constants.AttMedical),
		mk("N", constants.AttPNR),
	}, unLunes)

	require.Equal(t, 4, st.TotalConvocados)
	require.Equal(t, 2, st.WorkingTotal) // 4 - (1 medical + 1 pnr)
	require.Equal(t, 100, st.EFE)
	require.Equal(t, 0, st.IA)
}

// El denominador se recorta en 0: nunca porcentajes con signo indefinido.
func TestComputeDailyStatsClampsWorkingTotal(t *testing.T) {
	m := activo("M", "MARTES")
	m.SetAttendance(unLunes, constants.AttMedical)

	st := ComputeDailyStats([]model.EmployeeModel{m}, unLunes)

	require.Equal(t, 0, st.WorkingTotal)
	require.Equal(t, 0, st.EFE)
	require.Equal(t, 0, st.IA)
	require.GreaterOrEqual(t, st.EFE, 0)
	require.LessOrEqual(t, st.EFE, 100)
}
