package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
	statsService "pmpro_backend/internals/features/hr/stats/service"
)

var hoy = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func statsDays(t *testing.T) []statsService.MonthDay {
	t.Helper()
	return statsService.MonthDays(2025, 6)
}

func TestParseRosterCSVBasics(t *testing.T) {
	text := strings.Join([]string{
		"Nombre,Cedula,Email,Ingreso,Score,Turno,Libranza,CS,Cargo", // header → skip
		"Maria Perez,8-111,maria@x.com,2023-02-01,,AM,LUNES,Carlos,Agente Senior",
		"Jose Gomez;8-222;jose@x.com;2024-01-10;;pm;MARTES;Ana;Backoffice", // punto y coma
		"Incompleto,",    // <3 campos → skip
		",8-333,sin@x.com", // sin nombre → skip
		`"Luisa Diaz","8-444","luisa@x.com"`,
	}, "\n")

	emps := ParseRosterCSV(text, hoy)
	require.Len(t, emps, 3)

	m := emps[0]
	require.Equal(t, "Maria Perez", m.EmployeeNombre)
	require.Equal(t, "8-111", m.EmployeeCedula)
	require.Equal(t, constants.TurnoAM, m.EmployeeTurno)
	require.Equal(t, "LUNES", m.EmployeeLibranza)
	require.Equal(t, "Carlos", m.EmployeeCsAsignado)
	require.Equal(t, "Agente Senior", m.EmployeeCargo)
	require.Equal(t, "2023-02-01", m.EmployeeFechaIngreso.Format("2006-01-02"))
	require.Equal(t, constants.WorkActivo, m.EmployeeStatusLaboral)
	require.Equal(t, 100, m.EmployeeReliabilityScore)

	j := emps[1]
	require.Equal(t, constants.TurnoPM, j.EmployeeTurno) // "pm" normalizado

	// fila con solo 3 campos: defaults completos
	l := emps[2]
	require.Equal(t, "Luisa Diaz", l.EmployeeNombre)
	require.Equal(t, constants.DefaultTurno, l.EmployeeTurno)
	require.Equal(t, constants.DefaultLibranza, l.EmployeeLibranza)
	require.Equal(t, constants.SupervisorSinAsignar, l.EmployeeCsAsignado)
	require.Equal(t, constants.DefaultCargo, l.EmployeeCargo)
	require.Equal(t, hoy.Format("2006-01-02"), l.EmployeeFechaIngreso.Format("2006-01-02"))
}

func TestParseRosterCSVLibranzaInvalidaCaeEnDomingo(t *testing.T) {
	emps := ParseRosterCSV("Pepe,9-1,pepe@x.com,2024-05-05,,PM,FERIADO,Ana,Agente", hoy)
	require.Len(t, emps, 1)
	require.Equal(t, "DOMINGO", emps[0].EmployeeLibranza)
}

// export → reimport reproduce los pares (nombre, cédula)
func TestRosterCSVRoundTrip(t *testing.T) {
	fi := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	orig := []model.EmployeeModel{
		{
			EmployeeNombre: "Maria Perez", EmployeeCedula: "8-111",
			EmployeeEmail: "maria@x.com", EmployeeFechaIngreso: &fi,
			EmployeeReliabilityScore: 85, EmployeeTurno: "AM",
			EmployeeLibranza: "LUNES", EmployeeCsAsignado: "Carlos", EmployeeCargo: "Agente",
			EmployeeStatusLaboral: constants.WorkActivo,
		},
		{
			EmployeeNombre: "Jose Gomez", EmployeeCedula: "8-222",
			EmployeeEmail: "jose@x.com", EmployeeFechaIngreso: &fi,
			EmployeeReliabilityScore: 100, EmployeeTurno: "PM",
			EmployeeLibranza: "MARTES", EmployeeCsAsignado: "Ana", EmployeeCargo: "Backoffice",
			EmployeeStatusLaboral: constants.WorkActivo,
		},
	}

	csv := ExportRosterCSV(orig)
	back := ParseRosterCSV(csv, hoy)

	require.Len(t, back, len(orig))
	for i := range orig {
		require.Equal(t, orig[i].EmployeeNombre, back[i].EmployeeNombre)
		require.Equal(t, orig[i].EmployeeCedula, back[i].EmployeeCedula)
		require.Equal(t, orig[i].EmployeeTurno, back[i].EmployeeTurno)
		require.Equal(t, orig[i].EmployeeLibranza, back[i].EmployeeLibranza)
	}
}

func TestExportMonthlyCSVUsaEstadoMostrado(t *testing.T) {
	e := model.EmployeeModel{
		EmployeeNombre:        "Ana",
		EmployeeLibranza:      "LUNES",
		EmployeeStatusLaboral: constants.WorkActivo,
	}
	e.SetAttendance("2025-06-03", constants.AttFalta)

	days := statsDays(t)
	out := ExportMonthlyCSV([]model.EmployeeModel{e}, days)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "Nombre,2025-06-01,"))

	cols := strings.Split(lines[1], ",")
	require.Equal(t, "Ana", cols[0])
	require.Equal(t, "-", cols[1])      // domingo 1: nada
	require.Equal(t, "Libre", cols[2])  // lunes 2: libranza implícita
	require.Equal(t, "Falta", cols[3])  // martes 3: registro explícito
}

func TestBuildMonthlyXLSX(t *testing.T) {
	e := model.EmployeeModel{
		EmployeeNombre:        "Ana",
		EmployeeLibranza:      "LUNES",
		EmployeeStatusLaboral: constants.WorkActivo,
	}
	days := statsDays(t)

	f, err := BuildMonthlyXLSX([]model.EmployeeModel{e}, days, "2025-06")
	require.NoError(t, err)

	sheet := "Asistencia 2025-06"
	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	require.Equal(t, "Nombre", v)

	v, err = f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	require.Equal(t, "Ana", v)

	// lunes 2 de junio → columna C
	v, err = f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	require.Equal(t, "Libre", v)
}
