package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

func TestMonthDaysProjection(t *testing.T) {
	days := MonthDays(2025, 6)
	require.Len(t, days, 30)
	require.Equal(t, "2025-06-01", days[0].DateStr)
	require.Equal(t, "DOMINGO", days[0].DayWeek)
	require.Equal(t, "D", days[0].DayName)
	require.Equal(t, "LUNES", days[1].DayWeek)
	require.Equal(t, "L", days[1].DayName)
	require.Equal(t, 30, days[29].DayNum)

	// año bisiesto
	require.Len(t, MonthDays(2024, 2), 29)
	require.Len(t, MonthDays(2025, 2), 28)
}

func TestDisplayedStatusOverlay(t *testing.T) {
	e := activo("A", "LUNES")
	days := MonthDays(2025, 6)
	lunes := days[1] // 2025-06-02

	// sin registro + libranza coincide → Libre implícito
	require.Equal(t, "Libre", DisplayedStatus(&e, lunes))

	// sin registro + no coincide → vacío
	martes := days[2]
	require.Equal(t, "", DisplayedStatus(&e, martes))

	// el registro explícito SIEMPRE gana, incluso sobre la libranza
	e.SetAttendance(lunes.DateStr, constants.AttFalta)
	require.Equal(t, "Falta", DisplayedStatus(&e, lunes))

	e.SetAttendance(lunes.DateStr, constants.AttLibre)
	require.Equal(t, "Libre", DisplayedStatus(&e, lunes))
}

func TestDetectPatternsPerEmployeeFlag(t *testing.T) {
	days := MonthDays(2025, 6)
	e := activo("Pedro", "DOMINGO")
	// 3 faltas en el mes
	e.SetAttendance("2025-06-03", constants.AttFalta)
	e.SetAttendance("2025-06-10", constants.AttFalta)
	e.SetAttendance("2025-06-17", constants.AttFalta)

	flags := DetectPatterns([]model.EmployeeModel{e}, days, "2025-06")
	require.Len(t, flags, 1)
	require.Contains(t, flags[0], "Pedro")
	require.Contains(t, flags[0], "3 faltas")
}

func TestDetectPatternsWeekdayTrendAndCap(t *testing.T) {
	days := MonthDays(2025, 6)
	var emps []model.EmployeeModel
	// 6 empleados faltan todos los martes (3 martes) → 18 faltas en MARTES,
	// cada uno con ≥3 faltas propias
	for i := 0; i < 6; i++ {
		e := activo(fmt.Sprintf("E%d", i), "DOMINGO")
		e.SetAttendance("2025-06-03", constants.AttFalta)
		e.SetAttendance("2025-06-10", constants.AttFalta)
		e.SetAttendance("2025-06-17", constants.AttFalta)
		emps = append(emps, e)
	}

	flags := DetectPatterns(emps, days, "2025-06")
	// tope de 3: primero los flags por empleado en orden de roster
	require.Len(t, flags, 3)
	require.Contains(t, flags[0], "E0")
	require.Contains(t, flags[1], "E1")
	require.Contains(t, flags[2], "E2")

	// con solo 2 empleados el trend de MARTES entra (12 faltas > 5)
	flags2 := DetectPatterns(emps[:2], days, "2025-06")
	require.Len(t, flags2, 3)
	require.Contains(t, flags2[2], "MARTES")
}

func TestDetectPatternsNoFalsePositives(t *testing.T) {
	days := MonthDays(2025, 6)
	e := activo("Ana", "DOMINGO")
	e.SetAttendance("2025-06-03", constants.AttFalta)
	e.SetAttendance("2025-06-10", constants.AttFalta) // solo 2

	require.Empty(t, DetectPatterns([]model.EmployeeModel{e}, days, "2025-06"))
}
