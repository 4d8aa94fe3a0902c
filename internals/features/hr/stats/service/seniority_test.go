package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "pmpro_backend/internals/features/hr/employees/model"
)

func TestSeniority(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "Reciente", Seniority(nil, now))

	d10 := now.AddDate(0, 0, -10)
	require.Equal(t, "10d", Seniority(&d10, now))

	y2 := now.AddDate(-2, -3, 0)
	require.Contains(t, Seniority(&y2, now), "2a")

	d31 := now.AddDate(0, 0, -31)
	require.Equal(t, "1m", Seniority(&d31, now))
}

func TestAnniversaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	junio := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	marzo := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	a := activo("A", "DOMINGO")
	a.EmployeeFechaIngreso = &junio
	b := activo("B", "DOMINGO")
	b.EmployeeFechaIngreso = &marzo
	c := activo("C", "DOMINGO") // sin fecha

	out := Anniversaries([]model.EmployeeModel{a, b, c}, now)
	require.Len(t, out, 1)
	require.Equal(t, "A", out[0].EmployeeNombre)
}

func TestMonthProgress(t *testing.T) {
	// 15 de junio: 15/30 = 50%
	require.Equal(t, 50, MonthProgress(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 100, MonthProgress(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)))
}
