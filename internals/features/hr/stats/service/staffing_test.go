package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	model "pmpro_backend/internals/features/hr/employees/model"
)

func rosterWithLibranzas(libranzas ...string) []model.EmployeeModel {
	out := make([]model.EmployeeModel, 0, len(libranzas))
	for i, l := range libranzas {
		out = append(out, activo(fmt.Sprintf("E%d", i), l))
	}
	return out
}

func TestDaysOffDistributionFixedOrder(t *testing.T) {
	dist := DaysOffDistribution(rosterWithLibranzas("LUNES", "LUNES", "DOMINGO"))
	require.Len(t, dist, 7)
	require.Equal(t, "LUNES", dist[0].Full)
	require.Equal(t, "LUN", dist[0].Name)
	require.Equal(t, 2, dist[0].Count)
	require.Equal(t, "DOMINGO", dist[6].Full)
	require.Equal(t, 1, dist[6].Count)
	require.Equal(t, 0, dist[1].Count)
}

// 10 activos, 5 con libranza LUNES: avg = 10/7 ≈ 1.43, umbral ≈ 3.43 → alerta
func TestAnalyzeStaffingWarnsOnOverload(t *testing.T) {
	libranzas := []string{"LUNES", "LUNES", "LUNES", "LUNES", "LUNES",
		"MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO"}
	res := AnalyzeStaffing(rosterWithLibranzas(libranzas...))

	require.Equal(t, "warn", res.Type)
	require.Contains(t, res.Recommendation, "LUNES")
	require.Contains(t, res.Recommendation, "(5)")
	// min estable: primer día con el valor mínimo (DOMINGO tiene 0)
	require.Contains(t, res.Recommendation, "DOMINGO")
}

func TestAnalyzeStaffingBalanced(t *testing.T) {
	libranzas := []string{"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO", "DOMINGO"}
	res := AnalyzeStaffing(rosterWithLibranzas(libranzas...))
	require.Equal(t, "ok", res.Type)
	require.Equal(t, "Balance de días libres óptimo.", res.Recommendation)
}

// Empate en el máximo: gana el primer día en el orden LUNES..DOMINGO.
func TestAnalyzeStaffingStableTieBreak(t *testing.T) {
	libranzas := []string{
		"MARTES", "MARTES", "MARTES", "MARTES",
		"VIERNES", "VIERNES", "VIERNES", "VIERNES",
	}
	res := AnalyzeStaffing(rosterWithLibranzas(libranzas...))
	require.Equal(t, "warn", res.Type)
	require.Contains(t, res.Recommendation, "MARTES")
	require.NotContains(t, res.Recommendation, "Exceso de libres el VIERNES")
}
