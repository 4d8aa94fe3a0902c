package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

func incs(types ...constants.IncidentType) []model.IncidentModel {
	out := make([]model.IncidentModel, 0, len(types))
	for _, t := range types {
		out = append(out, model.IncidentModel{IncidentType: t})
	}
	return out
}

func TestCalculateReliabilityEmptyListIs100(t *testing.T) {
	require.Equal(t, 100, CalculateReliability(nil))
	require.Equal(t, 100, CalculateReliability([]model.IncidentModel{}))
}

func TestCalculateReliabilityDeltas(t *testing.T) {
	cases := []struct {
		name  string
		types []constants.IncidentType
		want  int
	}{
		{"una tardanza", []constants.IncidentType{constants.IncTardanza}, 95},
		{"una ausencia", []constants.IncidentType{constants.IncAusencia}, 85},
		{"una conducta", []constants.IncidentType{constants.IncConducta}, 80},
		{"otro no pesa", []constants.IncidentType{constants.IncOtro}, 100},
		{"felicitacion no pasa de 100", []constants.IncidentType{constants.IncFelicitacion}, 100},
		{"mixto", []constants.IncidentType{constants.IncAusencia, constants.IncTardanza, constants.IncFelicitacion}, 85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CalculateReliability(incs(tc.types...)))
		})
	}
}

func TestCalculateReliabilityClampsAtZero(t *testing.T) {
	many := make([]model.IncidentModel, 10)
	for i := range many {
		many[i] = model.IncidentModel{IncidentType: constants.IncConducta}
	}
	require.Equal(t, 0, CalculateReliability(many))
}

// score(list + [Conducta]) = max(0, score(list) − 20)
func TestCalculateReliabilityConductaProperty(t *testing.T) {
	lists := [][]constants.IncidentType{
		{},
		{constants.IncTardanza},
		{constants.IncAusencia, constants.IncAusencia},
		{constants.IncConducta, constants.IncConducta, constants.IncConducta, constants.IncConducta},
	}
	for _, base := range lists {
		before := CalculateReliability(incs(base...))
		after := CalculateReliability(incs(append(append([]constants.IncidentType{}, base...), constants.IncConducta)...))
		want := before - 20
		if want < 0 {
			want = 0
		}
		require.Equal(t, want, after)
	}
}
