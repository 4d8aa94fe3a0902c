package service

import (
	"fmt"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "pmpro_backend/internals/features/hr/employees/model"
)

func TestBuildRosterContext(t *testing.T) {
	actives := []model.EmployeeModel{
		{EmployeeNombre: "Ana", EmployeeReliabilityScore: 95},
		{EmployeeNombre: "Luis", EmployeeReliabilityScore: 80},
	}

	raw := BuildRosterContext(actives)

	var briefs []map[string]interface{}
	require.NoError(t, sonic.Unmarshal([]byte(raw), &briefs))
	require.Len(t, briefs, 2)
	assert.Equal(t, "Ana", briefs[0]["n"])
	assert.EqualValues(t, 95, briefs[0]["s"])
}

func TestBuildRosterContextRecorta(t *testing.T) {
	actives := make([]model.EmployeeModel, 30)
	for i := range actives {
		actives[i] = model.EmployeeModel{EmployeeNombre: fmt.Sprintf("E%d", i), EmployeeReliabilityScore: 100}
	}

	var briefs []map[string]interface{}
	require.NoError(t, sonic.Unmarshal([]byte(BuildRosterContext(actives)), &briefs))
	assert.Len(t, briefs, 20)
}

func TestBuildRosterContextVacio(t *testing.T) {
	assert.Equal(t, "[]", BuildRosterContext(nil))
}
