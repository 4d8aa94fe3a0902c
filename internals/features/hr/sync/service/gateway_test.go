package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmpro_backend/internals/configs"
	employeeModel "pmpro_backend/internals/features/hr/employees/model"
)

func TestLoadDesdeSnapshotLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pm_pro_data.json")

	payload := SnapshotPayload{
		Employees: []employeeModel.EmployeeModel{
			{EmployeeNombre: "Ana", EmployeeCedula: "001"},
		},
		LastUpdated: "2025-06-15T00:00:00Z",
	}
	raw, err := sonic.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	oldPath, oldURL := configs.SnapshotPath, configs.SheetsWebhookURL
	configs.SnapshotPath = path
	configs.SheetsWebhookURL = ""
	defer func() {
		configs.SnapshotPath = oldPath
		configs.SheetsWebhookURL = oldURL
	}()

	got := Load()
	require.Len(t, got.Employees, 1)
	assert.Equal(t, "Ana", got.Employees[0].EmployeeNombre)
	assert.Equal(t, "2025-06-15T00:00:00Z", got.LastUpdated)
}

func TestLoadSinFuentesDevuelveVacio(t *testing.T) {
	oldPath, oldURL := configs.SnapshotPath, configs.SheetsWebhookURL
	configs.SnapshotPath = filepath.Join(t.TempDir(), "no_existe.json")
	configs.SheetsWebhookURL = ""
	defer func() {
		configs.SnapshotPath = oldPath
		configs.SheetsWebhookURL = oldURL
	}()

	got := Load()
	assert.Empty(t, got.Employees)
	assert.Empty(t, got.Logs)
}
