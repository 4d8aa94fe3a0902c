// Persistence Gateway: snapshot local + push remoto best-effort.
//
// El snapshot local en disco se escribe de forma síncrona en cada
// mutación; el POST al webhook (Apps Script / hoja de cálculo) corre en
// goroutine, ignora el cuerpo de la respuesta y sus fallos solo se
// loguean: la mutación en DB ya ocurrió y no se revierte. Sin retries.
package service

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"pmpro_backend/internals/configs"
	employeeModel "pmpro_backend/internals/features/hr/employees/model"
	shiftlogModel "pmpro_backend/internals/features/hr/shiftlogs/model"
)

type SnapshotPayload struct {
	Employees   []employeeModel.EmployeeModel `json:"employees"`
	Logs        []shiftlogModel.ShiftLogModel `json:"logs"`
	LastUpdated string                        `json:"lastUpdated"`
}

var pushClient = &http.Client{Timeout: 8 * time.Second}

// BuildPayload arma el snapshot completo desde la DB.
func BuildPayload(db *gorm.DB) (SnapshotPayload, error) {
	emps, err := employeeModel.FindAllWithLogs(db)
	if err != nil {
		return SnapshotPayload{}, err
	}
	var logs []shiftlogModel.ShiftLogModel
	if err := db.Order("shift_log_timestamp DESC").Find(&logs).Error; err != nil {
		return SnapshotPayload{}, err
	}
	if emps == nil {
		emps = []employeeModel.EmployeeModel{}
	}
	if logs == nil {
		logs = []shiftlogModel.ShiftLogModel{}
	}
	return SnapshotPayload{
		Employees:   emps,
		Logs:        logs,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// WriteThrough: snapshot local síncrono + push remoto fire-and-forget.
// Nunca devuelve error al handler que mutó: el estado en DB es el bueno.
func WriteThrough(db *gorm.DB) {
	payload, err := BuildPayload(db)
	if err != nil {
		log.Printf("[ERROR] snapshot build: %v", err)
		return
	}
	raw, err := sonic.Marshal(payload)
	if err != nil {
		log.Printf("[ERROR] snapshot marshal: %v", err)
		return
	}

	if path := configs.SnapshotPath; path != "" {
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			log.Printf("[ERROR] snapshot local: %v", err)
		}
	}

	if url := configs.SheetsWebhookURL; url != "" {
		go pushRemote(url, raw)
	}
}

func pushRemote(url string, raw []byte) {
	resp, err := pushClient.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		log.Printf("[WARN] sync remoto falló (se descarta): %v", err)
		return
	}
	defer resp.Body.Close()
	// respuesta ignorada a propósito (modo no-cors del original)
	_, _ = io.Copy(io.Discard, resp.Body)
}

// Load: contrato load() del gateway. Remoto si hay webhook, si no el
// snapshot local, si no estructura vacía. Nunca error duro.
func Load() SnapshotPayload {
	empty := SnapshotPayload{
		Employees: []employeeModel.EmployeeModel{},
		Logs:      []shiftlogModel.ShiftLogModel{},
	}

	if url := configs.SheetsWebhookURL; url != "" {
		if resp, err := pushClient.Get(url); err == nil {
			defer resp.Body.Close()
			raw, err := io.ReadAll(resp.Body)
			if err == nil {
				var payload SnapshotPayload
				if err := sonic.Unmarshal(raw, &payload); err == nil {
					return payload
				}
			}
		}
		log.Println("⚠️ Modo local offline (sin URL o error de red).")
	}

	if path := configs.SnapshotPath; path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			var payload SnapshotPayload
			if err := sonic.Unmarshal(raw, &payload); err == nil {
				return payload
			}
		}
	}

	return empty
}
