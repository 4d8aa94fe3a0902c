package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	model "pmpro_backend/internals/features/hr/employees/model"
	helper "pmpro_backend/internals/helpers"
)

// Seniority: antigüedad legible ("12d", "2a 3m", "1m").
func Seniority(fechaIngreso *time.Time, now time.Time) string {
	if fechaIngreso == nil || fechaIngreso.IsZero() {
		return "Reciente"
	}
	diffDays := int(math.Ceil(math.Abs(now.Sub(*fechaIngreso).Hours()) / 24))
	if diffDays < 30 {
		return fmt.Sprintf("%dd", diffDays)
	}
	years := diffDays / 365
	months := (diffDays % 365) / 30
	var b strings.Builder
	if years > 0 {
		fmt.Fprintf(&b, "%da ", years)
	}
	if months > 0 {
		fmt.Fprintf(&b, "%dm", months)
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "1m"
	}
	return out
}

// Anniversaries: activos cuyo mes de ingreso coincide con el mes actual.
func Anniversaries(actives []model.EmployeeModel, now time.Time) []model.EmployeeModel {
	var out []model.EmployeeModel
	for i := range actives {
		fi := actives[i].EmployeeFechaIngreso
		if fi != nil && !fi.IsZero() && fi.Month() == now.Month() {
			out = append(out, actives[i])
		}
	}
	return out
}

// MonthProgress: % transcurrido del mes en curso, redondeado.
func MonthProgress(now time.Time) int {
	total := helper.DaysInMonth(now.Year(), int(now.Month()))
	return int(math.Round(float64(now.Day()) / float64(total) * 100))
}
