package service

import (
	"fmt"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

type DayOffCount struct {
	Name  string `json:"name"` // LUN, MAR...
	Full  string `json:"full"` // LUNES, MARTES...
	Count int    `json:"count"`
}

// DaysOffDistribution: libranzas asignadas por día, en orden fijo LUNES..DOMINGO.
func DaysOffDistribution(actives []model.EmployeeModel) []DayOffCount {
	counts := map[string]int{}
	for _, d := range constants.Weekdays {
		counts[d] = 0
	}
	for i := range actives {
		if _, ok := counts[actives[i].EmployeeLibranza]; ok {
			counts[actives[i].EmployeeLibranza]++
		}
	}
	out := make([]DayOffCount, 0, len(constants.Weekdays))
	for _, d := range constants.Weekdays {
		out = append(out, DayOffCount{Name: d[:3], Full: d, Count: counts[d]})
	}
	return out
}

type StaffingAnalysis struct {
	Recommendation string `json:"recommendation"`
	Type           string `json:"type"` // ok | warn
}

// AnalyzeStaffing marca alerta si el día con más libres supera avg+2.
// Desempate max/min: primer día en el orden fijo de la semana.
func AnalyzeStaffing(actives []model.EmployeeModel) StaffingAnalysis {
	counts := map[string]int{}
	for _, d := range constants.Weekdays {
		counts[d] = 0
	}
	for i := range actives {
		if _, ok := counts[actives[i].EmployeeLibranza]; ok {
			counts[actives[i].EmployeeLibranza]++
		}
	}

	maxDay, minDay := constants.Weekdays[0], constants.Weekdays[0]
	for _, d := range constants.Weekdays[1:] {
		if counts[d] > counts[maxDay] {
			maxDay = d
		}
		if counts[d] < counts[minDay] {
			minDay = d
		}
	}

	avg := float64(len(actives)) / 7
	if float64(counts[maxDay]) > avg+2 {
		return StaffingAnalysis{
			Recommendation: fmt.Sprintf("Alerta: Exceso de libres el %s (%d). Mover a %s.", maxDay, counts[maxDay], minDay),
			Type:           "warn",
		}
	}
	return StaffingAnalysis{Recommendation: "Balance de días libres óptimo.", Type: "ok"}
}
