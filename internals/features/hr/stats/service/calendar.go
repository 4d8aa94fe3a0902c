package service

import (
	"fmt"
	"time"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
	helper "pmpro_backend/internals/helpers"
)

type MonthDay struct {
	DateStr string `json:"date_str"` // YYYY-MM-DD
	DayNum  int    `json:"day_num"`
	DayName string `json:"day_name"` // L, M, X...
	DayWeek string `json:"day_week"` // LUNES..DOMINGO
}

// MonthDays proyecta el mes calendario: una entrada por día.
func MonthDays(year, month int) []MonthDay {
	n := helper.DaysInMonth(year, month)
	days := make([]MonthDay, 0, n)
	for i := 1; i <= n; i++ {
		d := time.Date(year, time.Month(month), i, 0, 0, 0, 0, time.UTC)
		week := constants.WeekdayName(d.Weekday())
		days = append(days, MonthDay{
			DateStr: d.Format(helper.ISODate),
			DayNum:  i,
			DayName: constants.WeekdayLetter[week],
			DayWeek: week,
		})
	}
	return days
}

// DisplayedStatus resuelve el estado mostrado de un empleado en un día:
// el registro explícito SIEMPRE gana; si no hay, el día de libranza
// implica Libre; si no, vacío.
func DisplayedStatus(e *model.EmployeeModel, day MonthDay) string {
	if s, ok := e.Attendance()[day.DateStr]; ok && s != "" {
		return string(s)
	}
	if day.DayWeek == e.EmployeeLibranza {
		return string(constants.AttLibre)
	}
	return ""
}

// DetectPatterns: alertas heurísticas del mes.
//   - ≥3 Faltas explícitas de un empleado → flag nominal (orden del roster)
//   - el día de la semana con más faltas supera 5 → flag de tendencia
//
// Devuelve como máximo los primeros 3 flags en orden de emisión.
func DetectPatterns(actives []model.EmployeeModel, days []MonthDay, monthLabel string) []string {
	patterns := []string{}
	absencesByDay := map[string]int{}

	for i := range actives {
		att := actives[i].Attendance()
		empAbsences := 0
		for _, d := range days {
			if att[d.DateStr] == constants.AttFalta {
				absencesByDay[d.DayWeek]++
				empAbsences++
			}
		}
		if empAbsences >= 3 {
			patterns = append(patterns, fmt.Sprintf("⚠️ %s tiene %d faltas en %s.", actives[i].EmployeeNombre, empAbsences, monthLabel))
		}
	}

	maxDay := "LUNES"
	for _, d := range constants.Weekdays {
		if absencesByDay[d] > absencesByDay[maxDay] {
			maxDay = d
		}
	}
	if absencesByDay[maxDay] > 5 {
		patterns = append(patterns, fmt.Sprintf("📉 Tendencia: Mayor ausentismo los días %s.", maxDay))
	}

	if len(patterns) > 3 {
		patterns = patterns[:3]
	}
	return patterns
}
