package constants

import "time"

// Orden fijo de iteración: LUNES..DOMINGO. Los desempates de los
// heurísticos de staffing dependen de este orden, no reordenar.
var Weekdays = []string{"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO", "DOMINGO"}

// Indexado por time.Weekday (Sunday = 0).
var weekdayNames = [7]string{"DOMINGO", "LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO"}

// Abreviatura de una letra estilo es-ES (L, M, X, J, V, S, D).
var WeekdayLetter = map[string]string{
	"LUNES":     "L",
	"MARTES":    "M",
	"MIERCOLES": "X",
	"JUEVES":    "J",
	"VIERNES":   "V",
	"SABADO":    "S",
	"DOMINGO":   "D",
}

func WeekdayName(d time.Weekday) string {
	return weekdayNames[int(d)%7]
}

func IsValidWeekday(s string) bool {
	for _, d := range Weekdays {
		if d == s {
			return true
		}
	}
	return false
}
