package helper

import (
	"time"

	"pmpro_backend/internals/constants"
)

const ISODate = "2006-01-02"

// ParseISODate valida una fecha YYYY-MM-DD.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// DayNameOf devuelve el nombre del día (LUNES..DOMINGO) de una fecha ISO.
// Una fecha mal formada devuelve "" y el caller decide.
func DayNameOf(dateStr string) string {
	t, err := time.Parse(ISODate, dateStr)
	if err != nil {
		return ""
	}
	return constants.WeekdayName(t.Weekday())
}

// ParseYearMonth valida un mes YYYY-MM.
func ParseYearMonth(s string) (year, month int, err error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), int(t.Month()), nil
}

// DaysInMonth cuenta los días del mes calendario (month 1..12).
func DaysInMonth(year, month int) int {
	// día 0 del mes siguiente = último día del mes
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
