package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = ParseISODate("02/06/2025")
	assert.Error(t, err)
}

func TestDayNameOf(t *testing.T) {
	// 2025-06-02 cayó lunes
	assert.Equal(t, "LUNES", DayNameOf("2025-06-02"))
	assert.Equal(t, "DOMINGO", DayNameOf("2025-06-01"))
	assert.Equal(t, "", DayNameOf("no-es-fecha"))
}

func TestParseYearMonth(t *testing.T) {
	y, m, err := ParseYearMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 6, m)

	_, _, err = ParseYearMonth("junio 2025")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(2025, 6))
	assert.Equal(t, 31, DaysInMonth(2025, 7))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // bisiesto
}
