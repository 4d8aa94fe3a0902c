package service

import (
	"math"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
	helper "pmpro_backend/internals/helpers"
)

type DailyStats struct {
	Fecha           string `json:"fecha"`
	DiaSemana       string `json:"dia_semana"`
	TotalConvocados int    `json:"total_convocados"`
	Presentes       int    `json:"presentes"`
	Tardanzas       int    `json:"tardanzas"`
	Faltas          int    `json:"faltas"`
	Medical         int    `json:"medical"`
	PNR             int    `json:"pnr"`
	WorkingTotal    int    `json:"working_total"`
	EFE             int    `json:"efe"` // % asistencia efectiva
	IA              int    `json:"ia"`  // % ausentismo

	Convocados []model.EmployeeModel `json:"-"`
	Libres     []model.EmployeeModel `json:"-"`
}

// ComputeDailyStats particiona los activos en convocados/libres según la
// libranza y tabula la asistencia marcada para la fecha.
//
// Tardanza también cuenta como presente. El total trabajable descuenta
// Medical y PNR y se recorta en 0 antes de dividir: los porcentajes son
// enteros en [0,100] y 0 cuando no hay base.
func ComputeDailyStats(actives []model.EmployeeModel, dateStr string) DailyStats {
	dayOfWeek := helper.DayNameOf(dateStr)

	st := DailyStats{Fecha: dateStr, DiaSemana: dayOfWeek}

	for i := range actives {
		if actives[i].EmployeeLibranza == dayOfWeek {
			st.Libres = append(st.Libres, actives[i])
		} else {
			st.Convocados = append(st.Convocados, actives[i])
		}
	}
	st.TotalConvocados = len(st.Convocados)

	for i := range st.Convocados {
		switch st.Convocados[i].Attendance()[dateStr] {
		case constants.AttPresente:
			st.Presentes++
		case constants.AttTardanza:
			st.Presentes++
			st.Tardanzas++
		case constants.AttFalta:
			st.Faltas++
		case constants.AttMedical:
			st.Medical++
		case constants.AttPNR:
			st.PNR++
		}
	}

	st.WorkingTotal = st.TotalConvocados - (st.Medical + st.PNR)
	if st.WorkingTotal < 0 {
		st.WorkingTotal = 0
	}
	if st.WorkingTotal > 0 {
		st.EFE = int(math.Round(float64(st.Presentes) / float64(st.WorkingTotal) * 100))
		st.IA = int(math.Round(float64(st.Faltas) / float64(st.WorkingTotal) * 100))
	}
	return st
}
