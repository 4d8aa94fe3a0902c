// Formato de carga masiva: filas separadas por newline, campos por coma
// o punto y coma, comillas envolventes removidas. No es RFC-4180: se
// respeta el split ingenuo del formato original.
package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
	statsService "pmpro_backend/internals/features/hr/stats/service"
	helper "pmpro_backend/internals/helpers"
)

// Columnas: nombre, cédula, email, fecha ingreso, [sin uso], turno,
// libranza, supervisor, cargo.
const RosterCSVHeader = "Nombre,Cedula,Email,FechaIngreso,Score,Turno,Libranza,CS Asignado,Cargo"

// ParseRosterCSV convierte el texto importado en empleados nuevos
// (Activo, score 100, logs vacíos). Filas malformadas se saltan en
// silencio: sin conteo parcial ni recuperación.
func ParseRosterCSV(text string, today time.Time) []model.EmployeeModel {
	var out []model.EmployeeModel
	for _, line := range strings.Split(text, "\n") {
		p := splitFields(line)
		if len(p) < 3 {
			continue
		}
		nombre, cedula := p[0], p[1]
		if nombre == "" || cedula == "" || strings.Contains(strings.ToLower(nombre), "nombre") {
			continue
		}

		emp := model.EmployeeModel{
			EmployeeNombre:           nombre,
			EmployeeCedula:           cedula,
			EmployeeEmail:            field(p, 2),
			EmployeeTurno:            parseTurno(field(p, 5)),
			EmployeeLibranza:         parseLibranza(field(p, 6)),
			EmployeeCsAsignado:       defaultIfEmpty(field(p, 7), constants.SupervisorSinAsignar),
			EmployeeCargo:            defaultIfEmpty(field(p, 8), constants.DefaultCargo),
			EmployeeStatusLaboral:    constants.WorkActivo,
			EmployeeReliabilityScore: 100,
		}

		fi := today
		if t, err := helper.ParseISODate(field(p, 3)); err == nil {
			fi = t
		}
		emp.EmployeeFechaIngreso = &fi

		out = append(out, emp)
	}
	return out
}

// splitFields: split ingenuo por coma/punto y coma + trim + unquote.
// Se separa a mano para preservar campos vacíos posicionales.
func splitFields(line string) []string {
	var fields []string
	var b strings.Builder
	for _, r := range line {
		if r == ',' || r == ';' {
			fields = append(fields, cleanField(b.String()))
			b.Reset()
			continue
		}
		b.WriteRune(r)
	}
	fields = append(fields, cleanField(b.String()))
	return fields
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

func field(p []string, i int) string {
	if i < len(p) {
		return p[i]
	}
	return ""
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseTurno(s string) string {
	switch strings.ToUpper(s) {
	case constants.TurnoAM:
		return constants.TurnoAM
	case constants.TurnoPM:
		return constants.TurnoPM
	default:
		return constants.DefaultTurno
	}
}

func parseLibranza(s string) string {
	up := strings.ToUpper(s)
	if constants.IsValidWeekday(up) {
		return up
	}
	return constants.DefaultLibranza
}

/* =========================================================
 * EXPORT
 * ========================================================= */

// ExportRosterCSV emite el roster en el MISMO orden de columnas del
// import: exportar y reimportar reproduce los pares (nombre, cédula).
func ExportRosterCSV(emps []model.EmployeeModel) string {
	var b strings.Builder
	b.WriteString(RosterCSVHeader)
	for _, e := range emps {
		fi := ""
		if e.EmployeeFechaIngreso != nil {
			fi = e.EmployeeFechaIngreso.Format(helper.ISODate)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			e.EmployeeNombre,
			e.EmployeeCedula,
			e.EmployeeEmail,
			fi,
			strconv.Itoa(e.EmployeeReliabilityScore),
			e.EmployeeTurno,
			e.EmployeeLibranza,
			e.EmployeeCsAsignado,
			e.EmployeeCargo,
		}, ","))
	}
	return b.String()
}

// ExportMonthlyCSV: una fila por activo, una columna por día del mes con
// el estado mostrado ("-" cuando no hay nada).
func ExportMonthlyCSV(actives []model.EmployeeModel, days []statsService.MonthDay) string {
	var b strings.Builder
	b.WriteString("Nombre")
	for _, d := range days {
		b.WriteString(",")
		b.WriteString(d.DateStr)
	}
	for i := range actives {
		b.WriteString("\n")
		b.WriteString(actives[i].EmployeeNombre)
		for _, d := range days {
			b.WriteString(",")
			s := statsService.DisplayedStatus(&actives[i], d)
			if s == "" {
				s = "-"
			}
			b.WriteString(s)
		}
	}
	return b.String()
}

// BuildMonthlyXLSX: misma matriz mensual como hoja de cálculo.
func BuildMonthlyXLSX(actives []model.EmployeeModel, days []statsService.MonthDay, monthLabel string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Asistencia " + monthLabel
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheet, "A1", "Nombre"); err != nil {
		return nil, err
	}
	for j, d := range days {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, d.DateStr); err != nil {
			return nil, err
		}
	}

	for i := range actives {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, actives[i].EmployeeNombre); err != nil {
			return nil, err
		}
		for j, d := range days {
			s := statsService.DisplayedStatus(&actives[i], d)
			if s == "" {
				s = "-"
			}
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, s); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
