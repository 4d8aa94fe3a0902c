// internals/features/hr/stats/service: motor de estadísticas derivadas.
// Funciones puras sobre el snapshot del roster; se recalculan en cada
// lectura, sin caché incremental.
package service

import (
	"pmpro_backend/internals/constants"
	model "pmpro_backend/internals/features/hr/employees/model"
)

// CalculateReliability aplica el delta fijo de cada incidencia sobre una
// base de 100 y recorta a [0,100]. Historial completo, sin recencia.
func CalculateReliability(incidents []model.IncidentModel) int {
	score := 100
	for _, inc := range incidents {
		score += constants.IncidentScoreDelta[inc.IncidentType]
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
