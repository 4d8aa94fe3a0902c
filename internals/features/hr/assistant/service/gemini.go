// Cliente mínimo de la API REST generateContent de Gemini.
// Sin SDK: un POST con sonic alcanza para el asistente.
package service

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"pmpro_backend/internals/configs"
	"pmpro_backend/internals/features/hr/assistant/dto"
	model "pmpro_backend/internals/features/hr/employees/model"
)

const systemInstruction = "Eres 'Personal Manager AI', asistente experto en RRHH y gestión de personal. " +
	"Responde en español, breve y accionable, usando solo los datos de contexto que se te entregan."

var geminiClient = &http.Client{Timeout: 20 * time.Second}

/* =========================================================
 * WIRE TYPES (solo los campos que usamos)
 * ========================================================= */

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

/* =========================================================
 * CONTEXTO
 * ========================================================= */

// BuildRosterContext comprime el roster activo en pares {n, s} para no
// inflar el prompt. Se recortan a 20 empleados.
func BuildRosterContext(actives []model.EmployeeModel) string {
	type brief struct {
		N string `json:"n"`
		S int    `json:"s"`
	}
	limit := len(actives)
	if limit > 20 {
		limit = 20
	}
	briefs := make([]brief, 0, limit)
	for i := 0; i < limit; i++ {
		briefs = append(briefs, brief{N: actives[i].EmployeeNombre, S: actives[i].EmployeeReliabilityScore})
	}
	raw, err := sonic.Marshal(briefs)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

/* =========================================================
 * LLAMADAS
 * ========================================================= */

// Chat continúa la conversación del supervisor con el roster como contexto.
// El historial se reenvía completo en cada llamada (la API es stateless).
func Chat(history []dto.ChatTurn, message string, actives []model.EmployeeModel) string {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	prompt := fmt.Sprintf("Contexto del equipo (JSON): %s\n\n%s",
		BuildRosterContext(actives), message)
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: prompt}}})

	out := generate(contents)
	if out == "" {
		return "No pude generar una respuesta."
	}
	return out
}

// AnalyzeEmployee pide un diagnóstico corto de un empleado puntual.
func AnalyzeEmployee(e model.EmployeeModel) string {
	incidentes := make([]string, 0, len(e.Incidents))
	for _, inc := range e.Incidents {
		incidentes = append(incidentes, fmt.Sprintf("%s: %s (%s)",
			inc.IncidentDate.Format("2006-01-02"), inc.IncidentType, inc.IncidentNote))
	}
	prompt := fmt.Sprintf(
		"Analiza al colaborador %s (cargo %s, turno %s, score %d, estado %s). Incidencias: %s. "+
			"Da un diagnóstico de 2-3 líneas y una acción de coaching sugerida.",
		e.EmployeeNombre, e.EmployeeCargo, e.EmployeeTurno,
		e.EmployeeReliabilityScore, e.EmployeeStatusLaboral,
		strings.Join(incidentes, "; "),
	)
	out := generate([]geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}})
	if out == "" {
		return "No se pudo analizar en este momento."
	}
	return out
}

func generate(contents []geminiContent) string {
	apiKey := configs.GeminiAPIKey
	if apiKey == "" {
		log.Println("[WARN] GEMINI_API_KEY vacío, asistente deshabilitado")
		return ""
	}

	body := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}},
		Contents:          contents,
	}
	raw, err := sonic.Marshal(body)
	if err != nil {
		return ""
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		configs.GeminiModel, apiKey,
	)
	resp, err := geminiClient.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		log.Printf("[WARN] gemini: %v", err)
		return ""
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] gemini status=%d", resp.StatusCode)
		return ""
	}

	var parsed geminiResponse
	if err := sonic.Unmarshal(data, &parsed); err != nil {
		return ""
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
}
