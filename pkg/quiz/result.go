package quiz

import "github.com/backsoul/classroom/pkg/models"

// DisplaySummary resumen de un resultado listo para mostrar
type DisplaySummary struct {
	HasResult      bool                    `json:"hasResult"` // false cuando no hubo preguntas que calificar
	Ratio          float64                 `json:"ratio"`
	Percent        int                     `json:"percent"`
	CorrectAnswers int                     `json:"correctAnswers"`
	TotalQuestions int                     `json:"totalQuestions"`
	Rows           []models.QuestionResult `json:"rows"`
}

// Aggregate prepara un resultado calificado para mostrar. Con total cero
// señala "sin resultado" en lugar de dividir por cero. Las filas quedan
// en el orden que fijó el servidor y la corrección se toma tal cual:
// el cliente no la recalcula comparando cadenas.
func Aggregate(result *models.SubmissionResult) DisplaySummary {
	if result == nil || result.TotalQuestions == 0 {
		return DisplaySummary{HasResult: false, Rows: []models.QuestionResult{}}
	}

	ratio := float64(result.CorrectAnswers) / float64(result.TotalQuestions)

	return DisplaySummary{
		HasResult:      true,
		Ratio:          ratio,
		Percent:        int(ratio * 100), // siempre redondea hacia abajo
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		Rows:           result.PerQuestion,
	}
}
