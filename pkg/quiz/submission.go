package quiz

import (
	"strings"

	"github.com/backsoul/classroom/pkg/models"
)

// AnswerDelimiter separador de selecciones múltiples en la respuesta
// aplanada. Las claves de opción son tokens alfanuméricos cortos, así
// que no hace falta escapar nada.
const AnswerDelimiter = ","

// BuildSubmission aplana el almacén de respuestas en un envío: una
// entrada por pregunta servida, en el orden de la lista de preguntas.
// Las preguntas sin responder llevan texto vacío en vez de omitirse;
// el servidor necesita el registro completo para calcular el total.
func BuildSubmission(store *AnswerStore, questions []models.Question, quizID string) models.SubmissionRequest {
	entries := make([]models.AnswerEntry, len(questions))
	for i, question := range questions {
		entries[i] = models.AnswerEntry{
			QuestionID: question.ID,
			AnswerText: strings.Join(store.Answer(question.ID), AnswerDelimiter),
		}
	}

	return models.SubmissionRequest{
		QuizID:  quizID,
		Answers: entries,
	}
}
