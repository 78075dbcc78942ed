package quiz

import (
	"sort"
	"strings"

	"github.com/backsoul/classroom/pkg/models"
)

// Grade califica un envío contra las preguntas servidas en la sesión.
// El total del resultado siempre iguala la cantidad de preguntas servidas.
//
// Política de comparación: selección múltiple compara conjuntos de claves
// sin importar el orden; verdadero/falso y abierta comparan el texto
// exacto, sin normalizar espacios ni mayúsculas. La normalización es un
// contrato del servidor, no algo que el cliente pueda asumir.
func Grade(sessionID string, questions []models.Question, request models.SubmissionRequest) *models.SubmissionResult {
	answerByQuestion := make(map[string]string, len(request.Answers))
	for _, entry := range request.Answers {
		answerByQuestion[entry.QuestionID] = entry.AnswerText
	}

	perQuestion := make([]models.QuestionResult, len(questions))
	correct := 0
	for i, question := range questions {
		userAnswer := answerByQuestion[question.ID]
		isCorrect := isAnswerCorrect(question, userAnswer)
		if isCorrect {
			correct++
		}

		perQuestion[i] = models.QuestionResult{
			QuestionID:    question.ID,
			QuestionText:  question.Text,
			UserAnswer:    userAnswer,
			CorrectAnswer: question.Correct,
			IsCorrect:     isCorrect,
		}
	}

	total := len(questions)
	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total)
	}

	return &models.SubmissionResult{
		QuizID:         request.QuizID,
		SessionID:      sessionID,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Score:          score,
		PerQuestion:    perQuestion,
	}
}

func isAnswerCorrect(question models.Question, userAnswer string) bool {
	if userAnswer == "" {
		return false
	}

	if question.Type == models.TypeMultipleChoice {
		return keySetsEqual(
			strings.Split(userAnswer, AnswerDelimiter),
			strings.Split(question.Correct, AnswerDelimiter),
		)
	}

	return userAnswer == question.Correct
}

// keySetsEqual compara dos listas de claves como conjuntos ordenados
func keySetsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	aSorted := append([]string(nil), a...)
	bSorted := append([]string(nil), b...)
	sort.Strings(aSorted)
	sort.Strings(bSorted)

	for i := range aSorted {
		if aSorted[i] != bSorted[i] {
			return false
		}
	}
	return true
}
