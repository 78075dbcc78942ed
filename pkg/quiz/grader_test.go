package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backsoul/classroom/pkg/models"
)

func gradeSingle(t *testing.T, question models.Question, answerText string) models.QuestionResult {
	t.Helper()

	result := Grade("s1", []models.Question{question}, models.SubmissionRequest{
		QuizID:  question.QuizID,
		Answers: []models.AnswerEntry{{QuestionID: question.ID, AnswerText: answerText}},
	})

	require.Len(t, result.PerQuestion, 1)
	return result.PerQuestion[0]
}

func TestGradeMultipleChoiceSetEquality(t *testing.T) {
	question := models.Question{ID: "q1", Type: models.TypeMultipleChoice, Correct: "A,C"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "exact order", answer: "A,C", want: true},
		{name: "order insensitive", answer: "C,A", want: true},
		{name: "missing key", answer: "A", want: false},
		{name: "extra key", answer: "A,B,C", want: false},
		{name: "wrong keys", answer: "B,D", want: false},
		{name: "unanswered", answer: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := gradeSingle(t, question, tt.answer)
			assert.Equal(t, tt.want, row.IsCorrect)
		})
	}
}

func TestGradeExactComparisonWithoutNormalization(t *testing.T) {
	tests := []struct {
		name     string
		question models.Question
		answer   string
		want     bool
	}{
		{
			name:     "true false correct",
			question: models.Question{ID: "q1", Type: models.TypeTrueFalse, Correct: "true"},
			answer:   "true",
			want:     true,
		},
		{
			name:     "true false wrong",
			question: models.Question{ID: "q1", Type: models.TypeTrueFalse, Correct: "true"},
			answer:   "false",
			want:     false,
		},
		{
			name:     "open ended exact",
			question: models.Question{ID: "q1", Type: models.TypeOpenEnded, Correct: "Paris"},
			answer:   "Paris",
			want:     true,
		},
		{
			// Sin política de normalización: minúsculas no coinciden
			name:     "open ended case sensitive",
			question: models.Question{ID: "q1", Type: models.TypeOpenEnded, Correct: "Paris"},
			answer:   "paris",
			want:     false,
		},
		{
			name:     "open ended whitespace sensitive",
			question: models.Question{ID: "q1", Type: models.TypeOpenEnded, Correct: "Paris"},
			answer:   " Paris",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := gradeSingle(t, tt.question, tt.answer)
			assert.Equal(t, tt.want, row.IsCorrect)
		})
	}
}

func TestGradeTotalsAndScore(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Text: "pregunta 1", Type: models.TypeMultipleChoice, Correct: "A,C"},
		{ID: "q2", Text: "pregunta 2", Type: models.TypeTrueFalse, Correct: "true"},
		{ID: "q3", Text: "pregunta 3", Type: models.TypeOpenEnded, Correct: "Paris"},
	}

	// q2 queda sin responder: igual cuenta en el total
	request := models.SubmissionRequest{
		QuizID: "quiz-1",
		Answers: []models.AnswerEntry{
			{QuestionID: "q1", AnswerText: "C,A"},
			{QuestionID: "q2", AnswerText: ""},
			{QuestionID: "q3", AnswerText: "Paris"},
		},
	}

	result := Grade("s1", questions, request)

	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.InDelta(t, 2.0/3.0, result.Score, 1e-9)

	require.Len(t, result.PerQuestion, 3)
	assert.True(t, result.PerQuestion[0].IsCorrect)
	assert.False(t, result.PerQuestion[1].IsCorrect)
	assert.True(t, result.PerQuestion[2].IsCorrect)

	// Las filas conservan el orden de las preguntas servidas
	assert.Equal(t, "q1", result.PerQuestion[0].QuestionID)
	assert.Equal(t, "q2", result.PerQuestion[1].QuestionID)
	assert.Equal(t, "pregunta 2", result.PerQuestion[1].QuestionText)
	assert.Equal(t, "", result.PerQuestion[1].UserAnswer)
}

func TestGradeEmptyQuestionListDoesNotDivideByZero(t *testing.T) {
	result := Grade("s1", nil, models.SubmissionRequest{QuizID: "quiz-1"})

	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Equal(t, 0.0, result.Score)
}
