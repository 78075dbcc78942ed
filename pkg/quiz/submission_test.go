package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backsoul/classroom/pkg/models"
)

func TestBuildSubmissionOneEntryPerQuestionInOrder(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Type: models.TypeMultipleChoice},
		{ID: "q2", Type: models.TypeTrueFalse},
		{ID: "q3", Type: models.TypeOpenEnded},
	}

	tests := []struct {
		name  string
		store *AnswerStore
	}{
		{name: "empty store", store: NewAnswerStore()},
		{name: "partial answers", store: FromSelections(map[string][]string{"q2": {"true"}})},
		{name: "all answered", store: FromSelections(map[string][]string{
			"q1": {"A"}, "q2": {"false"}, "q3": {"algo"},
		})},
		{name: "answers for unknown questions are ignored", store: FromSelections(map[string][]string{
			"q9": {"A"},
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := BuildSubmission(tt.store, questions, "quiz-1")

			require.Len(t, request.Answers, len(questions))
			for i, question := range questions {
				assert.Equal(t, question.ID, request.Answers[i].QuestionID)
			}
		})
	}
}

func TestBuildSubmissionUnansweredIsEmptyString(t *testing.T) {
	questions := []models.Question{
		{ID: "q1"},
		{ID: "q2"},
		{ID: "q3"},
	}
	store := FromSelections(map[string][]string{
		"q1": {"A", "C"},
		"q3": {"paris"},
	})

	request := BuildSubmission(store, questions, "quiz-1")

	// La pregunta sin responder va con texto vacío, nunca se omite
	assert.Equal(t, "A,C", request.Answers[0].AnswerText)
	assert.Equal(t, "", request.Answers[1].AnswerText)
	assert.Equal(t, "paris", request.Answers[2].AnswerText)
}

func TestBuildSubmissionJoinsSelectionsInSelectionOrder(t *testing.T) {
	questions := []models.Question{{ID: "q1", Type: models.TypeMultipleChoice}}

	store := NewAnswerStore()
	store.ToggleOption("q1", "C")
	store.ToggleOption("q1", "A")
	store.ToggleOption("q1", "B")

	request := BuildSubmission(store, questions, "quiz-1")

	assert.Equal(t, "C,A,B", request.Answers[0].AnswerText)
}

// Escenario completo: selección múltiple, verdadero/falso y abierta.
// El cliente aplana tal cual; la autoridad sobre "paris" vs "Paris" es
// exclusivamente del servidor al calificar.
func TestBuildSubmissionFullScenario(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Type: models.TypeMultipleChoice, Correct: "A,C"},
		{ID: "q2", Type: models.TypeTrueFalse, Correct: "true"},
		{ID: "q3", Type: models.TypeOpenEnded, Correct: "Paris"},
	}

	store := NewAnswerStore()
	store.SetAnswer("q1", []string{"A", "C"})
	store.SetAnswer("q2", []string{"true"})
	store.SetAnswer("q3", []string{"paris"})

	request := BuildSubmission(store, questions, "quiz-1")

	assert.Equal(t, "quiz-1", request.QuizID)
	assert.Equal(t, []models.AnswerEntry{
		{QuestionID: "q1", AnswerText: "A,C"},
		{QuestionID: "q2", AnswerText: "true"},
		{QuestionID: "q3", AnswerText: "paris"},
	}, request.Answers)
}
