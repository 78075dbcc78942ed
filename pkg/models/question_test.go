package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestionType(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want QuestionType
	}{
		{name: "multiple choice", tag: "multiple_choice", want: TypeMultipleChoice},
		{name: "true false", tag: "true_false", want: TypeTrueFalse},
		{name: "open ended", tag: "open_ended", want: TypeOpenEnded},
		// Un tipo desconocido cae a pregunta abierta en vez de fallar
		{name: "unknown tag falls back to open ended", tag: "matching_pairs", want: TypeOpenEnded},
		{name: "empty tag falls back to open ended", tag: "", want: TypeOpenEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuestionType(tt.tag))
		})
	}
}

func TestDisplayOptionsStableOrder(t *testing.T) {
	question := Question{
		Type: TypeMultipleChoice,
		Options: map[string]string{
			"C": "Tercera",
			"A": "Primera",
			"B": "Segunda",
		},
	}

	want := []Option{
		{Key: "A", Label: "Primera"},
		{Key: "B", Label: "Segunda"},
		{Key: "C", Label: "Tercera"},
	}

	// El orden debe ser estable entre llamadas
	assert.Equal(t, want, question.DisplayOptions())
	assert.Equal(t, want, question.DisplayOptions())
}

func TestDisplayOptionsTrueFalseIgnoresStoredOptions(t *testing.T) {
	question := Question{
		Type: TypeTrueFalse,
		Options: map[string]string{
			"yes": "Sí",
			"no":  "No",
		},
	}

	options := question.DisplayOptions()

	assert.Equal(t, []Option{
		{Key: TrueOptionKey, Label: "Verdadero"},
		{Key: FalseOptionKey, Label: "Falso"},
	}, options)
}

func TestDisplayOptionsOpenEndedIsEmpty(t *testing.T) {
	question := Question{Type: TypeOpenEnded, Options: map[string]string{"A": "algo"}}

	assert.Empty(t, question.DisplayOptions())
}

func TestStudentViewStripsCorrectAnswer(t *testing.T) {
	question := Question{
		ID:      "q1",
		Text:    "¿Capital de Francia?",
		Type:    TypeOpenEnded,
		Correct: "Paris",
	}

	view := question.StudentView()

	assert.Empty(t, view.Correct)
	assert.Equal(t, question.ID, view.ID)
	assert.Equal(t, question.Text, view.Text)
	// La original no se modifica
	assert.Equal(t, "Paris", question.Correct)
}
