package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    SessionStatus
		to      SessionStatus
		wantErr bool
	}{
		{name: "loading to ready", from: StatusLoading, to: StatusReady},
		{name: "loading to failed", from: StatusLoading, to: StatusFailed},
		{name: "ready to submitting", from: StatusReady, to: StatusSubmitting},
		{name: "submitting to completed", from: StatusSubmitting, to: StatusCompleted},
		{name: "submitting to failed", from: StatusSubmitting, to: StatusFailed},
		{name: "failed is resubmittable", from: StatusFailed, to: StatusSubmitting},
		{name: "failed back to ready", from: StatusFailed, to: StatusReady},
		{name: "completed is terminal", from: StatusCompleted, to: StatusReady, wantErr: true},
		{name: "completed cannot resubmit", from: StatusCompleted, to: StatusSubmitting, wantErr: true},
		{name: "ready cannot complete directly", from: StatusReady, to: StatusCompleted, wantErr: true},
		{name: "loading cannot submit", from: StatusLoading, to: StatusSubmitting, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &QuizSession{Status: tt.from}
			err := session.Transition(tt.to)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.from, session.Status, "el estado no debe cambiar en una transición inválida")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, session.Status)
		})
	}
}

func TestAcceptsAnswersOnlyWhenReady(t *testing.T) {
	for _, status := range []SessionStatus{StatusLoading, StatusSubmitting, StatusCompleted, StatusFailed} {
		session := &QuizSession{Status: status}
		assert.False(t, session.AcceptsAnswers(), "estado %s no debe aceptar respuestas", status)
	}

	session := &QuizSession{Status: StatusReady}
	assert.True(t, session.AcceptsAnswers())
}

func TestSessionStudentViewStripsCorrectAnswers(t *testing.T) {
	session := &QuizSession{
		ID:     "s1",
		Status: StatusReady,
		Questions: []Question{
			{ID: "q1", Correct: "A,C"},
			{ID: "q2", Correct: "true"},
		},
	}

	view := session.StudentView()

	require.Len(t, view.Questions, 2)
	for _, q := range view.Questions {
		assert.Empty(t, q.Correct)
	}
	// La sesión original conserva las respuestas para calificar
	assert.Equal(t, "A,C", session.Questions[0].Correct)
}

func TestQuestionByID(t *testing.T) {
	session := &QuizSession{
		Questions: []Question{{ID: "q1"}, {ID: "q2"}},
	}

	question, ok := session.QuestionByID("q2")
	require.True(t, ok)
	assert.Equal(t, "q2", question.ID)

	_, ok = session.QuestionByID("q9")
	assert.False(t, ok)
}
