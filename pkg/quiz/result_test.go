package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backsoul/classroom/pkg/models"
)

func TestAggregateWithoutQuestionsHasNoResult(t *testing.T) {
	tests := []struct {
		name   string
		result *models.SubmissionResult
	}{
		{name: "nil result", result: nil},
		{name: "zero questions", result: &models.SubmissionResult{TotalQuestions: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(tt.result)

			assert.False(t, summary.HasResult)
			assert.Equal(t, 0.0, summary.Ratio)
			assert.Equal(t, 0, summary.Percent)
			assert.NotNil(t, summary.Rows)
			assert.Empty(t, summary.Rows)
		})
	}
}

func TestAggregatePercentRoundsDown(t *testing.T) {
	tests := []struct {
		name        string
		correct     int
		total       int
		wantPercent int
	}{
		{name: "two thirds", correct: 2, total: 3, wantPercent: 66},
		{name: "one third", correct: 1, total: 3, wantPercent: 33},
		{name: "all correct", correct: 4, total: 4, wantPercent: 100},
		{name: "none correct", correct: 0, total: 5, wantPercent: 0},
		{name: "five sixths", correct: 5, total: 6, wantPercent: 83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(&models.SubmissionResult{
				CorrectAnswers: tt.correct,
				TotalQuestions: tt.total,
			})

			require.True(t, summary.HasResult)
			assert.Equal(t, tt.wantPercent, summary.Percent)
			assert.InDelta(t, float64(tt.correct)/float64(tt.total), summary.Ratio, 1e-9)
		})
	}
}

func TestAggregateKeepsRowOrderAndVerdicts(t *testing.T) {
	rows := []models.QuestionResult{
		{QuestionID: "q1", UserAnswer: "C,A", CorrectAnswer: "A,C", IsCorrect: true},
		{QuestionID: "q2", UserAnswer: "", CorrectAnswer: "true", IsCorrect: false},
		{QuestionID: "q3", UserAnswer: "paris", CorrectAnswer: "Paris", IsCorrect: false},
	}

	summary := Aggregate(&models.SubmissionResult{
		CorrectAnswers: 1,
		TotalQuestions: 3,
		PerQuestion:    rows,
	})

	require.True(t, summary.HasResult)
	require.Len(t, summary.Rows, 3)

	// El veredicto viene del servidor y se conserva tal cual, aunque las
	// cadenas difieran solo en mayúsculas
	assert.Equal(t, rows, summary.Rows)
	assert.Equal(t, 1, summary.CorrectAnswers)
	assert.Equal(t, 3, summary.TotalQuestions)
}
