package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backsoul/classroom/pkg/models"
)

func sampleQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{ID: string(rune('a' + i)), Position: i}
	}
	return questions
}

func TestCapQuestions(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		limit   int
		wantLen int
	}{
		{name: "no limit serves all", total: 5, limit: 0, wantLen: 5},
		{name: "negative limit serves all", total: 5, limit: -1, wantLen: 5},
		{name: "limit above total serves all", total: 3, limit: 10, wantLen: 3},
		{name: "limit equal to total serves all", total: 4, limit: 4, wantLen: 4},
		{name: "limit caps the list", total: 10, limit: 3, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := sampleQuestions(tt.total)
			served := capQuestions(questions, tt.limit)

			require.Len(t, served, tt.wantLen)

			// Cada pregunta servida viene de la lista original, sin repetidas
			seen := make(map[string]bool, len(served))
			valid := make(map[string]bool, len(questions))
			for _, q := range questions {
				valid[q.ID] = true
			}
			for _, q := range served {
				assert.True(t, valid[q.ID])
				assert.False(t, seen[q.ID], "pregunta repetida %s", q.ID)
				seen[q.ID] = true
			}
		})
	}
}

func TestCapQuestionsDoesNotMutateSource(t *testing.T) {
	questions := sampleQuestions(8)
	original := append([]models.Question(nil), questions...)

	capQuestions(questions, 3)

	assert.Equal(t, original, questions)
}
