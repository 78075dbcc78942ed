package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backsoul/classroom/pkg/models"
)

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question *models.Question
		wantErr  bool
	}{
		{
			name: "multiple choice valid",
			question: &models.Question{
				Type:    models.TypeMultipleChoice,
				Options: map[string]string{"A": "uno", "B": "dos", "C": "tres"},
				Correct: "A,C",
			},
		},
		{
			name: "multiple choice needs at least two options",
			question: &models.Question{
				Type:    models.TypeMultipleChoice,
				Options: map[string]string{"A": "uno"},
				Correct: "A",
			},
			wantErr: true,
		},
		{
			name: "multiple choice correct key must exist",
			question: &models.Question{
				Type:    models.TypeMultipleChoice,
				Options: map[string]string{"A": "uno", "B": "dos"},
				Correct: "A,Z",
			},
			wantErr: true,
		},
		{
			name: "true false valid true",
			question: &models.Question{
				Type:    models.TypeTrueFalse,
				Correct: models.TrueOptionKey,
			},
		},
		{
			name: "true false valid false",
			question: &models.Question{
				Type:    models.TypeTrueFalse,
				Correct: models.FalseOptionKey,
			},
		},
		{
			name: "true false rejects other keys",
			question: &models.Question{
				Type:    models.TypeTrueFalse,
				Correct: "Verdadero",
			},
			wantErr: true,
		},
		{
			name: "open ended valid",
			question: &models.Question{
				Type:    models.TypeOpenEnded,
				Correct: "Paris",
			},
		},
		{
			name: "open ended requires expected answer",
			question: &models.Question{
				Type:    models.TypeOpenEnded,
				Correct: "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestion(tt.question)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuestion)
				return
			}
			assert.NoError(t, err)
		})
	}
}
