package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAnswerLastWriteWins(t *testing.T) {
	store := NewAnswerStore()

	store.SetAnswer("q1", []string{"A"})
	store.SetAnswer("q1", []string{"B", "C"})

	assert.Equal(t, []string{"B", "C"}, store.Answer("q1"))
}

func TestAnswerUnansweredIsEmpty(t *testing.T) {
	store := NewAnswerStore()

	assert.Empty(t, store.Answer("q1"))
	assert.NotNil(t, store.Answer("q1"))
}

func TestToggleOptionAddsAndRemoves(t *testing.T) {
	store := NewAnswerStore()

	store.ToggleOption("q1", "A")
	assert.Equal(t, []string{"A"}, store.Answer("q1"))

	store.ToggleOption("q1", "C")
	assert.Equal(t, []string{"A", "C"}, store.Answer("q1"))

	// Quitar una clave conserva el orden de las demás
	store.ToggleOption("q1", "A")
	assert.Equal(t, []string{"C"}, store.Answer("q1"))
}

func TestToggleOptionDoubleToggleRestoresState(t *testing.T) {
	store := NewAnswerStore()
	store.SetAnswer("q1", []string{"A", "C"})

	store.ToggleOption("q1", "B")
	store.ToggleOption("q1", "B")

	assert.Equal(t, []string{"A", "C"}, store.Answer("q1"))
}

func TestToggleOptionDoesNotAffectOtherQuestions(t *testing.T) {
	store := NewAnswerStore()
	store.SetAnswer("q1", []string{"A"})
	store.SetAnswer("q2", []string{"B"})

	store.ToggleOption("q1", "C")

	assert.Equal(t, []string{"B"}, store.Answer("q2"))
}

func TestFromSelectionsCopies(t *testing.T) {
	original := map[string][]string{"q1": {"A"}}
	store := FromSelections(original)

	store.ToggleOption("q1", "B")

	// Mutar el store no toca el mapa de origen
	assert.Equal(t, []string{"A"}, original["q1"])
	assert.Equal(t, []string{"A", "B"}, store.Answer("q1"))
}

func TestAnswerReturnsCopy(t *testing.T) {
	store := NewAnswerStore()
	store.SetAnswer("q1", []string{"A"})

	answer := store.Answer("q1")
	answer[0] = "Z"

	assert.Equal(t, []string{"A"}, store.Answer("q1"))
}
