package models

import "sort"

// QuestionType tipo de pregunta, gobierna cómo se recogen las respuestas
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice" // puede seleccionar varias opciones
	TypeTrueFalse      QuestionType = "true_false"      // exactamente una de dos opciones fijas
	TypeOpenEnded      QuestionType = "open_ended"      // texto libre, sin opciones
)

// ParseQuestionType interpreta la etiqueta de tipo recibida.
// Un tipo desconocido se trata como pregunta abierta: es la alternativa
// más permisiva y evita rechazar datos del servidor.
func ParseQuestionType(tag string) QuestionType {
	switch QuestionType(tag) {
	case TypeMultipleChoice, TypeTrueFalse, TypeOpenEnded:
		return QuestionType(tag)
	default:
		return TypeOpenEnded
	}
}

// Claves canónicas para preguntas de verdadero/falso
const (
	TrueOptionKey  = "true"
	FalseOptionKey = "false"
)

// Question pregunta de un quiz. Inmutable una vez cargada en una sesión.
type Question struct {
	ID       string            `json:"id"`
	QuizID   string            `json:"quizId"`
	Text     string            `json:"text"`
	Type     QuestionType      `json:"type"`
	Options  map[string]string `json:"options"` // clave corta -> etiqueta visible
	Correct  string            `json:"correctAnswer,omitempty"`
	Position int               `json:"position"` // orden dentro del quiz
}

// Option opción visible con su clave
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DisplayOptions retorna las opciones en orden estable para render.
// Verdadero/falso siempre expone las dos opciones canónicas con etiquetas
// fijas, sin importar lo que traiga el servidor. Abierta no tiene opciones.
func (q Question) DisplayOptions() []Option {
	switch q.Type {
	case TypeTrueFalse:
		return []Option{
			{Key: TrueOptionKey, Label: "Verdadero"},
			{Key: FalseOptionKey, Label: "Falso"},
		}
	case TypeOpenEnded:
		return nil
	}

	keys := make([]string, 0, len(q.Options))
	for key := range q.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	options := make([]Option, len(keys))
	for i, key := range keys {
		options[i] = Option{Key: key, Label: q.Options[key]}
	}
	return options
}

// StudentView retorna una copia sin la respuesta correcta.
// La respuesta correcta sólo se usa del lado del servidor y nunca
// viaja al estudiante.
func (q Question) StudentView() Question {
	view := q
	view.Correct = ""
	return view
}
