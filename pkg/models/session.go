package models

import (
	"fmt"
	"time"
)

// SessionStatus estado de una sesión de quiz
type SessionStatus string

const (
	StatusLoading    SessionStatus = "loading"    // las preguntas aún no fueron servidas
	StatusReady      SessionStatus = "ready"      // el estudiante puede responder
	StatusSubmitting SessionStatus = "submitting" // envío en curso
	StatusCompleted  SessionStatus = "completed"  // resultado calculado, sesión terminal
	StatusFailed     SessionStatus = "failed"     // falla de carga o envío, se puede reintentar
)

// QuizSession sesión de un estudiante tomando un quiz.
// Las respuestas sólo se aceptan en estado "ready". "completed" es
// terminal: un nuevo intento requiere una sesión nueva.
type QuizSession struct {
	ID           string              `json:"id"`
	QuizID       string              `json:"quizId"`
	CourseID     string              `json:"courseId"`
	UserID       string              `json:"userId"`
	Status       SessionStatus       `json:"status"`
	Questions    []Question          `json:"questions"` // preguntas servidas, en orden, con respuesta correcta
	Answers      map[string][]string `json:"answers"`   // id de pregunta -> claves seleccionadas
	Result       *SubmissionResult   `json:"result,omitempty"`
	StartedAt    time.Time           `json:"startedAt"`
	LastActivity time.Time           `json:"lastActivity"`
}

// transiciones válidas del estado de la sesión
var sessionTransitions = map[SessionStatus][]SessionStatus{
	StatusLoading:    {StatusReady, StatusFailed},
	StatusReady:      {StatusSubmitting},
	StatusSubmitting: {StatusCompleted, StatusFailed},
	StatusFailed:     {StatusReady, StatusSubmitting},
	StatusCompleted:  {},
}

// Transition cambia el estado de la sesión validando la transición
func (s *QuizSession) Transition(to SessionStatus) error {
	for _, allowed := range sessionTransitions[s.Status] {
		if allowed == to {
			s.Status = to
			s.LastActivity = time.Now()
			return nil
		}
	}
	return fmt.Errorf("transición de sesión inválida: %s -> %s", s.Status, to)
}

// AcceptsAnswers indica si la sesión acepta mutaciones de respuestas
func (s *QuizSession) AcceptsAnswers() bool {
	return s.Status == StatusReady
}

// QuestionByID busca una pregunta servida en esta sesión
func (s *QuizSession) QuestionByID(questionID string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}

// StudentView retorna una copia de la sesión sin respuestas correctas
func (s *QuizSession) StudentView() QuizSession {
	view := *s
	view.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		view.Questions[i] = q.StudentView()
	}
	return view
}

// SessionStartRequest request para iniciar una sesión de quiz
type SessionStartRequest struct {
	QuizID string `json:"quizId" validate:"required,uuid4"`
	UserID string `json:"userId" validate:"required,uuid4"`
}

// AnswerUpdateRequest request para registrar una respuesta.
// "set" reemplaza las selecciones de la pregunta; "toggle" agrega o
// quita una sola clave en preguntas de selección múltiple.
type AnswerUpdateRequest struct {
	QuestionID string   `json:"questionId" validate:"required"`
	Mode       string   `json:"mode" validate:"required,oneof=set toggle"`
	Selections []string `json:"selections,omitempty"`
	OptionKey  string   `json:"optionKey,omitempty"`
}

// SessionResponse respuesta de sesión
type SessionResponse struct {
	Session  *QuizSession  `json:"session,omitempty"`
	Sessions []QuizSession `json:"sessions,omitempty"`
	Message  string        `json:"message,omitempty"`
}
