package models

// AnswerEntry par (pregunta, respuesta aplanada) dentro de un envío.
// Siempre hay una entrada por pregunta servida, aun sin responder,
// para que el total y el porcentaje se calculen sobre el quiz completo.
type AnswerEntry struct {
	QuestionID string `json:"questionId"`
	AnswerText string `json:"answerText"` // selecciones unidas por coma; vacío si no respondió
}

// SubmissionRequest envío completo de respuestas de una sesión
type SubmissionRequest struct {
	QuizID  string        `json:"quizId"`
	Answers []AnswerEntry `json:"answers"`
}

// QuestionResult resultado de una pregunta individual.
// El orden lo fija el servidor y no se reordena para mostrar.
type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	QuestionText  string `json:"questionText"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// SubmissionResult resultado calificado de un envío.
// El servidor es la única autoridad de calificación: el cliente nunca
// recalcula la corrección comparando cadenas.
type SubmissionResult struct {
	QuizID         string           `json:"quizId"`
	SessionID      string           `json:"sessionId"`
	CorrectAnswers int              `json:"correctAnswers"`
	TotalQuestions int              `json:"totalQuestions"`
	Score          float64          `json:"score"` // correctas/total; 0 cuando no hay preguntas
	PerQuestion    []QuestionResult `json:"perQuestion"`
}

// LeaderboardEntry entrada en la tabla de posiciones de un quiz
type LeaderboardEntry struct {
	Position       int     `json:"position"`
	UserID         string  `json:"userId"`
	UserName       string  `json:"userName"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalQuestions int     `json:"totalQuestions"`
}

// LeaderboardResponse respuesta de la tabla de posiciones
type LeaderboardResponse struct {
	QuizID       string             `json:"quizId"`
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	TotalPlayers int                `json:"totalPlayers"`
}
