package handlers

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/services"
	websocketHub "github.com/backsoul/classroom/pkg/websocket"
)

// SessionHandler maneja las peticiones HTTP de la toma de quizzes
type SessionHandler struct {
	sessionService *services.SessionService
	hub            *websocketHub.Hub
	logger         *zap.Logger
}

// NewSessionHandler crea una nueva instancia del handler de sesiones
func NewSessionHandler(sessionService *services.SessionService, hub *websocketHub.Hub, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		hub:            hub,
		logger:         logger,
	}
}

// Start maneja POST /api/sessions
func (h *SessionHandler) Start(ctx *fasthttp.RequestCtx) {
	var request models.SessionStartRequest
	if err := decodeAndValidate(ctx, &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.Start(ctx, request.QuizID, request.UserID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	// El estudiante nunca recibe las respuestas correctas
	view := session.StudentView()
	respondWithSuccess(ctx, models.SessionResponse{Session: &view}, "Sesión iniciada exitosamente")
}

// Get maneja GET /api/sessions/{id}
func (h *SessionHandler) Get(ctx *fasthttp.RequestCtx) {
	sessionID := ctx.UserValue("id").(string)

	session, err := h.sessionService.Get(ctx, sessionID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	view := session.StudentView()
	respondWithSuccess(ctx, models.SessionResponse{Session: &view}, "Sesión obtenida exitosamente")
}

// RecordAnswer maneja POST /api/sessions/{id}/answer
func (h *SessionHandler) RecordAnswer(ctx *fasthttp.RequestCtx) {
	sessionID := ctx.UserValue("id").(string)

	var request models.AnswerUpdateRequest
	if err := decodeAndValidate(ctx, &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.RecordAnswer(ctx, sessionID, request)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	view := session.StudentView()
	respondWithSuccess(ctx, models.SessionResponse{Session: &view}, "Respuesta registrada")
}

// Submit maneja POST /api/sessions/{id}/submit
func (h *SessionHandler) Submit(ctx *fasthttp.RequestCtx) {
	sessionID := ctx.UserValue("id").(string)

	result, err := h.sessionService.Submit(ctx, sessionID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	session, err := h.sessionService.Get(ctx, sessionID)
	if err == nil {
		h.hub.BroadcastEvent("submission", websocketHub.SubmissionEvent{
			QuizID:         session.QuizID,
			CourseID:       session.CourseID,
			UserID:         session.UserID,
			Score:          result.Score,
			CorrectAnswers: result.CorrectAnswers,
			TotalQuestions: result.TotalQuestions,
		})
	}

	respondWithSuccess(ctx, result, "Quiz enviado y calificado exitosamente")
}

// Result maneja GET /api/sessions/{id}/result
func (h *SessionHandler) Result(ctx *fasthttp.RequestCtx) {
	sessionID := ctx.UserValue("id").(string)

	summary, err := h.sessionService.Result(ctx, sessionID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, summary, "Resultado obtenido exitosamente")
}

// UserHistory maneja GET /api/sessions/user/{userId}
func (h *SessionHandler) UserHistory(ctx *fasthttp.RequestCtx) {
	userID := ctx.UserValue("userId").(string)

	sessions, err := h.sessionService.UserHistory(ctx, userID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.SessionResponse{Sessions: sessions}, "Historial obtenido exitosamente")
}

// Leaderboard maneja GET /api/quizzes/{id}/leaderboard
func (h *SessionHandler) Leaderboard(ctx *fasthttp.RequestCtx) {
	quizID := ctx.UserValue("id").(string)

	leaderboard, err := h.sessionService.Leaderboard(ctx, quizID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, leaderboard, "Tabla de posiciones obtenida exitosamente")
}
