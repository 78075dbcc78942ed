package handlers

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/services"
)

// QuizHandler maneja las peticiones HTTP de autoría de quizzes
type QuizHandler struct {
	quizService *services.QuizService
	logger      *zap.Logger
}

// NewQuizHandler crea una nueva instancia del handler de quizzes
func NewQuizHandler(quizService *services.QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		logger:      logger,
	}
}

// Create maneja POST /api/courses/{id}/quizzes
func (h *QuizHandler) Create(ctx *fasthttp.RequestCtx) {
	courseID := ctx.UserValue("id").(string)

	var request models.QuizCreateRequest
	if err := decodeAndValidate(ctx, &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	quiz, err := h.quizService.CreateQuiz(ctx, courseID, request)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.QuizResponse{Quiz: quiz}, "Quiz creado exitosamente")
}

// ListByCourse maneja GET /api/courses/{id}/quizzes
func (h *QuizHandler) ListByCourse(ctx *fasthttp.RequestCtx) {
	courseID := ctx.UserValue("id").(string)

	quizzes, err := h.quizService.ListQuizzes(ctx, courseID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.QuizResponse{
		Quizzes: quizzes,
		Count:   len(quizzes),
	}, "Quizzes obtenidos exitosamente")
}

// Get maneja GET /api/quizzes/{id}
func (h *QuizHandler) Get(ctx *fasthttp.RequestCtx) {
	quizID := ctx.UserValue("id").(string)

	quiz, err := h.quizService.GetQuiz(ctx, quizID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.QuizResponse{Quiz: quiz}, "Quiz obtenido exitosamente")
}

// AddQuestion maneja POST /api/quizzes/{id}/questions
func (h *QuizHandler) AddQuestion(ctx *fasthttp.RequestCtx) {
	quizID := ctx.UserValue("id").(string)

	var request models.QuestionCreateRequest
	if err := decodeAndValidate(ctx, &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	question, err := h.quizService.AddQuestion(ctx, quizID, request)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.QuizResponse{Question: question}, "Pregunta agregada exitosamente")
}

// ListQuestions maneja GET /api/quizzes/{id}/questions.
// Vista del profesor: incluye las respuestas correctas.
func (h *QuizHandler) ListQuestions(ctx *fasthttp.RequestCtx) {
	quizID := ctx.UserValue("id").(string)

	questions, err := h.quizService.ListQuestions(ctx, quizID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.QuizResponse{
		Questions: questions,
		Count:     len(questions),
	}, "Preguntas obtenidas exitosamente")
}
