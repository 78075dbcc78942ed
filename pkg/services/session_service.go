package services

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/apierr"
	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/postgres"
	"github.com/backsoul/classroom/pkg/quiz"
	"github.com/backsoul/classroom/pkg/redis"
)

var (
	ErrSessionReadOnly  = errors.New("la sesión no acepta respuestas en su estado actual")
	ErrSessionCompleted = errors.New("la sesión ya fue completada")
	ErrToggleNotAllowed = errors.New("toggle sólo aplica a preguntas de selección múltiple")
	ErrQuizEmpty        = errors.New("el quiz no tiene preguntas")
)

// maxLeaderboardEntries tope de la tabla de posiciones
const maxLeaderboardEntries = 20

// SessionService orquesta la toma de quizzes: sirve las preguntas,
// acumula respuestas y califica el envío. El servidor es la única
// autoridad de calificación.
type SessionService struct {
	quizRepo    *postgres.QuizRepository
	courseRepo  *postgres.CourseRepository
	userRepo    *postgres.UserRepository
	redisClient *redis.Client
	sessionTTL  time.Duration
	logger      *zap.Logger
}

// NewSessionService crea una nueva instancia del servicio de sesiones
func NewSessionService(
	quizRepo *postgres.QuizRepository,
	courseRepo *postgres.CourseRepository,
	userRepo *postgres.UserRepository,
	redisClient *redis.Client,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		quizRepo:    quizRepo,
		courseRepo:  courseRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Start inicia una sesión de quiz para un estudiante inscrito. Las
// preguntas se fijan al iniciar: si el quiz tiene tope, se sirve un
// subconjunto aleatorio y la sesión recuerda exactamente cuáles, para
// que el total del resultado iguale lo que vio el estudiante.
func (s *SessionService) Start(ctx context.Context, quizID, userID string) (*models.QuizSession, error) {
	selectedQuiz, err := s.quizRepo.GetQuiz(ctx, quizID)
	if err != nil {
		if errors.Is(err, postgres.ErrQuizNotFound) {
			return nil, apierr.NotFound("Quiz no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el quiz", err)
	}

	enrolled, err := s.courseRepo.IsEnrolled(ctx, selectedQuiz.CourseID, userID)
	if err != nil {
		return nil, apierr.Connection("No se pudo consultar la inscripción", err)
	}
	if !enrolled {
		return nil, apierr.Unauthorized("Debes inscribirte en el curso para tomar este quiz")
	}

	session := &models.QuizSession{
		ID:           uuid.New().String(),
		QuizID:       quizID,
		CourseID:     selectedQuiz.CourseID,
		UserID:       userID,
		Status:       models.StatusLoading,
		Answers:      make(map[string][]string),
		StartedAt:    time.Now(),
		LastActivity: time.Now(),
	}

	questions, err := s.quizRepo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, apierr.Connection("No se pudieron cargar las preguntas", err)
	}
	if len(questions) == 0 {
		return nil, apierr.New(apierr.KindNotFound, "El quiz no tiene preguntas", ErrQuizEmpty)
	}

	session.Questions = capQuestions(questions, selectedQuiz.QuestionLimit)
	if err := session.Transition(models.StatusReady); err != nil {
		return nil, apierr.Server("Error interno iniciando la sesión", err)
	}

	if err := s.redisClient.SaveSession(ctx, session, s.sessionTTL); err != nil {
		return nil, apierr.Connection("No se pudo guardar la sesión", err)
	}
	if err := s.redisClient.IndexSession(ctx, session); err != nil {
		s.logger.Warn("error indexando sesión", zap.String("session", session.ID), zap.Error(err))
	}

	s.logger.Info("sesión de quiz iniciada",
		zap.String("session", session.ID),
		zap.String("quiz", quizID),
		zap.String("user", userID),
		zap.Int("questions", len(session.Questions)),
	)

	return session, nil
}

// capQuestions baraja y recorta la lista cuando el quiz tiene tope
func capQuestions(questions []models.Question, limit int) []models.Question {
	if limit <= 0 || limit >= len(questions) {
		return questions
	}

	shuffled := append([]models.Question(nil), questions...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:limit]
}

// Get recupera una sesión por id
func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	session, err := s.redisClient.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, apierr.NotFound("Sesión no encontrada")
		}
		return nil, apierr.Connection("No se pudo consultar la sesión", err)
	}

	return session, nil
}

// RecordAnswer registra una respuesta en la sesión. "set" reemplaza las
// selecciones de la pregunta (la última escritura gana); "toggle" agrega
// o quita una clave en preguntas de selección múltiple. No se valida que
// la pregunta quede respondida: eso se resuelve al enviar.
func (s *SessionService) RecordAnswer(ctx context.Context, sessionID string, request models.AnswerUpdateRequest) (*models.QuizSession, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.AcceptsAnswers() {
		return nil, ErrSessionReadOnly
	}

	question, ok := session.QuestionByID(request.QuestionID)
	if !ok {
		return nil, apierr.NotFound("La pregunta no pertenece a esta sesión")
	}

	store := quiz.FromSelections(session.Answers)
	switch request.Mode {
	case "toggle":
		if question.Type != models.TypeMultipleChoice {
			return nil, ErrToggleNotAllowed
		}
		store.ToggleOption(request.QuestionID, request.OptionKey)
	default:
		store.SetAnswer(request.QuestionID, request.Selections)
	}

	session.Answers = store.Selections()
	session.LastActivity = time.Now()

	if err := s.redisClient.SaveSession(ctx, session, s.sessionTTL); err != nil {
		return nil, apierr.Connection("No se pudo guardar la respuesta", err)
	}

	return session, nil
}

// Submit aplana las respuestas acumuladas, califica y completa la
// sesión. El envío es atómico desde el punto de vista del cliente: si
// falla, la sesión queda en "failed" y conserva las respuestas para
// reintentar el envío completo.
func (s *SessionService) Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == models.StatusCompleted {
		return nil, ErrSessionCompleted
	}

	if err := session.Transition(models.StatusSubmitting); err != nil {
		return nil, ErrSessionReadOnly
	}

	store := quiz.FromSelections(session.Answers)
	request := quiz.BuildSubmission(store, session.Questions, session.QuizID)
	result := quiz.Grade(session.ID, session.Questions, request)

	session.Result = result
	if err := session.Transition(models.StatusCompleted); err != nil {
		return nil, apierr.Server("Error interno completando la sesión", err)
	}

	if err := s.redisClient.SaveSession(ctx, session, s.sessionTTL); err != nil {
		// El envío falló como un todo: la sesión vuelve a "failed" y el
		// estudiante reenvía desde las mismas respuestas en memoria.
		s.failSession(ctx, session)
		return nil, apierr.Connection("No se pudo guardar el resultado, intenta de nuevo", err)
	}

	s.logger.Info("quiz enviado y calificado",
		zap.String("session", session.ID),
		zap.String("quiz", session.QuizID),
		zap.Int("correct", result.CorrectAnswers),
		zap.Int("total", result.TotalQuestions),
	)

	return result, nil
}

func (s *SessionService) failSession(ctx context.Context, session *models.QuizSession) {
	session.Status = models.StatusFailed
	session.Result = nil
	if err := s.redisClient.SaveSession(ctx, session, s.sessionTTL); err != nil {
		s.logger.Warn("no se pudo marcar la sesión como fallida",
			zap.String("session", session.ID), zap.Error(err))
	}
}

// Result retorna el resumen listo para mostrar de una sesión completada
func (s *SessionService) Result(ctx context.Context, sessionID string) (*quiz.DisplaySummary, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.StatusCompleted || session.Result == nil {
		return nil, apierr.NotFound("La sesión aún no tiene resultado")
	}

	summary := quiz.Aggregate(session.Result)
	return &summary, nil
}

// UserHistory retorna las sesiones de un usuario, sin respuestas correctas
func (s *SessionService) UserHistory(ctx context.Context, userID string) ([]models.QuizSession, error) {
	ids, err := s.redisClient.UserSessionIDs(ctx, userID)
	if err != nil {
		return nil, apierr.Connection("No se pudo consultar el historial", err)
	}

	var sessions []models.QuizSession
	for _, id := range ids {
		session, err := s.redisClient.GetSession(ctx, id)
		if err != nil {
			// Las sesiones expiran por TTL; los índices pueden quedar atrás
			continue
		}
		sessions = append(sessions, session.StudentView())
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	return sessions, nil
}

// Leaderboard arma la tabla de posiciones de un quiz con las sesiones
// completadas, ordenadas por puntaje descendente
func (s *SessionService) Leaderboard(ctx context.Context, quizID string) (*models.LeaderboardResponse, error) {
	ids, err := s.redisClient.QuizSessionIDs(ctx, quizID)
	if err != nil {
		return nil, apierr.Connection("No se pudo consultar la tabla de posiciones", err)
	}

	var entries []models.LeaderboardEntry
	for _, id := range ids {
		session, err := s.redisClient.GetSession(ctx, id)
		if err != nil {
			continue
		}
		if session.Status != models.StatusCompleted || session.Result == nil {
			continue
		}

		userName := ""
		if user, err := s.userRepo.GetByID(ctx, session.UserID); err == nil {
			userName = user.Name
		}

		entries = append(entries, models.LeaderboardEntry{
			UserID:         session.UserID,
			UserName:       userName,
			Score:          session.Result.Score,
			CorrectAnswers: session.Result.CorrectAnswers,
			TotalQuestions: session.Result.TotalQuestions,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > maxLeaderboardEntries {
		entries = entries[:maxLeaderboardEntries]
	}
	for i := range entries {
		entries[i].Position = i + 1
	}

	return &models.LeaderboardResponse{
		QuizID:       quizID,
		Leaderboard:  entries,
		TotalPlayers: len(entries),
	}, nil
}
