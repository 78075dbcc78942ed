package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/backsoul/classroom/pkg/apierr"
	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/postgres"
	"github.com/backsoul/classroom/pkg/quiz"
)

var ErrInvalidQuestion = errors.New("pregunta inválida")

// QuizService maneja la autoría de quizzes y su banco de preguntas
type QuizService struct {
	quizRepo   *postgres.QuizRepository
	courseRepo *postgres.CourseRepository
}

// NewQuizService crea una nueva instancia del servicio de quizzes
func NewQuizService(quizRepo *postgres.QuizRepository, courseRepo *postgres.CourseRepository) *QuizService {
	return &QuizService{
		quizRepo:   quizRepo,
		courseRepo: courseRepo,
	}
}

// CreateQuiz crea un quiz dentro de un curso
func (s *QuizService) CreateQuiz(ctx context.Context, courseID string, request models.QuizCreateRequest) (*models.Quiz, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, postgres.ErrCourseNotFound) {
			return nil, apierr.NotFound("Curso no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el curso", err)
	}

	newQuiz := &models.Quiz{
		ID:            uuid.New().String(),
		CourseID:      courseID,
		Title:         request.Title,
		QuestionLimit: request.QuestionLimit,
		CreatedAt:     time.Now(),
	}

	if err := s.quizRepo.CreateQuiz(ctx, newQuiz); err != nil {
		return nil, apierr.Connection("No se pudo guardar el quiz", err)
	}

	return newQuiz, nil
}

// GetQuiz busca un quiz por id
func (s *QuizService) GetQuiz(ctx context.Context, quizID string) (*models.Quiz, error) {
	found, err := s.quizRepo.GetQuiz(ctx, quizID)
	if err != nil {
		if errors.Is(err, postgres.ErrQuizNotFound) {
			return nil, apierr.NotFound("Quiz no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el quiz", err)
	}

	return found, nil
}

// ListQuizzes retorna los quizzes de un curso
func (s *QuizService) ListQuizzes(ctx context.Context, courseID string) ([]models.Quiz, error) {
	quizzes, err := s.quizRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, apierr.Connection("No se pudieron consultar los quizzes", err)
	}

	return quizzes, nil
}

// AddQuestion agrega una pregunta al quiz validando su coherencia.
// La etiqueta de tipo desconocida se interpreta como pregunta abierta.
func (s *QuizService) AddQuestion(ctx context.Context, quizID string, request models.QuestionCreateRequest) (*models.Question, error) {
	if _, err := s.GetQuiz(ctx, quizID); err != nil {
		return nil, err
	}

	question := &models.Question{
		ID:      uuid.New().String(),
		QuizID:  quizID,
		Text:    request.Text,
		Type:    models.ParseQuestionType(request.Type),
		Options: request.Options,
		Correct: request.Correct,
	}

	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	if err := s.quizRepo.AddQuestion(ctx, question); err != nil {
		return nil, apierr.Connection("No se pudo guardar la pregunta", err)
	}

	return question, nil
}

// ListQuestions retorna las preguntas de un quiz en orden de autoría,
// con sus respuestas correctas (uso del lado del profesor)
func (s *QuizService) ListQuestions(ctx context.Context, quizID string) ([]models.Question, error) {
	questions, err := s.quizRepo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, apierr.Connection("No se pudieron consultar las preguntas", err)
	}

	return questions, nil
}

// validateQuestion verifica que la respuesta correcta sea coherente con
// el tipo y las opciones de la pregunta
func validateQuestion(question *models.Question) error {
	switch question.Type {
	case models.TypeMultipleChoice:
		if len(question.Options) < 2 {
			return fmt.Errorf("%w: selección múltiple requiere al menos dos opciones", ErrInvalidQuestion)
		}
		for _, key := range strings.Split(question.Correct, quiz.AnswerDelimiter) {
			if _, ok := question.Options[key]; !ok {
				return fmt.Errorf("%w: la clave correcta %q no está entre las opciones", ErrInvalidQuestion, key)
			}
		}
	case models.TypeTrueFalse:
		if question.Correct != models.TrueOptionKey && question.Correct != models.FalseOptionKey {
			return fmt.Errorf("%w: verdadero/falso requiere respuesta %q o %q",
				ErrInvalidQuestion, models.TrueOptionKey, models.FalseOptionKey)
		}
	case models.TypeOpenEnded:
		if question.Correct == "" {
			return fmt.Errorf("%w: pregunta abierta requiere una respuesta esperada", ErrInvalidQuestion)
		}
	}

	return nil
}
