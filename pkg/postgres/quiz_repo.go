package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/backsoul/classroom/pkg/models"
)

var (
	ErrQuizNotFound     = errors.New("quiz no encontrado")
	ErrQuestionNotFound = errors.New("pregunta no encontrada")
)

// QuizRepository acceso a quizzes y su banco de preguntas
type QuizRepository struct {
	db DBTX
}

// NewQuizRepository crea el repositorio de quizzes
func NewQuizRepository(db DBTX) *QuizRepository {
	return &QuizRepository{db: db}
}

// CreateQuiz inserta un quiz nuevo
func (r *QuizRepository) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	query := `
		INSERT INTO quizzes (id, course_id, title, question_limit, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, quiz.ID, quiz.CourseID, quiz.Title, quiz.QuestionLimit, quiz.CreatedAt)
	if err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}

	return nil
}

// GetQuiz busca un quiz por id
func (r *QuizRepository) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	query := `
		SELECT id, course_id, title, question_limit, created_at
		FROM quizzes
		WHERE id = $1
	`

	var quiz models.Quiz
	err := r.db.QueryRow(ctx, query, id).Scan(
		&quiz.ID,
		&quiz.CourseID,
		&quiz.Title,
		&quiz.QuestionLimit,
		&quiz.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("get quiz: %w", err)
	}

	return &quiz, nil
}

// ListByCourse retorna los quizzes de un curso
func (r *QuizRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Quiz, error) {
	query := `
		SELECT id, course_id, title, question_limit, created_at
		FROM quizzes
		WHERE course_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []models.Quiz
	for rows.Next() {
		var quiz models.Quiz
		if err := rows.Scan(&quiz.ID, &quiz.CourseID, &quiz.Title, &quiz.QuestionLimit, &quiz.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}

	return quizzes, rows.Err()
}

// AddQuestion agrega una pregunta al final del quiz
func (r *QuizRepository) AddQuestion(ctx context.Context, question *models.Question) error {
	optionsJSON, err := json.Marshal(question.Options)
	if err != nil {
		return fmt.Errorf("serialize options: %w", err)
	}

	query := `
		INSERT INTO questions (id, quiz_id, text, type, options, correct_answer, position)
		VALUES ($1, $2, $3, $4, $5, $6,
			COALESCE((SELECT MAX(position) + 1 FROM questions WHERE quiz_id = $2), 0))
	`

	_, err = r.db.Exec(ctx, query,
		question.ID,
		question.QuizID,
		question.Text,
		string(question.Type),
		optionsJSON,
		question.Correct,
	)
	if err != nil {
		return fmt.Errorf("add question: %w", err)
	}

	return nil
}

// ListQuestions retorna las preguntas de un quiz en orden de autoría
func (r *QuizRepository) ListQuestions(ctx context.Context, quizID string) ([]models.Question, error) {
	query := `
		SELECT id, quiz_id, text, type, options, correct_answer, position
		FROM questions
		WHERE quiz_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var question models.Question
		var typeTag string
		var optionsJSON []byte

		if err := rows.Scan(
			&question.ID,
			&question.QuizID,
			&question.Text,
			&typeTag,
			&optionsJSON,
			&question.Correct,
			&question.Position,
		); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}

		question.Type = models.ParseQuestionType(typeTag)
		if err := json.Unmarshal(optionsJSON, &question.Options); err != nil {
			return nil, fmt.Errorf("parse options de la pregunta %s: %w", question.ID, err)
		}

		questions = append(questions, question)
	}

	return questions, rows.Err()
}
