package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/backsoul/classroom/pkg/models"
)

var ErrCourseNotFound = errors.New("curso no encontrado")

// CourseRepository acceso a cursos e inscripciones
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository crea el repositorio de cursos
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserta un curso nuevo
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (id, title, description, teacher_id, access_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.TeacherID,
		course.AccessKey,
		course.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	return nil
}

// GetByID busca un curso por id, incluida su clave de acceso
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, title, description, teacher_id, access_key, created_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.TeacherID,
		&course.AccessKey,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	return &course, nil
}

// List retorna todos los cursos, los más nuevos primero
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, title, description, teacher_id, created_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.TeacherID,
			&course.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// Enroll registra la inscripción; repetirla no duplica la fila
func (r *CourseRepository) Enroll(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (course_id, user_id, enrolled_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_id, user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, enrollment.CourseID, enrollment.UserID, enrollment.EnrolledAt)
	if err != nil {
		return fmt.Errorf("enroll: %w", err)
	}

	return nil
}

// IsEnrolled indica si un usuario está inscrito en un curso
func (r *CourseRepository) IsEnrolled(ctx context.Context, courseID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM enrollments WHERE course_id = $1 AND user_id = $2
		)
	`

	var enrolled bool
	if err := r.db.QueryRow(ctx, query, courseID, userID).Scan(&enrolled); err != nil {
		return false, fmt.Errorf("is enrolled: %w", err)
	}

	return enrolled, nil
}

// ListEnrollments retorna las inscripciones de un curso
func (r *CourseRepository) ListEnrollments(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	query := `
		SELECT course_id, user_id, enrolled_at
		FROM enrollments
		WHERE course_id = $1
		ORDER BY enrolled_at
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(&enrollment.CourseID, &enrollment.UserID, &enrollment.EnrolledAt); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	return enrollments, rows.Err()
}
