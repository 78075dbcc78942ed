package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/backsoul/classroom/pkg/apierr"
	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/postgres"
)

// CourseService maneja cursos e inscripciones
type CourseService struct {
	courseRepo *postgres.CourseRepository
	userRepo   *postgres.UserRepository
}

// NewCourseService crea una nueva instancia del servicio de cursos
func NewCourseService(courseRepo *postgres.CourseRepository, userRepo *postgres.UserRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// Create crea un curso con una clave de acceso generada.
// La clave se comparte fuera de banda con los estudiantes.
func (s *CourseService) Create(ctx context.Context, request models.CourseCreateRequest) (*models.Course, error) {
	teacher, err := s.userRepo.GetByID(ctx, request.TeacherID)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return nil, apierr.NotFound("Profesor no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el profesor", err)
	}
	if teacher.Role != models.RoleTeacher {
		return nil, apierr.Unauthorized("Sólo un profesor puede crear cursos")
	}

	course := &models.Course{
		ID:          uuid.New().String(),
		Title:       request.Title,
		Description: request.Description,
		TeacherID:   request.TeacherID,
		AccessKey:   uuid.New().String(),
		CreatedAt:   time.Now(),
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, apierr.Connection("No se pudo guardar el curso", err)
	}

	return course, nil
}

// Get busca un curso por id. La clave de acceso no se expone.
func (s *CourseService) Get(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, postgres.ErrCourseNotFound) {
			return nil, apierr.NotFound("Curso no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el curso", err)
	}

	course.AccessKey = ""
	return course, nil
}

// List retorna todos los cursos disponibles
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, apierr.Connection("No se pudieron consultar los cursos", err)
	}

	return courses, nil
}

// Enroll inscribe a un usuario en un curso si la clave de acceso
// coincide. Repetir la inscripción es inofensivo.
func (s *CourseService) Enroll(ctx context.Context, courseID string, request models.EnrollRequest) (*models.Enrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, postgres.ErrCourseNotFound) {
			return nil, apierr.NotFound("Curso no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el curso", err)
	}

	if subtle.ConstantTimeCompare([]byte(course.AccessKey), []byte(request.AccessKey)) != 1 {
		return nil, apierr.Unauthorized("Clave de acceso incorrecta")
	}

	if _, err := s.userRepo.GetByID(ctx, request.UserID); err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return nil, apierr.NotFound("Usuario no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el usuario", err)
	}

	enrollment := &models.Enrollment{
		CourseID:   courseID,
		UserID:     request.UserID,
		EnrolledAt: time.Now(),
	}

	if err := s.courseRepo.Enroll(ctx, enrollment); err != nil {
		return nil, apierr.Connection("No se pudo guardar la inscripción", err)
	}

	return enrollment, nil
}

// IsEnrolled indica si un usuario está inscrito en un curso
func (s *CourseService) IsEnrolled(ctx context.Context, courseID, userID string) (bool, error) {
	enrolled, err := s.courseRepo.IsEnrolled(ctx, courseID, userID)
	if err != nil {
		return false, apierr.Connection("No se pudo consultar la inscripción", err)
	}
	return enrolled, nil
}
