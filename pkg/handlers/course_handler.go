package handlers

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/services"
	websocketHub "github.com/backsoul/classroom/pkg/websocket"
)

// CourseHandler maneja las peticiones HTTP de cursos e inscripciones
type CourseHandler struct {
	courseService *services.CourseService
	hub           *websocketHub.Hub
	logger        *zap.Logger
}

// NewCourseHandler crea una nueva instancia del handler de cursos
func NewCourseHandler(courseService *services.CourseService, hub *websocketHub.Hub, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		hub:           hub,
		logger:        logger,
	}
}

// Create maneja POST /api/courses
func (h *CourseHandler) Create(ctx *fasthttp.RequestCtx) {
	var request models.CourseCreateRequest
	if err := decodeAndValidate(ctx, &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	course, err := h.courseService.Create(ctx, request)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	// La respuesta de creación incluye la clave de acceso: el profesor
	// la comparte con sus estudiantes fuera de la plataforma.
	respondWithSuccess(ctx, models.CourseResponse{Course: course}, "Curso creado exitosamente")
}

// List maneja GET /api/courses
func (h *CourseHandler) List(ctx *fasthttp.RequestCtx) {
	courses, err := h.courseService.List(ctx)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.CourseResponse{
		Courses: courses,
		Count:   len(courses),
	}, "Cursos obtenidos exitosamente")
}

// Get maneja GET /api/courses/{id}
func (h *CourseHandler) Get(ctx *fasthttp.RequestCtx) {
	courseID := ctx.UserValue("id").(string)

	course, err := h.courseService.Get(ctx, courseID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, models.CourseResponse{Course: course}, "Curso obtenido exitosamente")
}

// Enroll maneja POST /api/courses/{id}/enroll
func (h *CourseHandler) Enroll(ctx *fasthttp.RequestCtx) {
	courseID := ctx.UserValue("id").(string)

	var request models.EnrollRequest
	if err := decodeAndValidate(ctx, &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	enrollment, err := h.courseService.Enroll(ctx, courseID, request)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	h.hub.BroadcastEvent("enrollment", websocketHub.EnrollmentEvent{
		CourseID: enrollment.CourseID,
		UserID:   enrollment.UserID,
	})

	respondWithSuccess(ctx, enrollment, "Inscripción exitosa")
}
