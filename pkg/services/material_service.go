package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/backsoul/classroom/pkg/apierr"
	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/postgres"
)

// MaterialService maneja los materiales de curso: los bytes en disco y
// los metadatos en la base de datos
type MaterialService struct {
	materialRepo *postgres.MaterialRepository
	courseRepo   *postgres.CourseRepository
	uploadDir    string
}

// NewMaterialService crea una nueva instancia del servicio de materiales
func NewMaterialService(materialRepo *postgres.MaterialRepository, courseRepo *postgres.CourseRepository, uploadDir string) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		courseRepo:   courseRepo,
		uploadDir:    uploadDir,
	}
}

// Upload guarda un archivo de curso. El nombre en disco es el id del
// material, no el nombre original, para evitar colisiones y recorridos
// de ruta.
func (s *MaterialService) Upload(ctx context.Context, courseID, uploadedBy, fileName string, content []byte) (*models.Material, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, postgres.ErrCourseNotFound) {
			return nil, apierr.NotFound("Curso no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el curso", err)
	}

	material := &models.Material{
		ID:         uuid.New().String(),
		CourseID:   courseID,
		FileName:   filepath.Base(fileName),
		Size:       int64(len(content)),
		UploadedBy: uploadedBy,
		UploadedAt: time.Now(),
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, apierr.Server("No se pudo preparar el directorio de materiales", err)
	}

	if err := os.WriteFile(s.FilePath(material.ID), content, 0o644); err != nil {
		return nil, apierr.Server("No se pudo guardar el archivo", err)
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		// Sin metadatos el archivo es huérfano; se limpia
		_ = os.Remove(s.FilePath(material.ID))
		return nil, apierr.Connection("No se pudieron guardar los metadatos del material", err)
	}

	return material, nil
}

// Get busca los metadatos de un material
func (s *MaterialService) Get(ctx context.Context, materialID string) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, postgres.ErrMaterialNotFound) {
			return nil, apierr.NotFound("Material no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el material", err)
	}

	return material, nil
}

// ListByCourse retorna los materiales de un curso
func (s *MaterialService) ListByCourse(ctx context.Context, courseID string) ([]models.Material, error) {
	materials, err := s.materialRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, apierr.Connection("No se pudieron consultar los materiales", err)
	}

	return materials, nil
}

// FilePath ruta en disco del archivo de un material
func (s *MaterialService) FilePath(materialID string) string {
	return filepath.Join(s.uploadDir, materialID)
}
