package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/backsoul/classroom/pkg/models"
)

var ErrMaterialNotFound = errors.New("material no encontrado")

// MaterialRepository metadatos de materiales de curso; los bytes viven en disco
type MaterialRepository struct {
	db DBTX
}

// NewMaterialRepository crea el repositorio de materiales
func NewMaterialRepository(db DBTX) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create inserta los metadatos de un material subido
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	query := `
		INSERT INTO materials (id, course_id, file_name, size, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		material.ID,
		material.CourseID,
		material.FileName,
		material.Size,
		material.UploadedBy,
		material.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("create material: %w", err)
	}

	return nil
}

// GetByID busca los metadatos de un material
func (r *MaterialRepository) GetByID(ctx context.Context, id string) (*models.Material, error) {
	query := `
		SELECT id, course_id, file_name, size, uploaded_by, uploaded_at
		FROM materials
		WHERE id = $1
	`

	var material models.Material
	err := r.db.QueryRow(ctx, query, id).Scan(
		&material.ID,
		&material.CourseID,
		&material.FileName,
		&material.Size,
		&material.UploadedBy,
		&material.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("get material: %w", err)
	}

	return &material, nil
}

// ListByCourse retorna los materiales de un curso
func (r *MaterialRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Material, error) {
	query := `
		SELECT id, course_id, file_name, size, uploaded_by, uploaded_at
		FROM materials
		WHERE course_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var material models.Material
		if err := rows.Scan(
			&material.ID,
			&material.CourseID,
			&material.FileName,
			&material.Size,
			&material.UploadedBy,
			&material.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, material)
	}

	return materials, rows.Err()
}
