package handlers

import (
	"fmt"
	"io"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/services"
)

// maxMaterialSize tamaño máximo de un material subido (25 MB)
const maxMaterialSize = 25 << 20

// MaterialHandler maneja la subida y descarga de materiales de curso
type MaterialHandler struct {
	materialService *services.MaterialService
	logger          *zap.Logger
}

// NewMaterialHandler crea una nueva instancia del handler de materiales
func NewMaterialHandler(materialService *services.MaterialService, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
		logger:          logger,
	}
}

// Upload maneja POST /api/courses/{id}/materials (multipart, campo "file")
func (h *MaterialHandler) Upload(ctx *fasthttp.RequestCtx) {
	courseID := ctx.UserValue("id").(string)
	uploadedBy := string(ctx.FormValue("userId"))

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, "Falta el archivo en el campo 'file'")
		return
	}
	if fileHeader.Size > maxMaterialSize {
		respondWithError(ctx, fasthttp.StatusBadRequest, "El archivo supera el tamaño máximo permitido")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, "No se pudo leer el archivo")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, "No se pudo leer el archivo")
		return
	}

	material, err := h.materialService.Upload(ctx, courseID, uploadedBy, fileHeader.Filename, content)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, material, "Material subido exitosamente")
}

// ListByCourse maneja GET /api/courses/{id}/materials
func (h *MaterialHandler) ListByCourse(ctx *fasthttp.RequestCtx) {
	courseID := ctx.UserValue("id").(string)

	materials, err := h.materialService.ListByCourse(ctx, courseID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, map[string]interface{}{
		"materials": materials,
		"count":     len(materials),
	}, "Materiales obtenidos exitosamente")
}

// Download maneja GET /api/materials/{id}/download
func (h *MaterialHandler) Download(ctx *fasthttp.RequestCtx) {
	materialID := ctx.UserValue("id").(string)

	material, err := h.materialService.Get(ctx, materialID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	ctx.Response.Header.Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", material.FileName))
	fasthttp.ServeFile(ctx, h.materialService.FilePath(material.ID))
}
