package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/apierr"
	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/services"
)

var validate = validator.New()

// decodeAndValidate deserializa el cuerpo del request y valida el DTO.
// Todo el manejo de cuerpos malformados queda aislado acá.
func decodeAndValidate(ctx *fasthttp.RequestCtx, dest interface{}) error {
	if err := json.Unmarshal(ctx.PostBody(), dest); err != nil {
		return fmt.Errorf("JSON inválido: %w", err)
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			field := validationErrs[0]
			return fmt.Errorf("campo %q inválido (regla %s)", field.Field(), field.Tag())
		}
		return err
	}

	return nil
}

// respondWithJSON envía una respuesta JSON
func respondWithJSON(ctx *fasthttp.RequestCtx, statusCode int, response interface{}) {
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.SetStatusCode(statusCode)

	jsonData, err := json.Marshal(response)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"success": false, "error": "Error al serializar respuesta"}`)
		return
	}

	ctx.SetBody(jsonData)
}

// respondWithError envía una respuesta de error
func respondWithError(ctx *fasthttp.RequestCtx, statusCode int, message string) {
	response := models.APIResponse{
		Success: false,
		Error:   message,
	}
	respondWithJSON(ctx, statusCode, response)
}

// respondWithSuccess envía una respuesta exitosa
func respondWithSuccess(ctx *fasthttp.RequestCtx, data interface{}, message string) {
	response := models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
	respondWithJSON(ctx, fasthttp.StatusOK, response)
}

// errores de uso de la API que se responden como 400
var badRequestErrs = []error{
	services.ErrSessionReadOnly,
	services.ErrSessionCompleted,
	services.ErrToggleNotAllowed,
	services.ErrInvalidQuestion,
}

// respondWithServiceError mapea un error de servicio a su código HTTP y
// mensaje visible. Los errores internos se registran; al usuario sólo le
// llega el mensaje clasificado.
func respondWithServiceError(ctx *fasthttp.RequestCtx, logger *zap.Logger, err error) {
	for _, badRequest := range badRequestErrs {
		if errors.Is(err, badRequest) {
			respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
	}

	kind := apierr.KindOf(err)
	if kind == apierr.KindServerError || kind == apierr.KindConnection {
		logger.Error("error atendiendo request",
			zap.String("path", string(ctx.Path())),
			zap.Error(err),
		)
	}

	respondWithError(ctx, apierr.StatusCode(err), apierr.UserMessage(err))
}
