package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("conexión rechazada")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "unauthorized", err: Unauthorized("Clave de acceso incorrecta"), want: KindUnauthorized},
		{name: "not found", err: NotFound("Quiz no encontrado"), want: KindNotFound},
		{name: "server", err: Server("Error interno", cause), want: KindServerError},
		{name: "connection", err: Connection("Error de conexión", cause), want: KindConnection},
		{name: "wrapped classified error", err: fmt.Errorf("guardando sesión: %w", Connection("Error de conexión", cause)), want: KindConnection},
		{name: "unclassified counts as server error", err: cause, want: KindServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unauthorized", err: Unauthorized("sin acceso"), want: fasthttp.StatusUnauthorized},
		{name: "not found", err: NotFound("no existe"), want: fasthttp.StatusNotFound},
		{name: "connection", err: Connection("redis caído", nil), want: fasthttp.StatusServiceUnavailable},
		{name: "server", err: Server("pánico controlado", nil), want: fasthttp.StatusInternalServerError},
		{name: "unclassified", err: errors.New("algo raro"), want: fasthttp.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestUserMessageNeverExposesInternals(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:6379: connect: connection refused")
	err := Connection("Error de conexión. Intenta de nuevo.", cause)

	assert.Equal(t, "Error de conexión. Intenta de nuevo.", UserMessage(err))
	assert.Equal(t, "Error interno del servidor", UserMessage(cause))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("no rows in result set")
	err := New(KindNotFound, "Pregunta no encontrada", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "not_found")
	assert.Contains(t, err.Error(), "Pregunta no encontrada")
}
