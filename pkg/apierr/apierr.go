package apierr

import (
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"
)

// Kind clasifica los errores que llegan al borde HTTP.
// Toda falla se recupera mostrando un mensaje y permitiendo reintentar;
// ninguna es fatal para el proceso y no hay reintento automático.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"     // sesión o clave de acceso inválida
	KindNotFound     Kind = "not_found"        // curso, quiz o pregunta inexistente
	KindServerError  Kind = "server_error"     // error interno o respuesta malformada
	KindConnection   Kind = "connection_error" // falla de transporte (Redis, Postgres)
)

// Error error clasificado con mensaje para el usuario
type Error struct {
	Kind    Kind
	Message string // mensaje visible para el usuario
	Err     error  // causa interna
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New crea un error clasificado
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

func Server(message string, err error) *Error {
	return New(KindServerError, message, err)
}

func Connection(message string, err error) *Error {
	return New(KindConnection, message, err)
}

// KindOf extrae la clase de un error; los no clasificados cuentan como error interno
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServerError
}

// UserMessage retorna el mensaje visible para el usuario
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Error interno del servidor"
}

// StatusCode mapea la clase de error al código HTTP correspondiente
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return fasthttp.StatusUnauthorized
	case KindNotFound:
		return fasthttp.StatusNotFound
	case KindConnection:
		return fasthttp.StatusServiceUnavailable
	default:
		return fasthttp.StatusInternalServerError
	}
}
