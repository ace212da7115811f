package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrValidation      = errors.New("el formulario tiene errores")
	ErrBusy            = errors.New("ya hay una operación en curso")
	ErrUnknownResource = errors.New("recurso desconocido")
	ErrNoSelection     = errors.New("no hay registro seleccionado")
)

// GenericFailureMessage es el texto que se muestra cuando el backend no envía un mensaje propio.
const GenericFailureMessage = "Something went wrong, please try again."

// UserMessenger lo implementan los errores que traen un mensaje apto para el usuario
// (por ejemplo, el mensaje estructurado del backend).
type UserMessenger interface {
	UserMessage() string
}

// UserMessage devuelve el mensaje del backend si el error lo trae; si no, fallback.
func UserMessage(err error, fallback string) string {
	var um UserMessenger
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
