package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/assettrack-console/internal/domain"
)

// APIError error estructurado devuelto por el backend para una respuesta no 2xx.
type APIError struct {
	Status    int
	Code      string
	Message   string // mensaje del backend; vacío si no envió ninguno
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, http.StatusText(e.Status))
}

// UserMessage mensaje del backend apto para mostrar en la notificación.
func (e *APIError) UserMessage() string { return e.Message }

// Unwrap traduce el código HTTP a un error de dominio para usar con errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return nil
	}
}

// errorBody cubre las formas de error que usa el backend: {message}, {error}, {detail},
// y las mismas anidadas en {data:{...}} o {error:{message}}.
type errorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
	Error   json.RawMessage `json:"error"`
}

func newAPIError(status int, raw []byte) *APIError {
	e := &APIError{Status: status}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return e
	}
	e.Code = body.Code
	switch {
	case strings.TrimSpace(body.Message) != "":
		e.Message = strings.TrimSpace(body.Message)
	case strings.TrimSpace(body.Detail) != "":
		e.Message = strings.TrimSpace(body.Detail)
	case len(body.Error) > 0:
		var s string
		if json.Unmarshal(body.Error, &s) == nil {
			e.Message = strings.TrimSpace(s)
			break
		}
		var nested errorBody
		if json.Unmarshal(body.Error, &nested) == nil {
			e.Message = strings.TrimSpace(nested.Message)
			if e.Code == "" {
				e.Code = nested.Code
			}
		}
	}
	return e
}
