package ports

import (
	"context"
	"net/http"
	"net/url"
)

// Request describe una llamada al backend: el path es relativo a la URL base del gateway.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any    // se serializa a JSON si no es nil
	Accept string // vacío = application/json
}

// Response respuesta cruda del backend (solo 2xx; los demás códigos llegan como error).
type Response struct {
	Status      int
	ContentType string
	Header      http.Header
	Body        []byte
}

// Gateway es el puerto de salida hacia la API REST externa. Toda llamada de los servicios pasa por aquí.
// Los fallos se propagan sin reintentos.
type Gateway interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// Credentials par de tokens de la sesión que se reenvía al backend.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

type credentialsKey struct{}

// WithCredentials adjunta los tokens de la sesión al contexto de la llamada.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

// CredentialsFrom recupera los tokens adjuntos con WithCredentials.
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(credentialsKey{}).(Credentials)
	return c, ok && c.AccessToken != ""
}
