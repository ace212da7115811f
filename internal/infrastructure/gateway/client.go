package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/assettrack-console/internal/application/ports"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa ports.Gateway.
var _ ports.Gateway = (*Client)(nil)

// ErrBodyTooLarge la respuesta supera el límite configurado; no se entrega incompleta.
var ErrBodyTooLarge = errors.New("gateway: respuesta demasiado grande")

const (
	// DefaultMaxBodyBytes límite de lectura de respuestas (los CSV de exportación son los más grandes).
	DefaultMaxBodyBytes = 16 << 20

	headerRequestID = "X-Request-ID"

	// Nombres de cookie con los que el backend espera los tokens.
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"
)

// Config parámetros del cliente.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64 // 0 = DefaultMaxBodyBytes
}

// Client es el único cliente HTTP configurado hacia el backend: URL base, cabeceras JSON y credenciales.
// No reintenta ni aplica circuit breaking; cada fallo se devuelve tal cual al llamador.
type Client struct {
	baseURL    string
	maxBody    int64
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el cliente. Si Timeout es cero se usan 15 s.
func New(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxBody:    maxBody,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("gateway"),
	}
}

// SetHTTPClient reemplaza el http.Client (tests, transporte propio).
func (c *Client) SetHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string { return c.baseURL }

// Do ejecuta la petición. Las respuestas 2xx se devuelven crudas; el resto se convierte en *APIError.
func (c *Client) Do(ctx context.Context, in ports.Request) (*ports.Response, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("gateway: base url no configurada")
	}
	method := in.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if in.Body != nil {
		raw, err := json.Marshal(in.Body)
		if err != nil {
			return nil, fmt.Errorf("gateway: serializar body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + "/" + strings.TrimLeft(in.Path, "/")
	if len(in.Query) > 0 {
		target += "?" + in.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("gateway: crear request: %w", err)
	}

	accept := in.Accept
	if accept == "" {
		accept = "application/json"
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", accept)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, requestID)

	if creds, ok := ports.CredentialsFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
		req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: creds.AccessToken})
		if creds.RefreshToken != "" {
			req.AddCookie(&http.Cookie{Name: CookieRefreshToken, Value: creds.RefreshToken})
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("gateway: %s %s: timeout o cancelación: %w", method, in.Path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", in.Path).Str("request_id", requestID).Msg("backend inalcanzable")
		return nil, fmt.Errorf("gateway: %s %s: %w", method, in.Path, err)
	}
	defer resp.Body.Close()

	// Se lee un byte de más para distinguir "justo en el límite" de "truncado".
	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("gateway: leer respuesta: %w", err)
	}
	if int64(len(raw)) > c.maxBody {
		c.log.Warn().Str("method", method).Str("path", in.Path).Int64("limit", c.maxBody).Str("request_id", requestID).Msg("respuesta del backend supera el límite")
		return nil, fmt.Errorf("%w: %s %s supera %d bytes", ErrBodyTooLarge, method, in.Path, c.maxBody)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", in.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(started)).
		Str("request_id", requestID).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		apiErr.RequestID = requestID
		c.log.Warn().Int("status", resp.StatusCode).Str("path", in.Path).Str("message", apiErr.Message).Msg("backend rechazó la petición")
		return nil, apiErr
	}

	return &ports.Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Header:      resp.Header,
		Body:        raw,
	}, nil
}
