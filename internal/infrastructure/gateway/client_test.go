package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/internal/application/ports"
	"github.com/jhoicas/assettrack-console/internal/domain"
	"github.com/jhoicas/assettrack-console/internal/infrastructure/gateway"
)

func newClient(t *testing.T, h http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return gateway.New(gateway.Config{BaseURL: srv.URL + "/api/", Timeout: 2 * time.Second}, nil)
}

func TestDo_CabecerasYCredenciales(t *testing.T) {
	var got *http.Request
	var body map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7}`))
	})

	ctx := ports.WithCredentials(context.Background(), ports.Credentials{AccessToken: "acc", RefreshToken: "ref"})
	resp, err := c.Do(ctx, ports.Request{
		Method: http.MethodPost,
		Path:   "/stacks/create",
		Query:  url.Values{"x": {"1"}},
		Body:   map[string]any{"warehouse": "WH1"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"id":7}`, string(resp.Body))
	assert.Equal(t, "/api/stacks/create", got.URL.Path)
	assert.Equal(t, "1", got.URL.Query().Get("x"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer acc", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
	access, err := got.Cookie(gateway.CookieAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "acc", access.Value)
	refresh, err := got.Cookie(gateway.CookieRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "ref", refresh.Value)
	assert.Equal(t, "WH1", body["warehouse"])
}

func TestDo_SinCredencialesNoEnviaAuthorization(t *testing.T) {
	var auth string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	_, err := c.Do(context.Background(), ports.Request{Path: "health"})
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestDo_ErrorDelBackendConMensaje(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"DUPLICATE","message":"Zone A already exists in WH1"}`))
	})

	_, err := c.Do(context.Background(), ports.Request{Method: http.MethodPost, Path: "/stacks/create"})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "DUPLICATE", apiErr.Code)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Zone A already exists in WH1", domain.UserMessage(err, domain.GenericFailureMessage))
}

func TestDo_FormasDeErrorAlternativas(t *testing.T) {
	cases := map[string]string{
		`{"error":"Invalid username or password"}`:    "Invalid username or password",
		`{"detail":"Pallet not found"}`:               "Pallet not found",
		`{"error":{"message":"Stack is full"}}`:       "Stack is full",
		`<html>bad gateway</html>`:                    "",
	}
	for raw, want := range cases {
		raw, want := raw, want
		t.Run(want, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(raw))
			})
			_, err := c.Do(context.Background(), ports.Request{Path: "/x"})
			var apiErr *gateway.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, want, apiErr.Message)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDo_401SeTraduceAErrUnauthorized(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := c.Do(context.Background(), ports.Request{Path: "/users/1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, domain.GenericFailureMessage, domain.UserMessage(err, domain.GenericFailureMessage))
}

func TestDo_AcceptPersonalizadoParaCSV(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,name\n1,Drills\n"))
	})

	resp, err := c.Do(context.Background(), ports.Request{Path: "/sub-categories/export", Accept: "text/csv"})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", resp.ContentType)
	assert.Equal(t, "id,name\n1,Drills\n", string(resp.Body))
}

func TestDo_RespuestaQueSuperaElLimite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(strings.Repeat("x", 65)))
	}))
	t.Cleanup(srv.Close)

	atLimit := gateway.New(gateway.Config{BaseURL: srv.URL, MaxBodyBytes: 65}, nil)
	resp, err := atLimit.Do(context.Background(), ports.Request{Path: "/sub-categories/export"})
	require.NoError(t, err)
	assert.Len(t, resp.Body, 65)

	tooSmall := gateway.New(gateway.Config{BaseURL: srv.URL, MaxBodyBytes: 64}, nil)
	_, err = tooSmall.Do(context.Background(), ports.Request{Path: "/sub-categories/export"})
	assert.ErrorIs(t, err, gateway.ErrBodyTooLarge)
}

func TestDo_BackendCaidoPropagaError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := gateway.New(gateway.Config{BaseURL: base}, nil)
	_, err := c.Do(context.Background(), ports.Request{Path: "/stacks/search"})
	require.Error(t, err)
	assert.Equal(t, domain.GenericFailureMessage, domain.UserMessage(err, domain.GenericFailureMessage))
}
