package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/internal/application/auth"
	"github.com/jhoicas/assettrack-console/internal/application/console/resource"
	"github.com/jhoicas/assettrack-console/internal/application/console/workspace"
	"github.com/jhoicas/assettrack-console/internal/application/service"
	apphttp "github.com/jhoicas/assettrack-console/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/assettrack-console/pkg/jwt"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "7"
	testIssuer    = "assettrack-test"
)

// buildTestApp construye una aplicación mínima con AuthMiddleware, RequireRole y un handler
// que devuelve el rol si pasa los middlewares.
func buildTestApp(t *testing.T, allowedRoles ...string) (*fiber.App, *workspace.Registry) {
	t.Helper()
	registry := workspace.NewRegistry(resource.NewCatalog(service.NewServices(nil)), workspace.Options{}, logger.Nop())
	restorer := auth.NewAuthUseCase(nil, nil, logger.Nop())

	app := apphttp.NewApp("test", logger.Nop())
	app.Get("/protected",
		apphttp.AuthMiddleware(restorer, registry, apphttp.CookieConfig{Expiry: time.Hour}, logger.Nop()),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	return app, registry
}

func makeToken(t *testing.T, role string, exp time.Duration) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "jdoe", role, testIssuer, exp)
	require.NoError(t, err)
	return tok
}

func doProtected(t *testing.T, app *fiber.App, cookies map[string]string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range cookies {
		req.AddCookie(&http.Cookie{Name: k, Value: v})
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SinCookie_RedirigeAlInicio(t *testing.T) {
	app, _ := buildTestApp(t, "ADMIN")

	resp := doProtected(t, app, nil, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestAuthMiddleware_SinCookie_HTMX(t *testing.T) {
	app, _ := buildTestApp(t, "ADMIN")

	resp := doProtected(t, app, nil, map[string]string{"HX-Request": "true"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("HX-Redirect"))
}

func TestAuthMiddleware_TokenValido_AbreWorkspace(t *testing.T) {
	app, registry := buildTestApp(t, "ADMIN", "OPERATOR")

	resp := doProtected(t, app, map[string]string{apphttp.CookieAccessToken: makeToken(t, "OPERATOR", time.Hour)}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, registry.Len())

	var sid *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.CookieSessionID {
			sid = c
		}
	}
	require.NotNil(t, sid, "se emite la cookie del workspace")
	assert.True(t, sid.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, sid.SameSite)
}

func TestAuthMiddleware_ReutilizaWorkspace(t *testing.T) {
	app, registry := buildTestApp(t, "OPERATOR")
	tok := makeToken(t, "OPERATOR", time.Hour)

	first := doProtected(t, app, map[string]string{apphttp.CookieAccessToken: tok}, nil)
	require.Equal(t, http.StatusOK, first.StatusCode)
	var sid string
	for _, c := range first.Cookies() {
		if c.Name == apphttp.CookieSessionID {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)

	second := doProtected(t, app, map[string]string{apphttp.CookieAccessToken: tok, apphttp.CookieSessionID: sid}, nil)
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, 1, registry.Len())
}

func TestAuthMiddleware_TokenVencido_LimpiaCookies(t *testing.T) {
	app, registry := buildTestApp(t, "ADMIN")

	resp := doProtected(t, app, map[string]string{apphttp.CookieAccessToken: makeToken(t, "ADMIN", -time.Minute)}, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Equal(t, 0, registry.Len())

	cleared := map[string]bool{}
	for _, c := range resp.Cookies() {
		if c.Value == "" {
			cleared[c.Name] = true
		}
	}
	assert.True(t, cleared[apphttp.CookieAccessToken])
	assert.True(t, cleared[apphttp.CookieSessionID])
}

func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	app, _ := buildTestApp(t, "ADMIN")

	resp := doProtected(t, app, map[string]string{apphttp.CookieAccessToken: "no.es.jwt"}, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestRequireRole_RolNoPermitido_403(t *testing.T) {
	app, _ := buildTestApp(t, "ADMIN")

	resp := doProtected(t, app, map[string]string{apphttp.CookieAccessToken: makeToken(t, "OPERATOR", time.Hour)}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_SinDistinguirMayusculas(t *testing.T) {
	app, _ := buildTestApp(t, "ADMIN")

	resp := doProtected(t, app, map[string]string{apphttp.CookieAccessToken: makeToken(t, "admin", time.Hour)}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
