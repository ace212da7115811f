package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/assettrack-console/internal/application/console/workspace"
	"github.com/jhoicas/assettrack-console/internal/application/session"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

// LocalWorkspace clave de Locals con el workspace de la petición.
const LocalWorkspace = "workspace"

// sessionRestorer reconstruye la sesión desde las cookies. Lo implementa *auth.AuthUseCase.
type sessionRestorer interface {
	Restore(accessToken, refreshToken string) (*session.Session, error)
}

// AuthMiddleware exige una cookie access_token válida; sin ella redirige a la página de inicio de sesión.
// Si el workspace de la cookie console_sid ya no existe (reinicio, inactividad) se abre uno nuevo.
func AuthMiddleware(restorer sessionRestorer, registry *workspace.Registry, cookies CookieConfig, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		access := strings.TrimSpace(c.Cookies(CookieAccessToken))
		if access == "" {
			return redirect(c, "/")
		}
		if w, ok := registry.Get(c.Cookies(CookieSessionID)); ok &&
			w.Session.AccessToken == access && !w.Session.Expired(time.Now()) {
			c.Locals(LocalWorkspace, w)
			return c.Next()
		}
		s, err := restorer.Restore(access, c.Cookies(CookieRefreshToken))
		if err != nil {
			log.Debug().Err(err).Msg("cookie de acceso rechazada")
			registry.Discard(c.Cookies(CookieSessionID))
			clearSessionCookies(c)
			return redirect(c, "/")
		}
		w := registry.Open(s)
		cookies.set(c, CookieSessionID, w.ID)
		c.Locals(LocalWorkspace, w)
		return c.Next()
	}
}

// GetWorkspace devuelve el workspace del contexto (después de AuthMiddleware).
func GetWorkspace(c *fiber.Ctx) *workspace.Workspace {
	w, _ := c.Locals(LocalWorkspace).(*workspace.Workspace)
	return w
}

// GetRole devuelve el rol de la sesión del contexto.
func GetRole(c *fiber.Ctx) string {
	if w := GetWorkspace(c); w != nil && w.Session != nil {
		return w.Session.Role
	}
	return ""
}

// RequireRole permite continuar solo si el rol de la sesión está en roles; si no, 403.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w := GetWorkspace(c)
		if w == nil {
			return redirect(c, "/")
		}
		if !w.Session.Can(roles...) {
			return renderForbidden(c, w)
		}
		return c.Next()
	}
}
