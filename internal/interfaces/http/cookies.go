package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/assettrack-console/internal/application/session"
)

// Cookies de la consola.
const (
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"
	CookieSessionID    = "console_sid"
)

// CookieConfig vencimiento y atributos de las cookies de sesión.
type CookieConfig struct {
	Expiry time.Duration
	Secure bool
}

func (cfg CookieConfig) set(c *fiber.Ctx, name, value string) {
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(expiry),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// setSessionCookies guarda los tokens con vencimiento fijo y el id del workspace.
func setSessionCookies(c *fiber.Ctx, cfg CookieConfig, s *session.Session, workspaceID string) {
	cfg.set(c, CookieAccessToken, s.AccessToken)
	if s.RefreshToken != "" {
		cfg.set(c, CookieRefreshToken, s.RefreshToken)
	}
	cfg.set(c, CookieSessionID, workspaceID)
}

func clearSessionCookies(c *fiber.Ctx) {
	for _, name := range []string{CookieAccessToken, CookieRefreshToken, CookieSessionID} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteStrictMode,
		})
	}
}

func isHTMX(c *fiber.Ctx) bool { return c.Get("HX-Request") == "true" }

// redirect responde con HX-Redirect a htmx y con 303 al resto.
func redirect(c *fiber.Ctx, to string) error {
	if isHTMX(c) {
		c.Set("HX-Redirect", to)
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}
