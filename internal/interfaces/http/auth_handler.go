package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/assettrack-console/internal/application/auth"
	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/workspace"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

const invalidCredentials = "Invalid username or password."

// AuthHandler maneja inicio de sesión, alta de cuenta y cierre de sesión.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	registry  *workspace.Registry
	validator *form.Validator
	cookies   CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, registry *workspace.Registry, validator *form.Validator, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, registry: registry, validator: validator, cookies: cookies}
}

// SignInPage GET /. Con una cookie de acceso válida va directo al dashboard.
func (h *AuthHandler) SignInPage(c *fiber.Ctx) error {
	if tok := c.Cookies(CookieAccessToken); tok != "" {
		if _, err := h.uc.Restore(tok, ""); err == nil {
			return redirect(c, "/dashboard")
		}
	}
	data := fiber.Map{"Title": "Sign in"}
	if c.Query("created") == "1" {
		data["Info"] = "Account created. You can sign in now."
	}
	return page(c, nil, "signin", data)
}

// SignIn POST /.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		c.Status(fiber.StatusBadRequest)
		return page(c, nil, "signin", fiber.Map{"Title": "Sign in", "Error": "Invalid form submission."})
	}
	if errs := h.validator.Validate(in); errs != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		return page(c, nil, "signin", fiber.Map{"Title": "Sign in", "Errors": errs, "Username": in.Username})
	}

	s, err := h.uc.SignIn(c.UserContext(), in)
	if err != nil {
		status := fiber.StatusUnauthorized
		msg := domain.UserMessage(err, invalidCredentials)
		if !isAuthFailure(err) {
			status = fiber.StatusBadGateway
			msg = domain.UserMessage(err, domain.GenericFailureMessage)
		}
		c.Status(status)
		return page(c, nil, "signin", fiber.Map{"Title": "Sign in", "Error": msg, "Username": in.Username})
	}

	w := h.registry.Open(s)
	setSessionCookies(c, h.cookies, s, w.ID)
	w.Notifications.Show("Welcome, "+s.DisplayName(), notify.Success)
	return redirect(c, "/dashboard")
}

// SignUpPage GET /create-account.
func (h *AuthHandler) SignUpPage(c *fiber.Ctx) error {
	return page(c, nil, "signup", fiber.Map{"Title": "Create account", "Values": dto.SignUpRequest{}})
}

// SignUp POST /create-account. La contraseña la elige la persona; la consola nunca la genera.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		c.Status(fiber.StatusBadRequest)
		return page(c, nil, "signup", fiber.Map{"Title": "Create account", "Error": "Invalid form submission.", "Values": in})
	}
	if errs := h.validator.Validate(in); errs != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		return page(c, nil, "signup", fiber.Map{"Title": "Create account", "Errors": errs, "Values": in})
	}
	if err := h.uc.SignUp(c.UserContext(), in); err != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		return page(c, nil, "signup", fiber.Map{
			"Title":  "Create account",
			"Error":  domain.UserMessage(err, domain.GenericFailureMessage),
			"Values": in,
		})
	}
	return redirect(c, "/?created=1")
}

// Logout GET /logout: descarta el workspace y las cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.registry.Discard(c.Cookies(CookieSessionID))
	clearSessionCookies(c)
	return redirect(c, "/")
}

func isAuthFailure(err error) bool {
	return errorsIsAny(err, domain.ErrUnauthorized, domain.ErrForbidden, domain.ErrInvalidInput, domain.ErrNotFound)
}
