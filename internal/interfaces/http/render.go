package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/assettrack-console/internal/application/console/workspace"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/domain"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

const layoutMain = "layouts/main"

// page renderiza view dentro del layout con los datos comunes de la sesión.
func page(c *fiber.Ctx, w *workspace.Workspace, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["AppName"] = c.App().Config().AppName
	if w != nil {
		data["Session"] = w.Session
		data["Menu"] = w.Menu()
		if n, ok := w.Notifications.Current(); ok {
			data["Notification"] = n
		}
	}
	return c.Render(view, data, layoutMain)
}

func renderForbidden(c *fiber.Ctx, w *workspace.Workspace) error {
	c.Status(fiber.StatusForbidden)
	return page(c, w, "forbidden", fiber.Map{"Title": "Forbidden"})
}

func renderError(c *fiber.Ctx, w *workspace.Workspace, status int, message string) error {
	c.Status(status)
	return page(c, w, "error", fiber.Map{"Title": "Error", "Status": status, "Message": message})
}

// base comparte el manejo de errores de los handlers de la consola.
type base struct {
	registry *workspace.Registry
	log      *logger.Logger
}

// fail traduce errores de dominio a respuestas: 401 cierra la sesión, 403 y 404 tienen su página.
func (b base) fail(c *fiber.Ctx, w *workspace.Workspace, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		if w != nil {
			b.registry.Discard(w.ID)
		}
		clearSessionCookies(c)
		return redirect(c, "/")
	case errors.Is(err, domain.ErrForbidden):
		return renderForbidden(c, w)
	case errors.Is(err, domain.ErrUnknownResource), errors.Is(err, domain.ErrNotFound):
		return renderError(c, w, fiber.StatusNotFound, "The requested page does not exist.")
	case errors.Is(err, domain.ErrBusy):
		return renderError(c, w, fiber.StatusConflict, "Another operation is still in progress.")
	default:
		b.log.Error().Err(err).Str("path", c.Path()).Msg("error atendiendo la petición")
		return renderError(c, w, fiber.StatusBadGateway, domain.UserMessage(err, domain.GenericFailureMessage))
	}
}

// ErrorHandler último recurso de Fiber: página de error en HTML o JSON si se pidió JSON.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
			return c.Status(code).JSON(dto.ErrorResponse{Code: "ERROR", Message: err.Error()})
		}
		message := domain.GenericFailureMessage
		if code == fiber.StatusNotFound {
			message = "The requested page does not exist."
		}
		return renderError(c, GetWorkspace(c), code, message)
	}
}

func errorsIsAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
