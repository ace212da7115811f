package http

import (
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler página de inicio de la consola y notificaciones.
type DashboardHandler struct {
	base
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(b base) *DashboardHandler {
	return &DashboardHandler{base: b}
}

// Dashboard GET /dashboard: accesos a las entidades visibles para el rol y datos del perfil.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	if w == nil {
		return redirect(c, "/")
	}
	return page(c, w, "dashboard", fiber.Map{
		"Title":   "Dashboard",
		"Profile": w.Session.Profile,
	})
}

// Notification GET /dashboard/notification: fragmento con el mensaje visible (sondeo de htmx).
func (h *DashboardHandler) Notification(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	if w == nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	data := fiber.Map{}
	if n, ok := w.Notifications.Current(); ok {
		data["Notification"] = n
	}
	return c.Render("partials/notification", data)
}

// DismissNotification POST /dashboard/notification/dismiss: cierra el mensaje antes de su vencimiento.
func (h *DashboardHandler) DismissNotification(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	if w == nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	w.Notifications.Hide()
	if isHTMX(c) {
		return c.Render("partials/notification", fiber.Map{})
	}
	back := c.Get(fiber.HeaderReferer)
	if back == "" {
		back = "/dashboard"
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}
