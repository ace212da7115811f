package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/assettrack-console/internal/application/console/resource"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/report"
)

// ExportHandler descargas: CSV de subcategorías y PDF de inspección de assets.
type ExportHandler struct {
	base
	uc *report.ReportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ReportUseCase, b base) *ExportHandler {
	return &ExportHandler{base: b, uc: uc}
}

// SubCategoriesCSV GET /dashboard/sub-categories/export
func (h *ExportHandler) SubCategoriesCSV(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	if w == nil {
		return redirect(c, "/")
	}
	f, err := h.uc.SubCategoriesCSV(w.Context(c.UserContext()))
	if err != nil {
		w.Notifications.Show("Could not export sub-categories.", notify.Error)
		return h.fail(c, w, err)
	}
	return sendAttachment(c, f)
}

// AssetReport GET /dashboard/assets/report: PDF de la página de assets que se está viendo.
func (h *ExportHandler) AssetReport(c *fiber.Ctx) error {
	w := GetWorkspace(c)
	if w == nil {
		return redirect(c, "/")
	}
	rh, err := w.Handle(resource.KindAssets)
	if err != nil {
		return h.fail(c, w, err)
	}
	f, err := h.uc.AssetReport(w.Context(c.UserContext()), rh.Query())
	if err != nil {
		w.Notifications.Show("Could not generate the asset report.", notify.Error)
		return h.fail(c, w, err)
	}
	return sendAttachment(c, f)
}

func sendAttachment(c *fiber.Ctx, f *report.File) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", f.Name))
	return c.Send(f.Data)
}
