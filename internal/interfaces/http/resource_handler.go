package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/assettrack-console/internal/application/console/resource"
	"github.com/jhoicas/assettrack-console/internal/application/console/workspace"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/domain"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

// ResourceHandler páginas de listado, formulario y borrado de cualquier entidad del catálogo.
type ResourceHandler struct {
	base
	catalog *resource.Catalog
}

// NewResourceHandler construye el handler.
func NewResourceHandler(catalog *resource.Catalog, registry *workspace.Registry, b base) *ResourceHandler {
	b.registry = registry
	return &ResourceHandler{base: b, catalog: catalog}
}

// RequireResourceRole aplica RequireRole(ADMIN) a las entidades solo para administradores.
func (h *ResourceHandler) RequireResourceRole() fiber.Handler {
	admin := RequireRole(entity.RoleAdmin)
	return func(c *fiber.Ctx) error {
		b, err := h.catalog.Lookup(c.Params("resource"))
		if err != nil {
			return h.fail(c, GetWorkspace(c), err)
		}
		if b.Describe().AdminOnly {
			return admin(c)
		}
		return c.Next()
	}
}

// List GET /dashboard/:resource?page=&size=&q=&status=&from=&to=
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		q = rh.Query()
	}
	rh.CloseForm()
	rh.CancelDelete()
	return h.renderList(c, w, rh, q, nil, nil, fiber.StatusOK)
}

// Search POST /dashboard/:resource/search: búsqueda en vivo. 204 si una pulsación posterior la superó.
func (h *ResourceHandler) Search(c *fiber.Ctx) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	settled, view, err := rh.Search(w.Context(c.UserContext()), c.FormValue("q"))
	if err != nil && errors.Is(err, domain.ErrUnauthorized) {
		return h.fail(c, w, err)
	}
	if !settled && err == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Render("partials/table", fiber.Map{"Table": view})
}

// New GET /dashboard/:resource/new
func (h *ResourceHandler) New(c *fiber.Ctx) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	fv, err := rh.OpenCreate(w.Context(c.UserContext()))
	if err != nil {
		return h.fail(c, w, err)
	}
	return h.renderList(c, w, rh, rh.Query(), &fv, nil, fiber.StatusOK)
}

// Edit GET /dashboard/:resource/:id/edit
func (h *ResourceHandler) Edit(c *fiber.Ctx) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	fv, err := rh.OpenEdit(w.Context(c.UserContext()), c.Params("id"))
	if err != nil {
		return h.fail(c, w, err)
	}
	return h.renderList(c, w, rh, rh.Query(), &fv, nil, fiber.StatusOK)
}

// Create POST /dashboard/:resource
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	return h.submit(c, "")
}

// Update POST /dashboard/:resource/:id
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	return h.submit(c, c.Params("id"))
}

func (h *ResourceHandler) submit(c *fiber.Ctx, id string) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	ok, fv, err := rh.Submit(w.Context(c.UserContext()), id, formValues(c))
	if ok {
		return redirect(c, listURL(rh))
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		return h.renderList(c, w, rh, rh.Query(), &fv, nil, fiber.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrBusy):
		return h.fail(c, w, err)
	}
	// Fallo del backend: el modal sigue abierto y el mensaje va al canal de notificaciones.
	return h.renderList(c, w, rh, rh.Query(), &fv, nil, fiber.StatusUnprocessableEntity)
}

// DeleteDialog GET /dashboard/:resource/:id/delete
func (h *ResourceHandler) DeleteDialog(c *fiber.Ctx) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	dv, err := rh.ConfirmDelete(w.Context(c.UserContext()), c.Params("id"))
	if err != nil {
		return h.fail(c, w, err)
	}
	return h.renderList(c, w, rh, rh.Query(), nil, &dv, fiber.StatusOK)
}

// Delete POST /dashboard/:resource/:id/delete
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	ok, dv, err := rh.Delete(w.Context(c.UserContext()), c.Params("id"))
	if ok {
		return redirect(c, listURL(rh))
	}
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrBusy) || errors.Is(err, domain.ErrNoSelection) {
		return h.fail(c, w, err)
	}
	return h.renderList(c, w, rh, rh.Query(), nil, &dv, fiber.StatusUnprocessableEntity)
}

// Cancel POST /dashboard/:resource/cancel: cierra el modal y el diálogo abiertos.
func (h *ResourceHandler) Cancel(c *fiber.Ctx) error {
	w, rh, err := h.resolve(c)
	if err != nil {
		return h.fail(c, w, err)
	}
	rh.CloseForm()
	rh.CancelDelete()
	return redirect(c, listURL(rh))
}

func (h *ResourceHandler) resolve(c *fiber.Ctx) (*workspace.Workspace, resource.Handle, error) {
	w := GetWorkspace(c)
	if w == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	rh, err := w.Handle(c.Params("resource"))
	if err != nil {
		return w, nil, err
	}
	return w, rh, nil
}

// renderList pinta la tabla y, si corresponde, el modal o el diálogo encima.
// Un fallo de carga no impide pintar: la tabla conserva las filas previas y muestra el error.
func (h *ResourceHandler) renderList(c *fiber.Ctx, w *workspace.Workspace, rh resource.Handle, q dto.ListQuery,
	fv *resource.FormView, dv *resource.DialogView, status int) error {
	table, err := rh.Table(w.Context(c.UserContext()), q)
	if err != nil && errors.Is(err, domain.ErrUnauthorized) {
		return h.fail(c, w, err)
	}
	data := fiber.Map{
		"Title": rh.Meta().Title,
		"Meta":  rh.Meta(),
		"Table": table,
	}
	if fv != nil && fv.Open {
		data["Form"] = fv
	}
	if dv != nil && dv.Open {
		data["Dialog"] = dv
	}
	c.Status(status)
	return page(c, w, "list", data)
}

// formValues lee el cuerpo urlencoded o multipart conservando los valores repetidos (selección múltiple).
func formValues(c *fiber.Ctx) url.Values {
	vals := url.Values{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		vals.Add(string(k), string(v))
	})
	if len(vals) > 0 {
		return vals
	}
	if mf, err := c.MultipartForm(); err == nil {
		for k, vs := range mf.Value {
			vals[k] = append([]string(nil), vs...)
		}
	}
	return vals
}

// listURL vuelve al listado conservando página, búsqueda y filtros actuales.
func listURL(rh resource.Handle) string {
	q := rh.Query()
	return resource.TableView{Meta: rh.Meta(), Query: q}.PageURL(q.Page)
}
