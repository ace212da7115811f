// Package remove implementa la confirmación de borrado: un registro seleccionado,
// un diálogo con el aviso y una sola petición de borrado en curso.
package remove

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/status"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

// DeleteFunc borra el registro id en el backend.
type DeleteFunc func(ctx context.Context, id string) error

// Publisher invalida los listados del tipo indicado.
type Publisher interface {
	Publish(kind string) uint64
}

// Notifier canal de notificaciones.
type Notifier interface {
	Show(message string, severity notify.Severity) notify.Notification
}

// Options dependencias y textos del controlador.
type Options struct {
	Kind     string
	Noun     string // en minúscula dentro del aviso (ej. "pallet")
	Bus      Publisher
	Notifier Notifier
}

// View estado del diálogo.
type View struct {
	Open    bool
	ID      string
	Label   string
	Prompt  string
	Pending bool
}

// Controller mantiene el registro seleccionado para borrar.
type Controller struct {
	mu      sync.Mutex
	del     DeleteFunc
	opts    Options
	tracker status.Tracker

	id    string
	label string
}

// New construye el controlador.
func New(del DeleteFunc, opts Options) *Controller {
	return &Controller{del: del, opts: opts}
}

// Target selecciona el registro y abre el diálogo. label es el identificador visible (código o nombre).
// domain.ErrBusy si hay un borrado en curso: la selección no cambia hasta que termine.
func (c *Controller) Target(id, label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tracker.Pending() {
		return domain.ErrBusy
	}
	if label == "" {
		label = id
	}
	c.id, c.label = id, label
	c.tracker.Reset()
	return nil
}

// Prompt texto de confirmación del registro seleccionado.
func (c *Controller) Prompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.promptLocked()
}

// Confirm borra el registro seleccionado. Devuelve true si el backend lo aceptó.
func (c *Controller) Confirm(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.id == "" {
		c.mu.Unlock()
		return false, domain.ErrNoSelection
	}
	if err := c.tracker.Begin(); err != nil {
		c.mu.Unlock()
		return false, err
	}
	id, label := c.id, c.label
	c.mu.Unlock()

	if err := c.del(ctx, id); err != nil {
		c.tracker.Fail(err)
		c.show(domain.UserMessage(err, domain.GenericFailureMessage), notify.Error)
		return false, err
	}

	c.tracker.Succeed()
	c.mu.Lock()
	if c.id == id {
		c.id, c.label = "", ""
	}
	c.mu.Unlock()
	if c.opts.Bus != nil {
		c.opts.Bus.Publish(c.opts.Kind)
	}
	c.show(fmt.Sprintf("%s %s deleted successfully", label, c.opts.Noun), notify.Success)
	return true, nil
}

// Cancel cierra el diálogo sin borrar.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tracker.Pending() {
		return
	}
	c.id, c.label = "", ""
	c.tracker.Reset()
}

// View devuelve el estado del diálogo.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Open:    c.id != "",
		ID:      c.id,
		Label:   c.label,
		Prompt:  c.promptLocked(),
		Pending: c.tracker.Pending(),
	}
}

// State fase del último borrado.
func (c *Controller) State() status.Status { return c.tracker.State() }

func (c *Controller) promptLocked() string {
	if c.id == "" {
		return ""
	}
	return fmt.Sprintf("%s %s will be deleted. This action cannot be undone.", c.label, c.opts.Noun)
}

func (c *Controller) show(msg string, sev notify.Severity) {
	if c.opts.Notifier != nil {
		c.opts.Notifier.Show(msg, sev)
	}
}
