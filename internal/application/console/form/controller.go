// Package form implementa el controlador de formularios de alta y edición: campos enlazados,
// errores por campo según el esquema declarativo y envío con una sola petición en curso.
package form

import (
	"context"
	"net/url"
	"sync"

	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/status"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

// Mode estado del modal.
type Mode int

const (
	Closed Mode = iota
	Creating
	Editing
)

// Codec traduce entre los valores del formulario HTML y la entrada tipada.
type Codec[In any] struct {
	Decode   func(r *Reader) In
	Encode   func(in In) url.Values
	Defaults func() In // valores iniciales del alta; nil = valor cero
}

// CreateFunc envía el alta al backend.
type CreateFunc[In any] func(ctx context.Context, in In) error

// UpdateFunc envía la edición del registro id al backend.
type UpdateFunc[In any] func(ctx context.Context, id string, in In) error

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
	Kind      string // clave de invalidación (ej. "stacks")
	Noun      string // sustantivo para mensajes (ej. "Stack")
	Bus       Publisher
	Notifier  Notifier
	Validator *Validator
}

// View copia del estado del formulario para renderizar.
type View struct {
	Mode     Mode
	RecordID string
	Values   url.Values
	Errors   map[string]string
	Pending  bool
}

// Open indica si el modal está abierto.
func (v View) Open() bool { return v.Mode != Closed }

// Controller mantiene los campos y errores de un formulario de alta/edición.
type Controller[In any] struct {
	mu      sync.Mutex
	codec   Codec[In]
	create  CreateFunc[In]
	update  UpdateFunc[In]
	opts    Options
	tracker status.Tracker

	mode     Mode
	recordID string
	fields   In
	values   url.Values
	errs     map[string]string
}

// New construye el controlador.
func New[In any](codec Codec[In], create CreateFunc[In], update UpdateFunc[In], opts Options) *Controller[In] {
	if opts.Validator == nil {
		opts.Validator = NewValidator()
	}
	return &Controller[In]{codec: codec, create: create, update: update, opts: opts}
}

// OpenCreate abre el modal de alta con los valores por defecto.
// domain.ErrBusy si hay un envío en curso: el modal no cambia hasta que termine.
func (c *Controller[In]) OpenCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tracker.Pending() {
		return domain.ErrBusy
	}
	c.resetLocked()
	c.mode = Creating
	return nil
}

// OpenEdit abre el modal de edición rehidratando los campos desde record.
// Se vuelve a ejecutar cada vez que cambia el registro seleccionado.
func (c *Controller[In]) OpenEdit(id string, record In) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tracker.Pending() {
		return domain.ErrBusy
	}
	c.mode = Editing
	c.recordID = id
	c.fields = record
	c.values = c.codec.Encode(record)
	c.errs = nil
	c.tracker.Reset()
	return nil
}

// Bind toma los valores enviados por el navegador; los errores de tipo quedan como errores de campo.
// Con un envío en curso no se toca nada.
func (c *Controller[In]) Bind(values url.Values) {
	r := NewReader(values)
	fields := c.codec.Decode(r)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tracker.Pending() {
		return
	}
	c.fields = fields
	c.values = cloneValues(values)
	c.errs = r.Errors()
}

// Submit valida y envía. Sin validación exitosa no hay llamada de red.
// Devuelve true si el backend aceptó la operación.
func (c *Controller[In]) Submit(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.mode == Closed {
		c.mu.Unlock()
		return false, domain.ErrNoSelection
	}
	if err := c.tracker.Begin(); err != nil {
		c.mu.Unlock()
		return false, err
	}

	errs := map[string]string{}
	for k, v := range c.errs {
		errs[k] = v
	}
	for k, v := range c.opts.Validator.Validate(c.fields) {
		if _, exists := errs[k]; !exists {
			errs[k] = v
		}
	}
	if len(errs) > 0 {
		c.errs = errs
		c.tracker.Fail(domain.ErrValidation)
		c.mu.Unlock()
		return false, domain.ErrValidation
	}
	c.errs = nil
	mode, id, fields := c.mode, c.recordID, c.fields
	c.mu.Unlock()

	var err error
	action := "created"
	if mode == Editing {
		action = "updated"
		err = c.update(ctx, id, fields)
	} else {
		err = c.create(ctx, fields)
	}

	if err != nil {
		c.tracker.Fail(err)
		c.show(domain.UserMessage(err, domain.GenericFailureMessage), notify.Error)
		return false, err
	}

	c.tracker.Succeed()
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
	if c.opts.Bus != nil {
		c.opts.Bus.Publish(c.opts.Kind)
	}
	c.show(c.opts.Noun+" "+action+" successfully", notify.Success)
	return true, nil
}

// Close cierra el modal descartando los cambios.
func (c *Controller[In]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tracker.Pending() {
		return
	}
	c.resetLocked()
}

// View devuelve el estado actual.
func (c *Controller[In]) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make(map[string]string, len(c.errs))
	for k, v := range c.errs {
		errs[k] = v
	}
	return View{
		Mode:     c.mode,
		RecordID: c.recordID,
		Values:   cloneValues(c.values),
		Errors:   errs,
		Pending:  c.tracker.Pending(),
	}
}

// Fields entrada tipada actual.
func (c *Controller[In]) Fields() In {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// State fase del último envío.
func (c *Controller[In]) State() status.Status { return c.tracker.State() }

func (c *Controller[In]) resetLocked() {
	var zero In
	if c.codec.Defaults != nil {
		zero = c.codec.Defaults()
	}
	c.mode = Closed
	c.recordID = ""
	c.fields = zero
	c.values = c.codec.Encode(zero)
	c.errs = nil
	c.tracker.Reset()
}

func (c *Controller[In]) show(msg string, sev notify.Severity) {
	if c.opts.Notifier != nil {
		c.opts.Notifier.Show(msg, sev)
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
