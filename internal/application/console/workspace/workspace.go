// Package workspace mantiene el estado de consola de cada sesión del navegador:
// la sesión, su canal de notificaciones, su bus de invalidación y los controladores por entidad.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/console/invalidate"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/resource"
	"github.com/jhoicas/assettrack-console/internal/application/session"
	"github.com/jhoicas/assettrack-console/internal/domain"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

// DefaultIdleTimeout inactividad tras la cual se descarta un workspace.
const DefaultIdleTimeout = 30 * time.Minute

// Options parámetros de los controladores y de la vida de los workspaces.
type Options struct {
	IdleTimeout         time.Duration
	PageSize            int
	Debounce            time.Duration
	StaleAfter          time.Duration
	NotificationTimeout time.Duration
	Now                 func() time.Time
}

// Workspace estado de consola de una sesión.
type Workspace struct {
	ID            string
	Session       *session.Session
	Notifications *notify.Channel
	Bus           *invalidate.Bus

	catalog *resource.Catalog
	deps    resource.Deps

	mu       sync.Mutex
	handles  map[string]resource.Handle
	lastSeen time.Time
	unwatch  func()
}

// Handle devuelve los controladores de kind, creándolos la primera vez.
// domain.ErrForbidden si la entidad es solo para administradores y la sesión no lo es.
func (w *Workspace) Handle(kind string) (resource.Handle, error) {
	b, err := w.catalog.Lookup(kind)
	if err != nil {
		return nil, err
	}
	if b.Describe().AdminOnly && !w.Session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	h, ok := w.handles[kind]
	if !ok {
		h = b.Bind(w.deps)
		w.handles[kind] = h
	}
	return h, nil
}

// Menu entidades visibles para el rol de la sesión.
func (w *Workspace) Menu() []resource.Meta {
	all := w.catalog.Metas()
	out := make([]resource.Meta, 0, len(all))
	for _, m := range all {
		if m.AdminOnly && !w.Session.IsAdmin() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Context adjunta las credenciales de la sesión a ctx.
func (w *Workspace) Context(ctx context.Context) context.Context {
	return w.Session.Attach(ctx)
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.lastSeen)
}

func (w *Workspace) close() {
	if w.unwatch != nil {
		w.unwatch()
	}
	w.Notifications.Close()
}

// Registry workspaces vivos indexados por el id de sesión de consola (cookie).
type Registry struct {
	mu        sync.Mutex
	items     map[string]*Workspace
	catalog   *resource.Catalog
	opts      Options
	validator *form.Validator
	log       *logger.Logger
}

// NewRegistry construye el registro.
func NewRegistry(catalog *resource.Catalog, opts Options, log *logger.Logger) *Registry {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		items:     map[string]*Workspace{},
		catalog:   catalog,
		opts:      opts,
		validator: form.NewValidator(),
		log:       log.Named("workspace"),
	}
}

// Open crea el workspace de una sesión recién iniciada.
func (r *Registry) Open(s *session.Session) *Workspace {
	ch := notify.New(r.opts.NotificationTimeout)
	bus := invalidate.New()
	w := &Workspace{
		ID:            uuid.NewString(),
		Session:       s,
		Notifications: ch,
		Bus:           bus,
		catalog:       r.catalog,
		deps: resource.Deps{
			Bus:        bus,
			Notifier:   ch,
			Validator:  r.validator,
			PageSize:   r.opts.PageSize,
			Debounce:   r.opts.Debounce,
			StaleAfter: r.opts.StaleAfter,
			Now:        r.opts.Now,
		},
		handles:  map[string]resource.Handle{},
		lastSeen: r.opts.Now(),
	}
	log := r.log.WithField("workspace", w.ID)
	w.unwatch = ch.Subscribe(func(n notify.Notification, visible bool) {
		if visible {
			log.Debug().Str("severity", string(n.Severity)).Str("text", n.Message).Msg("notificación")
		}
	})
	r.mu.Lock()
	r.items[w.ID] = w
	r.mu.Unlock()
	r.log.Debug().Str("workspace", w.ID).Str("user_id", s.UserID).Msg("workspace abierto")
	return w
}

// Get devuelve el workspace id si sigue vivo y registra la actividad.
func (r *Registry) Get(id string) (*Workspace, bool) {
	if id == "" {
		return nil, false
	}
	now := r.opts.Now()
	r.mu.Lock()
	w, ok := r.items[id]
	if ok && w.idleSince(now) >= r.opts.IdleTimeout {
		delete(r.items, id)
		ok = false
	}
	r.mu.Unlock()
	if !ok {
		if w != nil {
			w.close()
		}
		return nil, false
	}
	w.touch(now)
	return w, true
}

// Discard elimina el workspace (cierre de sesión).
func (r *Registry) Discard(id string) {
	r.mu.Lock()
	w, ok := r.items[id]
	delete(r.items, id)
	r.mu.Unlock()
	if ok {
		w.close()
	}
}

// Sweep descarta los workspaces inactivos y devuelve cuántos eliminó.
func (r *Registry) Sweep() int {
	now := r.opts.Now()
	var expired []*Workspace
	r.mu.Lock()
	for id, w := range r.items {
		if w.idleSince(now) >= r.opts.IdleTimeout {
			expired = append(expired, w)
			delete(r.items, id)
		}
	}
	r.mu.Unlock()
	for _, w := range expired {
		w.close()
	}
	if len(expired) > 0 {
		r.log.Debug().Int("count", len(expired)).Msg("workspaces vencidos")
	}
	return len(expired)
}

// Len cantidad de workspaces vivos.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Run ejecuta Sweep cada interval hasta que ctx termina.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
