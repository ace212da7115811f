// Package list implementa el controlador de listados: estado de paginación y búsqueda,
// una página en caché con ventana de vigencia y descarte de respuestas fuera de orden.
package list

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/status"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

// DefaultStaleAfter antigüedad a partir de la cual la página en caché se vuelve a pedir.
const DefaultStaleAfter = 30 * time.Second

// Fetcher pide una página al backend.
type Fetcher[T any] func(ctx context.Context, q dto.ListQuery) (dto.Page[T], error)

// Versioner expone la versión de invalidación de un tipo de entidad.
type Versioner interface {
	Version(kind string) uint64
}

// Notifier canal donde se publican los fallos de carga (opcional).
type Notifier interface {
	Show(message string, severity notify.Severity) notify.Notification
}

// Options configuración del controlador.
type Options struct {
	Kind        string
	PageSize    int
	Debounce    time.Duration
	StaleAfter  time.Duration
	Versions    Versioner
	Notifier    Notifier // nil = los fallos no se notifican
	Now         func() time.Time
	FailMessage string
}

// State copia inmutable del estado para renderizar.
type State[T any] struct {
	Query   dto.ListQuery
	Rows    []T
	Total   int
	Pages   int
	Loading bool
	Status  status.Status
	Err     error
	Loaded  bool // hubo al menos una carga exitosa
}

// Empty indica el estado "sin datos": sin filas y sin carga en curso.
func (s State[T]) Empty() bool {
	return !s.Loading && len(s.Rows) == 0
}

// Controller mantiene {página, tamaño, búsqueda, filtros} y la última página exitosa.
// La paginación es del backend: nunca se recorta localmente un conjunto completo.
type Controller[T any] struct {
	mu        sync.Mutex
	fetch     Fetcher[T]
	opts      Options
	debouncer *Debouncer

	query   dto.ListQuery
	rows    []T
	total   int
	loading bool
	state   status.Status
	lastErr error

	issued         uint64 // secuencia de la última petición emitida
	loaded         bool
	fetchedAt      time.Time
	fetchedQuery   dto.ListQuery
	fetchedVersion uint64
}

// New construye el controlador.
func New[T any](fetch Fetcher[T], opts Options) *Controller[T] {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = DefaultStaleAfter
	}
	if opts.FailMessage == "" {
		opts.FailMessage = "Could not load data."
	}
	return &Controller[T]{
		fetch:     fetch,
		opts:      opts,
		debouncer: NewDebouncer(opts.Debounce),
		query:     dto.ListQuery{}.Normalize(opts.PageSize),
		rows:      []T{},
	}
}

// SetQuery fija página, tamaño, búsqueda y filtros ya confirmados (por ejemplo desde la URL).
func (c *Controller[T]) SetQuery(q dto.ListQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q.Normalize(c.opts.PageSize)
}

// SetPage cambia de página.
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.query
	q.Page = page
	c.query = q.Normalize(c.opts.PageSize)
}

// SetPageSize cambia el tamaño y vuelve a la primera página.
func (c *Controller[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.query
	q.Size = size
	q.Page = 1
	c.query = q.Normalize(c.opts.PageSize)
}

// SetFilters cambia estado y rango de fechas y vuelve a la primera página.
func (c *Controller[T]) SetFilters(statusFilter, from, to string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.query
	q.Status, q.From, q.To = statusFilter, from, to
	q.Page = 1
	c.query = q.Normalize(c.opts.PageSize)
}

// Search registra una pulsación del buscador y espera el retardo. Si otra pulsación la supera
// devuelve false sin consultar al backend; si se confirma, aplica la búsqueda (página 1) y carga.
func (c *Controller[T]) Search(ctx context.Context, text string) (bool, error) {
	ticket := c.debouncer.Trigger()
	settled, err := c.debouncer.Wait(ctx, ticket)
	if err != nil || !settled {
		return false, err
	}
	c.mu.Lock()
	q := c.query
	q.Keyword = text
	q.Page = 1
	c.query = q.Normalize(c.opts.PageSize)
	c.mu.Unlock()
	return true, c.Load(ctx)
}

// Load reutiliza la página en caché si sigue vigente; si no, la pide de nuevo.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	fresh := c.freshLocked()
	c.mu.Unlock()
	if fresh {
		return nil
	}
	return c.Refresh(ctx)
}

// Refresh pide la página actual ignorando la caché. Cada petición lleva una secuencia;
// si al volver ya se emitió otra más nueva, la respuesta se descarta.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	q := c.query
	version := c.version()
	c.loading = true
	c.state = status.Loading
	c.mu.Unlock()

	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	if seq != c.issued {
		c.mu.Unlock()
		return nil
	}
	c.loading = false
	if err != nil {
		c.state = status.Error
		c.lastErr = err
		c.mu.Unlock()
		if c.opts.Notifier != nil {
			c.opts.Notifier.Show(domain.UserMessage(err, c.opts.FailMessage), notify.Error)
		}
		return err
	}
	c.rows = page.Items
	if c.rows == nil {
		c.rows = []T{}
	}
	c.total = page.Total
	c.state = status.Success
	c.lastErr = nil
	c.loaded = true
	c.fetchedAt = c.opts.Now()
	c.fetchedQuery = q
	c.fetchedVersion = version
	c.mu.Unlock()
	return nil
}

// Invalidate fuerza la próxima carga.
func (c *Controller[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

// Snapshot devuelve el estado actual.
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([]T, len(c.rows))
	copy(rows, c.rows)
	return State[T]{
		Query:   c.query,
		Rows:    rows,
		Total:   c.total,
		Pages:   dto.Page[T]{Total: c.total}.Pages(c.query.Size),
		Loading: c.loading,
		Status:  c.state,
		Err:     c.lastErr,
		Loaded:  c.loaded,
	}
}

// Find busca en la página en caché la primera fila que cumple match.
func (c *Controller[T]) Find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.rows {
		if match(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Debounce retardo efectivo del buscador.
func (c *Controller[T]) Debounce() time.Duration { return c.debouncer.Delay() }

func (c *Controller[T]) freshLocked() bool {
	if !c.loaded || c.loading || c.fetchedAt.IsZero() {
		return false
	}
	if c.fetchedQuery != c.query {
		return false
	}
	if c.version() != c.fetchedVersion {
		return false
	}
	return c.opts.Now().Sub(c.fetchedAt) < c.opts.StaleAfter
}

func (c *Controller[T]) version() uint64 {
	if c.opts.Versions == nil {
		return 0
	}
	return c.opts.Versions.Version(c.opts.Kind)
}
