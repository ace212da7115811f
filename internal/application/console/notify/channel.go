// Package notify implementa el canal de notificaciones transitorias de la consola:
// un único espacio para el mensaje "actual", con severidad y auto-cierre.
package notify

import (
	"sync"
	"time"
)

// Severity nivel del mensaje.
type Severity string

// Severidades soportadas.
const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

// DefaultTimeout tiempo de auto-cierre si no se configura otro.
const DefaultTimeout = 6 * time.Second

// Notification mensaje visible.
type Notification struct {
	ID        uint64
	Message   string
	Severity  Severity
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Listener recibe cada cambio del canal; visible=false cuando el mensaje se ocultó.
type Listener func(n Notification, visible bool)

// Channel guarda a lo sumo un mensaje visible. Show reemplaza el actual (no hay cola);
// solo Hide o el vencimiento lo cierran.
type Channel struct {
	mu        sync.Mutex
	timeout   time.Duration
	now       func() time.Time
	current   *Notification
	seq       uint64
	timer     *time.Timer
	listeners map[int]Listener
	nextID    int
}

// New construye el canal con el tiempo de auto-cierre indicado.
func New(timeout time.Duration) *Channel {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Channel{timeout: timeout, now: time.Now, listeners: map[int]Listener{}}
}

// Show publica message reemplazando el mensaje actual.
func (c *Channel) Show(message string, severity Severity) Notification {
	c.mu.Lock()
	c.seq++
	now := c.now()
	n := Notification{
		ID:        c.seq,
		Message:   message,
		Severity:  severity,
		ShownAt:   now,
		ExpiresAt: now.Add(c.timeout),
	}
	c.current = &n
	if c.timer != nil {
		c.timer.Stop()
	}
	id := n.ID
	c.timer = time.AfterFunc(c.timeout, func() { c.expire(id) })
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l(n, true)
	}
	return n
}

// Hide cierra el mensaje actual antes de su vencimiento.
func (c *Channel) Hide() {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	c.clearLocked()
}

// Current devuelve el mensaje visible, si lo hay.
func (c *Channel) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || !c.now().Before(c.current.ExpiresAt) {
		return Notification{}, false
	}
	return *c.current, true
}

// Subscribe registra l y devuelve la función para darlo de baja.
func (c *Channel) Subscribe(l Listener) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close detiene el temporizador pendiente.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Channel) expire(id uint64) {
	c.mu.Lock()
	if c.current == nil || c.current.ID != id {
		c.mu.Unlock()
		return
	}
	c.clearLocked()
}

// clearLocked se llama con mu tomado y lo libera.
func (c *Channel) clearLocked() {
	n := *c.current
	c.current = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l(n, false)
	}
}

func (c *Channel) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		out = append(out, l)
	}
	return out
}
