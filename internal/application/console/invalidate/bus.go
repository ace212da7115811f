// Package invalidate publica las mutaciones exitosas por tipo de entidad para que los
// listados traten su página en caché como vencida en la próxima lectura.
package invalidate

import "sync"

// Handler recibe la nueva versión del tipo invalidado.
type Handler func(kind string, version uint64)

// Bus lleva una versión monótona por tipo de entidad.
type Bus struct {
	mu       sync.RWMutex
	versions map[string]uint64
	handlers map[string]map[int]Handler
	nextID   int
}

// New construye un bus vacío.
func New() *Bus {
	return &Bus{versions: map[string]uint64{}, handlers: map[string]map[int]Handler{}}
}

// Publish incrementa la versión de kind y avisa a los suscriptores.
func (b *Bus) Publish(kind string) uint64 {
	b.mu.Lock()
	b.versions[kind]++
	v := b.versions[kind]
	hs := make([]Handler, 0, len(b.handlers[kind]))
	for _, h := range b.handlers[kind] {
		hs = append(hs, h)
	}
	b.mu.Unlock()

	for _, h := range hs {
		h(kind, v)
	}
	return v
}

// Version versión actual de kind (0 si nunca se publicó).
func (b *Bus) Version(kind string) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.versions[kind]
}

// Subscribe registra h para kind.
func (b *Bus) Subscribe(kind string, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers[kind] == nil {
		b.handlers[kind] = map[int]Handler{}
	}
	id := b.nextID
	b.nextID++
	b.handlers[kind][id] = h
	return func() {
		b.mu.Lock()
		delete(b.handlers[kind], id)
		b.mu.Unlock()
	}
}
