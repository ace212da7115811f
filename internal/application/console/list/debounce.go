package list

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce retardo de la búsqueda libre antes de consultar al backend.
const DefaultDebounce = 500 * time.Millisecond

// Ticket identifica una pulsación del buscador.
type Ticket struct {
	seq uint64
	at  time.Time
}

// Debouncer decide qué pulsación se confirma: la que no fue superada por otra dentro del retardo.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	seq   uint64
}

// NewDebouncer construye el debouncer; delay<=0 usa DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Delay retardo configurado.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger registra una pulsación y supera a todas las anteriores.
func (d *Debouncer) Trigger() Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return Ticket{seq: d.seq, at: time.Now()}
}

// Wait espera el retardo desde la pulsación t. Devuelve true si t sigue siendo la última
// (se confirma) y false si otra pulsación la superó.
func (d *Debouncer) Wait(ctx context.Context, t Ticket) (bool, error) {
	remaining := d.delay - time.Since(t.at)
	if remaining > 0 {
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return t.seq == d.seq, nil
}
