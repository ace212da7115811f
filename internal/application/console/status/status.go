// Package status modela el ciclo compartido por listados, formularios y borrados:
// idle → loading → {success → idle, error → idle}. El último error persiste hasta la siguiente acción.
package status

import (
	"sync"

	"github.com/jhoicas/assettrack-console/internal/domain"
)

// Status fase observable.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Tracker guarda la fase y el último resultado. Solo admite una operación en curso.
type Tracker struct {
	mu      sync.Mutex
	loading bool
	outcome Status
	lastErr error
}

// Begin pasa a loading y limpia el último error; domain.ErrBusy si ya hay una operación en curso.
func (t *Tracker) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.loading {
		return domain.ErrBusy
	}
	t.loading = true
	t.outcome = Idle
	t.lastErr = nil
	return nil
}

// Succeed cierra la operación en curso como exitosa.
func (t *Tracker) Succeed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	t.outcome = Success
	t.lastErr = nil
}

// Fail cierra la operación en curso con err.
func (t *Tracker) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	t.outcome = Error
	t.lastErr = err
}

// Reset vuelve a idle sin resultado.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	t.outcome = Idle
	t.lastErr = nil
}

// Pending indica si hay una operación en curso.
func (t *Tracker) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// State devuelve Loading mientras hay operación; si no, el resultado de la última (Idle si no hubo).
func (t *Tracker) State() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.loading {
		return Loading
	}
	return t.outcome
}

// LastErr último error registrado.
func (t *Tracker) LastErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}
