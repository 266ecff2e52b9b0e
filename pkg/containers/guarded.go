package containers

import "sync"

// Guarded protects a single container instance with a mutex. None of the
// containers in this module synchronize internally; wrap an instance in a
// Guarded before sharing it between goroutines.
type Guarded[C any] struct {
	mu sync.Mutex
	c  C
}

// NewGuarded wraps c. The caller must not keep using c directly.
func NewGuarded[C any](c C) *Guarded[C] {
	return &Guarded[C]{c: c}
}

// Do runs fn with exclusive access to the container. fn must not retain the
// container after it returns.
func (g *Guarded[C]) Do(fn func(C)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fn(g.c)
}
