package tempres

import "sync"

// ExitHooks collects callbacks to run when the process terminates. The entry
// point owns a single instance: it defers Run for the normal return path and
// calls it from the signal handler, and Run guarantees the hooks fire at most
// once either way.
type ExitHooks struct {
	mu  sync.Mutex
	fns []func()
	ran bool
}

// Add schedules fn to run on shutdown. Hooks run in registration order.
func (h *ExitHooks) Add(fn func()) {
	if fn == nil {
		return
	}

	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

// Run executes every scheduled hook once. Subsequent calls are no-ops.
func (h *ExitHooks) Run() {
	h.mu.Lock()
	if h.ran {
		h.mu.Unlock()
		return
	}
	h.ran = true
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
