package dialogue

import "sync/atomic"

// Toggle is the process-wide switch for the remote dialogue channel. It
// lives for the process lifetime and is never persisted; every request
// consults it before touching the network.
type Toggle struct {
	enabled atomic.Bool
}

// NewToggle creates a toggle in the given initial position
func NewToggle(enabled bool) *Toggle {
	t := &Toggle{}
	t.enabled.Store(enabled)
	return t
}

// Set flips the toggle
func (t *Toggle) Set(enabled bool) {
	t.enabled.Store(enabled)
}

// Get reports the current position
func (t *Toggle) Get() bool {
	return t.enabled.Load()
}
