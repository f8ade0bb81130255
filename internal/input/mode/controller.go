package mode

import (
	"fmt"
	"sync"
)

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Controller holds the current editing mode.
type Controller struct {
	mu sync.RWMutex

	// current is the active mode.
	current Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// NewController creates a controller in Insert mode.
func NewController() *Controller {
	return &Controller{current: Insert}
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Toggle advances to the next mode in the cycle and returns it.
func (c *Controller) Toggle() Mode {
	c.mu.Lock()
	from := c.current
	to := from.Next()
	c.current = to
	callbacks := c.snapshotCallbacksLocked()
	c.mu.Unlock()

	notify(callbacks, from, to)
	return to
}

// Set switches directly to m.
func (c *Controller) Set(m Mode) error {
	if !m.IsValid() {
		return fmt.Errorf("invalid mode: %v", m)
	}

	c.mu.Lock()
	from := c.current
	if from == m {
		c.mu.Unlock()
		return nil
	}
	c.current = m
	callbacks := c.snapshotCallbacksLocked()
	c.mu.Unlock()

	notify(callbacks, from, m)
	return nil
}

// OnChange registers a callback for mode changes.
func (c *Controller) OnChange(cb ChangeCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, cb)
}

// snapshotCallbacksLocked copies the callback list so callbacks run
// without the lock held. Caller must hold c.mu.
func (c *Controller) snapshotCallbacksLocked() []ChangeCallback {
	if len(c.callbacks) == 0 {
		return nil
	}
	out := make([]ChangeCallback, len(c.callbacks))
	copy(out, c.callbacks)
	return out
}

func notify(callbacks []ChangeCallback, from, to Mode) {
	for _, cb := range callbacks {
		cb(from, to)
	}
}
