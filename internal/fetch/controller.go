// Package fetch manages the lifecycle of a single remotely fetched resource
// slot. Requests are never aborted; a newer Load supersedes older in-flight
// calls and their late completions are discarded by a generation check.
package fetch

import (
	"context"
	"sync"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// State is an observable snapshot of one resource slot. Exactly one of Value
// and Err is meaningful: ready carries a value and no error, failed carries an
// error and the zero value (a previous value is discarded, not merged).
type State[T any] struct {
	Status     Status
	Value      T
	Err        error
	Generation uint64
}

// Controller owns one State and serializes transitions on it. Each Load bumps
// the generation; completions apply only if their captured generation is still
// current, so a stale response can be discarded but never reordered ahead of a
// newer one. Dispose makes every later completion a no-op.
type Controller[T any] struct {
	mu       sync.Mutex
	state    State[T]
	disposed bool
	notify   func(State[T])
}

// NewController returns an idle controller. notify, if non-nil, is invoked
// after every applied transition, outside the internal lock.
func NewController[T any](notify func(State[T])) *Controller[T] {
	return &Controller[T]{
		state:  State[T]{Status: StatusIdle},
		notify: notify,
	}
}

// Load starts a new fetch attempt. Calling Load again before a prior attempt
// settles is the defined way to cancel it: the old completion fails the
// generation check and is swallowed. The previous error is cleared before the
// attempt starts.
func (c *Controller[T]) Load(ctx context.Context, fetchFn func(context.Context) (T, error)) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.state.Generation++
	gen := c.state.Generation
	var zero T
	c.state.Status = StatusLoading
	c.state.Value = zero
	c.state.Err = nil
	snap := c.state
	c.mu.Unlock()
	c.emit(snap)

	go func() {
		v, err := fetchFn(ctx)

		c.mu.Lock()
		if c.disposed || c.state.Generation != gen {
			// Stale completion; a newer Load or Dispose won.
			c.mu.Unlock()
			return
		}
		if err != nil {
			var zero T
			c.state.Status = StatusFailed
			c.state.Value = zero
			c.state.Err = err
		} else {
			c.state.Status = StatusReady
			c.state.Value = v
			c.state.Err = nil
		}
		snap := c.state
		c.mu.Unlock()
		c.emit(snap)
	}()
}

// Snapshot returns the current state by value.
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispose tears the slot down. Any completion that settles afterwards is
// swallowed without side effects, and further Load calls are no-ops.
func (c *Controller[T]) Dispose() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()
}

func (c *Controller[T]) emit(s State[T]) {
	if c.notify != nil {
		c.notify(s)
	}
}
