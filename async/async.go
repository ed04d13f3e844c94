package async

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Status is the lifecycle stage of a controller's latest attempt.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// WorkFunc performs one attempt. ctx is cancelled when the attempt is superseded or the
// controller is disposed.
type WorkFunc[T any] func(ctx context.Context) (T, error)

// State is a snapshot of a controller. Result is only set when Status is StatusSuccess
// and Err only when Status is StatusError.
type State[T any] struct {
	Status Status
	Result T
	Err    error
	// Attempt identifies the execution that produced this state. Empty while idle.
	Attempt string
}

// Controller owns the lifecycle of repeated executions of one work function.
type Controller[T any] struct {
	work WorkFunc[T]

	// notifyMu serializes transitions so subscribers see them in order.
	notifyMu sync.Mutex

	mu          sync.Mutex
	state       State[T]
	generation  uint64
	cancel      context.CancelCauseFunc
	disposed    bool
	subscribers map[int]func(State[T])
	nextSub     int
}

type attempt struct {
	ctx        context.Context
	generation uint64
	id         string
}

// New creates a controller for work. With autoStart the first execution begins before New
// returns, so the initial status is pending; otherwise it is idle.
func New[T any](work WorkFunc[T], autoStart bool) *Controller[T] {
	c := &Controller[T]{
		work:  work,
		state: State[T]{Status: StatusIdle},
	}
	if autoStart {
		_ = c.Trigger()
	}
	return c
}

// Execute cancels any attempt in flight, runs the work function and returns its outcome.
//
// If the attempt is superseded or the controller is disposed before the work function
// returns, the outcome is discarded and the zero value is returned with ErrSuperseded or
// ErrDisposed. If the work function reports a cancellation, the state is left as it is and
// ErrCancelled is returned. Any other failure is recorded and returned.
func (c *Controller[T]) Execute(ctx context.Context) (T, error) {
	a, err := c.begin(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.run(a)
}

// Trigger starts an execution in the background. The attempt is registered before Trigger
// returns, so of several Trigger calls the last one issued wins.
func (c *Controller[T]) Trigger() error {
	a, err := c.begin(context.Background())
	if err != nil {
		return err
	}
	go func() {
		_, _ = c.run(a)
	}()
	return nil
}

// State returns the current snapshot.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive every visible transition in order. fn runs while
// transitions are serialized: it must not call Execute or Dispose synchronously.
func (c *Controller[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return func() {}
	}
	if c.subscribers == nil {
		c.subscribers = make(map[int]func(State[T]))
	}
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Dispose cancels the active attempt. No transitions are delivered after Dispose returns
// and later calls to Execute fail with ErrDisposed. Dispose is idempotent.
func (c *Controller[T]) Dispose() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.disposed = true
	if c.cancel != nil {
		c.cancel(ErrDisposed)
		c.cancel = nil
	}
	c.subscribers = nil
}

func (c *Controller[T]) begin(ctx context.Context) (attempt, error) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return attempt{}, ErrDisposed
	}
	if c.cancel != nil {
		c.cancel(ErrSuperseded)
	}
	actx, cancel := context.WithCancelCause(ctx)
	c.cancel = cancel
	c.generation++
	a := attempt{ctx: actx, generation: c.generation, id: uuid.NewString()}
	c.state = State[T]{Status: StatusPending, Attempt: a.id}
	st, subs := c.state, c.subscribersLocked()
	c.mu.Unlock()

	notify(subs, st)
	return a, nil
}

func (c *Controller[T]) run(a attempt) (T, error) {
	result, err := c.work(a.ctx)
	return c.finish(a, result, err)
}

func (c *Controller[T]) finish(a attempt, result T, err error) (T, error) {
	var zero T

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	switch {
	case c.disposed:
		c.mu.Unlock()
		log.Printf("[async] attempt %s finished after dispose, discarding outcome", a.id)
		return zero, ErrDisposed
	case a.generation != c.generation:
		c.mu.Unlock()
		log.Printf("[async] attempt %s superseded, discarding outcome", a.id)
		return zero, ErrSuperseded
	}

	// The attempt is over; release its token.
	c.cancel(nil)
	c.cancel = nil

	if err != nil && IsCancellation(err) {
		c.mu.Unlock()
		return zero, ErrCancelled
	}

	if err != nil {
		c.state = State[T]{Status: StatusError, Err: err, Attempt: a.id}
	} else {
		c.state = State[T]{Status: StatusSuccess, Result: result, Attempt: a.id}
	}
	st, subs := c.state, c.subscribersLocked()
	c.mu.Unlock()

	notify(subs, st)
	if err != nil {
		return zero, err
	}
	return result, nil
}

func (c *Controller[T]) subscribersLocked() []func(State[T]) {
	if len(c.subscribers) == 0 {
		return nil
	}
	subs := make([]func(State[T]), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify[T any](subs []func(State[T]), st State[T]) {
	for _, fn := range subs {
		fn(st)
	}
}
