package remote

import (
	"context"
	"errors"
	"sync"

	"github.com/gogpu/paint"
)

// ErrStopped is returned when a request reaches a dispatcher that has
// stopped running.
var ErrStopped = errors.New("remote: dispatcher stopped")

// dispatcher serialises work on a controller. Exactly one goroutine, the one
// running run, ever touches the controller.
//
// Thread safety: do is safe for concurrent use.
type dispatcher struct {
	ctrl *paint.Controller

	// queue holds pending work items.
	queue chan func(*paint.Controller)

	// done is closed when run returns.
	done chan struct{}

	once sync.Once
}

func newDispatcher(c *paint.Controller, queueSize int) *dispatcher {
	return &dispatcher{
		ctrl:  c,
		queue: make(chan func(*paint.Controller), queueSize),
		done:  make(chan struct{}),
	}
}

// run executes queued work until ctx is cancelled. Work already queued when
// ctx ends is drained first so no caller is left waiting.
func (d *dispatcher) run(ctx context.Context) {
	defer func() {
		d.drain()
		d.once.Do(func() { close(d.done) })
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case work := <-d.queue:
			work(d.ctrl)
		}
	}
}

func (d *dispatcher) drain() {
	for {
		select {
		case work := <-d.queue:
			work(d.ctrl)
		default:
			return
		}
	}
}

// do runs fn on the dispatcher goroutine and waits for it to finish.
func (d *dispatcher) do(ctx context.Context, fn func(*paint.Controller)) error {
	finished := make(chan struct{})
	work := func(c *paint.Controller) {
		defer close(finished)
		fn(c)
	}

	select {
	case d.queue <- work:
	case <-d.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-d.done:
		// Work drained by run has finished before done is closed; anything
		// queued after the drain never runs.
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	}
}
