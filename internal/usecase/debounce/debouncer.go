package debounce

import (
	"context"
	"sync"
	"time"

	"vehicle-rental/internal/pkg/clock"
)

// Task is one scheduled computation. ctx is cancelled once a newer task is
// scheduled.
type Task[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Generation uint64
	Value      T
	Err        error
}

type Option[T any] func(*Debouncer[T])

// WithDiscardHook is called for every result that arrived after a newer task
// had been scheduled.
func WithDiscardHook[T any](fn func(generation uint64)) Option[T] {
	return func(d *Debouncer[T]) { d.onDiscard = fn }
}

// Debouncer runs only the last task scheduled within the quiet window.
// Every Schedule issues a new generation and replaces the pending timer;
// a result is applied only while its generation is still the latest one.
//
// apply runs with the debouncer's lock held and must not call Schedule.
type Debouncer[T any] struct {
	quiet     time.Duration
	clock     clock.Clock
	apply     func(Result[T])
	onDiscard func(generation uint64)

	mu         sync.Mutex
	generation uint64
	timer      clock.Timer
	cancel     context.CancelFunc
	stopped    bool
}

func New[T any](quiet time.Duration, clk clock.Clock, apply func(Result[T]), opts ...Option[T]) *Debouncer[T] {
	d := &Debouncer[T]{
		quiet: quiet,
		clock: clk,
		apply: apply,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Schedule cancels whatever is pending or in flight and arms task to run
// after the quiet window. It returns the task's generation.
func (d *Debouncer[T]) Schedule(task Task[T]) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return d.generation
	}

	d.generation++
	gen := d.generation
	d.supersede()
	d.timer = d.clock.AfterFunc(d.quiet, func() { d.run(gen, task) })
	return gen
}

// Generation is the latest issued generation.
func (d *Debouncer[T]) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generation
}

// Stop drops the pending task and cancels the one in flight. Later results
// are discarded and later Schedule calls are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.supersede()
}

func (d *Debouncer[T]) supersede() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer[T]) run(gen uint64, task Task[T]) {
	d.mu.Lock()
	if gen != d.generation || d.stopped {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.timer = nil
	d.mu.Unlock()

	value, err := task(ctx)
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation || d.stopped {
		if d.onDiscard != nil {
			d.onDiscard(gen)
		}
		return
	}
	d.cancel = nil
	d.apply(Result[T]{Generation: gen, Value: value, Err: err})
}
