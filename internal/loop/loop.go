// Package loop provides a single-goroutine executor. Everything submitted to
// a Loop runs one function at a time, in submission order, which makes it a
// serialized execution context for code that is not goroutine-safe.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tinytelemetry/memory/internal/model"
)

// DefaultQueueSize is the default task channel buffer.
const DefaultQueueSize = 64

// Loop runs submitted functions sequentially on the goroutine calling Run.
type Loop struct {
	tasks chan func()
	done  chan struct{}

	closeOnce sync.Once
}

// New creates a Loop. Tasks submitted before Run starts are buffered up to
// queueSize; further submissions block until Run drains them.
func New(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Loop{
		tasks: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Run executes tasks until ctx is cancelled. It returns nil on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	defer l.closeOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Do enqueues fn. It reports false if the loop has already stopped.
func (l *Loop) Do(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed once Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// AfterFunc schedules fn to run on the loop no earlier than delay from now.
// The returned CancelFunc is checked on the loop itself, so a cancelled task
// never runs even if its timer already fired.
func (l *Loop) AfterFunc(delay time.Duration, fn func()) model.CancelFunc {
	var cancelled atomic.Bool
	timer := time.AfterFunc(delay, func() {
		l.Do(func() {
			if cancelled.Load() {
				return
			}
			fn()
		})
	})
	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}

// Every submits fn to the loop on each tick of interval until ctx is done.
// Ticks are not queued behind each other: if the loop is busy the ticker
// drops ticks, as time.Ticker does.
func (l *Loop) Every(ctx context.Context, interval time.Duration, fn func(now time.Time)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case now := <-ticker.C:
			l.Do(func() { fn(now) })
		}
	}
}
