package behave

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultPollInterval is how long an Async waits for its child's result
// before yielding RUNNING to the caller.
const DefaultPollInterval = 10 * time.Millisecond

// asyncState tracks whether an Async has an execution outstanding.
type asyncState int

const (
	asyncIdle asyncState = iota
	asyncPending
)

// Async executes its child on a separate goroutine and waits up to the
// poll interval for the result. If the child has not finished within that
// window, Async returns RUNNING without cancelling the in-flight
// execution; a later tick re-polls the same outstanding execution instead
// of spawning a duplicate, so at most one execution is ever in flight per
// Async instance. There are no cancellation semantics: an abandoned
// execution (after Reset) runs to completion and its result is discarded.
//
// Async is what lets a Sequence or Select containing a slow leaf keep
// reporting RUNNING to the root loop instead of blocking the whole tree.
type Async struct {
	Decorator
	poll time.Duration

	mu      sync.Mutex
	state   asyncState
	pending chan Status // result handle for the outstanding execution
}

// NewAsync constructs an Async. poll < 1 falls back to
// DefaultPollInterval.
func NewAsync(name string, poll time.Duration, opts ...Option) *Async {
	if poll < 1 {
		poll = DefaultPollInterval
	}
	return &Async{Decorator: Decorator{Base: NewBase(name, opts...)}, poll: poll}
}

// Run implements Node.
func (n *Async) Run() Status {
	child := n.child
	if child == nil {
		return StatusError
	}

	// Skip protocol, cached branch: a completed child's result is reused
	// without spawning anything.
	cb := child.base()
	if !cb.dontSkip && cb.completed {
		return cb.lastStatus
	}

	n.mu.Lock()
	if n.state == asyncIdle {
		ch := make(chan Status, 1)
		n.pending = ch
		n.state = asyncPending
		go func() { ch <- child.Run() }()
		if debugBehave {
			slog.Debug("behave: async dispatched", "node", n.name, "child", child.Name())
		}
	}
	ch := n.pending
	n.mu.Unlock()

	timer := time.NewTimer(n.poll)
	defer timer.Stop()
	select {
	case s := <-ch:
		n.mu.Lock()
		// Only consume the result if this handle is still current; Reset
		// may have abandoned it while we were waiting.
		if n.pending == ch {
			n.state = asyncIdle
			n.pending = nil
		}
		n.mu.Unlock()
		cb.lastStatus = s
		if !cb.dontSkip && s.Terminal() {
			cb.completed = true
		}
		n.lastStatus = s
		if debugBehave {
			slog.Debug("behave: async resolved", "node", n.name, "status", s)
		}
		return s
	case <-timer.C:
		n.lastStatus = StatusRunning
		return StatusRunning
	}
}

// Reset clears the memoization state of the Async and its subtree, and
// abandons any outstanding execution. The abandoned goroutine finishes on
// its own; its result is discarded.
func (n *Async) Reset() {
	n.mu.Lock()
	n.state = asyncIdle
	n.pending = nil
	n.mu.Unlock()
	n.Decorator.Reset()
}
