// Package behave implements a memoizing behavior tree: a tree of composable
// decision and action nodes that is re-polled from the root each tick,
// caching terminal results so that already-finished branches are not
// pointlessly re-executed.
package behave

import (
	"log/slog"
	"os"
)

// debugBehave gates verbose engine logging.
// Set BEHAVE_DEBUG=1 to enable.
var debugBehave = os.Getenv("BEHAVE_DEBUG") == "1"

// Node is the capability shared by every element of a behavior tree.
//
// Implementations embed Base, which supplies everything except Run. A node
// is constructed once, wired into a fixed tree shape, and then evaluated
// repeatedly via Run; the tree's shape must not change while it is running.
type Node interface {
	// Run executes the node's logic and returns the resulting status.
	// Run itself never consults the memoization state; callers resolve a
	// child through the skip protocol, which does.
	Run() Status
	// Name returns the informational identity of the node.
	Name() string
	// Completed reports whether a terminal status has been cached for this
	// node. It never becomes true for a DontSkip node.
	Completed() bool
	// DontSkip reports whether the node opted out of memoization at
	// construction time. DontSkip nodes re-execute on every resolution.
	DontSkip() bool
	// LastStatus returns the status recorded by the most recent actual
	// execution, or StatusNotRun if the node has never executed.
	LastStatus() Status
	// Reset clears the memoization state of this node and, for interior
	// nodes, of its whole subtree, so the next resolution executes afresh.
	Reset()

	base() *Base
}

// Option configures a node at construction time.
type Option func(*Base)

// DontSkip marks the node as never-skippable: it is re-executed on every
// resolution and its results are never cached.
func DontSkip() Option {
	return func(b *Base) { b.dontSkip = true }
}

// Base is the embeddable state every node kind carries: its name, the
// dontSkip flag (immutable after construction), and the memoization state
// (completed flag plus last observed status).
type Base struct {
	name       string
	dontSkip   bool
	completed  bool
	lastStatus Status
}

// NewBase constructs node state with the given name and options.
func NewBase(name string, opts ...Option) Base {
	b := Base{name: name}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Name returns the informational identity of the node.
func (b *Base) Name() string { return b.name }

// Completed reports whether a terminal status has been cached.
func (b *Base) Completed() bool { return b.completed }

// DontSkip reports whether the node is re-executed on every resolution.
func (b *Base) DontSkip() bool { return b.dontSkip }

// LastStatus returns the most recently recorded status.
func (b *Base) LastStatus() Status { return b.lastStatus }

// Reset clears the memoization state.
func (b *Base) Reset() {
	b.completed = false
	b.lastStatus = StatusNotRun
}

func (b *Base) base() *Base { return b }

// resolve applies the skip protocol to a child reference and returns the
// child's next status. A dontSkip child is always executed and never cached.
// Otherwise a completed child yields its cached status without executing,
// and an incomplete child is executed, its status recorded, and its
// completed flag set on any terminal (non-RUNNING) result.
func resolve(child Node) Status {
	if child == nil {
		return StatusError
	}
	b := child.base()
	if b.dontSkip {
		s := child.Run()
		b.lastStatus = s
		if debugBehave {
			slog.Debug("behave: resolved", "node", b.name, "status", s, "cached", false)
		}
		return s
	}
	if b.completed {
		if debugBehave {
			slog.Debug("behave: resolved", "node", b.name, "status", b.lastStatus, "cached", true)
		}
		return b.lastStatus
	}
	s := child.Run()
	b.lastStatus = s
	if s.Terminal() {
		b.completed = true
	}
	if debugBehave {
		slog.Debug("behave: resolved", "node", b.name, "status", s, "cached", false)
	}
	return s
}
