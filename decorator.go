package behave

import (
	"fmt"
	"time"
)

// Decorator holds exactly one child node and reinterprets or repeats its
// result. The decorator exclusively owns its child.
type Decorator struct {
	Base
	child Node
}

// SetChild installs the decorator's single child.
func (d *Decorator) SetChild(child Node) { d.child = child }

// Child returns the decorator's child, or nil if none has been set.
func (d *Decorator) Child() Node { return d.child }

// Reset clears the memoization state of the decorator and its subtree.
func (d *Decorator) Reset() {
	d.Base.Reset()
	if d.child != nil {
		d.child.Reset()
	}
}

// Invert negates the child's outcome: SUCCESS becomes FAILURE and vice
// versa. ERROR and RUNNING pass through unchanged.
type Invert struct {
	Decorator
}

// NewInvert constructs an Invert; wire the child with SetChild.
func NewInvert(name string, opts ...Option) *Invert {
	return &Invert{Decorator{Base: NewBase(name, opts...)}}
}

// Run implements Node.
func (n *Invert) Run() Status {
	s := resolve(n.child)
	n.lastStatus = s
	switch s {
	case StatusSuccess:
		return StatusFailure
	case StatusFailure:
		return StatusSuccess
	default:
		return s
	}
}

// Succeed masks FAILURE: it returns SUCCESS for any child outcome other
// than ERROR or RUNNING, which pass through. Useful where a failing branch
// must not abandon the sequence it sits on.
type Succeed struct {
	Decorator
}

// NewSucceed constructs a Succeed; wire the child with SetChild.
func NewSucceed(name string, opts ...Option) *Succeed {
	return &Succeed{Decorator{Base: NewBase(name, opts...)}}
}

// Run implements Node.
func (n *Succeed) Run() Status {
	s := resolve(n.child)
	n.lastStatus = s
	if s == StatusError || s == StatusRunning {
		return s
	}
	return StatusSuccess
}

// Fail is the mirror of Succeed: it masks SUCCESS, returning FAILURE for
// any child outcome other than ERROR or RUNNING.
type Fail struct {
	Decorator
}

// NewFail constructs a Fail; wire the child with SetChild.
func NewFail(name string, opts ...Option) *Fail {
	return &Fail{Decorator{Base: NewBase(name, opts...)}}
}

// Run implements Node.
func (n *Fail) Run() Status {
	s := resolve(n.child)
	n.lastStatus = s
	if s == StatusError || s == StatusRunning {
		return s
	}
	return StatusFailure
}

// Repeat re-invokes its child a fixed number of times, or unboundedly when
// constructed with times < 1. The loop stops early only on ERROR or
// RUNNING; FAILURE does not stop it. The child's subtree is reset between
// iterations so each re-invocation executes afresh, while memoized state
// survives across a RUNNING suspension within one iteration.
//
// An unbounded Repeat at the base of a tree is the idiomatic way to make
// the tree tick forever.
type Repeat struct {
	Decorator
	times int
}

// NewRepeat constructs a Repeat. times < 1 repeats without bound.
func NewRepeat(name string, times int, opts ...Option) *Repeat {
	return &Repeat{Decorator: Decorator{Base: NewBase(name, opts...)}, times: times}
}

// Run implements Node.
func (n *Repeat) Run() Status {
	var s Status
	for i := 0; n.times < 1 || i < n.times; i++ {
		s = resolve(n.child)
		n.lastStatus = s
		if s == StatusError || s == StatusRunning {
			break
		}
		if n.times >= 1 && i == n.times-1 {
			break
		}
		n.child.Reset()
	}
	if !n.dontSkip && s.Terminal() && s != StatusError {
		n.completed = true
	}
	return s
}

// RepeatUntil re-invokes its child until it yields the configured exit
// status, ERROR, or RUNNING, whichever comes first, and returns that
// terminating status. Like Repeat, the child's subtree is reset between
// iterations. The exit status must be SUCCESS or FAILURE.
type RepeatUntil struct {
	Decorator
	exit Status
}

// NewRepeatUntil constructs a RepeatUntil. It panics if exit is neither
// StatusSuccess nor StatusFailure.
func NewRepeatUntil(name string, exit Status, opts ...Option) *RepeatUntil {
	if exit != StatusSuccess && exit != StatusFailure {
		panic(fmt.Sprintf("behave: RepeatUntil exit status must be SUCCESS or FAILURE, got %v", exit))
	}
	return &RepeatUntil{Decorator: Decorator{Base: NewBase(name, opts...)}, exit: exit}
}

// Run implements Node.
func (n *RepeatUntil) Run() Status {
	for {
		s := resolve(n.child)
		n.lastStatus = s
		if s == n.exit || s == StatusError || s == StatusRunning {
			return s
		}
		n.child.Reset()
	}
}

// Sleep pauses the calling goroutine for a fixed duration and then returns
// SUCCESS. It has no child; it is a tick-pacing primitive.
type Sleep struct {
	Base
	d time.Duration
}

// NewSleep constructs a Sleep. d < 1ms is rounded up to 1ms.
func NewSleep(name string, d time.Duration, opts ...Option) *Sleep {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return &Sleep{Base: NewBase(name, opts...), d: d}
}

// Run implements Node.
func (n *Sleep) Run() Status {
	time.Sleep(n.d)
	return StatusSuccess
}
