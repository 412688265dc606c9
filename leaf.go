package behave

import (
	"github.com/google/uuid"

	"github.com/behavetree/behave/container"
)

// Action is a leaf node that runs a user-supplied function. The function
// receives no arguments; it reads and writes whatever caller-owned state
// (a Blackboard, a container, plain variables) it captured at
// construction time.
type Action struct {
	Base
	fn func() Status
}

// NewAction constructs an Action leaf. An empty name gets a generated
// "action-<id>" default. A nil fn yields ERROR when run.
func NewAction(name string, fn func() Status, opts ...Option) *Action {
	if name == "" {
		name = "action-" + uuid.NewString()[:8]
	}
	return &Action{Base: NewBase(name, opts...), fn: fn}
}

// Run implements Node.
func (n *Action) Run() Status {
	if n.fn == nil {
		return StatusError
	}
	return n.fn()
}

// The leaves below bridge a tree to a bounded container and caller-owned
// variable slots. They only ever return SUCCESS or FAILURE; container
// access is non-blocking so a tree walk can never stall on a full or
// empty container.

// NewPushToStack constructs a leaf that pushes the current value of item
// onto s. FAILURE when the stack is full or item is nil.
func NewPushToStack[T any](name string, item *T, s *container.Stack[T], opts ...Option) *Action {
	return NewAction(name, func() Status {
		if item == nil || !s.TryPush(*item) {
			return StatusFailure
		}
		return StatusSuccess
	}, opts...)
}

// NewReplaceStack constructs a leaf that replaces the contents of s with
// src (bottom to top), optionally pushing one extra item on top when
// extra is non-nil. FAILURE when the replacement exceeds the stack's
// capacity.
func NewReplaceStack[T any](name string, s *container.Stack[T], src []T, extra *T, opts ...Option) *Action {
	return NewAction(name, func() Status {
		if err := s.Replace(src); err != nil {
			return StatusFailure
		}
		if extra != nil && !s.TryPush(*extra) {
			return StatusFailure
		}
		return StatusSuccess
	}, opts...)
}

// NewPopFromStack constructs a leaf that pops the top of s into the
// caller-provided slot out. FAILURE when the stack is empty.
func NewPopFromStack[T any](name string, out *T, s *container.Stack[T], opts ...Option) *Action {
	return NewAction(name, func() Status {
		v, ok := s.TryPop()
		if !ok {
			return StatusFailure
		}
		*out = v
		return StatusSuccess
	}, opts...)
}

// NewStackIsEmpty constructs a leaf that succeeds iff s holds no items.
func NewStackIsEmpty[T any](name string, s *container.Stack[T], opts ...Option) *Action {
	return NewAction(name, func() Status {
		if s.Empty() {
			return StatusSuccess
		}
		return StatusFailure
	}, opts...)
}

// NewSetVariable constructs a leaf that copies the current value of src
// into the caller-provided slot dst. Always SUCCESS.
func NewSetVariable[T any](name string, dst, src *T, opts ...Option) *Action {
	return NewAction(name, func() Status {
		*dst = *src
		return StatusSuccess
	}, opts...)
}

// NewIsUnset constructs a leaf that succeeds iff the caller-provided slot
// still holds its zero value (e.g. a nil pointer).
func NewIsUnset[T comparable](name string, slot *T, opts ...Option) *Action {
	return NewAction(name, func() Status {
		var zero T
		if *slot == zero {
			return StatusSuccess
		}
		return StatusFailure
	}, opts...)
}
