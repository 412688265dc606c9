package behave

import (
	"container/list"
	"log/slog"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultProgramCacheSize bounds the package-level cache of compiled
// condition expressions.
const DefaultProgramCacheSize = 1000

// programCache caches compiled expr programs across all Condition leaves.
// Bounded LRU so long-running processes with dynamic expressions don't
// grow without limit.
var programCache = newProgramLRU(DefaultProgramCacheSize)

// Condition is a leaf node that evaluates a boolean expr-lang expression
// against a snapshot of a Blackboard. SUCCESS when the expression is
// true, FAILURE when false, ERROR when the expression fails to compile or
// evaluate. Unknown blackboard keys evaluate as nil rather than erroring.
type Condition struct {
	Base
	expression string
	bb         *Blackboard
}

// NewCondition constructs a Condition leaf over bb. The expression is
// compiled lazily on first run and cached package-wide.
func NewCondition(name, expression string, bb *Blackboard, opts ...Option) *Condition {
	if name == "" {
		name = expression
	}
	return &Condition{Base: NewBase(name, opts...), expression: expression, bb: bb}
}

// Run implements Node.
func (n *Condition) Run() Status {
	program, err := programCache.get(n.expression)
	if err != nil {
		slog.Debug("behave: condition compile failed", "node", n.name, "err", err)
		return StatusError
	}
	var env map[string]any
	if n.bb != nil {
		env = n.bb.Snapshot()
	}
	out, err := expr.Run(program, env)
	if err != nil {
		slog.Debug("behave: condition eval failed", "node", n.name, "err", err)
		return StatusError
	}
	if ok, _ := out.(bool); ok {
		return StatusSuccess
	}
	return StatusFailure
}

// programLRU is a thread-safe bounded LRU of compiled expr programs.
type programLRU struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used
	maxSize int
}

type programEntry struct {
	expression string
	program    *vm.Program
}

func newProgramLRU(maxSize int) *programLRU {
	if maxSize < 1 {
		maxSize = DefaultProgramCacheSize
	}
	return &programLRU{
		entries: make(map[string]*list.Element, maxSize),
		order:   list.New(),
		maxSize: maxSize,
	}
}

// get returns the compiled program for expression, compiling and caching
// it on a miss.
func (c *programLRU) get(expression string) (*vm.Program, error) {
	c.mu.Lock()
	if elem, ok := c.entries[expression]; ok {
		c.order.MoveToFront(elem)
		program := elem.Value.(*programEntry).program
		c.mu.Unlock()
		return program, nil
	}
	c.mu.Unlock()

	// Compile outside the lock; duplicate compiles of the same expression
	// under contention are harmless.
	program, err := expr.Compile(expression,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[expression]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*programEntry).program, nil
	}
	c.entries[expression] = c.order.PushFront(&programEntry{expression, program})
	for c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*programEntry).expression)
	}
	return program, nil
}

// len returns the number of cached programs.
func (c *programLRU) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
