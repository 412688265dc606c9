package behave

// Composite holds an ordered sequence of child nodes. Child order is
// semantically significant: it is the priority order for Select and the
// pipeline order for Sequence. The composite exclusively owns its children;
// a child must not be wired into more than one parent.
type Composite struct {
	Base
	children []Node
}

// Children returns the ordered child nodes.
func (c *Composite) Children() []Node { return c.children }

// AddChild appends a child to the end of the sequence.
func (c *Composite) AddChild(child Node) {
	c.children = append(c.children, child)
}

// AddChildren appends children in the given order.
func (c *Composite) AddChildren(children ...Node) {
	c.children = append(c.children, children...)
}

// Reset clears the memoization state of the composite and its subtree.
func (c *Composite) Reset() {
	c.Base.Reset()
	for _, child := range c.children {
		child.Reset()
	}
}

// Select evaluates its children in priority order and succeeds as soon as
// one of them succeeds: the logical OR. It returns immediately on the first
// SUCCESS or ERROR. If no child succeeds it returns FAILURE, unless at
// least one child is still RUNNING, in which case it returns RUNNING and
// stays incomplete so the running child is re-polled next tick.
type Select struct {
	Composite
}

// NewSelect constructs an empty Select; wire children with AddChildren.
func NewSelect(name string, opts ...Option) *Select {
	return &Select{Composite{Base: NewBase(name, opts...)}}
}

// Run implements Node.
func (n *Select) Run() Status {
	running := false
	for _, child := range n.children {
		s := resolve(child)
		n.lastStatus = s
		switch s {
		case StatusSuccess, StatusError:
			return s
		case StatusRunning:
			running = true
		}
	}
	if running {
		return StatusRunning
	}
	// All children failed; the selection can never change.
	if !n.dontSkip {
		n.completed = true
	}
	return StatusFailure
}

// Sequence evaluates its children in order and succeeds only when all of
// them succeed: the logical AND. The first non-SUCCESS result is returned
// immediately; FAILURE and ERROR complete the sequence, RUNNING leaves it
// incomplete so the pass resumes next tick.
type Sequence struct {
	Composite
}

// NewSequence constructs an empty Sequence; wire children with AddChildren.
func NewSequence(name string, opts ...Option) *Sequence {
	return &Sequence{Composite{Base: NewBase(name, opts...)}}
}

// Run implements Node.
func (n *Sequence) Run() Status {
	for _, child := range n.children {
		s := resolve(child)
		n.lastStatus = s
		switch s {
		case StatusSuccess:
			continue
		case StatusRunning:
			return StatusRunning
		default:
			if !n.dontSkip {
				n.completed = true
			}
			return s
		}
	}
	return StatusSuccess
}
