package behave

// Root is the driving loop of a tree: it re-invokes its child while the
// child reports RUNNING and returns the child's first terminal status.
// Root applies no skip protocol of its own; memoization inside the subtree
// is what keeps re-polling cheap.
type Root struct {
	Decorator
}

// NewRoot constructs a Root; wire the tree body with SetChild.
func NewRoot(opts ...Option) *Root {
	return &Root{Decorator{Base: NewBase("root", opts...)}}
}

// Run implements Node. It blocks until the subtree resolves to a terminal
// status; a Root with no child returns ERROR.
func (n *Root) Run() Status {
	if n.child == nil {
		return StatusError
	}
	s := n.child.Run()
	for s == StatusRunning {
		s = n.child.Run()
	}
	return s
}

// Tree owns a Root decorator as its single entry point.
type Tree struct {
	root *Root
}

// NewTree constructs a tree with an empty Root.
func NewTree() *Tree {
	return &Tree{root: NewRoot()}
}

// SetRootChild installs the tree body as the Root's child.
func (t *Tree) SetRootChild(n Node) {
	t.root.SetChild(n)
}

// Run evaluates the tree once: it delegates to Root and blocks until the
// subtree resolves to a terminal status.
func (t *Tree) Run() Status {
	return t.root.Run()
}

// Reset clears all memoization state below the Root so the next Run
// evaluates the whole tree afresh.
func (t *Tree) Reset() {
	t.root.Reset()
}
