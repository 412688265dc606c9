package behave

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect_FirstSuccessShortCircuits(t *testing.T) {
	t.Parallel()

	var first, second, third atomic.Int32
	sel := NewSelect("sel")
	sel.AddChildren(
		scriptedLeaf("a", &first, []Status{StatusFailure}),
		scriptedLeaf("b", &second, []Status{StatusSuccess}),
		scriptedLeaf("c", &third, []Status{StatusSuccess}),
	)

	require.Equal(t, StatusSuccess, sel.Run())
	require.EqualValues(t, 1, first.Load())
	require.EqualValues(t, 1, second.Load())
	require.EqualValues(t, 0, third.Load(), "children after the first SUCCESS must not be evaluated")
}

func TestSelect_ErrorShortCircuits(t *testing.T) {
	t.Parallel()

	var third atomic.Int32
	sel := NewSelect("sel")
	sel.AddChildren(
		scriptedLeaf("a", nil, []Status{StatusFailure}),
		scriptedLeaf("b", nil, []Status{StatusError}),
		scriptedLeaf("c", &third, []Status{StatusSuccess}),
	)

	require.Equal(t, StatusError, sel.Run())
	require.EqualValues(t, 0, third.Load())
}

func TestSelect_AllFail(t *testing.T) {
	t.Parallel()

	sel := NewSelect("sel")
	sel.AddChildren(
		scriptedLeaf("a", nil, []Status{StatusFailure}),
		scriptedLeaf("b", nil, []Status{StatusFailure}),
	)

	require.Equal(t, StatusFailure, sel.Run())
	require.True(t, sel.Completed(), "an all-failed Select can never change and locks in")
}

func TestSelect_RunningChildKeepsItOpen(t *testing.T) {
	t.Parallel()

	var slow atomic.Int32
	sel := NewSelect("sel")
	sel.AddChildren(
		scriptedLeaf("a", nil, []Status{StatusFailure}),
		scriptedLeaf("b", &slow, []Status{StatusRunning, StatusSuccess}),
	)

	require.Equal(t, StatusRunning, sel.Run())
	require.False(t, sel.Completed())

	// The failed sibling is memoized; only the running child re-executes.
	require.Equal(t, StatusSuccess, sel.Run())
	require.EqualValues(t, 2, slow.Load())
}

func TestSelect_Empty(t *testing.T) {
	t.Parallel()

	sel := NewSelect("sel")
	require.Equal(t, StatusFailure, sel.Run())
}

func TestSequence_AllSucceed(t *testing.T) {
	t.Parallel()

	seq := NewSequence("seq")
	seq.AddChildren(
		scriptedLeaf("a", nil, []Status{StatusSuccess}),
		scriptedLeaf("b", nil, []Status{StatusSuccess}),
		scriptedLeaf("c", nil, []Status{StatusSuccess}),
	)

	require.Equal(t, StatusSuccess, seq.Run())
}

func TestSequence_FailureShortCircuits(t *testing.T) {
	t.Parallel()

	var third atomic.Int32
	seq := NewSequence("seq")
	seq.AddChildren(
		scriptedLeaf("a", nil, []Status{StatusSuccess}),
		scriptedLeaf("b", nil, []Status{StatusFailure}),
		scriptedLeaf("c", &third, []Status{StatusSuccess}),
	)

	require.Equal(t, StatusFailure, seq.Run())
	require.EqualValues(t, 0, third.Load())
	require.True(t, seq.Completed())
	require.Equal(t, StatusFailure, seq.LastStatus())
}

func TestSequence_RunningSuspendsWithoutCompleting(t *testing.T) {
	t.Parallel()

	var first atomic.Int32
	seq := NewSequence("seq")
	seq.AddChildren(
		scriptedLeaf("a", &first, []Status{StatusSuccess}),
		scriptedLeaf("b", nil, []Status{StatusRunning, StatusSuccess}),
	)

	require.Equal(t, StatusRunning, seq.Run())
	require.False(t, seq.Completed())

	// Resuming the pass must not re-run the finished first child.
	require.Equal(t, StatusSuccess, seq.Run())
	require.EqualValues(t, 1, first.Load())
}

func TestSequence_ErrorPropagates(t *testing.T) {
	t.Parallel()

	seq := NewSequence("seq")
	seq.AddChildren(
		scriptedLeaf("a", nil, []Status{StatusSuccess}),
		scriptedLeaf("b", nil, []Status{StatusError}),
	)

	require.Equal(t, StatusError, seq.Run())
	require.True(t, seq.Completed())
}

func TestSequence_Empty(t *testing.T) {
	t.Parallel()

	seq := NewSequence("seq")
	require.Equal(t, StatusSuccess, seq.Run())
}

func TestComposite_ResetRecurses(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	leaf := scriptedLeaf("leaf", &calls, []Status{StatusSuccess})
	seq := NewSequence("seq")
	seq.AddChild(leaf)

	require.Equal(t, StatusSuccess, seq.Run())
	require.True(t, leaf.Completed())

	seq.Reset()
	require.False(t, leaf.Completed())

	require.Equal(t, StatusSuccess, seq.Run())
	require.EqualValues(t, 2, calls.Load())
}

func TestComposite_Children(t *testing.T) {
	t.Parallel()

	a := scriptedLeaf("a", nil, []Status{StatusSuccess})
	b := scriptedLeaf("b", nil, []Status{StatusSuccess})
	sel := NewSelect("sel")
	sel.AddChildren(a, b)

	children := sel.Children()
	require.Len(t, children, 2)
	require.Equal(t, "a", children[0].Name())
	require.Equal(t, "b", children[1].Name())
}
