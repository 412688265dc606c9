package behave

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_MemoizesTerminalStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	leaf := scriptedLeaf("leaf", &calls, []Status{StatusSuccess})

	require.Equal(t, StatusNotRun, leaf.LastStatus())
	require.False(t, leaf.Completed())

	require.Equal(t, StatusSuccess, resolve(leaf))
	require.True(t, leaf.Completed())
	require.Equal(t, StatusSuccess, leaf.LastStatus())
	require.EqualValues(t, 1, calls.Load())

	// Repeated resolutions reuse the cache without re-invoking the logic.
	for range 5 {
		require.Equal(t, StatusSuccess, resolve(leaf))
	}
	require.EqualValues(t, 1, calls.Load())
}

func TestResolve_RunningIsNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	leaf := scriptedLeaf("leaf", &calls, []Status{StatusRunning, StatusRunning, StatusFailure})

	require.Equal(t, StatusRunning, resolve(leaf))
	require.False(t, leaf.Completed())
	require.Equal(t, StatusRunning, leaf.LastStatus())

	require.Equal(t, StatusRunning, resolve(leaf))
	require.False(t, leaf.Completed())

	require.Equal(t, StatusFailure, resolve(leaf))
	require.True(t, leaf.Completed())
	require.EqualValues(t, 3, calls.Load())
}

func TestResolve_DontSkipAlwaysExecutes(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	leaf := scriptedLeaf("leaf", &calls, []Status{StatusSuccess}, DontSkip())

	for range 4 {
		require.Equal(t, StatusSuccess, resolve(leaf))
	}
	require.EqualValues(t, 4, calls.Load())
	require.False(t, leaf.Completed())
	require.Equal(t, StatusSuccess, leaf.LastStatus())
}

func TestResolve_NilChild(t *testing.T) {
	t.Parallel()

	require.Equal(t, StatusError, resolve(nil))
}

func TestBase_Reset(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	leaf := scriptedLeaf("leaf", &calls, []Status{StatusFailure, StatusSuccess})

	require.Equal(t, StatusFailure, resolve(leaf))
	require.True(t, leaf.Completed())

	leaf.Reset()
	require.False(t, leaf.Completed())
	require.Equal(t, StatusNotRun, leaf.LastStatus())

	require.Equal(t, StatusSuccess, resolve(leaf))
	require.EqualValues(t, 2, calls.Load())
}

func TestAction_NilFuncIsError(t *testing.T) {
	t.Parallel()

	n := NewAction("broken", nil)
	require.Equal(t, StatusError, n.Run())
}

func TestAction_DefaultName(t *testing.T) {
	t.Parallel()

	n := NewAction("", func() Status { return StatusSuccess })
	require.NotEmpty(t, n.Name())
	require.Contains(t, n.Name(), "action-")
}
