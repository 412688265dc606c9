package behave

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	t.Parallel()

	for s, want := range map[Status]string{
		StatusError:   "ERROR",
		StatusFailure: "FAILURE",
		StatusSuccess: "SUCCESS",
		StatusRunning: "RUNNING",
		StatusNotRun:  "NOTRUN",
		Status(99):    "UNKNOWN",
	} {
		require.Equal(t, want, s.String())
	}
}

func TestStatus_Terminal(t *testing.T) {
	t.Parallel()

	require.True(t, StatusError.Terminal())
	require.True(t, StatusFailure.Terminal())
	require.True(t, StatusSuccess.Terminal())
	require.True(t, StatusNotRun.Terminal())
	require.False(t, StatusRunning.Terminal())
}

func TestStatus_ZeroValueIsNotRun(t *testing.T) {
	t.Parallel()

	var s Status
	require.Equal(t, StatusNotRun, s)
}
