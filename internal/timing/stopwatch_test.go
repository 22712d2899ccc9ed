package timing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Success verifies the operation is invoked exactly once and the
// measured duration is non-negative.
func TestRun_Success(t *testing.T) {
	calls := 0
	elapsed, err := Run(func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
}

// TestRun_Failure verifies the operation's error is returned unchanged and
// the elapsed measurement is still reported on failure.
func TestRun_Failure(t *testing.T) {
	opErr := errors.New("disk on fire")
	elapsed, err := Run(func() error {
		time.Sleep(5 * time.Millisecond)
		return opErr
	})

	assert.ErrorIs(t, err, opErr)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}

// TestRun_MeasuresOperationWindow checks that the measurement covers the
// operation's execution window with millisecond-scale resolution.
func TestRun_MeasuresOperationWindow(t *testing.T) {
	elapsed, err := Run(func() error {
		time.Sleep(20 * time.Millisecond)
		return nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	// Generous upper bound; only guards against measuring something
	// wildly larger than the operation itself.
	assert.Less(t, elapsed, 2*time.Second)
}

// TestSeconds verifies the four-decimal formatting used in result lines.
func TestSeconds(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0.0000"},
		{1500 * time.Microsecond, "0.0015"},
		{250 * time.Millisecond, "0.2500"},
		{3 * time.Second, "3.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Seconds(tt.d))
		})
	}
}
