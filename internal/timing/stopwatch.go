package timing

import (
	"fmt"
	"time"
)

// Op is a zero-argument operation measured by Run. Operations close over
// their own inputs and outputs; the single function-value indirection is
// the only dispatch mechanism the timer needs.
type Op func() error

// Run measures the wall-clock duration of op.
//
// It records a start mark, invokes op exactly once, and records the end
// mark regardless of whether op completed normally or failed. The elapsed
// duration is always valid and non-negative, even when op returns an
// error — callers report the measurement on both paths.
func Run(op Op) (time.Duration, error) {
	start := time.Now()
	err := op()
	return time.Since(start), err
}

// Seconds formats a duration as seconds with four decimals, the precision
// used in result and failure lines. Sub-millisecond differences between
// runs stay distinguishable.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.4f", d.Seconds())
}
