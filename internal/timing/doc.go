// Package timing implements the stopwatch wrapper around filesystem
// operations for the fsclock CLI.
//
// The core contract is Run: it accepts a zero-argument operation, marks a
// monotonic start, invokes the operation exactly once, and returns the
// elapsed duration together with the operation's error. The measurement
// is returned on every path, so failed operations still report how long
// they ran before failing.
//
// Go's time.Now carries a monotonic clock reading, so the subtraction in
// time.Since is immune to wall-clock adjustments. Precision is used for
// informational reporting only — nothing depends on it for correctness.
package timing
