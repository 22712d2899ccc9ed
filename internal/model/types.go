// Package model defines the domain types for the fsclock CLI.
//
// All entities in this package are transient, process-lifetime values:
// an invocation selects exactly one operation, the operation runs to
// completion or fails, and the result is printed once and discarded.
// Nothing persists between invocations beyond the filesystem side effects
// the operations themselves produce.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Operation identifies which filesystem task an invocation runs.
// Exactly one operation runs per invocation; there is no batching.
type Operation string

const (
	// OpZip archives a directory into a compressed zip file.
	OpZip Operation = "zip"

	// OpUnzip extracts a zip archive into a destination directory.
	OpUnzip Operation = "unzip"

	// OpSearch searches file contents under a directory for a substring.
	OpSearch Operation = "search"

	// OpCopy copies a file or directory tree to a destination path.
	OpCopy Operation = "copy"
)

// String returns the string representation of Operation.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI result lines.
func (o Operation) String() string {
	return string(o)
}

// IsValid checks whether the Operation value is one of the
// predefined operations.
func (o Operation) IsValid() bool {
	switch o {
	case OpZip, OpUnzip, OpSearch, OpCopy:
		return true
	default:
		return false
	}
}

// ParseOperation converts a string to an Operation.
// Returns an error if the string does not match any known operation.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(s))
	if !op.IsValid() {
		return "", fmt.Errorf("invalid operation: %q (valid: zip, unzip, search, copy)", s)
	}
	return op, nil
}

// ValidateTerm checks that a search term is usable. An empty term would
// match every file, so it is rejected as a usage error before any
// filesystem work starts.
func ValidateTerm(term string) error {
	if term == "" {
		return fmt.Errorf("search term must not be empty")
	}
	return nil
}

// OperationResult pairs an operation's outcome message with its measured
// duration. It is created after the timed call returns and consumed once
// by the reporting step; it is never stored.
//
// Elapsed covers exactly the operation's execution window — argument
// parsing and result formatting happen outside the measurement.
type OperationResult struct {
	// Operation is the subcommand that produced this result.
	Operation Operation `json:"operation"`

	// Message is the human-readable outcome summary, e.g. the archive
	// path and file count, or the number of matching files.
	Message string `json:"message"`

	// Elapsed is the wall-clock duration of the operation itself.
	Elapsed time.Duration `json:"-"`

	// ElapsedSeconds is Elapsed expressed as seconds, for JSON output.
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}

// NewOperationResult builds an OperationResult, deriving the seconds
// field from the duration so the two never disagree.
func NewOperationResult(op Operation, message string, elapsed time.Duration) OperationResult {
	return OperationResult{
		Operation:      op,
		Message:        message,
		Elapsed:        elapsed,
		ElapsedSeconds: elapsed.Seconds(),
	}
}

// Line formats the single stdout result line in the CLI contract format:
//
//	<operation>: <message> (elapsed: <seconds> s)
//
// Seconds are printed with four decimals, enough to distinguish
// millisecond-scale differences between runs.
func (r OperationResult) Line() string {
	return fmt.Sprintf("%s: %s (elapsed: %.4f s)", r.Operation, r.Message, r.Elapsed.Seconds())
}

// ExitCode defines the CLI exit codes. These codes allow scripts and CI
// systems to programmatically distinguish failure causes.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified or mid-operation error.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates a bad subcommand or missing/malformed
	// arguments. Detected before any operation runs.
	ExitUsageError ExitCode = 2

	// ExitPathNotFound indicates a source path or directory is missing.
	ExitPathNotFound ExitCode = 3

	// ExitWrongPathKind indicates a path exists but is the wrong kind
	// for the requested operation (file where a directory is required,
	// or the reverse).
	ExitWrongPathKind ExitCode = 4

	// ExitPermissionError indicates an unreadable source or unwritable
	// destination.
	ExitPermissionError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
