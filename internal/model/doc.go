// Package model defines the domain types and value objects for the
// fsclock CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Operation, OperationResult) are transient values that live
// for a single invocation — there are no persistent state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
