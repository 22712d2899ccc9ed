// Package cli implements the cobra-based CLI commands for fsclock.
//
// Each subcommand (zip, unzip, search, copy) is defined in its own file
// within this package. This file defines the root command that serves as
// the parent for all subcommands and handles global flags, error
// formatting, and exit codes.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/fsclock/internal/model"
	"github.com/shinji-kodama/fsclock/internal/timing"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, output uses structured JSON for machine consumption.
	// When false (default), output is the single human-readable result line.
	jsonOutput bool

	// verbose enables detailed trace output for debugging.
	// When true, additional information about the operation is printed
	// to stderr; stdout keeps the one-result-line contract either way.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by the
// subcommands, each of which runs exactly one filesystem operation and
// reports its wall-clock duration.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fsclock",
		Short: "Time common filesystem operations",
		Long: `fsclock runs a single filesystem task — archiving a directory, searching
file contents for a string, copying a file or directory tree, or extracting
an archive — and reports how long it took.

Each invocation runs exactly one operation. The elapsed time covers only
the operation itself, not argument parsing or result formatting.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// (zip.go, search.go, etc.) and returns a *cobra.Command.
	rootCmd.AddCommand(NewZipCommand())
	rootCmd.AddCommand(NewUnzipCommand())
	rootCmd.AddCommand(NewSearchCommand())
	rootCmd.AddCommand(NewCopyCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// Subcommand handlers always return *model.CLIError, so any plain error
// reaching this point came from cobra itself — an unknown subcommand,
// wrong argument count, or bad flag — and is treated as a usage error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitUsageError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what the operation is doing.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// requireDirectory validates that path exists and is a directory before
// the timer starts. Top-level path validation failures abort with no
// operation attempted and no elapsed measurement.
func requireDirectory(path, what string) *model.CLIError {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCLIError(model.ExitPathNotFound, fmt.Sprintf("%s does not exist: %s", what, path))
		}
		return model.WrapCLIError(classifyError(err), fmt.Sprintf("cannot access %s", path), err)
	}
	if !info.IsDir() {
		return model.NewCLIError(model.ExitWrongPathKind, fmt.Sprintf("%s is not a directory: %s", what, path))
	}
	return nil
}

// requireFile validates that path exists and is a regular file before
// the timer starts.
func requireFile(path, what string) *model.CLIError {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCLIError(model.ExitPathNotFound, fmt.Sprintf("%s does not exist: %s", what, path))
		}
		return model.WrapCLIError(classifyError(err), fmt.Sprintf("cannot access %s", path), err)
	}
	if info.IsDir() {
		return model.NewCLIError(model.ExitWrongPathKind, fmt.Sprintf("%s is not a regular file: %s", what, path))
	}
	return nil
}

// requireExists validates that path exists (file or directory) before
// the timer starts, and reports which kind it is.
func requireExists(path, what string) (os.FileInfo, *model.CLIError) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewCLIError(model.ExitPathNotFound, fmt.Sprintf("%s does not exist: %s", what, path))
		}
		return nil, model.WrapCLIError(classifyError(err), fmt.Sprintf("cannot access %s", path), err)
	}
	return info, nil
}

// classifyError maps a filesystem error to the exit code taxonomy.
func classifyError(err error) model.ExitCode {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return model.ExitPathNotFound
	case errors.Is(err, os.ErrPermission):
		return model.ExitPermissionError
	default:
		return model.ExitGeneralError
	}
}

// failedOperation wraps a mid-operation failure into a CLIError whose
// message carries the elapsed time up to the failure point, so failed
// operations still show how long they ran before failing.
func failedOperation(op model.Operation, elapsed time.Duration, err error) error {
	return model.WrapCLIError(
		classifyError(err),
		fmt.Sprintf("%s failed after %s s", op, timing.Seconds(elapsed)),
		err,
	)
}
