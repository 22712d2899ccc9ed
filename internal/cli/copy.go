// Package cli — copy.go implements the "fsclock copy" command.
//
// The copy command duplicates a file byte-for-byte or a directory tree
// recursively, and reports how long the copy took.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/fsclock/internal/fscopy"
	"github.com/shinji-kodama/fsclock/internal/model"
	"github.com/shinji-kodama/fsclock/internal/timing"
)

// NewCopyCommand creates the "copy" cobra command.
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <source> <destination>",
		Short: "Copy a file or directory tree",
		Long: `Copy a file byte-for-byte, or a directory recursively with its full
structure preserved. Existing destination files are overwritten; the
destination's parent directory must already exist.

Examples:
  fsclock copy notes.txt backup/notes.txt
  fsclock copy ./project ./project_copy`,

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(args[0], args[1])
		},
	}
}

// runCopy validates the source, times the copy, and prints the result.
func runCopy(source, destination string) error {
	srcInfo, cliErr := requireExists(source, "source")
	if cliErr != nil {
		return cliErr
	}
	VerboseLog("copying %s to %s", source, destination)

	var result *fscopy.Result
	elapsed, err := timing.Run(func() error {
		r, opErr := fscopy.Copy(source, destination)
		result = r
		return opErr
	})
	if err != nil {
		return failedOperation(model.OpCopy, elapsed, err)
	}

	// Directory copies report the file count; single-file copies just
	// name the destination and size.
	var message string
	if srcInfo.IsDir() {
		message = fmt.Sprintf("copied %d files to %s (%s)",
			result.Files, result.Destination, units.HumanSize(float64(result.Bytes)))
	} else {
		message = fmt.Sprintf("copied to %s (%s)",
			result.Destination, units.HumanSize(float64(result.Bytes)))
	}
	printCopyResult(model.NewOperationResult(model.OpCopy, message, elapsed), result)
	return nil
}

// printCopyResult outputs the copy result in text or JSON format.
func printCopyResult(opResult model.OperationResult, result *fscopy.Result) {
	if !IsJSONOutput() {
		fmt.Println(opResult.Line())
		return
	}

	type resultJSON struct {
		Operation      string  `json:"operation"`
		Destination    string  `json:"destination"`
		Files          int     `json:"files"`
		Bytes          int64   `json:"bytes"`
		ElapsedSeconds float64 `json:"elapsedSeconds"`
	}

	data, _ := json.MarshalIndent(resultJSON{
		Operation:      opResult.Operation.String(),
		Destination:    result.Destination,
		Files:          result.Files,
		Bytes:          result.Bytes,
		ElapsedSeconds: opResult.ElapsedSeconds,
	}, "", "  ")
	fmt.Println(string(data))
}
