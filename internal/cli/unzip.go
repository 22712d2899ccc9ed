// Package cli — unzip.go implements the "fsclock unzip" command, the
// inverse of zip: it extracts an archive into a destination directory
// and reports the elapsed time.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/fsclock/internal/archive"
	"github.com/shinji-kodama/fsclock/internal/model"
	"github.com/shinji-kodama/fsclock/internal/timing"
)

// NewUnzipCommand creates the "unzip" cobra command.
func NewUnzipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unzip <archive> <destination>",
		Short: "Extract a zip archive into a directory",
		Long: `Extract a zip archive into the destination directory, recreating the
archived directory structure. Existing files in the destination are
overwritten.

Examples:
  fsclock unzip project.zip ./restored`,

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnzip(args[0], args[1])
		},
	}
}

// runUnzip validates the archive path, times the extraction, and prints
// the result.
func runUnzip(archivePath, destination string) error {
	if cliErr := requireFile(archivePath, "archive"); cliErr != nil {
		return cliErr
	}
	VerboseLog("extracting %s into %s", archivePath, destination)

	var result *archive.Result
	elapsed, err := timing.Run(func() error {
		r, opErr := archive.Extract(archivePath, destination)
		result = r
		return opErr
	})
	if err != nil {
		return failedOperation(model.OpUnzip, elapsed, err)
	}

	message := fmt.Sprintf("extracted %d files into %s (%s)",
		result.Files, result.Path, units.HumanSize(float64(result.Bytes)))
	printUnzipResult(model.NewOperationResult(model.OpUnzip, message, elapsed), result)
	return nil
}

// printUnzipResult outputs the unzip result in text or JSON format.
func printUnzipResult(opResult model.OperationResult, result *archive.Result) {
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
		Destination:    result.Path,
		Files:          result.Files,
		Bytes:          result.Bytes,
		ElapsedSeconds: opResult.ElapsedSeconds,
	}, "", "  ")
	fmt.Println(string(data))
}
