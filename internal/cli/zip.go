// Package cli — zip.go implements the "fsclock zip" command.
//
// The zip command archives the contents of a directory into a single
// compressed zip file and reports how long the archiving took.
//
// Flow:
//  1. Validate the source directory (before the timer starts)
//  2. Resolve the output path (--output or derived <dirname>.zip)
//  3. Run the archive operation under the timer
//  4. Print the result line (text or JSON)
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

// zipFlags holds the flag values for the zip command.
type zipFlags struct {
	output string // --output: destination archive path
}

// NewZipCommand creates the "zip" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewZipCommand() *cobra.Command {
	flags := &zipFlags{}

	cmd := &cobra.Command{
		Use:   "zip <source_dir>",
		Short: "Archive a directory into a zip file",
		Long: `Archive every file and subdirectory under the source directory into a
single compressed zip file, preserving relative paths as entry names.

An existing file at the output path is overwritten.

Examples:
  fsclock zip ./project
  fsclock zip ./project --output backups/project.zip`,

		// Args validates that exactly one positional argument (the source
		// directory) is provided.
		Args: cobra.ExactArgs(1),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZip(args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.output, "output", "", "Destination archive path (default: <dirname>.zip)")

	return cmd
}

// runZip validates inputs, times the archive operation, and prints the
// result. Validation happens before the timer starts so the elapsed
// measurement covers only the operation itself.
func runZip(sourceDir string, flags *zipFlags) error {
	if cliErr := requireDirectory(sourceDir, "source directory"); cliErr != nil {
		return cliErr
	}

	output := flags.output
	if output == "" {
		output = archive.DefaultOutputPath(sourceDir)
	} else {
		output = archive.EnsureZipSuffix(output)
	}
	VerboseLog("archiving %s into %s", sourceDir, output)

	var result *archive.Result
	elapsed, err := timing.Run(func() error {
		r, opErr := archive.Create(sourceDir, output)
		result = r
		return opErr
	})
	if err != nil {
		return failedOperation(model.OpZip, elapsed, err)
	}

	message := fmt.Sprintf("created %s (%d files, %s)",
		result.Path, result.Files, units.HumanSize(float64(result.Bytes)))
	printZipResult(model.NewOperationResult(model.OpZip, message, elapsed), result)
	return nil
}

// printZipResult outputs the zip result in text or JSON format.
func printZipResult(opResult model.OperationResult, result *archive.Result) {
	if !IsJSONOutput() {
		fmt.Println(opResult.Line())
		return
	}

	type resultJSON struct {
		Operation      string  `json:"operation"`
		Output         string  `json:"output"`
		Files          int     `json:"files"`
		Bytes          int64   `json:"bytes"`
		ElapsedSeconds float64 `json:"elapsedSeconds"`
	}

	data, _ := json.MarshalIndent(resultJSON{
		Operation:      opResult.Operation.String(),
		Output:         result.Path,
		Files:          result.Files,
		Bytes:          result.Bytes,
		ElapsedSeconds: opResult.ElapsedSeconds,
	}, "", "  ")
	fmt.Println(string(data))
}
