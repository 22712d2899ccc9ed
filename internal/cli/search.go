// Package cli — search.go implements the "fsclock search" command.
//
// The search command recursively scans file contents under a directory
// for an exact, case-sensitive substring. Binary files are excluded from
// the scan rather than failing it; each matching path is listed on its
// own stdout line, followed by the single summary result line.
package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/fsclock/internal/model"
	"github.com/shinji-kodama/fsclock/internal/search"
	"github.com/shinji-kodama/fsclock/internal/timing"
)

// searchFlags holds the flag values for the search command.
type searchFlags struct {
	include string // --include: doublestar glob restricting scanned paths
}

// NewSearchCommand creates the "search" cobra command.
func NewSearchCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <term> <directory>",
		Short: "Search file contents for a string",
		Long: `Recursively search every text file under the directory for the given
term as an exact, case-sensitive substring. Files that are not decodable
text are skipped without aborting the search.

Examples:
  fsclock search TODO ./project
  fsclock search "func main" ./project --include "**/*.go"`,

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVar(&flags.include, "include", "", "Glob pattern restricting which files are scanned (e.g. \"**/*.go\")")

	return cmd
}

// runSearch validates inputs, times the search, and prints matches plus
// the summary result line.
func runSearch(term, directory string, flags *searchFlags) error {
	if err := model.ValidateTerm(term); err != nil {
		return model.WrapCLIError(model.ExitUsageError, "invalid search term", err)
	}
	if cliErr := requireDirectory(directory, "search directory"); cliErr != nil {
		return cliErr
	}
	VerboseLog("searching for %q under %s", term, directory)

	var result *search.Result
	elapsed, err := timing.Run(func() error {
		r, opErr := search.Run(term, directory, search.Options{Include: flags.include})
		result = r
		return opErr
	})
	if err != nil {
		return failedOperation(model.OpSearch, elapsed, err)
	}

	if result.Skipped > 0 {
		VerboseLog("skipped %d non-text or unreadable files", result.Skipped)
	}

	message := fmt.Sprintf("found %q in %d of %d files", term, len(result.Matches), result.Scanned)
	printSearchResult(model.NewOperationResult(model.OpSearch, message, elapsed), directory, result)
	return nil
}

// printSearchResult outputs the search result in text or JSON format.
// Text mode lists each matching path on its own line before the summary
// line, mirroring the result line contract: exactly one summary line per
// successful run.
func printSearchResult(opResult model.OperationResult, directory string, result *search.Result) {
	if !IsJSONOutput() {
		for _, match := range result.Matches {
			fmt.Println(filepath.Join(directory, filepath.FromSlash(match)))
		}
		fmt.Println(opResult.Line())
		return
	}

	type resultJSON struct {
		Operation      string   `json:"operation"`
		Directory      string   `json:"directory"`
		Matches        []string `json:"matches"`
		MatchingFiles  int      `json:"matchingFiles"`
		Occurrences    int      `json:"occurrences"`
		ScannedFiles   int      `json:"scannedFiles"`
		SkippedFiles   int      `json:"skippedFiles"`
		ElapsedSeconds float64  `json:"elapsedSeconds"`
	}

	data, _ := json.MarshalIndent(resultJSON{
		Operation:      opResult.Operation.String(),
		Directory:      directory,
		Matches:        result.Matches,
		MatchingFiles:  len(result.Matches),
		Occurrences:    result.Occurrences,
		ScannedFiles:   result.Scanned,
		SkippedFiles:   result.Skipped,
		ElapsedSeconds: opResult.ElapsedSeconds,
	}, "", "  ")
	fmt.Println(string(data))
}
