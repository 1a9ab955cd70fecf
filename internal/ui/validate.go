package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phindle/termframe/internal/validate"
)

func (a *App) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check captured output for frame integrity",
		Long: `Re-measure finished terminal output and report on every frame in it.

Each detected frame is checked for rectangularity: every row must measure
exactly the top border's true width, with matching border glyphs and
corners. Exits non-zero when any frame fails.`,
		Example: `  termframe validate capture.ans
  termframe render welcome.ans --var node=1 --crlf | termframe validate`,
		RunE: func(_ *cobra.Command, args []string) error {
			failed := false

			if len(args) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				if !reportFile("stdin", string(data)) {
					failed = true
				}
			}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				if !reportFile(path, string(data)) {
					failed = true
				}
			}

			if failed {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}
}

// reportFile validates one input and prints its report. Returns true when
// every detected frame is valid.
func reportFile(name, text string) bool {
	results := validate.ValidateAll(text)
	printResults(os.Stdout, name, results)
	for _, res := range results {
		if !res.Valid {
			return false
		}
	}
	return len(results) > 0
}
