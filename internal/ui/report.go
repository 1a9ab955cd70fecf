package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/phindle/termframe/internal/validate"
)

// Report styles. Kept separate from the fatih/color helpers in term.go:
// these style whole report blocks, not inline words.
var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	passBadgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failBadgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	issueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).PaddingLeft(4)
	dimStyle         = lipgloss.NewStyle().Faint(true)
)

// printResults prints a per-frame validation report for one input source.
func printResults(w io.Writer, source string, results []validate.Result) {
	fmt.Fprintln(w, reportTitleStyle.Render(fmt.Sprintf("%s: %d frame(s)", source, len(results))))

	if len(results) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  no frames detected"))
		return
	}

	for i, res := range results {
		badge := passBadgeStyle.Render("PASS")
		if !res.Valid {
			badge = failBadgeStyle.Render("FAIL")
		}
		fmt.Fprintf(w, "  frame %d @ line %d: %d×%d  %s\n",
			i+1, res.Line, res.Width, res.Height, badge)
		for _, issue := range res.Issues {
			fmt.Fprintln(w, issueStyle.Render(issue))
		}
	}
}
