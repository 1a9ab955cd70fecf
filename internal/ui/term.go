package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI.
var (
	// Passing checks: green
	colorOK = color.New(color.FgGreen)

	// Failing checks: bold red so broken frames are impossible to miss
	colorFail = color.New(color.FgRed, color.Bold)

	// Escape sequences in breakdowns: cyan
	colorEscape = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatOK formats text for a passing check.
func formatOK(s string) string {
	return colorOK.Sprint(s)
}

// formatFail formats text for a failing check.
func formatFail(s string) string {
	return colorFail.Sprint(s)
}

// formatEscape formats an escape-sequence label.
func formatEscape(s string) string {
	return colorEscape.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
