package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phindle/termframe/internal/textwidth"
)

func (a *App) widthCmd() *cobra.Command {
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "width [text]",
		Short: "Measure the true column width of text",
		Long: `Measure the true on-screen column width of text.

Escape sequences count zero columns, East-Asian wide characters and emoji
count two. With no argument, text is read from stdin and a per-line report
is printed, including a width-consistency summary across all lines.`,
		Example: `  termframe width "🎨 A cute dragon"
  termframe width --breakdown "\x1b[36mHello\x1b[0m"
  termframe render welcome.ans --var node=1 | termframe width`,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				text := strings.Join(args, " ")
				if breakdown {
					printBreakdown(text)
					return nil
				}
				fmt.Println(textwidth.Width(text))
				return nil
			}

			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			printLineReport(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&breakdown, "breakdown", "b", false, "Print a per-unit width breakdown")
	return cmd
}

// printBreakdown prints one row per scanned unit: the unit itself, its kind
// and its column width.
func printBreakdown(text string) {
	fmt.Println(formatHeader("unit        width  kind"))
	total := 0
	for _, u := range textwidth.Scan(text) {
		kind := "cluster"
		label := fmt.Sprintf("%-10q", u.Text)
		if u.IsEscape {
			kind = "escape"
			label = formatEscape(label)
		}
		fmt.Printf("%s  %5d  %s\n", label, u.Width, kind)
		total += u.Width
	}
	fmt.Printf("\ntotal: %d columns\n", total)
}

// printLineReport prints per-line raw/visual/escape counts plus a
// consistency summary, for inspecting captured frame output.
func printLineReport(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	previewWidth := termWidth() - 40
	if previewWidth < 20 {
		previewWidth = 20
	}

	var widths []int
	for i, line := range lines {
		escapes := 0
		visible := ""
		for _, u := range textwidth.Scan(line) {
			if u.IsEscape {
				escapes++
			} else {
				visible += u.Text
			}
		}
		w := textwidth.Width(line)
		if visible != "" {
			widths = append(widths, w)
		}

		preview := visible
		if textwidth.Width(preview) > previewWidth {
			preview = textwidth.Truncate(preview, previewWidth)
		}
		fmt.Printf("line %2d: raw=%3d  width=%3d  escapes=%2d | %s\n",
			i+1, len(line), w, escapes, preview)
	}

	if len(widths) == 0 {
		return
	}
	minW, maxW := widths[0], widths[0]
	for _, w := range widths[1:] {
		if w < minW {
			minW = w
		}
		if w > maxW {
			maxW = w
		}
	}
	fmt.Println()
	if minW == maxW {
		fmt.Println(formatOK(fmt.Sprintf("consistent width: %d columns", minW)))
	} else {
		fmt.Println(formatFail(fmt.Sprintf("inconsistent width: %d to %d columns (%d apart)",
			minW, maxW, maxW-minW)))
	}
}
