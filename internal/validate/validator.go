// Package validate re-measures finished terminal output and reports whether
// the frames in it are actually rectangular. It shares no scanning code with
// the frame builder: border detection runs on charmbracelet/x/ansi-stripped
// text, so a bug in the builder's escape handling cannot cancel itself out
// here. Width measurement deliberately does go through internal/textwidth,
// because the width math itself is the invariant under test.
package validate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/phindle/termframe/internal/textwidth"
)

// Result describes one detected frame. Validation failure is data, never an
// error: input is frequently captured output from a live run and must not be
// able to crash the harness inspecting it.
type Result struct {
	Valid  bool
	Width  int // true width of the top border, in columns
	Height int // rows from top border to bottom border inclusive
	Line   int // 1-based line number of the top border in the input
	Issues []string
}

// borderSet is one family of box-drawing glyphs the detector recognizes.
type borderSet struct {
	topLeft, topRight         rune
	bottomLeft, bottomRight   rune
	horizontal, vertical      rune
	dividerLeft, dividerRight rune
}

var borderSets = []borderSet{
	{'┌', '┐', '└', '┘', '─', '│', '├', '┤'},
	{'╔', '╗', '╚', '╝', '═', '║', '╠', '╣'},
}

// Validate reports on the first frame found in text. When no frame is
// detected the result is invalid with a single explanatory issue.
func Validate(text string) Result {
	if results := ValidateAll(text); len(results) > 0 {
		return results[0]
	}
	return Result{
		Valid:  false,
		Issues: []string{"no frame detected"},
	}
}

// ValidateAll reports on every frame found in text, in order of appearance.
func ValidateAll(text string) []Result {
	lines := splitLines(text)
	stripped := make([]string, len(lines))
	for i, ln := range lines {
		stripped[i] = strings.TrimRight(ansi.Strip(ln), " \t")
	}

	var results []Result
	for i := 0; i < len(lines); i++ {
		set, ok := topBorderSet(stripped[i])
		if !ok {
			continue
		}
		res, next := checkFrame(lines, stripped, i, set)
		results = append(results, res)
		i = next
	}
	return results
}

// splitLines tolerates \r\n, bare \n and bare \r separators; captured
// streams carry all three.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// topBorderSet reports whether a stripped line opens a frame and which glyph
// family it belongs to. The first rune decides the family, so frames with
// mismatched corners are still detected and reported rather than skipped.
func topBorderSet(s string) (borderSet, bool) {
	runes := []rune(s)
	if len(runes) < 2 {
		return borderSet{}, false
	}
	for _, set := range borderSets {
		if runes[0] != set.topLeft {
			continue
		}
		for _, r := range runes[1 : len(runes)-1] {
			if r != set.horizontal {
				return borderSet{}, false
			}
		}
		return set, true
	}
	return borderSet{}, false
}

// checkFrame walks one frame starting at the top border on line top and
// returns its result plus the index of the last consumed line.
func checkFrame(lines, stripped []string, top int, set borderSet) (Result, int) {
	res := Result{Line: top + 1}
	res.Width = textwidth.Width(strings.TrimRight(lines[top], " \t"))

	// The trimmed border is the reference; stray trailing characters on the
	// top line are its own defect, not every other row's.
	if raw := textwidth.Width(lines[top]); raw != res.Width {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: top border width %d, want %d (%+d)",
			top+1, raw, res.Width, raw-res.Width))
	}

	topRunes := []rune(stripped[top])
	if topRunes[len(topRunes)-1] != set.topRight {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: inconsistent corners: top border opens %q but closes %q",
			top+1, set.topLeft, topRunes[len(topRunes)-1]))
	}

	bottom := -1
	for i := top + 1; i < len(lines); i++ {
		runes := []rune(stripped[i])
		if len(runes) >= 2 && runes[0] == set.bottomLeft {
			bottom = i
			break
		}
		checkInteriorRow(&res, lines[i], runes, i, set)
	}

	if bottom < 0 {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: top border has no matching bottom border", top+1))
		res.Height = len(lines) - top
		res.Valid = false
		return res, len(lines)
	}

	checkBottomRow(&res, lines[bottom], []rune(stripped[bottom]), bottom, set)
	res.Height = bottom - top + 1
	res.Valid = len(res.Issues) == 0
	return res, bottom
}

func checkInteriorRow(res *Result, raw string, runes []rune, idx int, set borderSet) {
	lineNo := idx + 1

	if w := textwidth.Width(raw); w != res.Width {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: width %d, want %d (%+d)", lineNo, w, res.Width, w-res.Width))
	}
	if len(runes) == 0 {
		res.Issues = append(res.Issues, fmt.Sprintf("line %d: empty row inside frame", lineNo))
		return
	}
	if first := runes[0]; first != set.vertical && first != set.dividerLeft {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: missing left border, row starts with %q", lineNo, first))
	}
	if last := runes[len(runes)-1]; last != set.vertical && last != set.dividerRight {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: missing right border, row ends with %q", lineNo, last))
	}
}

func checkBottomRow(res *Result, raw string, runes []rune, idx int, set borderSet) {
	lineNo := idx + 1

	if w := textwidth.Width(raw); w != res.Width {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: bottom border width %d, want %d (%+d)", lineNo, w, res.Width, w-res.Width))
	}
	if last := runes[len(runes)-1]; last != set.bottomRight {
		res.Issues = append(res.Issues, fmt.Sprintf(
			"line %d: inconsistent corners: bottom border opens %q but closes %q",
			lineNo, set.bottomLeft, last))
	}
	for _, r := range runes[1 : len(runes)-1] {
		if r != set.horizontal {
			res.Issues = append(res.Issues, fmt.Sprintf(
				"line %d: bottom border contains %q, want %q", lineNo, r, set.horizontal))
			break
		}
	}
}
