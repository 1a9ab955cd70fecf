// Package frame builds bordered rectangular blocks whose every row measures
// the same true column width, no matter what mix of color codes, emoji or
// East-Asian wide characters the content carries.
package frame

import (
	"fmt"
	"strings"

	"github.com/phindle/termframe/internal/textwidth"
)

// Alignment controls horizontal placement of content inside a frame row.
type Alignment int

const (
	AlignDefault Alignment = iota // fall back to Spec.Align
	AlignLeft
	AlignCenter
	AlignRight
)

// Style selects one of the supported border glyph sets.
type Style int

const (
	StyleSingle Style = iota
	StyleDouble
)

// ParseStyle maps a config/CLI string to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "single":
		return StyleSingle, nil
	case "double":
		return StyleDouble, nil
	}
	return StyleSingle, &SpecError{Reason: fmt.Sprintf("unknown border style %q", s)}
}

func (s Style) String() string {
	if s == StyleDouble {
		return "double"
	}
	return "single"
}

// glyphs is one complete border glyph set.
type glyphs struct {
	topLeft, topRight         string
	bottomLeft, bottomRight   string
	horizontal, vertical      string
	dividerLeft, dividerRight string
}

var glyphSets = map[Style]glyphs{
	StyleSingle: {
		topLeft: "┌", topRight: "┐",
		bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│",
		dividerLeft: "├", dividerRight: "┤",
	},
	StyleDouble: {
		topLeft: "╔", topRight: "╗",
		bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		dividerLeft: "╠", dividerRight: "╣",
	},
}

// Spec is the immutable per-call frame configuration.
type Spec struct {
	InteriorWidth  int       // content columns between the borders; must be >= 1
	InteriorHeight int       // exact content rows when > 0; 0 means as many as given
	Style          Style     // border glyph set
	Align          Alignment // default alignment for lines that do not set one
	MaxWidth       int       // when > 0, InteriorWidth+2 must not exceed it
	Ellipsis       bool      // append … to truncated lines when it fits
}

// Line is one row of frame content. A Divider line ignores Text and renders
// as a horizontal rule joined into the side borders.
type Line struct {
	Text    string
	Align   Alignment
	Divider bool
}

// SpecError reports a caller configuration mistake. Frames are never built
// from a bad spec; a visibly broken screen is worse than a loud failure.
type SpecError struct {
	Reason string
}

func (e *SpecError) Error() string {
	return "invalid frame spec: " + e.Reason
}

const sgrReset = "\x1b[0m"

// Build renders the frame as individual rows, top border first. Every
// returned row has true width spec.InteriorWidth+2.
func Build(spec Spec, lines []Line) ([]string, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	g := glyphSets[spec.Style]
	rule := strings.Repeat(g.horizontal, spec.InteriorWidth)

	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, g.topLeft+rule+g.topRight)

	content := lines
	if spec.InteriorHeight > 0 && len(content) > spec.InteriorHeight {
		content = content[:spec.InteriorHeight]
	}
	for _, ln := range content {
		if ln.Divider {
			rows = append(rows, g.dividerLeft+rule+g.dividerRight)
			continue
		}
		rows = append(rows, g.vertical+fitLine(spec, ln)+g.vertical)
	}
	for i := len(content); i < spec.InteriorHeight; i++ {
		rows = append(rows, g.vertical+strings.Repeat(" ", spec.InteriorWidth)+g.vertical)
	}

	rows = append(rows, g.bottomLeft+rule+g.bottomRight)
	return rows, nil
}

// BuildText renders the frame as a single \r\n-joined byte sequence ready
// for the transport layer.
func BuildText(spec Spec, lines []Line) (string, error) {
	rows, err := Build(spec, lines)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\r\n"), nil
}

func (s Spec) validate() error {
	if s.InteriorWidth < 1 {
		return &SpecError{Reason: fmt.Sprintf("interior width %d, must be at least 1", s.InteriorWidth)}
	}
	if s.InteriorHeight < 0 {
		return &SpecError{Reason: fmt.Sprintf("interior height %d, must not be negative", s.InteriorHeight)}
	}
	if _, ok := glyphSets[s.Style]; !ok {
		return &SpecError{Reason: fmt.Sprintf("unknown border style %d", int(s.Style))}
	}
	if s.MaxWidth > 0 && s.InteriorWidth+2 > s.MaxWidth {
		return &SpecError{Reason: fmt.Sprintf("interior width %d plus borders exceeds ceiling %d",
			s.InteriorWidth, s.MaxWidth)}
	}
	return nil
}

// fitLine pads or truncates one content line to exactly the interior width.
func fitLine(spec Spec, ln Line) string {
	text := ln.Text
	width := textwidth.Width(text)

	if width > spec.InteriorWidth {
		text = truncate(text, spec.InteriorWidth, spec.Ellipsis)
		width = textwidth.Width(text)
	}
	if strings.Contains(text, "\x1b[") && !strings.HasSuffix(text, sgrReset) {
		// Color must never bleed across the border.
		text += sgrReset
	}

	pad := spec.InteriorWidth - width
	if pad <= 0 {
		return text
	}
	align := ln.Align
	if align == AlignDefault {
		align = spec.Align
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + text
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}

// truncate cuts text to max columns on a cluster boundary, appending an
// ellipsis when requested and it still fits.
func truncate(text string, max int, ellipsis bool) string {
	if ellipsis && max > 1 {
		return textwidth.Truncate(text, max-1) + "…"
	}
	return textwidth.Truncate(text, max)
}
