// Package textwidth computes the true on-screen column width of text that
// mixes multi-byte UTF-8, combining marks, emoji, East-Asian wide characters
// and ANSI escape sequences. All functions are pure: no I/O, no locale
// dependence, identical input always yields identical output.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Unit is one scanned element of a string: either a complete ANSI escape
// sequence (zero columns) or a single grapheme cluster with its column width.
type Unit struct {
	Text     string
	Width    int // 0, 1 or 2
	IsEscape bool
}

const (
	esc  byte = 0x1b
	zwj  rune = 0x200d // zero width joiner
	vs15 rune = 0xfe0e // text presentation selector
	vs16 rune = 0xfe0f // emoji presentation selector
)

// Scan walks text once, classifying each position as an escape sequence or a
// grapheme cluster, and returns the resulting units in order. An incomplete
// escape sequence at the end of the string is returned as literal clusters
// rather than an error, since captured terminal streams can be cut anywhere.
func Scan(text string) []Unit {
	var units []Unit
	for len(text) > 0 {
		if text[0] == esc {
			if seq, rest, ok := scanEscape(text); ok {
				units = append(units, Unit{Text: seq, IsEscape: true})
				text = rest
				continue
			}
			// Incomplete sequence: fall through and treat the ESC byte
			// (and whatever follows) as literal clusters.
		}

		// Segment up to the next ESC so uniseg never sees control bytes
		// in the middle of a cluster.
		end := strings.IndexByte(text[1:], esc)
		if end < 0 {
			end = len(text)
		} else {
			end++
		}
		seg := text[:end]
		state := -1
		for len(seg) > 0 {
			var cluster string
			cluster, seg, _, state = uniseg.StepString(seg, state)
			units = append(units, Unit{Text: cluster, Width: clusterWidth(cluster)})
		}
		text = text[end:]
	}
	return units
}

// scanEscape tries to consume one complete CSI sequence (ESC '[' parameters
// intermediates final) from the front of s.
func scanEscape(s string) (seq, rest string, ok bool) {
	if len(s) < 2 || s[0] != esc || s[1] != '[' {
		return "", s, false
	}
	i := 2
	for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f { // parameter bytes
		i++
	}
	for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f { // intermediate bytes
		i++
	}
	if i < len(s) && s[i] >= 0x40 && s[i] <= 0x7e { // final byte
		return s[:i+1], s[i+1:], true
	}
	return "", s, false
}

// Width returns the number of monospace terminal columns text occupies once
// escape sequences are removed and wide characters count as 2.
func Width(text string) int {
	total := 0
	for _, u := range Scan(text) {
		total += u.Width
	}
	return total
}

// clusterWidth returns the column width of a single grapheme cluster.
// The curated exception table is consulted before the standard tables
// because plain East-Asian-width lookups undercount common emoji.
func clusterWidth(cluster string) int {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return 0
	}

	for _, r := range runes {
		if r == vs16 || r == zwj {
			// Emoji presentation selector or a ZWJ-joined sequence:
			// the whole cluster renders as one wide glyph.
			return 2
		}
	}
	if len(runes) >= 2 && isRegionalIndicator(runes[0]) && isRegionalIndicator(runes[1]) {
		return 2 // flag
	}

	for _, r := range runes {
		if r == vs15 {
			continue
		}
		if isWideException(r) {
			return 2
		}
		if w := runewidth.RuneWidth(r); w > 0 {
			return w
		}
	}
	// Only joiners, selectors and combining marks.
	return 0
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1f1e6 && r <= 0x1f1ff
}

// Truncate cuts text so its true width does not exceed max columns. The cut
// always lands on a grapheme-cluster boundary and never inside an escape
// sequence; escape sequences already seen are preserved.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if Width(text) <= max {
		return text
	}
	var b strings.Builder
	used := 0
	for _, u := range Scan(text) {
		if u.IsEscape {
			b.WriteString(u.Text)
			continue
		}
		if used+u.Width > max {
			break
		}
		b.WriteString(u.Text)
		used += u.Width
	}
	return b.String()
}
