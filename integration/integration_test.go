// Package integration exercises the full production rendering path: template
// renderer on top of the frame builder on top of the width calculator, with
// the independent validator as the oracle over the finished byte stream.
package integration

import (
	"strings"
	"testing"

	"github.com/phindle/termframe/internal/frame"
	"github.com/phindle/termframe/internal/screen"
	"github.com/phindle/termframe/internal/textwidth"
	"github.com/phindle/termframe/internal/validate"
)

// newRenderer creates a renderer over the bundled templates only.
func newRenderer(t *testing.T) *screen.Renderer {
	t.Helper()
	return screen.NewRenderer("", screen.MissingError)
}

func TestRenderedWelcomeScreenValidates(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render("welcome.ans", map[string]string{
		"node":         "1",
		"max_nodes":    "4",
		"caller_count": "0",
		"handle":       "sysop",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	results := validate.ValidateAll(out)
	if len(results) == 0 {
		t.Fatal("no frames detected in rendered welcome screen")
	}
	for i, res := range results {
		if !res.Valid {
			t.Errorf("frame %d invalid: %v", i, res.Issues)
		}
		if res.Width != 80 {
			t.Errorf("frame %d width = %d, want 80", i, res.Width)
		}
	}
}

func TestEveryBundledTemplateValidates(t *testing.T) {
	r := newRenderer(t)
	names, err := r.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}

	vars := map[string]string{
		"node":         "2",
		"max_nodes":    "8",
		"caller_count": "1204",
		"handle":       "nightowl",
		"unread":       "12",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(name, vars)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for i, res := range validate.ValidateAll(out) {
				if !res.Valid {
					t.Errorf("frame %d invalid: %v", i, res.Issues)
				}
				if res.Width != 80 {
					t.Errorf("frame %d width = %d, want 80", i, res.Width)
				}
			}
		})
	}
}

// Rectangularity: whatever content goes in, what comes out validates.
func TestBuiltFramesValidate(t *testing.T) {
	tests := []struct {
		name  string
		spec  frame.Spec
		lines []frame.Line
	}{
		{
			name:  "default width ascii",
			spec:  frame.Spec{InteriorWidth: 76},
			lines: []frame.Line{{Text: "Test"}},
		},
		{
			name: "emoji and cjk",
			spec: frame.Spec{InteriorWidth: 40, Style: frame.StyleDouble},
			lines: []frame.Line{
				{Text: "🎨 A cute dragon"},
				{Text: "中文字符"},
				{Divider: true},
				{Text: "🐉 wide 🐉 content 🐉", Align: frame.AlignCenter},
			},
		},
		{
			name: "ansi colored",
			spec: frame.Spec{InteriorWidth: 30},
			lines: []frame.Line{
				{Text: "\x1b[36mcyan text\x1b[0m"},
				{Text: "\x1b[1;33munterminated color"},
			},
		},
		{
			name: "overflowing content",
			spec: frame.Spec{InteriorWidth: 12, Ellipsis: true},
			lines: []frame.Line{
				{Text: "this content is wider than twelve columns"},
				{Text: "中文字符中文字符中文字符"},
			},
		},
		{
			name:  "fixed height",
			spec:  frame.Spec{InteriorWidth: 20, InteriorHeight: 6},
			lines: []frame.Line{{Text: "sparse"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := frame.BuildText(tt.spec, tt.lines)
			if err != nil {
				t.Fatalf("BuildText: %v", err)
			}
			res := validate.Validate(out)
			if !res.Valid {
				t.Fatalf("built frame failed validation: %v\n%s", res.Issues, out)
			}
			if res.Width != tt.spec.InteriorWidth+2 {
				t.Errorf("validated width = %d, want %d", res.Width, tt.spec.InteriorWidth+2)
			}
		})
	}
}

// The delegation path for unbounded generated content: renderer hands the
// text to the frame builder instead of substituting it into static art.
func TestDynamicContentDelegation(t *testing.T) {
	r := newRenderer(t)

	generated := strings.Repeat("an unbounded generated sentence ", 6)
	out, err := r.RenderFrame(
		frame.Spec{InteriorWidth: 78, MaxWidth: 80, Ellipsis: true, Style: frame.StyleDouble},
		[]frame.Line{
			{Text: "Today's oracle says:", Align: frame.AlignCenter},
			{Divider: true},
			{Text: generated},
		},
	)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	res := validate.Validate(out)
	if !res.Valid {
		t.Fatalf("delegated frame failed validation: %v", res.Issues)
	}
	if res.Width != 80 {
		t.Errorf("width = %d, want 80", res.Width)
	}
}

// A deliberately corrupted row must be caught by the validator even though
// builder and validator share no scanning code.
func TestValidatorCatchesCorruptedOutput(t *testing.T) {
	out, err := frame.BuildText(frame.Spec{InteriorWidth: 20}, []frame.Line{
		{Text: "row one"},
		{Text: "row two"},
	})
	if err != nil {
		t.Fatalf("BuildText: %v", err)
	}

	// Inject two stray trailing spaces on the first content row.
	corrupted := strings.Replace(out, "│\r\n", "│  \r\n", 1)

	res := validate.Validate(corrupted)
	if res.Valid {
		t.Fatal("validator accepted corrupted output")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "+2") {
			found = true
		}
	}
	if !found {
		t.Errorf("no +2 width delta reported: %v", res.Issues)
	}
}

// Transport contract: rendered screens use \r\n separators throughout.
func TestTransportLineEndings(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render("goodbye.ans", map[string]string{"handle": "sysop"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, line := range strings.Split(out, "\r\n") {
		if strings.ContainsAny(line, "\r\n") {
			t.Fatalf("bare line ending inside %q", line)
		}
	}
}

// The re-measured width of every row equals the declared frame width even
// when substituted values are wide characters.
func TestWideVariableRoundTrip(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render("main_menu.ans", map[string]string{
		"handle": "夜貓子", // 6 columns
		"unread": "99",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, line := range strings.Split(out, "\r\n") {
		if w := textwidth.Width(line); w != 80 {
			t.Errorf("line %d measures %d columns, want 80: %q", i+1, w, line)
		}
	}
	if res := validate.Validate(out); !res.Valid {
		t.Errorf("menu failed validation: %v", res.Issues)
	}
}
