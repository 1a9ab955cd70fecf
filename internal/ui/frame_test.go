package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phindle/termframe/internal/config"
	"github.com/phindle/termframe/internal/frame"
	"github.com/phindle/termframe/internal/validate"
)

func testApp() *App {
	return NewApp(config.Default())
}

func TestFrameSpecDefaults(t *testing.T) {
	a := testApp()

	spec, err := a.frameSpec(0, 0, "", "", true)
	if err != nil {
		t.Fatalf("frameSpec: %v", err)
	}
	if spec.InteriorWidth != 78 {
		t.Errorf("InteriorWidth = %d, want 78 from config", spec.InteriorWidth)
	}
	if spec.Style != frame.StyleSingle {
		t.Errorf("Style = %v, want single from config", spec.Style)
	}
	if spec.MaxWidth != 80 {
		t.Errorf("MaxWidth = %d, want 80 from config", spec.MaxWidth)
	}
}

func TestFrameSpecOverrides(t *testing.T) {
	a := testApp()

	spec, err := a.frameSpec(40, 5, "double", "center", false)
	if err != nil {
		t.Fatalf("frameSpec: %v", err)
	}
	if spec.InteriorWidth != 40 || spec.InteriorHeight != 5 {
		t.Errorf("dimensions = %dx%d, want 40x5", spec.InteriorWidth, spec.InteriorHeight)
	}
	if spec.Style != frame.StyleDouble {
		t.Errorf("Style = %v, want double", spec.Style)
	}
	if spec.Align != frame.AlignCenter {
		t.Errorf("Align = %v, want center", spec.Align)
	}
}

func TestFrameSpecRejectsUnknownAlignment(t *testing.T) {
	a := testApp()
	if _, err := a.frameSpec(40, 0, "single", "justified", true); err == nil {
		t.Fatal("expected error for unknown alignment")
	}
}

func TestFrameSpecRejectsUnknownStyle(t *testing.T) {
	a := testApp()
	if _, err := a.frameSpec(40, 0, "dotted", "left", true); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	results := []validate.Result{
		{Valid: true, Width: 80, Height: 10, Line: 1},
		{Valid: false, Width: 80, Height: 4, Line: 12, Issues: []string{"line 13: width 82, want 80 (+2)"}},
	}

	printResults(&buf, "capture.ans", results)
	out := buf.String()

	if !strings.Contains(out, "capture.ans: 2 frame(s)") {
		t.Errorf("missing source header:\n%s", out)
	}
	if !strings.Contains(out, "PASS") || !strings.Contains(out, "FAIL") {
		t.Errorf("missing pass/fail badges:\n%s", out)
	}
	if !strings.Contains(out, "width 82, want 80 (+2)") {
		t.Errorf("missing issue detail:\n%s", out)
	}
}

func TestPrintResultsNoFrames(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, "plain.txt", nil)
	if !strings.Contains(buf.String(), "no frames detected") {
		t.Errorf("missing no-frames note:\n%s", buf.String())
	}
}
