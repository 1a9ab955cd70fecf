package validate

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateWellFormedFrame(t *testing.T) {
	text := strings.Join([]string{
		"┌────────┐",
		"│hello   │",
		"│world   │",
		"└────────┘",
	}, "\r\n")

	res := Validate(text)
	if !res.Valid {
		t.Fatalf("Valid = false, issues: %v", res.Issues)
	}
	if res.Width != 10 || res.Height != 4 {
		t.Errorf("measured %dx%d, want 10x4", res.Width, res.Height)
	}
	if res.Line != 1 {
		t.Errorf("Line = %d, want 1", res.Line)
	}
}

func TestValidateColoredFrame(t *testing.T) {
	text := strings.Join([]string{
		"╔══════╗",
		"║\x1b[36mcyan\x1b[0m  ║",
		"║  \x1b[1;33mhi\x1b[0m  ║",
		"╚══════╝",
	}, "\r\n")

	res := Validate(text)
	if !res.Valid {
		t.Fatalf("Valid = false, issues: %v", res.Issues)
	}
	if res.Width != 8 {
		t.Errorf("Width = %d, want 8", res.Width)
	}
}

func TestValidateWideContent(t *testing.T) {
	text := strings.Join([]string{
		"┌────────┐",
		"│中文字符│",
		"│🎨 ok   │",
		"└────────┘",
	}, "\r\n")

	res := Validate(text)
	if !res.Valid {
		t.Fatalf("Valid = false, issues: %v", res.Issues)
	}
}

func TestValidateTrailingSpaces(t *testing.T) {
	text := strings.Join([]string{
		"┌────────┐",
		"│hello   │  ",
		"└────────┘",
	}, "\r\n")

	res := Validate(text)
	if res.Valid {
		t.Fatal("Valid = true for a row with stray trailing spaces")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "line 2") && strings.Contains(issue, "+2") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue citing line 2 with delta +2: %v", res.Issues)
	}
}

func TestValidateTrailingSpacesOnTopBorder(t *testing.T) {
	text := strings.Join([]string{
		"┌────────┐  ",
		"│hello   │",
		"└────────┘",
	}, "\r\n")

	res := Validate(text)
	if res.Valid {
		t.Fatal("Valid = true for a top border with stray trailing spaces")
	}
	if res.Width != 10 {
		t.Errorf("Width = %d, want the trimmed border width 10", res.Width)
	}
	for _, issue := range res.Issues {
		if !strings.Contains(issue, "line 1") {
			t.Errorf("issue blames an intact row: %q", issue)
		}
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "line 1") && strings.Contains(issue, "+2") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue citing line 1 with delta +2: %v", res.Issues)
	}
}

func TestValidateShortRow(t *testing.T) {
	text := strings.Join([]string{
		"┌────────┐",
		"│short  │",
		"└────────┘",
	}, "\r\n")

	res := Validate(text)
	if res.Valid {
		t.Fatal("Valid = true for a short row")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "-1") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue reporting the -1 width delta: %v", res.Issues)
	}
}

func TestValidateMissingRightBorder(t *testing.T) {
	text := strings.Join([]string{
		"┌────────┐",
		"│missing  ",
		"└────────┘",
	}, "\r\n")

	res := Validate(text)
	if res.Valid {
		t.Fatal("Valid = true for a row without a right border")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "missing right border") {
			found = true
		}
	}
	if !found {
		t.Errorf("no missing-right-border issue: %v", res.Issues)
	}
}

func TestValidateMissingBottom(t *testing.T) {
	text := strings.Join([]string{
		"┌────────┐",
		"│dangling│",
	}, "\r\n")

	res := Validate(text)
	if res.Valid {
		t.Fatal("Valid = true without a bottom border")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "no matching bottom border") {
			found = true
		}
	}
	if !found {
		t.Errorf("no missing-bottom issue: %v", res.Issues)
	}
}

func TestValidateInconsistentCorners(t *testing.T) {
	text := strings.Join([]string{
		"┌────────╗",
		"│mixed   │",
		"└────────┘",
	}, "\r\n")

	res := Validate(text)
	if res.Valid {
		t.Fatal("Valid = true for mismatched corners")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "inconsistent corners") {
			found = true
		}
	}
	if !found {
		t.Errorf("no inconsistent-corners issue: %v", res.Issues)
	}
}

func TestValidateDividerRows(t *testing.T) {
	text := strings.Join([]string{
		"╔══════╗",
		"║header║",
		"╠══════╣",
		"║body  ║",
		"╚══════╝",
	}, "\r\n")

	res := Validate(text)
	if !res.Valid {
		t.Fatalf("Valid = false for a frame with a divider: %v", res.Issues)
	}
	if res.Height != 5 {
		t.Errorf("Height = %d, want 5", res.Height)
	}
}

func TestValidateAllFindsEveryFrame(t *testing.T) {
	text := strings.Join([]string{
		"some banner text",
		"┌──┐",
		"│ab│",
		"└──┘",
		"between the frames",
		"╔════╗",
		"║cd  ║",
		"╚════╝",
	}, "\r\n")

	results := ValidateAll(text)
	if len(results) != 2 {
		t.Fatalf("found %d frames, want 2", len(results))
	}
	if !results[0].Valid || results[0].Width != 4 || results[0].Line != 2 {
		t.Errorf("first frame = %+v", results[0])
	}
	if !results[1].Valid || results[1].Width != 6 || results[1].Line != 6 {
		t.Errorf("second frame = %+v", results[1])
	}
}

func TestValidateNoFrame(t *testing.T) {
	res := Validate("just some plain text\r\nwith no borders at all")
	if res.Valid {
		t.Fatal("Valid = true for frameless input")
	}
	if len(res.Issues) == 0 || !strings.Contains(res.Issues[0], "no frame detected") {
		t.Errorf("Issues = %v, want a no-frame issue", res.Issues)
	}
}

func TestValidateNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		"",
		"\x1b[",
		"\x1b[36m",
		"┌",
		"┌┐",
		"└┘",
		"\x00\x01\x02",
		strings.Repeat("┌─", 1000),
		"┌──┐\r\n\x1b[9999;1H└──┘",
	}
	for _, in := range inputs {
		_ = Validate(in)
		_ = ValidateAll(in)
	}
}

// Validating an already-valid frame twice must yield identical results.
func TestValidateIdempotent(t *testing.T) {
	text := strings.Join([]string{
		"┌────┐",
		"│ok  │",
		"└────┘",
	}, "\r\n")

	first := Validate(text)
	second := Validate(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results diverged:\n%+v\n%+v", first, second)
	}
}
