// Package screen renders named screen templates: plain-text resources with
// literal box-drawing art and {{name}} placeholders. Substitution is
// slot-preserving, so a template that was drawn at 80 columns still measures
// 80 columns after its variables are filled in.
package screen

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/phindle/termframe/internal/frame"
	"github.com/phindle/termframe/internal/textwidth"
)

//go:embed templates/*.ans
var builtin embed.FS

// ErrTemplateNotFound is returned when no bundled or override template
// matches the requested name. Callers are expected to fall back to a plain
// text screen rather than drop the session.
var ErrTemplateNotFound = errors.New("template not found")

// MissingPolicy decides what happens when a placeholder has no value.
type MissingPolicy int

const (
	// MissingError fails the render. The default; a forgotten variable is a
	// caller bug and should surface before it ships a broken screen.
	MissingError MissingPolicy = iota
	// MissingEmpty pads the slot with spaces so the frame geometry survives.
	MissingEmpty
)

// ParseMissingPolicy maps a config string to a MissingPolicy.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(s) {
	case "", "error":
		return MissingError, nil
	case "empty":
		return MissingEmpty, nil
	}
	return MissingError, fmt.Errorf("unknown missing-variable policy %q", s)
}

// MissingVariableError reports a placeholder with no supplied value under
// the MissingError policy.
type MissingVariableError struct {
	Template string
	Name     string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("template %s: no value for variable %q", e.Template, e.Name)
}

// SlotError reports a value wider than the slot its placeholder occupies.
// Substituting it anyway would shear the frame border to the right of it.
type SlotError struct {
	Template   string
	Name       string
	SlotWidth  int
	ValueWidth int
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("template %s: value for %q is %d columns, slot is %d",
		e.Template, e.Name, e.ValueWidth, e.SlotWidth)
}

var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Renderer loads templates from the bundled store (optionally shadowed by an
// on-disk override directory) and renders them with variables applied.
// Loads are cached; after warm-up a render touches no I/O, so renderers are
// safe for arbitrarily many concurrent callers.
type Renderer struct {
	overrideDir string
	missing     MissingPolicy

	mu    sync.RWMutex
	cache map[string]string
}

// NewRenderer creates a Renderer. overrideDir may be empty, in which case
// only the bundled templates are available.
func NewRenderer(overrideDir string, missing MissingPolicy) *Renderer {
	return &Renderer{
		overrideDir: overrideDir,
		missing:     missing,
		cache:       make(map[string]string),
	}
}

// Render loads the named template and substitutes vars into its
// placeholders. Output lines are separated by \r\n, ready for transport.
func (r *Renderer) Render(name string, vars map[string]string) (string, error) {
	raw, err := r.load(name)
	if err != nil {
		return "", err
	}

	var renderErr error
	out := placeholderRe.ReplaceAllStringFunc(raw, func(token string) string {
		varName := token[2 : len(token)-2]
		slot := len(token) // ASCII token, bytes == columns

		value, ok := vars[varName]
		if !ok {
			if r.missing == MissingEmpty {
				return strings.Repeat(" ", slot)
			}
			if renderErr == nil {
				renderErr = &MissingVariableError{Template: name, Name: varName}
			}
			return token
		}

		vw := textwidth.Width(value)
		if vw > slot {
			if renderErr == nil {
				renderErr = &SlotError{Template: name, Name: varName, SlotWidth: slot, ValueWidth: vw}
			}
			return token
		}
		return value + strings.Repeat(" ", slot-vw)
	})
	if renderErr != nil {
		return "", renderErr
	}

	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.TrimRight(out, "\n")
	return strings.ReplaceAll(out, "\n", "\r\n"), nil
}

// RenderFrame builds a frame for dynamic content of unbounded length.
// Static substitution cannot guarantee width invariants for such content,
// so the renderer hands it to the frame builder instead.
func (r *Renderer) RenderFrame(spec frame.Spec, lines []frame.Line) (string, error) {
	return frame.BuildText(spec, lines)
}

// Variables returns the distinct placeholder names in a template, in order
// of first appearance.
func (r *Renderer) Variables(name string) ([]string, error) {
	raw, err := r.load(name)
	if err != nil {
		return nil, err
	}
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(raw, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names, nil
}

// Names returns the sorted names of every available template, override
// directory included.
func (r *Renderer) Names() ([]string, error) {
	seen := make(map[string]bool)

	entries, err := builtin.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading bundled templates: %w", err)
	}
	for _, e := range entries {
		seen[e.Name()] = true
	}

	if r.overrideDir != "" {
		files, err := os.ReadDir(r.overrideDir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading template dir %s: %w", r.overrideDir, err)
		}
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".ans") {
				seen[f.Name()] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// load returns the raw template text, reading it at most once per name.
// A racing first access may read the file twice; both reads see the same
// bytes, so the cache never holds divergent results.
func (r *Renderer) load(name string) (string, error) {
	r.mu.RLock()
	raw, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return raw, nil
	}

	raw, err := r.read(name)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[name] = raw
	r.mu.Unlock()
	return raw, nil
}

func (r *Renderer) read(name string) (string, error) {
	// Keep path traversal out of the override directory.
	if name != filepath.Base(name) || name == "." || name == "" {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	if r.overrideDir != "" {
		b, err := os.ReadFile(filepath.Join(r.overrideDir, name))
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("reading template %s: %w", name, err)
		}
	}

	b, err := builtin.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(b), nil
}
