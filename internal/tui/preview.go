// Package tui provides the interactive template preview.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phindle/termframe/internal/config"
	"github.com/phindle/termframe/internal/screen"
	"github.com/phindle/termframe/internal/validate"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeBrowse  Mode = iota
	ModeEditVar      // Editing one template variable in the prompt
)

// Model is the preview TUI model: a template list on the left, the rendered
// screen with live validation on the right.
type Model struct {
	config   *config.Config
	renderer *screen.Renderer

	templates []string
	selected  int

	vars     map[string]map[string]string // template name -> variable values
	varNames []string                     // variables of the selected template
	varIdx   int                          // which variable the prompt edits

	mode  Mode
	input textinput.Model

	rendered  string
	results   []validate.Result
	renderErr error

	width  int
	height int
}

// sampleVars seeds believable values so the first paint is not all-blank.
var sampleVars = map[string]string{
	"node":         "1",
	"max_nodes":    "4",
	"caller_count": "0",
	"handle":       "sysop",
	"unread":       "3",
}

// NewModel creates the preview model.
func NewModel(cfg *config.Config) (*Model, error) {
	policy, err := screen.ParseMissingPolicy(cfg.Template.MissingVariable)
	if err != nil {
		policy = screen.MissingError
	}
	renderer := screen.NewRenderer(cfg.TemplateDir(), policy)

	names, err := renderer.Names()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no templates available")
	}

	ti := textinput.New()
	ti.CharLimit = 64

	m := &Model{
		config:    cfg,
		renderer:  renderer,
		templates: names,
		vars:      make(map[string]map[string]string),
		input:     ti,
	}
	m.selectTemplate(0)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeEditVar {
			return m.updateEditVar(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selectTemplate(m.selected - 1)
		}
	case "down", "j":
		if m.selected < len(m.templates)-1 {
			m.selectTemplate(m.selected + 1)
		}
	case "tab":
		if len(m.varNames) > 0 {
			m.varIdx = (m.varIdx + 1) % len(m.varNames)
		}
	case "enter", "v":
		if len(m.varNames) > 0 {
			name := m.varNames[m.varIdx]
			m.input.SetValue(m.currentVars()[name])
			m.input.Focus()
			m.mode = ModeEditVar
			LogModeChange(ModeBrowse, ModeEditVar, "edit "+name)
		}
	case "r":
		m.render()
	}
	return m, nil
}

func (m *Model) updateEditVar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		name := m.varNames[m.varIdx]
		m.currentVars()[name] = m.input.Value()
		m.mode = ModeBrowse
		m.input.Blur()
		m.render()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selectTemplate switches the selection and re-renders.
func (m *Model) selectTemplate(idx int) {
	m.selected = idx
	m.varIdx = 0

	name := m.templates[idx]
	varNames, err := m.renderer.Variables(name)
	if err != nil {
		m.varNames = nil
		m.renderErr = err
		return
	}
	m.varNames = varNames

	values := m.currentVars()
	for _, v := range varNames {
		if _, ok := values[v]; !ok {
			values[v] = sampleVars[v]
		}
	}
	m.render()
}

// currentVars returns the (lazily created) variable map for the selection.
func (m *Model) currentVars() map[string]string {
	name := m.templates[m.selected]
	if m.vars[name] == nil {
		m.vars[name] = make(map[string]string)
	}
	return m.vars[name]
}

// render redraws the selected template and re-validates the output.
func (m *Model) render() {
	name := m.templates[m.selected]
	out, err := m.renderer.Render(name, m.currentVars())
	m.renderErr = err
	if err != nil {
		m.rendered = ""
		m.results = nil
		LogError("render "+name, err)
		return
	}
	m.rendered = out
	m.results = validate.ValidateAll(out)
	LogRender(name, m.results)
}

// View implements tea.Model.
func (m *Model) View() string {
	left := m.viewTemplateList()
	right := m.viewScreen()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return body + "\n" + m.viewStatus() + "\n"
}

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	listStyle     = lipgloss.NewStyle().PaddingRight(2)
	passStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func (m *Model) viewTemplateList() string {
	var b strings.Builder
	for i, name := range m.templates {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	return listStyle.Render(b.String())
}

func (m *Model) viewScreen() string {
	if m.renderErr != nil {
		return failStyle.Render("render error: ") + m.renderErr.Error()
	}
	return strings.ReplaceAll(m.rendered, "\r\n", "\n")
}

func (m *Model) viewStatus() string {
	var b strings.Builder

	switch {
	case m.renderErr != nil:
		b.WriteString(failStyle.Render("ERROR"))
	case allValid(m.results):
		b.WriteString(passStyle.Render(fmt.Sprintf("PASS  %d frame(s)", len(m.results))))
	default:
		b.WriteString(failStyle.Render("FAIL"))
		for _, res := range m.results {
			for _, issue := range res.Issues {
				b.WriteString("\n  " + issue)
			}
		}
	}
	b.WriteString("\n")

	if m.mode == ModeEditVar {
		b.WriteString(m.varNames[m.varIdx] + " = " + m.input.View())
		b.WriteString("\n" + helpStyle.Render("enter: apply · esc: cancel"))
		return b.String()
	}

	if len(m.varNames) > 0 {
		pairs := make([]string, len(m.varNames))
		values := m.currentVars()
		for i, v := range m.varNames {
			pair := fmt.Sprintf("%s=%q", v, values[v])
			if i == m.varIdx {
				pair = selectedStyle.Render(pair)
			}
			pairs[i] = pair
		}
		b.WriteString(strings.Join(pairs, "  "))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("j/k: template · tab: variable · enter: edit · r: re-render · q: quit"))
	return b.String()
}

func allValid(results []validate.Result) bool {
	if len(results) == 0 {
		return false
	}
	for _, res := range results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Run starts the preview TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the preview TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
