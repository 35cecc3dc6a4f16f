// Package ui provides the interactive form used to fill in an .editorconfig
// when running in a terminal.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/add-editorconfig/editorconfig"
	"github.com/charmbracelet/add-editorconfig/prompt"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// ErrAborted is returned by RunForm when the user cancels the form.
var ErrAborted = errors.New("aborted")

// answer records how a question was resolved.
type answer struct {
	key      string
	value    string
	accepted bool
}

type formModel struct {
	styles   styles
	fields   []prompt.Field
	index    int
	input    textinput.Model
	settings editorconfig.Settings
	answers  []answer
	width    int
	aborted  bool
}

func newFormModel(cfg Config, base editorconfig.Settings) formModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Focus()

	m := formModel{
		styles:   newStyles(cfg),
		fields:   prompt.Fields,
		input:    ti,
		settings: base,
	}
	m.resetInput()
	return m
}

// NewProgram returns a new Tea program asking every question of the
// questionnaire, starting from base.
func NewProgram(cfg Config, base editorconfig.Settings, opts ...tea.ProgramOption) *tea.Program {
	log.Debug("starting form", "alt_screen", cfg.AltScreen)

	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return tea.NewProgram(newFormModel(cfg, base), opts...)
}

// RunForm runs the form to completion and returns the collected settings.
func RunForm(cfg Config, base editorconfig.Settings, opts ...tea.ProgramOption) (editorconfig.Settings, error) {
	final, err := NewProgram(cfg, base, opts...).Run()
	if err != nil {
		return base, fmt.Errorf("unable to run form: %w", err)
	}

	m, ok := final.(formModel)
	if !ok {
		return base, fmt.Errorf("unexpected model %T", final)
	}
	if m.aborted {
		return base, ErrAborted
	}
	return m.settings, nil
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the current answer and advances to the next question.
func (m formModel) submit() (tea.Model, tea.Cmd) {
	f := m.fields[m.index]
	accepted := f.Apply(&m.settings, m.input.Value())
	m.answers = append(m.answers, answer{
		key:      f.Key,
		value:    f.Value(m.settings),
		accepted: accepted,
	})
	log.Debug("answered", "key", f.Key, "input", m.input.Value(), "accepted", accepted)

	m.index++
	if m.done() {
		return m, tea.Quit
	}
	m.resetInput()
	return m, nil
}

func (m *formModel) resetInput() {
	f := m.fields[m.index]
	m.input.Reset()
	m.input.Placeholder = f.Value(m.settings)
}

func (m formModel) done() bool {
	return m.index >= len(m.fields)
}

func (m formModel) View() string {
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Fill the config with the provided options."))
	b.WriteString("\n")

	for _, a := range m.answers {
		line := fmt.Sprintf("%s = %s", a.key, a.value)
		if a.accepted {
			line = m.styles.accepted.Render(line)
		} else {
			line = m.styles.fallback.Render(line + " (default)")
		}
		b.WriteString(m.truncate(line) + "\n")
	}

	if !m.done() {
		f := m.fields[m.index]
		b.WriteString(m.truncate(f.Prompt) + "\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString(m.styles.help.Render(help(f)))
	}

	return b.String() + "\n"
}

func (m formModel) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(m.width), ellipsis) //nolint:gosec
}

func help(f prompt.Field) string {
	choices := "a positive number"
	if len(f.Options) > 0 {
		choices = strings.Join(f.Options, " / ")
	}
	return choices + " • enter: next • esc: cancel • empty keeps the default"
}
