package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/add-editorconfig/editorconfig"
	tea "github.com/charmbracelet/bubbletea"
)

func enter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }

func typed(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// answerAll types each answer followed by enter.
func answerAll(t *testing.T, m formModel, answers ...string) (formModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, a := range answers {
		var next tea.Model
		if a != "" {
			next, _ = m.Update(typed(a))
			m = next.(formModel)
		}
		next, cmd = m.Update(enter())
		m = next.(formModel)
	}
	return m, cmd
}

func TestFormCollectsAnswers(t *testing.T) {
	m := newFormModel(Config{Accent: "#04B575"}, editorconfig.Default())

	m, cmd := answerAll(t, m, "tabs", "2", "8", "cr", "utf-16le", "false", "true", "100")
	if !m.done() {
		t.Fatal("form should be done after the last answer")
	}
	if cmd == nil {
		t.Error("expected a quit command after the last answer")
	}

	want := editorconfig.Settings{
		Root:                   true,
		EndOfLine:              editorconfig.CR,
		IndentStyle:            editorconfig.Tabs,
		IndentSize:             2,
		TabWidth:               8,
		Charset:                editorconfig.UTF16LE,
		TrimTrailingWhitespace: false,
		InsertFinalNewline:     true,
		MaxLineLength:          100,
	}
	if m.settings != want {
		t.Errorf("got %+v, want %+v", m.settings, want)
	}
}

func TestFormFallsBackOnInvalidAnswer(t *testing.T) {
	m := newFormModel(Config{}, editorconfig.Default())

	m, _ = answerAll(t, m, "banana")
	if m.settings.IndentStyle != editorconfig.Space {
		t.Errorf("expected space, got %s", m.settings.IndentStyle)
	}
	if len(m.answers) != 1 || m.answers[0].accepted {
		t.Errorf("expected one rejected answer, got %+v", m.answers)
	}
	if !strings.Contains(m.View(), "indent_style = space (default)") {
		t.Errorf("view should mark the fallback:\n%s", m.View())
	}
}

func TestFormEmptyAnswersKeepDefaults(t *testing.T) {
	m := newFormModel(Config{}, editorconfig.Default())

	m, _ = answerAll(t, m, "", "", "", "", "", "", "", "")
	if !m.done() {
		t.Fatal("form should be done")
	}
	if m.settings != editorconfig.Default() {
		t.Errorf("expected defaults, got %+v", m.settings)
	}
}

func TestFormPlaceholderShowsCurrentValue(t *testing.T) {
	base := editorconfig.Default()
	base.IndentStyle = editorconfig.Tabs
	m := newFormModel(Config{}, base)

	if m.input.Placeholder != "tabs" {
		t.Errorf("expected placeholder tabs, got %q", m.input.Placeholder)
	}

	m, _ = answerAll(t, m, "")
	if m.input.Placeholder != "4" {
		t.Errorf("expected placeholder 4 for indent size, got %q", m.input.Placeholder)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared between questions, got %q", m.input.Value())
	}
}

func TestFormHelpListsChoices(t *testing.T) {
	m := newFormModel(Config{}, editorconfig.Default())

	for i, want := range []string{
		"space / tabs",
		"a positive number",
		"a positive number",
		"lf / crlf / cr",
		"latin1 / utf-8 / utf-16be / utf-16le / utf-8-bom",
		"true / false",
	} {
		if view := m.View(); !strings.Contains(view, want) {
			t.Errorf("question %d: expected %q in view:\n%s", i+1, want, view)
		}
		m, _ = answerAll(t, m, "")
	}
}

func TestFormAbort(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newFormModel(Config{}, editorconfig.Default())

		next, cmd := m.Update(tea.KeyMsg{Type: key})
		m = next.(formModel)
		if !m.aborted {
			t.Errorf("%v should abort the form", key)
		}
		if cmd == nil {
			t.Errorf("%v should quit the program", key)
		}
		if m.View() != "" {
			t.Errorf("aborted form should render nothing, got %q", m.View())
		}
	}
}

func TestFormTruncatesToWidth(t *testing.T) {
	m := newFormModel(Config{}, editorconfig.Default())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 20})
	m = next.(formModel)
	if m.width != 10 {
		t.Fatalf("expected width 10, got %d", m.width)
	}
	if got := m.truncate("Indentation style (space / tabs): "); !strings.HasSuffix(got, ellipsis) {
		t.Errorf("expected truncated prompt, got %q", got)
	}
}
