package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/add-editorconfig/editorconfig"
)

func answers(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestCollectAllAnswers(t *testing.T) {
	var out bytes.Buffer
	got, err := Collect(answers("tabs", "2", "8", "crlf", "latin1", "false", "false", "120"), &out, editorconfig.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := editorconfig.Settings{
		Root:                   true,
		EndOfLine:              editorconfig.CRLF,
		IndentStyle:            editorconfig.Tabs,
		IndentSize:             2,
		TabWidth:               8,
		Charset:                editorconfig.Latin1,
		TrimTrailingWhitespace: false,
		InsertFinalNewline:     false,
		MaxLineLength:          120,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	for _, f := range Fields {
		if !strings.Contains(out.String(), f.Prompt) {
			t.Errorf("prompt %q was not printed", f.Prompt)
		}
	}
}

func TestCollectFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input *strings.Reader
	}{
		{"empty answers", answers("", "", "", "", "", "", "", "")},
		{"garbage", answers("banana", "four", "-1", "unix", "ascii", "yes", "1", "0")},
		{"no input", strings.NewReader("")},
		{"whitespace", answers("   ", "\t", " ", " ", " ", " ", " ", " ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collect(tt.input, &bytes.Buffer{}, editorconfig.Default())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != editorconfig.Default() {
				t.Errorf("expected defaults, got %+v", got)
			}
		})
	}
}

func TestCollectBananaIndentStyle(t *testing.T) {
	got, err := Collect(answers("banana"), &bytes.Buffer{}, editorconfig.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IndentStyle != editorconfig.Space {
		t.Errorf("expected space, got %s", got.IndentStyle)
	}
}

func TestCollectPartialInput(t *testing.T) {
	// last answer has no trailing newline
	got, err := Collect(strings.NewReader("tabs\n  3  "), &bytes.Buffer{}, editorconfig.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := editorconfig.Default()
	want.IndentStyle = editorconfig.Tabs
	want.IndentSize = 3
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCollectKeepsBase(t *testing.T) {
	base := editorconfig.Default()
	base.Root = false
	base.Charset = editorconfig.UTF8BOM

	got, err := Collect(answers("", "", "", "", "nope"), &bytes.Buffer{}, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != base {
		t.Errorf("got %+v, want %+v", got, base)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestCollectReadError(t *testing.T) {
	_, err := Collect(failingReader{}, &bytes.Buffer{}, editorconfig.Default())
	if err == nil {
		t.Fatal("expected read error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestFieldApply(t *testing.T) {
	tests := []struct {
		key    string
		answer string
		ok     bool
	}{
		{editorconfig.KeyIndentStyle, "tabs", true},
		{editorconfig.KeyIndentStyle, "Tabs", false},
		{editorconfig.KeyIndentSize, " 2 ", true},
		{editorconfig.KeyIndentSize, "2.5", false},
		{editorconfig.KeyTabWidth, "0", false},
		{editorconfig.KeyTabWidth, "3000000000", false},
		{editorconfig.KeyEndOfLine, "cr", true},
		{editorconfig.KeyCharset, "utf-16be", true},
		{editorconfig.KeyTrimTrailingWhitespace, "false", true},
		{editorconfig.KeyTrimTrailingWhitespace, "f", false},
		{editorconfig.KeyInsertFinalNewline, "true", true},
		{editorconfig.KeyMaxLineLength, "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.answer, func(t *testing.T) {
			var field *Field
			for i := range Fields {
				if Fields[i].Key == tt.key {
					field = &Fields[i]
				}
			}
			if field == nil {
				t.Fatalf("no field for %s", tt.key)
			}

			s := editorconfig.Default()
			if got := field.Apply(&s, tt.answer); got != tt.ok {
				t.Errorf("Apply(%q) = %v, want %v", tt.answer, got, tt.ok)
			}
			if !tt.ok && s != editorconfig.Default() {
				t.Errorf("rejected answer changed settings: %+v", s)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("settings left invalid: %v", err)
			}
		})
	}
}

func TestFieldsSkipRoot(t *testing.T) {
	if len(Fields) != 8 {
		t.Errorf("expected 8 questions, got %d", len(Fields))
	}
	for _, f := range Fields {
		if f.Key == editorconfig.KeyRoot {
			t.Error("root should not be asked")
		}
	}
}
