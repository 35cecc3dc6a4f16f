// Package prompt collects editorconfig settings by asking one question per
// property. Answers that are not recognized leave the property unchanged.
package prompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/add-editorconfig/editorconfig"
)

// Field is a single question of the questionnaire.
type Field struct {
	Key    string
	Prompt string
	// Options lists the accepted literals. Empty for numeric fields.
	Options []string

	apply func(s *editorconfig.Settings, answer string) bool
	value func(s editorconfig.Settings) string
}

// Apply sets the field on s from answer. It reports false, leaving s
// untouched, when the trimmed answer is not an accepted value.
func (f Field) Apply(s *editorconfig.Settings, answer string) bool {
	return f.apply(s, strings.TrimSpace(answer))
}

// Value returns the current value of the field in s.
func (f Field) Value(s editorconfig.Settings) string {
	return f.value(s)
}

// Fields is the questionnaire in the order it is asked. root is not asked.
var Fields = []Field{
	{
		Key:     editorconfig.KeyIndentStyle,
		Prompt:  "Indentation style (space / tabs): ",
		Options: options(editorconfig.IndentStyles),
		apply: func(s *editorconfig.Settings, a string) bool {
			v, err := editorconfig.ParseIndentStyle(a)
			if err != nil {
				return false
			}
			s.IndentStyle = v
			return true
		},
		value: func(s editorconfig.Settings) string { return string(s.IndentStyle) },
	},
	{
		Key:    editorconfig.KeyIndentSize,
		Prompt: "Indent size (number): ",
		apply:  positive(func(s *editorconfig.Settings, n int) { s.IndentSize = n }),
		value:  func(s editorconfig.Settings) string { return strconv.Itoa(s.IndentSize) },
	},
	{
		Key:    editorconfig.KeyTabWidth,
		Prompt: "Tab width (number): ",
		apply:  positive(func(s *editorconfig.Settings, n int) { s.TabWidth = n }),
		value:  func(s editorconfig.Settings) string { return strconv.Itoa(s.TabWidth) },
	},
	{
		Key:     editorconfig.KeyEndOfLine,
		Prompt:  "End of line (lf / crlf / cr): ",
		Options: options(editorconfig.EndOfLines),
		apply: func(s *editorconfig.Settings, a string) bool {
			v, err := editorconfig.ParseEndOfLine(a)
			if err != nil {
				return false
			}
			s.EndOfLine = v
			return true
		},
		value: func(s editorconfig.Settings) string { return string(s.EndOfLine) },
	},
	{
		Key:     editorconfig.KeyCharset,
		Prompt:  "Charset (latin1 / utf-8 / utf-16be / utf-16le / utf-8-bom): ",
		Options: options(editorconfig.Charsets),
		apply: func(s *editorconfig.Settings, a string) bool {
			v, err := editorconfig.ParseCharset(a)
			if err != nil {
				return false
			}
			s.Charset = v
			return true
		},
		value: func(s editorconfig.Settings) string { return string(s.Charset) },
	},
	{
		Key:     editorconfig.KeyTrimTrailingWhitespace,
		Prompt:  "Trim trailing whitespace (true / false): ",
		Options: []string{"true", "false"},
		apply:   boolean(func(s *editorconfig.Settings, b bool) { s.TrimTrailingWhitespace = b }),
		value:   func(s editorconfig.Settings) string { return strconv.FormatBool(s.TrimTrailingWhitespace) },
	},
	{
		Key:     editorconfig.KeyInsertFinalNewline,
		Prompt:  "Insert final newline (true / false): ",
		Options: []string{"true", "false"},
		apply:   boolean(func(s *editorconfig.Settings, b bool) { s.InsertFinalNewline = b }),
		value:   func(s editorconfig.Settings) string { return strconv.FormatBool(s.InsertFinalNewline) },
	},
	{
		Key:    editorconfig.KeyMaxLineLength,
		Prompt: "Max line length (number): ",
		apply:  positive(func(s *editorconfig.Settings, n int) { s.MaxLineLength = n }),
		value:  func(s editorconfig.Settings) string { return strconv.Itoa(s.MaxLineLength) },
	},
}

func positive(set func(*editorconfig.Settings, int)) func(*editorconfig.Settings, string) bool {
	return func(s *editorconfig.Settings, a string) bool {
		n, err := strconv.ParseInt(a, 10, 32)
		if err != nil || n <= 0 {
			return false
		}
		set(s, int(n))
		return true
	}
}

func boolean(set func(*editorconfig.Settings, bool)) func(*editorconfig.Settings, string) bool {
	return func(s *editorconfig.Settings, a string) bool {
		switch a {
		case "true":
			set(s, true)
		case "false":
			set(s, false)
		default:
			return false
		}
		return true
	}
}

func options[T ~string](vs []T) []string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = string(v)
	}
	return ss
}
