package editorconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Property keys.
const (
	KeyRoot                   = "root"
	KeyEndOfLine              = "end_of_line"
	KeyIndentSize             = "indent_size"
	KeyIndentStyle            = "indent_style"
	KeyTabWidth               = "tab_width"
	KeyCharset                = "charset"
	KeyTrimTrailingWhitespace = "trim_trailing_whitespace"
	KeyInsertFinalNewline     = "insert_final_newline"
	KeyMaxLineLength          = "max_line_length"
)

// sectionAll is the only section ever written.
const sectionAll = "[*]"

// Serialize renders s in file order. The result has no trailing newline.
func Serialize(s Settings) string {
	lines := []string{
		property(KeyRoot, strconv.FormatBool(s.Root)),
		"",
		sectionAll,
		property(KeyEndOfLine, string(s.EndOfLine)),
		property(KeyIndentSize, strconv.Itoa(s.IndentSize)),
		property(KeyIndentStyle, string(s.IndentStyle)),
		property(KeyTabWidth, strconv.Itoa(s.TabWidth)),
		property(KeyCharset, string(s.Charset)),
		property(KeyTrimTrailingWhitespace, strconv.FormatBool(s.TrimTrailingWhitespace)),
		property(KeyInsertFinalNewline, strconv.FormatBool(s.InsertFinalNewline)),
		property(KeyMaxLineLength, strconv.Itoa(s.MaxLineLength)),
	}
	return strings.Join(lines, "\n")
}

func property(key, value string) string {
	return key + " = " + value
}

// setters assign a raw value to the field named by the key.
var setters = map[string]func(*Settings, string) error{
	KeyRoot: func(s *Settings, v string) (err error) {
		s.Root, err = parseBool(KeyRoot, v)
		return err
	},
	KeyEndOfLine: func(s *Settings, v string) (err error) {
		s.EndOfLine, err = ParseEndOfLine(v)
		return err
	},
	KeyIndentSize: func(s *Settings, v string) (err error) {
		s.IndentSize, err = parsePositive(KeyIndentSize, v)
		return err
	},
	KeyIndentStyle: func(s *Settings, v string) (err error) {
		s.IndentStyle, err = ParseIndentStyle(v)
		return err
	},
	KeyTabWidth: func(s *Settings, v string) (err error) {
		s.TabWidth, err = parsePositive(KeyTabWidth, v)
		return err
	},
	KeyCharset: func(s *Settings, v string) (err error) {
		s.Charset, err = ParseCharset(v)
		return err
	},
	KeyTrimTrailingWhitespace: func(s *Settings, v string) (err error) {
		s.TrimTrailingWhitespace, err = parseBool(KeyTrimTrailingWhitespace, v)
		return err
	},
	KeyInsertFinalNewline: func(s *Settings, v string) (err error) {
		s.InsertFinalNewline, err = parseBool(KeyInsertFinalNewline, v)
		return err
	},
	KeyMaxLineLength: func(s *Settings, v string) (err error) {
		s.MaxLineLength, err = parsePositive(KeyMaxLineLength, v)
		return err
	},
}

// Parse reads settings from text. Keys missing from text keep their
// defaults, unknown keys and lines that are not a single key = value pair
// are skipped. A recognized key with a value that does not convert aborts
// the parse with a *ParseError.
func Parse(text string) (Settings, error) {
	s := Default()
	for i, line := range strings.Split(text, "\n") {
		key, value, ok := splitProperty(line)
		if !ok {
			continue
		}
		set, ok := setters[key]
		if !ok {
			continue
		}
		if err := set(&s, value); err != nil {
			return Default(), &ParseError{Line: i + 1, Key: key, Value: value, Err: err}
		}
	}
	return s, nil
}

func splitProperty(line string) (key, value string, ok bool) {
	if strings.Count(line, "=") != 1 {
		return "", "", false
	}
	key, value, _ = strings.Cut(line, "=")
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// parseBool accepts only the literal tokens written by Serialize.
func parseBool(key, v string) (bool, error) {
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
}

// parsePositive accepts positive integers that fit in 32 bits.
func parsePositive(key, v string) (int, error) {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidValue, key)
	}
	return int(n), nil
}
