// Package editorconfig models the settings written to an .editorconfig file
// and converts them to and from the file's flat key = value format.
package editorconfig

import (
	"fmt"
	"strings"
)

// FileName is the conventional name of the file.
const FileName = ".editorconfig"

// EndOfLine is the line-terminator convention.
type EndOfLine string

// Supported line endings.
const (
	LF   EndOfLine = "lf"
	CRLF EndOfLine = "crlf"
	CR   EndOfLine = "cr"
)

// EndOfLines lists every valid EndOfLine in prompt order.
var EndOfLines = []EndOfLine{LF, CRLF, CR}

// ParseEndOfLine returns the EndOfLine named by s.
func ParseEndOfLine(s string) (EndOfLine, error) {
	for _, v := range EndOfLines {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: end_of_line must be one of %s, got %q", ErrInvalidValue, join(EndOfLines), s)
}

// IndentStyle is the indentation character.
type IndentStyle string

// Supported indentation styles.
const (
	Space IndentStyle = "space"
	Tabs  IndentStyle = "tabs"
)

// IndentStyles lists every valid IndentStyle in prompt order.
var IndentStyles = []IndentStyle{Space, Tabs}

// ParseIndentStyle returns the IndentStyle named by s.
func ParseIndentStyle(s string) (IndentStyle, error) {
	for _, v := range IndentStyles {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: indent_style must be one of %s, got %q", ErrInvalidValue, join(IndentStyles), s)
}

// Charset is the file character encoding.
type Charset string

// Supported charsets.
const (
	Latin1  Charset = "latin1"
	UTF8    Charset = "utf-8"
	UTF16BE Charset = "utf-16be"
	UTF16LE Charset = "utf-16le"
	UTF8BOM Charset = "utf-8-bom"
)

// Charsets lists every valid Charset in prompt order.
var Charsets = []Charset{Latin1, UTF8, UTF16BE, UTF16LE, UTF8BOM}

// ParseCharset returns the Charset named by s.
func ParseCharset(s string) (Charset, error) {
	for _, v := range Charsets {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: charset must be one of %s, got %q", ErrInvalidValue, join(Charsets), s)
}

// Settings holds every property written to the universal [*] section, plus
// the top-level root flag.
type Settings struct {
	Root                   bool
	EndOfLine              EndOfLine
	IndentStyle            IndentStyle
	IndentSize             int
	TabWidth               int
	Charset                Charset
	TrimTrailingWhitespace bool
	InsertFinalNewline     bool
	MaxLineLength          int
}

// Default returns the settings used for anything not explicitly chosen.
func Default() Settings {
	return Settings{
		Root:                   true,
		EndOfLine:              LF,
		IndentStyle:            Space,
		IndentSize:             4,
		TabWidth:               4,
		Charset:                UTF8,
		TrimTrailingWhitespace: true,
		InsertFinalNewline:     true,
		MaxLineLength:          80,
	}
}

// Validate reports the first field holding a value outside its domain.
func (s Settings) Validate() error {
	if _, err := ParseEndOfLine(string(s.EndOfLine)); err != nil {
		return err
	}
	if _, err := ParseIndentStyle(string(s.IndentStyle)); err != nil {
		return err
	}
	if _, err := ParseCharset(string(s.Charset)); err != nil {
		return err
	}
	for _, f := range []struct {
		key string
		v   int
	}{
		{KeyIndentSize, s.IndentSize},
		{KeyTabWidth, s.TabWidth},
		{KeyMaxLineLength, s.MaxLineLength},
	} {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %d", ErrInvalidValue, f.key, f.v)
		}
	}
	return nil
}

// String returns the serialized form of s.
func (s Settings) String() string {
	return Serialize(s)
}

func join[T ~string](vs []T) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = string(v)
	}
	return strings.Join(ss, ", ")
}
