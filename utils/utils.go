// Package utils provides helpers shared by the commands.
package utils

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

// ExpandPath expands tilde and all environment variables from the given path.
func ExpandPath(path string) string {
	s, err := homedir.Expand(path)
	if err == nil {
		return os.ExpandEnv(s)
	}
	return os.ExpandEnv(path)
}

// WrapCodeBlock wraps a string in a fenced code block with the given
// language.
func WrapCodeBlock(s, language string) string {
	return "```" + language + "\n" + strings.TrimSuffix(s, "\n") + "\n```"
}

// GlamourStyle returns a glamour.TermRendererOption based on the given style.
// The auto style picks dark or light from the terminal background.
func GlamourStyle(style string) glamour.TermRendererOption {
	if style == styles.AutoStyle {
		if termenv.HasDarkBackground() {
			return glamour.WithStandardStyle(styles.DarkStyle)
		}
		return glamour.WithStandardStyle(styles.LightStyle)
	}
	if _, ok := styles.DefaultStyles[style]; ok {
		return glamour.WithStandardStyle(style)
	}
	return glamour.WithStylesFromJSONFile(ExpandPath(style))
}
