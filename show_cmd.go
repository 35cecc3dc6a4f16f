package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/add-editorconfig/editorconfig"
	"github.com/charmbracelet/add-editorconfig/utils"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	copyToClipboard bool

	showCmd = &cobra.Command{
		Use:   "show [PATH]",
		Short: "Render an .editorconfig",
		Long: paragraph(fmt.Sprintf(
			"\n%s an .editorconfig with syntax highlighting. Without a path, the default .editorconfig from your home directory is shown.",
			keyword("Render"),
		)),
		Example: paragraph(appName + " show\n" + appName + " show .editorconfig --copy"),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := showPath(args)
			if err != nil {
				return err
			}

			b, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("unable to read %s: %w", path, err)
			}
			text := string(b)

			if _, err := editorconfig.Parse(text); err != nil {
				log.Warn("editorconfig does not parse", "path", path, "error", err)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("unable to copy to clipboard: %w", err)
				}
				log.Debug("copied editorconfig to clipboard", "path", path)
			}

			return renderEditorconfig(cmd.OutOrStdout(), text)
		},
	}
)

func showPath(args []string) (string, error) {
	if len(args) == 1 {
		return utils.ExpandPath(args[0]), nil
	}
	path, err := defaultPath()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return path, nil
}

// renderEditorconfig writes text to w as a highlighted ini code block.
func renderEditorconfig(w io.Writer, text string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithColorProfile(lipgloss.ColorProfile()),
		utils.GlamourStyle(style),
		glamour.WithWordWrap(int(width)), //nolint:gosec
	)
	if err != nil {
		return fmt.Errorf("unable to create renderer: %w", err)
	}

	out, err := r.Render(utils.WrapCodeBlock(text, "ini"))
	if err != nil {
		return fmt.Errorf("unable to render editorconfig: %w", err)
	}

	if _, err = fmt.Fprint(w, out); err != nil {
		return fmt.Errorf("unable to write to writer: %w", err)
	}
	return nil
}

func init() {
	showCmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "also copy the file to the clipboard")
	showCmd.Flags().StringVarP(&style, "style", "s", styles.AutoStyle, "style name or JSON path")
	showCmd.Flags().UintVarP(&width, "width", "w", 0, "word-wrap at width (set to 0 to disable)")

	_ = viper.BindPFlag("style", showCmd.Flags().Lookup("style"))
	_ = viper.BindPFlag("width", showCmd.Flags().Lookup("width"))
}
