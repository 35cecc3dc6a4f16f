package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/add-editorconfig/editorconfig"
	"github.com/charmbracelet/x/editor"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit",
	Short:   "Edit the default .editorconfig in your home directory",
	Long:    paragraph(fmt.Sprintf("\n%s the default .editorconfig. We’ll use EDITOR to determine which editor to use. If the file doesn't exist, it will be created with the default settings.", keyword("Edit"))),
	Example: paragraph(appName + " edit\n" + appName + " edit --home ~/dotfiles/.editorconfig"),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := defaultPath()
		if err != nil {
			return fmt.Errorf("unable to get home directory: %w", err)
		}
		if err := ensureDefaultFile(path); err != nil {
			return err
		}

		c, err := editor.Cmd("add-editorconfig", path)
		if err != nil {
			return fmt.Errorf("unable to set editorconfig file: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run command: %w", err)
		}

		w := cmd.OutOrStdout()
		if _, err := editorconfig.ReadFile(path); err != nil {
			printError(w, err)
			return nil
		}
		_, _ = fmt.Fprintln(w, "Wrote default .editorconfig to:", path)
		return nil
	},
}

// ensureDefaultFile writes the default settings to path unless a file is
// already there.
func ensureDefaultFile(path string) error {
	exists, err := editorconfig.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := editorconfig.WriteFile(path, editorconfig.Default()); err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	return nil
}
