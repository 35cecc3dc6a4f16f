package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/add-editorconfig/editorconfig"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Create an .editorconfig from the one in your home directory",
	Long: paragraph(fmt.Sprintf(
		"\nCreate an .editorconfig with the %s from the .editorconfig that exists in your home directory. If there is none yet, you'll be asked to fill one in first.",
		keyword("default config"),
	)),
	Example: paragraph(appName + " default\n" + appName + " default --home ~/dotfiles/.editorconfig"),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		runDefault(cmd.OutOrStdout(), collector(cmd), defaultPath, output)
		return nil
	},
}

// runDefault copies the home default located by resolve to target, asking
// for and saving a new home default first when there is none. Failures are
// reported on w rather than returned.
func runDefault(w io.Writer, ask collectFunc, resolve func() (string, error), target string) {
	home, err := resolve()
	if err != nil {
		log.Error("unable to get home directory", "error", err)
		_, _ = fmt.Fprintln(w, "Failed to get home directory. Exiting...")
		return
	}

	exists, err := editorconfig.Exists(home)
	if err != nil {
		printError(w, err)
		return
	}

	if !exists {
		log.Info("no default editorconfig", "path", home)
		_, _ = fmt.Fprintln(w, "Looks like there is no default .editorconfig in your home directory. Creating one..")

		s, err := ask(editorconfig.Default())
		if err != nil {
			printError(w, err)
			return
		}
		writeSettings(w, home, s, "Successfully created .editorconfig in your home directory.")
		writeSettings(w, target, s, "Successfully created .editorconfig in the current directory.")
		return
	}

	_, _ = fmt.Fprintln(w, "Using default .editorconfig...")
	_, _ = fmt.Fprintln(w)

	s, err := editorconfig.ReadFile(home)
	if err != nil {
		printError(w, err)
		return
	}
	writeSettings(w, target, s, "Successfully created .editorconfig")
}
