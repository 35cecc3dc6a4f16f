// Package main provides the entry point for the add-editorconfig CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/add-editorconfig/editorconfig"
	"github.com/charmbracelet/add-editorconfig/prompt"
	"github.com/charmbracelet/add-editorconfig/ui"
	"github.com/charmbracelet/add-editorconfig/utils"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const appName = "add-editorconfig"

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile        string
	defaultConfigFile string
	output            string
	homeDefault       string
	useForm           bool
	style             string
	width             uint

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "Generate an .editorconfig from a few questions",
		Long: paragraph(
			fmt.Sprintf("\nSmall and simple CLI app to %s based on a given settings.", keyword("generate .editorconfig")),
		),
		Example: paragraph(fmt.Sprintf(
			"%s          create an .editorconfig in the current directory\n%s default  copy the .editorconfig from your home directory",
			appName, appName,
		)),
		SilenceErrors: false,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

// collectFunc fills in settings, starting from base.
type collectFunc func(base editorconfig.Settings) (editorconfig.Settings, error)

// validateStyle checks if the style is a default style, if not, checks that
// the custom style exists.
func validateStyle(style string) error {
	if style != styles.AutoStyle && styles.DefaultStyles[style] == nil {
		style = utils.ExpandPath(style)
		if _, err := os.Stat(style); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("specified style does not exist: %s", style)
		} else if err != nil {
			return fmt.Errorf("unable to stat file: %w", err)
		}
	}
	return nil
}

func validateOptions(cmd *cobra.Command) error {
	if cmd.Flags().Changed("config") {
		viper.SetConfigFile(utils.ExpandPath(configFile))
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read config file: %w", err)
		}
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
	}

	// grab config values from Viper
	output = utils.ExpandPath(viper.GetString("output"))
	homeDefault = viper.GetString("home")
	useForm = viper.GetBool("form")
	width = viper.GetUint("width")

	if output == "" {
		return errors.New("output must not be empty")
	}

	style = viper.GetString("style")
	if err := validateStyle(style); err != nil {
		return err
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	// We want to use a special no-TTY style, when stdout is not a terminal
	// and there was no specific style passed by arg
	if !isTerminal && !cmd.Flags().Changed("style") {
		style = styles.NoTTYStyle
	}

	// Detect terminal width
	if !cmd.Flags().Changed("width") { //nolint:nestif
		if isTerminal && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}

			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// collector returns the questionnaire for cmd: the form when stdin is a
// terminal, plain line prompts otherwise.
func collector(cmd *cobra.Command) collectFunc {
	return func(base editorconfig.Settings) (editorconfig.Settings, error) {
		if useForm && stdinIsTerminal() {
			// Read environment to get UI settings
			cfg, err := env.ParseAs[ui.Config]()
			if err != nil {
				return base, fmt.Errorf("error parsing config: %v", err)
			}
			return ui.RunForm(cfg, base)
		}
		return prompt.Collect(cmd.InOrStdin(), cmd.OutOrStdout(), base)
	}
}

// defaultPath returns the location of the .editorconfig kept in the home
// directory.
func defaultPath() (string, error) {
	if homeDefault != "" {
		return utils.ExpandPath(homeDefault), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, editorconfig.FileName), nil
}

func execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return cmd.Help()
	}
	runGenerate(cmd.OutOrStdout(), collector(cmd), output)
	return nil
}

// runGenerate asks the questionnaire and writes the answers to target.
// Failures are reported on w rather than returned.
func runGenerate(w io.Writer, ask collectFunc, target string) {
	s, err := ask(editorconfig.Default())
	if err != nil {
		printError(w, err)
		return
	}
	writeSettings(w, target, s, "Successfully created .editorconfig")
}

// writeSettings writes s to path and reports the outcome on w.
func writeSettings(w io.Writer, path string, s editorconfig.Settings, success string) {
	if err := editorconfig.WriteFile(path, s); err != nil {
		printError(w, err)
		return
	}
	_, _ = fmt.Fprintln(w, success)
}

func printError(w io.Writer, err error) {
	log.Error("command failed", "error", err)
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if Version == "" {
		Version = "0.1.0"
	}
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(versionString() + "\n")
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", defaultConfigFile))
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", editorconfig.FileName, "file to write in the current directory")
	rootCmd.PersistentFlags().StringVar(&homeDefault, "home", "", "path of the default .editorconfig (default ~/.editorconfig)")
	rootCmd.PersistentFlags().BoolVar(&useForm, "form", true, "use the interactive form when stdin is a terminal")

	// Config bindings
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("home", rootCmd.PersistentFlags().Lookup("home"))
	_ = viper.BindPFlag("form", rootCmd.PersistentFlags().Lookup("form"))

	viper.SetDefault("output", editorconfig.FileName)
	viper.SetDefault("home", "")
	viper.SetDefault("form", true)
	viper.SetDefault("style", styles.AutoStyle)
	viper.SetDefault("width", 0)

	rootCmd.AddCommand(defaultCmd, versionCmd, showCmd, editCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, appName)
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, appName)}, dirs...)
	}

	if c := os.Getenv("ADD_EDITORCONFIG_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName(appName)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("add_editorconfig")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
		defaultConfigFile = used
		return
	}

	defaultConfigFile = filepath.Join(dirs[0], appName+".yml")
}
