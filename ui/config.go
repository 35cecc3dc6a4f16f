package ui

// Config contains form-specific configuration.
type Config struct {
	// Accent color of the title and accepted answers.
	Accent string `env:"ADD_EDITORCONFIG_ACCENT" envDefault:"#04B575"`

	// For debugging the UI
	AltScreen bool `env:"ADD_EDITORCONFIG_ALT_SCREEN" envDefault:"false"`
}
