package config

import "github.com/ironsheep/color-tools-mcp/internal/adapt"

// DefaultBackground is assumed when neither config nor the terminal reports one.
const DefaultBackground = "#000000"

// Default returns the built-in configuration.
func Default() Config {
	detect := true
	return Config{
		LogLevel: "info",
		Contrast: adapt.DefaultOptions(),
		Terminal: TerminalConfig{
			Background: DefaultBackground,
			Detect:     &detect,
		},
	}
}
