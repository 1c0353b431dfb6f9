package config

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/adapt"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/pkg/logging"
)

// Config is the complete color-mcp configuration.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Contrast adapt.Options  `yaml:"contrast"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// TerminalConfig describes the background colors are adapted against.
type TerminalConfig struct {
	// Background is the fallback background hex color.
	Background string `yaml:"background"`

	// Detect queries the terminal for its real background before falling
	// back to Background. Nil means "not set" so overlays can turn it off.
	Detect *bool `yaml:"detect,omitempty"`
}

// fileConfig is one YAML layer. Contrast fields are pointers so an explicit
// zero, such as delta: 0, overrides the layer below.
type fileConfig struct {
	LogLevel string          `yaml:"log_level"`
	Contrast contrastOverlay `yaml:"contrast"`
	Terminal TerminalConfig  `yaml:"terminal"`
}

type contrastOverlay struct {
	MinRatio *float64 `yaml:"min_ratio"`
	Delta    *float64 `yaml:"delta"`
	Step     *float64 `yaml:"step"`
}

// DetectEnabled reports whether terminal detection is on (default true).
func (t TerminalConfig) DetectEnabled() bool {
	return t.Detect == nil || *t.Detect
}

// Level returns the parsed log level.
func (c Config) Level() (logging.LogLevel, error) {
	return logging.ParseLevel(c.LogLevel)
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := c.Contrast.Validate(); err != nil {
		return fmt.Errorf("contrast: %w", err)
	}
	if c.Terminal.Background != "" {
		if _, err := color.DecodeHex(c.Terminal.Background); err != nil {
			return fmt.Errorf("terminal.background: %w", err)
		}
	}
	return nil
}
