// Package terminal connects the color engine to the user's terminal: it
// discovers the background color text will be drawn on and renders colored
// samples and reports for the CLI.
package terminal

import (
	"github.com/muesli/termenv"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Source records where a background color came from.
type Source string

const (
	SourceTerminal Source = "terminal"
	SourceConfig   Source = "config"
)

// For mocking in tests
var queryBackground = termenv.BackgroundColor

// DetectBackground returns the terminal's background as a hex color.
//
// When detect is true the terminal is queried (OSC 11 via termenv). If that is
// disabled, stdout is not a TTY, or the terminal does not answer, fallback is
// returned instead. fallback is expected to be a valid hex color.
func DetectBackground(detect bool, fallback string) (string, Source) {
	if detect {
		if hex, ok := terminalBackground(); ok {
			return hex, SourceTerminal
		}
	}
	if norm, err := color.NormalizeHex(fallback); err == nil {
		return norm, SourceConfig
	}
	return fallback, SourceConfig
}

func terminalBackground() (string, bool) {
	c := queryBackground()
	if c == nil {
		return "", false
	}
	if _, none := c.(termenv.NoColor); none {
		return "", false
	}
	hex := termenv.ConvertToRGB(c).Clamped().Hex()
	if !color.IsValidHex(hex) {
		return "", false
	}
	return hex, true
}
