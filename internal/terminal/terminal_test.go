package terminal

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func mockBackground(t *testing.T, c termenv.Color) {
	t.Helper()
	orig := queryBackground
	queryBackground = func() termenv.Color { return c }
	t.Cleanup(func() { queryBackground = orig })
}

func TestDetectBackground_FromTerminal(t *testing.T) {
	mockBackground(t, termenv.RGBColor("#282C34"))

	hex, src := DetectBackground(true, "#000000")
	assert.Equal(t, "#282c34", hex)
	assert.Equal(t, SourceTerminal, src)
}

func TestDetectBackground_ANSIColor(t *testing.T) {
	mockBackground(t, termenv.ANSIColor(15)) // bright white

	hex, src := DetectBackground(true, "#000000")
	assert.Equal(t, "#ffffff", hex)
	assert.Equal(t, SourceTerminal, src)
}

func TestDetectBackground_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		color  termenv.Color
		detect bool
	}{
		{"no tty", termenv.NoColor{}, true},
		{"nil", nil, true},
		{"detection disabled", termenv.RGBColor("#ffffff"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBackground(t, tt.color)
			hex, src := DetectBackground(tt.detect, "1E1E1E")
			assert.Equal(t, "#1e1e1e", hex)
			assert.Equal(t, SourceConfig, src)
		})
	}
}

func TestSwatch(t *testing.T) {
	out := Swatch("#ffffff", "#000000", "sample")
	assert.Contains(t, out, "sample")
}

func TestTable(t *testing.T) {
	out := Table([]string{"field", "value"}, [][]string{
		{"ratio", "21.00"},
		{"level", "AAA"},
	})
	assert.Contains(t, out, "ratio")
	assert.Contains(t, out, "AAA")
	assert.Equal(t, 6, len(strings.Split(strings.TrimRight(out, "\n"), "\n")))
}
