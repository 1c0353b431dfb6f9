package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadeColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		percent float64
		want    string
	}{
		{"identity", "#808080", 0, "#808080"},
		{"identity keeps digits", "#1E90FF", 0, "#1e90ff"},
		{"black to white", "#000000", 1, "#ffffff"},
		{"white to black", "#ffffff", -1, "#000000"},
		{"any to white", "#1e90ff", 1, "#ffffff"},
		{"any to black", "1e90ff", -1, "#000000"},
		{"gray half lighter", "#808080", 0.5, "#c0c0c0"},
		{"gray half darker", "#808080", -0.5, "#404040"},
		{"per channel lighten", "#1e90ff", 0.25, "#56acff"},
		{"per channel darken", "#1e90ff", -0.25, "#166cbf"},
		{"white stays white", "#ffffff", 0.3, "#ffffff"},
		{"black stays black", "#000000", -0.3, "#000000"},
		{"negative zero", "#abcdef", math.Copysign(0, -1), "#abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShadeColor(tt.hex, tt.percent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Channels landing on exactly .5 round away from zero. A half-toward-+inf
// rule would give #414141 for the darkening case.
func TestShadeColor_HalfRounding(t *testing.T) {
	got, err := ShadeColor("#818181", -0.5) // (0-129)*0.5 = -64.5
	require.NoError(t, err)
	assert.Equal(t, "#404040", got)

	got, err = ShadeColor("#7f7f7f", 0.5) // (255-127)*0.5 = 64
	require.NoError(t, err)
	assert.Equal(t, "#bfbfbf", got)

	got, err = ShadeColor("#808080", 0.5) // (255-128)*0.5 = 63.5
	require.NoError(t, err)
	assert.Equal(t, "#c0c0c0", got)
}

func TestShade_MovesTowardTarget(t *testing.T) {
	base := RGBColor{R: 0x80, G: 0x40, B: 0xc0}

	light, err := base.Shade(0.5)
	require.NoError(t, err)
	assert.Greater(t, light.R, base.R)
	assert.Greater(t, light.G, base.G)
	assert.Greater(t, light.B, base.B)

	dark, err := base.Shade(-0.5)
	require.NoError(t, err)
	assert.Less(t, dark.R, base.R)
	assert.Less(t, dark.G, base.G)
	assert.Less(t, dark.B, base.B)
}

func TestShade_MatchesFormula(t *testing.T) {
	percents := []float64{-1, -0.75, -0.5, -0.33, -0.1, 0, 0.1, 0.33, 0.5, 0.75, 1}
	for n := uint32(0); n <= 0xffffff; n += 40009 {
		c := FromPacked(n)
		for _, p := range percents {
			got, err := c.Shade(p)
			require.NoError(t, err)

			target := 255.0
			if p < 0 {
				target = 0
			}
			want := func(ch uint8) uint8 {
				return uint8(math.Round((target-float64(ch))*math.Abs(p)) + float64(ch))
			}
			require.Equal(t, RGBColor{want(c.R), want(c.G), want(c.B)}, got, "color %s percent %v", c, p)
		}
	}
}

func TestShadeColor_InvalidPercent(t *testing.T) {
	for _, p := range []float64{-1.0001, 1.0001, 2, -5, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := ShadeColor("#808080", p)
		assert.ErrorIs(t, err, ErrInvalidPercent, "percent %v", p)
	}
}

func TestShadeColor_InvalidColor(t *testing.T) {
	_, err := ShadeColor("#80808", 0.5)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
	assert.NotErrorIs(t, err, ErrInvalidPercent)

	// Color is checked first when both are bad.
	_, err = ShadeColor("zzzzzz", 3)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}
