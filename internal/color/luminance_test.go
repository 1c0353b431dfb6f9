package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want float64
	}{
		{"black", "#000000", 0.0},
		{"white", "#ffffff", 1.0},
		{"red", "#ff0000", 0.2126},
		{"green", "#00ff00", 0.7152},
		{"blue", "#0000ff", 0.0722},
		{"mid gray", "#808080", 0.21586050011389923},
		{"dodger blue", "1e90ff", 0.2744253699145608},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeLuminance(tt.hex)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRelativeLuminance_Invalid(t *testing.T) {
	_, err := RelativeLuminance("#12345g")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestLinearize(t *testing.T) {
	// Linear segment at and below the knee.
	assert.Equal(t, 0.0, Linearize(0))
	assert.InDelta(t, 0.03928/12.92, Linearize(0.03928), 1e-15)

	// Gamma segment just above it.
	assert.InDelta(t, 0.0030402663, Linearize(0.03929), 1e-9)
	assert.InDelta(t, 1.0, Linearize(1), 1e-12)

	prev := -1.0
	for i := 0; i <= 255; i++ {
		v := Linearize(float64(i) / 255)
		assert.Greater(t, v, prev, "channel %d", i)
		prev = v
	}
}

func TestLuminance_Range(t *testing.T) {
	for n := uint32(0); n <= 0xffffff; n += 4099 {
		l := FromPacked(n).Luminance()
		require.GreaterOrEqual(t, l, 0.0)
		require.LessOrEqual(t, l, 1.0+1e-12)
	}
}
