package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/color-tools-mcp/internal/adapt"
	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// isolate points the home and working directories at fresh temp dirs and
// clears the environment lookups.
func isolate(t *testing.T, env map[string]string) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()

	origHome, origWd, origEnv := homeDir, osGetwd, osGetenv
	homeDir = func() (string, error) { return home, nil }
	osGetwd = func() (string, error) { return wd, nil }
	osGetenv = func(k string) string { return env[k] }
	t.Cleanup(func() {
		homeDir, osGetwd, osGetenv = origHome, origWd, origEnv
	})
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t, nil)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, adapt.DefaultOptions(), cfg.Contrast)
	assert.Equal(t, DefaultBackground, cfg.Terminal.Background)
	assert.True(t, cfg.Terminal.DetectEnabled())
}

func TestLoad_Layering(t *testing.T) {
	home, wd := isolate(t, nil)

	writeFile(t, filepath.Join(home, userConfigDir, configFileName), `
log_level: debug
contrast:
  min_ratio: 7
terminal:
  background: "#1e1e1e"
`)
	writeFile(t, filepath.Join(wd, projectConfigDir, configFileName), `
contrast:
  step: 0.05
terminal:
  detect: false
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7.0, cfg.Contrast.MinRatio)
	assert.Equal(t, 0.05, cfg.Contrast.Step)
	assert.Equal(t, color.DefaultContrastDelta, cfg.Contrast.Delta)
	assert.Equal(t, "#1e1e1e", cfg.Terminal.Background)
	assert.False(t, cfg.Terminal.DetectEnabled())
}

func TestLoad_ExplicitAndEnv(t *testing.T) {
	_, wd := isolate(t, map[string]string{
		EnvBackground: "#fdf6e3",
		EnvMinRatio:   "3",
	})

	explicit := filepath.Join(wd, "custom.yaml")
	writeFile(t, explicit, `
log_level: warn
terminal:
  background: "#000000"
`)

	cfg, err := Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "#fdf6e3", cfg.Terminal.Background, "env wins over files")
	assert.Equal(t, 3.0, cfg.Contrast.MinRatio)
}

func TestLoad_ExplicitZeroDelta(t *testing.T) {
	home, _ := isolate(t, nil)
	writeFile(t, filepath.Join(home, userConfigDir, configFileName), `
contrast:
  delta: 0
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Contrast.Delta)
	assert.Equal(t, adapt.RatioAA, cfg.Contrast.MinRatio)
	assert.Equal(t, adapt.DefaultOptions().Step, cfg.Contrast.Step)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t, nil)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		home, _ := isolate(t, nil)
		writeFile(t, filepath.Join(home, userConfigDir, configFileName), "contrast: [1, 2")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("bad background", func(t *testing.T) {
		isolate(t, map[string]string{EnvBackground: "#fff"})
		_, err := Load("")
		assert.ErrorIs(t, err, color.ErrInvalidColorFormat)
	})

	t.Run("bad ratio env", func(t *testing.T) {
		isolate(t, map[string]string{EnvMinRatio: "lots"})
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("ratio out of range", func(t *testing.T) {
		isolate(t, map[string]string{EnvMinRatio: "40"})
		_, err := Load("")
		assert.ErrorIs(t, err, adapt.ErrInvalidOptions)
	})

	t.Run("zero step in file", func(t *testing.T) {
		home, _ := isolate(t, nil)
		writeFile(t, filepath.Join(home, userConfigDir, configFileName), "contrast:\n  step: 0\n")
		_, err := Load("")
		assert.ErrorIs(t, err, adapt.ErrInvalidOptions)
	})

	t.Run("bad log level", func(t *testing.T) {
		isolate(t, map[string]string{EnvLogLevel: "loud"})
		_, err := Load("")
		assert.Error(t, err)
	})
}
