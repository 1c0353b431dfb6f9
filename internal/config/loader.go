package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var (
	homeDir  = homedir.Dir
	osGetwd  = os.Getwd
	osGetenv = os.Getenv
)

const (
	userConfigDir    = ".config/color-mcp"
	projectConfigDir = ".color-mcp"
	configFileName   = "config.yaml"
)

// Environment variable names.
const (
	EnvLogLevel   = "COLOR_MCP_LOG_LEVEL"
	EnvBackground = "COLOR_MCP_BACKGROUND"
	EnvMinRatio   = "COLOR_MCP_MIN_RATIO"
)

// Load builds the configuration from defaults, the user and project files,
// the optional explicit file and the environment, then validates it.
// explicitPath may start with "~".
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	var paths []string
	if p, err := userConfigPath(); err == nil {
		paths = append(paths, p)
	}
	if p, err := projectConfigPath(); err == nil {
		paths = append(paths, p)
	}

	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(p)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", p, err)
		}
		cfg = mergeConfigs(cfg, overlay)
	}

	if explicitPath != "" {
		p, err := homedir.Expand(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error expanding config path %s: %w", explicitPath, err)
		}
		overlay, err := loadConfigFromFile(p)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", p, err)
		}
		cfg = mergeConfigs(cfg, overlay)
	}

	cfg, err := applyEnv(cfg)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func userConfigPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

func projectConfigPath() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile reads a single YAML file. Fields absent from the file
// stay unset.
func loadConfigFromFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

// mergeConfigs applies every field set in overlay on top of base.
func mergeConfigs(base Config, overlay fileConfig) Config {
	merged := base

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Contrast.MinRatio != nil {
		merged.Contrast.MinRatio = *overlay.Contrast.MinRatio
	}
	if overlay.Contrast.Delta != nil {
		merged.Contrast.Delta = *overlay.Contrast.Delta
	}
	if overlay.Contrast.Step != nil {
		merged.Contrast.Step = *overlay.Contrast.Step
	}
	if overlay.Terminal.Background != "" {
		merged.Terminal.Background = overlay.Terminal.Background
	}
	if overlay.Terminal.Detect != nil {
		detect := *overlay.Terminal.Detect
		merged.Terminal.Detect = &detect
	}

	return merged
}

func applyEnv(cfg Config) (Config, error) {
	if v := osGetenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := osGetenv(EnvBackground); v != "" {
		cfg.Terminal.Background = v
	}
	if v := osGetenv(EnvMinRatio); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMinRatio, err)
		}
		cfg.Contrast.MinRatio = ratio
	}
	return cfg, nil
}
