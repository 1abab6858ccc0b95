package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "catch.yaml"

// LoadCatch loads the game configuration.
// Search order: customPath -> ~/.dropcatch/configs/catch.yaml ->
// ./configs/catch.yaml -> embedded default.
// Only an explicit customPath can produce an error; the other locations are
// skipped when missing or invalid.
func LoadCatch(customPath string) (CatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults, so a partial file only
// overrides the keys it names, and validates the result.
func parse(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CatchConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg CatchConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dropcatch", "configs", filename)
}
