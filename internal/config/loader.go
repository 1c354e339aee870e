package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME.
const AppDir = ".wordplay"

// LoadCrossword loads crossword configuration.
// Search order: customPath -> ~/.wordplay/configs/crossword.yaml -> ./configs/crossword.yaml -> embedded default
func LoadCrossword(customPath string) (CrosswordConfig, error) {
	cfg, err := load("crossword.yaml", customPath, defaultCrosswordYAML, DefaultCrosswordConfig())
	if err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// LoadConnections loads Connections configuration.
// Search order: customPath -> ~/.wordplay/configs/connections.yaml -> ./configs/connections.yaml -> embedded default
func LoadConnections(customPath string) (ConnectionsConfig, error) {
	cfg, err := load("connections.yaml", customPath, defaultConnectionsYAML, DefaultConnectionsConfig())
	if err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// load decodes the first config found onto a copy of fallback, so keys
// missing from the file keep their default values.
func load[T any](filename, customPath string, embedded []byte, fallback T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := fallback
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := fallback
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

func (c CrosswordConfig) normalized() CrosswordConfig {
	def := DefaultCrosswordConfig()
	if c.Timer.TickIntervalMS <= 0 {
		c.Timer.TickIntervalMS = def.Timer.TickIntervalMS
	}
	if c.Persistence.SaveDebounceMS < 0 {
		c.Persistence.SaveDebounceMS = def.Persistence.SaveDebounceMS
	}
	if c.Persistence.KeyPrefix == "" {
		c.Persistence.KeyPrefix = def.Persistence.KeyPrefix
	}
	return c
}

func (c ConnectionsConfig) normalized() ConnectionsConfig {
	if c.MessageDurationMS <= 0 {
		c.MessageDurationMS = DefaultConnectionsConfig().MessageDurationMS
	}
	return c
}
