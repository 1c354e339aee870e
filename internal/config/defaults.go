package config

import (
	_ "embed"
)

//go:embed defaults/crossword.yaml
var defaultCrosswordYAML []byte

//go:embed defaults/connections.yaml
var defaultConnectionsYAML []byte

// DefaultCrosswordConfig returns the default crossword configuration.
func DefaultCrosswordConfig() CrosswordConfig {
	return CrosswordConfig{
		Timer: CrosswordTimer{
			TickIntervalMS: 1000,
		},
		Persistence: CrosswordPersistence{
			SaveDebounceMS: 250,
			KeyPrefix:      "crossword_",
		},
		AllowUnlock: false,
	}
}

// DefaultConnectionsConfig returns the default Connections configuration.
func DefaultConnectionsConfig() ConnectionsConfig {
	return ConnectionsConfig{
		MessageDurationMS: 2000,
		Daily:             true,
	}
}
