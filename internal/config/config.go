// Package config provides YAML-based game configuration loading for the
// puzzle platform.
package config

import "time"

// CrosswordConfig contains all configuration for the crossword game.
type CrosswordConfig struct {
	Timer       CrosswordTimer       `yaml:"timer"`
	Persistence CrosswordPersistence `yaml:"persistence"`
	// AllowUnlock enables the unlock key after a full reveal. Intended for
	// testing puzzles; off by default.
	AllowUnlock bool `yaml:"allow_unlock"`
}

// CrosswordTimer defines the play clock.
type CrosswordTimer struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// CrosswordPersistence defines how progress is saved.
type CrosswordPersistence struct {
	SaveDebounceMS int    `yaml:"save_debounce_ms"`
	KeyPrefix      string `yaml:"key_prefix"`
}

// TickInterval returns the clock period.
func (c CrosswordConfig) TickInterval() time.Duration {
	return time.Duration(c.Timer.TickIntervalMS) * time.Millisecond
}

// SaveDebounce returns the quiet period before a save is written.
func (c CrosswordConfig) SaveDebounce() time.Duration {
	return time.Duration(c.Persistence.SaveDebounceMS) * time.Millisecond
}

// ConnectionsConfig contains all configuration for the Connections game.
type ConnectionsConfig struct {
	MessageDurationMS int `yaml:"message_duration_ms"`
	// Daily selects the puzzle dated today when no puzzle is named.
	Daily bool `yaml:"daily"`
}

// MessageDuration returns how long a feedback message stays visible.
func (c ConnectionsConfig) MessageDuration() time.Duration {
	return time.Duration(c.MessageDurationMS) * time.Millisecond
}
