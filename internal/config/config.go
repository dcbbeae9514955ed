package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// BidCutoffs are the hand scores below which the bid policy offers 0, 1 and 2.
type BidCutoffs struct {
	Zero float64 `json:"zero"`
	One  float64 `json:"one"`
	Two  float64 `json:"two"`
}

// EngineConfig holds the tunables of the decision service, loaded from a JSON file.
type EngineConfig struct {
	BidCutoffs BidCutoffs `json:"bid_cutoffs"`
	// MaxAssignments caps the role assignments the decomposition tries per hand.
	MaxAssignments int `json:"max_assignments"`
	// MaxKickerCombos caps the attachment choices tried per window.
	MaxKickerCombos int `json:"max_kicker_combos"`
	// LogLevel is a logrus level name.
	LogLevel string `json:"log_level"`
}

// DefaultEngineConfig returns the values used when no file has been loaded.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		BidCutoffs:      BidCutoffs{Zero: -55, One: -40, Two: -25},
		MaxAssignments:  1 << 16,
		MaxKickerCombos: 4096,
		LogLevel:        "info",
	}
}

var (
	cfg      *EngineConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadEngineConfig loads the engine configuration from the given path.
// Fields missing from the file keep their defaults.
func LoadEngineConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read engine config: %w", err)
			return
		}

		c, err := ParseEngineConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// ParseEngineConfig decodes a config document over the defaults.
func ParseEngineConfig(data []byte) (EngineConfig, error) {
	c := DefaultEngineConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return EngineConfig{}, fmt.Errorf("failed to unmarshal engine config: %w", err)
	}
	if c.MaxAssignments < 0 || c.MaxKickerCombos < 0 {
		return EngineConfig{}, fmt.Errorf("engine config: enumeration caps must not be negative")
	}
	if !(c.BidCutoffs.Zero <= c.BidCutoffs.One && c.BidCutoffs.One <= c.BidCutoffs.Two) {
		return EngineConfig{}, fmt.Errorf("engine config: bid cutoffs must be ascending, got %+v", c.BidCutoffs)
	}
	return c, nil
}

// GetEngineConfig returns the global engine configuration, or the defaults
// when nothing was loaded.
func GetEngineConfig() EngineConfig {
	if cfg == nil {
		return DefaultEngineConfig()
	}
	return *cfg
}
