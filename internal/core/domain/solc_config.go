package domain

import (
	"encoding/json"
	"reflect"
)

// Optimizer holds the solc optimizer settings.
type Optimizer struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// SolcSettings is the settings object passed to solc.
type SolcSettings struct {
	Optimizer       Optimizer                      `json:"optimizer" yaml:"optimizer"`
	EVMVersion      string                         `json:"evmVersion,omitempty" yaml:"evmVersion,omitempty"`
	Remappings      []string                       `json:"remappings,omitempty" yaml:"remappings,omitempty"`
	Metadata        map[string]any                 `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection,omitempty" yaml:"outputSelection,omitempty"`
}

// SolcConfig is a compiler version together with its settings.
type SolcConfig struct {
	Version  string       `json:"version" yaml:"version"`
	Settings SolcSettings `json:"settings" yaml:"settings"`
}

// DefaultOptimizerRuns is the optimizer runs value used when none is configured.
const DefaultOptimizerRuns = 200

// DefaultSolcConfig returns a configuration for version with the default settings.
func DefaultSolcConfig(version string) SolcConfig {
	return SolcConfig{
		Version: version,
		Settings: SolcSettings{
			Optimizer: Optimizer{Enabled: false, Runs: DefaultOptimizerRuns},
		},
	}
}

// Equal reports whether both configurations are structurally equal.
// Nil and empty collections compare equal.
func (c SolcConfig) Equal(other SolcConfig) bool {
	if c.Version != other.Version || c.Settings.Optimizer != other.Settings.Optimizer ||
		c.Settings.EVMVersion != other.Settings.EVMVersion {
		return false
	}
	return reflect.DeepEqual(normalize(c.Settings), normalize(other.Settings))
}

// normalize round-trips the settings through JSON so that nil and empty
// collections and differing numeric types collapse to the same value.
func normalize(s SolcSettings) any {
	data, err := json.Marshal(s)
	if err != nil {
		return s
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return s
	}
	return out
}
