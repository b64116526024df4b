package config

import "gopkg.in/yaml.v3"

// Smeltfile represents the structure of the smelt.yaml configuration file.
type Smeltfile struct {
	Root     string      `yaml:"root"`
	Paths    PathsDTO    `yaml:"paths"`
	Solidity SolidityDTO `yaml:"solidity"`
	Merge    MergeDTO    `yaml:"merge"`
}

// PathsDTO holds the project directories, relative to the root.
type PathsDTO struct {
	Sources   string `yaml:"sources"`
	Artifacts string `yaml:"artifacts"`
	Cache     string `yaml:"cache"`
}

// SolidityDTO lists the configured compilers. A bare version string is
// accepted as a single compiler with default settings.
type SolidityDTO struct {
	Compilers []CompilerDTO          `yaml:"compilers"`
	Overrides map[string]CompilerDTO `yaml:"overrides"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SolidityDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Compilers = []CompilerDTO{{Version: node.Value}}
		return nil
	}
	type plain SolidityDTO
	return node.Decode((*plain)(s))
}

// CompilerDTO is a compiler version with optional settings.
type CompilerDTO struct {
	Version  string       `yaml:"version"`
	Settings *SettingsDTO `yaml:"settings"`
}

// SettingsDTO mirrors the solc settings object.
type SettingsDTO struct {
	Optimizer       *OptimizerDTO                  `yaml:"optimizer"`
	EVMVersion      string                         `yaml:"evmVersion"`
	Remappings      []string                       `yaml:"remappings"`
	Metadata        map[string]any                 `yaml:"metadata"`
	OutputSelection map[string]map[string][]string `yaml:"outputSelection"`
}

// OptimizerDTO holds the optimizer settings. Runs defaults to 200.
type OptimizerDTO struct {
	Enabled bool `yaml:"enabled"`
	Runs    *int `yaml:"runs"`
}

// MergeDTO configures how compilation jobs are merged.
type MergeDTO struct {
	// UnsafeVersionRange is the solc range in which optimized jobs are kept
	// apart. An empty string disables the exclusion.
	UnsafeVersionRange *string `yaml:"unsafeVersionRange"`
}
