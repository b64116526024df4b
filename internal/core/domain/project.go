package domain

// DefaultUnsafeMergeRange is the solc version range in which jobs compiled
// with the optimizer enabled are never merged.
const DefaultUnsafeMergeRange = ">=0.5.5 <0.7.2"

// SolidityConfig lists the compilers available to a project and the
// per-file compiler overrides.
type SolidityConfig struct {
	Compilers []SolcConfig
	// Overrides is keyed by source name.
	Overrides map[string]SolcConfig
}

// Override returns the compiler override configured for sourceName.
func (c SolidityConfig) Override(sourceName string) (SolcConfig, bool) {
	cfg, ok := c.Overrides[sourceName]
	return cfg, ok
}

// Project is the loaded project configuration.
type Project struct {
	Paths    Paths
	Solidity SolidityConfig
	// UnsafeMergeRange is the version range in which optimized jobs are kept separate.
	UnsafeMergeRange string
}
