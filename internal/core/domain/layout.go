package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "smelt.yaml"

	// DefaultSourcesDir is the default directory holding the project's Solidity sources.
	DefaultSourcesDir = "contracts"

	// DefaultArtifactsDir is the default directory artifacts are written to.
	DefaultArtifactsDir = "artifacts"

	// DefaultCacheDir is the default directory holding the solidity files cache.
	DefaultCacheDir = "cache"

	// SolidityFilesCacheFileName is the name of the solidity files cache file.
	SolidityFilesCacheFileName = "solidity-files-cache.json"

	// BuildInfoDirName is the name of the build info directory inside the artifacts directory.
	BuildInfoDirName = "build-info"

	// NodeModulesDirName is the directory library sources are resolved from.
	NodeModulesDirName = "node_modules"

	// SolidityFileExt is the extension of Solidity source files.
	SolidityFileExt = ".sol"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Paths holds the resolved project directories.
type Paths struct {
	Root      string
	Sources   string
	Artifacts string
	Cache     string
}

// DefaultPaths returns the default project layout rooted at root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:      root,
		Sources:   filepath.Join(root, DefaultSourcesDir),
		Artifacts: filepath.Join(root, DefaultArtifactsDir),
		Cache:     filepath.Join(root, DefaultCacheDir),
	}
}

// SolidityFilesCachePath returns the location of the solidity files cache.
// It joins the cache directory and solidity-files-cache.json.
func (p Paths) SolidityFilesCachePath() string {
	return filepath.Join(p.Cache, SolidityFilesCacheFileName)
}

// BuildInfoPath returns the directory build infos are written to.
func (p Paths) BuildInfoPath() string {
	return filepath.Join(p.Artifacts, BuildInfoDirName)
}
