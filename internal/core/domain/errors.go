package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no smelt.yaml can be found from the working directory upwards.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrInvalidArtifactsDir is returned when the artifacts directory would
	// hold the project root, the sources, the cache or node_modules.
	ErrInvalidArtifactsDir = zerr.New("invalid artifacts directory")

	// ErrNoCompilersConfigured is returned when the configuration lists no compiler.
	ErrNoCompilersConfigured = zerr.New("no solidity compilers configured")

	// ErrInvalidCompilerVersion is returned when a configured compiler version is not an exact semver version.
	ErrInvalidCompilerVersion = zerr.New("invalid compiler version")

	// ErrInvalidVersionRange is returned when a version range in the configuration cannot be parsed.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrInvalidPragma is returned when a version pragma cannot be parsed as a semver range.
	ErrInvalidPragma = zerr.New("invalid version pragma")

	// ErrFileNotInGraph is returned when a file is looked up in a dependency graph that does not contain it.
	ErrFileNotInGraph = zerr.New("file is not part of the dependency graph")

	// ErrSourceNotFound is returned when a source name cannot be resolved to a file.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrInvalidImport is returned when an import specifier is malformed.
	ErrInvalidImport = zerr.New("invalid import")

	// ErrIllegalImport is returned when a library file imports a file outside of its own library.
	ErrIllegalImport = zerr.New("illegal import")

	// ErrFileOutsideProject is returned when a local path is not inside the project root.
	ErrFileOutsideProject = zerr.New("file is outside the project root")

	// ErrSourceNameCasing is returned when a source name differs in casing from the file on disk.
	ErrSourceNameCasing = zerr.New("source name casing does not match the file on disk")

	// ErrJobCreationFailed is returned when one or more files cannot be assigned a compilation job.
	ErrJobCreationFailed = zerr.New("the project couldn't be compiled")

	// ErrCompilerNotFound is returned when no solc binary matching a version is available.
	ErrCompilerNotFound = zerr.New("solc compiler not found")

	// ErrCompilerInvocationFailed is returned when the solc process cannot be run or returns unreadable output.
	ErrCompilerInvocationFailed = zerr.New("failed to invoke solc")

	// ErrBuildFailed is joined with errors that were already reported to the user.
	ErrBuildFailed = zerr.New("build failed")

	// ErrCompilationFailed is returned when solc reports errors for a compilation job.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrCacheWriteFailed is returned when the solidity files cache cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write solidity files cache")

	// ErrArtifactWriteFailed is returned when an artifact or build info cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrArtifactRemoveFailed is returned when an obsolete artifact cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove obsolete artifact")

	// ErrSourceDiscoveryFailed is returned when the sources directory cannot be walked.
	ErrSourceDiscoveryFailed = zerr.New("failed to discover solidity sources")
)
