// Package config provides the configuration loader for smelt.
package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds smelt.yaml in cwd or one of its parents and parses it.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// LoadFile parses the configuration file at configPath.
func (l *Loader) LoadFile(configPath string) (*domain.Project, error) {
	var smeltfile Smeltfile
	if err := readAndUnmarshalYAML(configPath, &smeltfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	root := resolveRoot(configPath, smeltfile.Root)
	solidity, err := l.solidityConfig(smeltfile.Solidity)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	unsafeRange := domain.DefaultUnsafeMergeRange
	if smeltfile.Merge.UnsafeVersionRange != nil {
		unsafeRange = strings.TrimSpace(*smeltfile.Merge.UnsafeVersionRange)
	}
	if unsafeRange != "" {
		if _, err := semver.NewConstraint(unsafeRange); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrInvalidVersionRange.Error()), "range", unsafeRange)
			return nil, zerr.With(err, "path", configPath)
		}
	}

	paths := resolvePaths(root, smeltfile.Paths)
	if err := validateArtifactsDir(paths); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return &domain.Project{
		Paths:            paths,
		Solidity:         solidity,
		UnsafeMergeRange: unsafeRange,
	}, nil
}

func (l *Loader) solidityConfig(dto SolidityDTO) (domain.SolidityConfig, error) {
	if len(dto.Compilers) == 0 {
		return domain.SolidityConfig{}, domain.ErrNoCompilersConfigured
	}

	cfg := domain.SolidityConfig{
		Compilers: make([]domain.SolcConfig, 0, len(dto.Compilers)),
		Overrides: make(map[string]domain.SolcConfig, len(dto.Overrides)),
	}

	seen := make(map[string]bool, len(dto.Compilers))
	for _, c := range dto.Compilers {
		compiler, err := toSolcConfig(c)
		if err != nil {
			return domain.SolidityConfig{}, err
		}
		if seen[compiler.Version] {
			l.Logger.Warn(fmt.Sprintf("compiler %s is configured more than once, the first entry is preferred", compiler.Version))
		}
		seen[compiler.Version] = true
		cfg.Compilers = append(cfg.Compilers, compiler)
	}

	for sourceName, o := range dto.Overrides {
		if sourceName != path.Clean(sourceName) || path.IsAbs(sourceName) || strings.Contains(sourceName, `\`) {
			return domain.SolidityConfig{}, zerr.With(domain.ErrInvalidImport, "override", sourceName)
		}
		override, err := toSolcConfig(o)
		if err != nil {
			return domain.SolidityConfig{}, zerr.With(err, "override", sourceName)
		}
		cfg.Overrides[sourceName] = override
	}

	return cfg, nil
}

func toSolcConfig(dto CompilerDTO) (domain.SolcConfig, error) {
	version := strings.TrimPrefix(strings.TrimSpace(dto.Version), "v")
	if _, err := semver.StrictNewVersion(version); err != nil {
		return domain.SolcConfig{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidCompilerVersion.Error()), "version", dto.Version)
	}

	cfg := domain.DefaultSolcConfig(version)
	if dto.Settings == nil {
		return cfg, nil
	}

	s := dto.Settings
	if s.Optimizer != nil {
		cfg.Settings.Optimizer.Enabled = s.Optimizer.Enabled
		if s.Optimizer.Runs != nil {
			cfg.Settings.Optimizer.Runs = *s.Optimizer.Runs
		}
	}
	cfg.Settings.EVMVersion = s.EVMVersion
	cfg.Settings.Remappings = s.Remappings
	cfg.Settings.Metadata = s.Metadata
	cfg.Settings.OutputSelection = s.OutputSelection
	return cfg, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolveDir(filepath.Dir(configPath), configuredRoot, ".")
}

func resolvePaths(root string, dto PathsDTO) domain.Paths {
	return domain.Paths{
		Root:      root,
		Sources:   resolveDir(root, dto.Sources, domain.DefaultSourcesDir),
		Artifacts: resolveDir(root, dto.Artifacts, domain.DefaultArtifactsDir),
		Cache:     resolveDir(root, dto.Cache, domain.DefaultCacheDir),
	}
}

// validateArtifactsDir rejects an artifacts directory that equals or contains
// a directory the artifact prune must never touch.
func validateArtifactsDir(paths domain.Paths) error {
	protected := []string{
		paths.Root,
		paths.Sources,
		paths.Cache,
		filepath.Join(paths.Root, domain.NodeModulesDirName),
	}
	for _, dir := range protected {
		if isWithin(paths.Artifacts, dir) {
			return zerr.With(zerr.With(domain.ErrInvalidArtifactsDir, "artifacts", paths.Artifacts), "contains", dir)
		}
	}
	return nil
}

// isWithin reports whether path is dir or one of its descendants.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolveDir resolves configured against base, using fallback when it is empty.
func resolveDir(base, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
