// Package artifacts persists contract artifacts, debug files and build infos.
package artifacts

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/sha3"
)

var _ ports.ArtifactManager = (*Manager)(nil)

// Manager stores artifacts as <dir>/<sourceName>/<Contract>.json next to a
// <Contract>.dbg.json pointing at the build info under <dir>/build-info.
type Manager struct{}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{}
}

// BuildInfoID returns the hex encoded keccak256 of version and the JSON
// encoded input.
func BuildInfoID(version string, input domain.CompilerInput) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode compiler input")
	}
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(version))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SaveBuildInfo writes the build info of a compilation and returns its path.
func (m *Manager) SaveBuildInfo(
	dir, version string,
	input domain.CompilerInput,
	output domain.CompilerOutput,
) (string, error) {
	id, err := BuildInfoID(version, input)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error())
	}

	info := domain.BuildInfo{
		Format:          domain.BuildInfoFormat,
		ID:              id,
		SolcVersion:     version,
		SolcLongVersion: version,
		Input:           input,
		Output:          output,
	}
	path := filepath.Join(dir, domain.BuildInfoDirName, id+domain.ArtifactFileExt)
	if err := writeJSON(path, info, false); err != nil {
		return "", err
	}
	return path, nil
}

// SaveArtifact writes the artifact and its debug file.
func (m *Manager) SaveArtifact(dir string, artifact domain.Artifact, buildInfoPath string) error {
	path := artifactPath(dir, artifact.SourceName, artifact.ContractName)

	rel, err := filepath.Rel(filepath.Dir(path), buildInfoPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", buildInfoPath)
	}

	if err := writeJSON(path, artifact, true); err != nil {
		return err
	}
	debug := domain.DebugFile{Format: domain.DebugFileFormat, BuildInfo: filepath.ToSlash(rel)}
	return writeJSON(debugPath(path), debug, true)
}

// ArtifactExists reports whether the artifact of contractName is on disk.
func (m *Manager) ArtifactExists(dir, sourceName, contractName string) bool {
	info, err := os.Stat(artifactPath(dir, sourceName, contractName))
	return err == nil && !info.IsDir()
}

// RemoveObsoleteArtifacts deletes every artifact and debug file not claimed
// by an entry, then prunes directories left empty. JSON files outside a
// <sourceName>.sol directory are never touched.
func (m *Manager) RemoveObsoleteArtifacts(dir string, entries map[string]domain.CacheEntry) error {
	valid := mapset.NewThreadUnsafeSet[string]()
	for _, entry := range entries {
		for _, contract := range entry.Artifacts {
			valid.Add(artifactPath(dir, entry.SourceName, contract))
		}
	}

	var dirs []string
	err := walkArtifacts(dir, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			dirs = append(dirs, path)
			return nil
		}
		if !isArtifactFile(path) || valid.Contains(path) {
			return nil
		}
		for _, p := range []string{path, debugPath(path)} {
			if err := os.Remove(p); err != nil && !errors.Is(err, iofs.ErrNotExist) {
				return zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", p)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Deepest directories first so parents can become empty.
	slices.Reverse(dirs)
	for _, d := range dirs {
		if d == dir {
			continue
		}
		if children, err := os.ReadDir(d); err == nil && len(children) == 0 {
			if err := os.Remove(d); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", d)
			}
		}
	}
	return nil
}

// RemoveObsoleteBuildInfos deletes every build info no debug file points at.
func (m *Manager) RemoveObsoleteBuildInfos(dir string) error {
	referenced := mapset.NewThreadUnsafeSet[string]()
	err := walkArtifacts(dir, func(path string, d iofs.DirEntry) error {
		if d.IsDir() || !strings.HasSuffix(path, domain.DebugFileSuffix) {
			return nil
		}
		data, err := os.ReadFile(path) //nolint:gosec // Path comes from walking the artifacts directory
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read debug file"), "path", path)
		}
		var debug domain.DebugFile
		if err := json.Unmarshal(data, &debug); err != nil || debug.BuildInfo == "" {
			return nil
		}
		referenced.Add(filepath.Join(filepath.Dir(path), filepath.FromSlash(debug.BuildInfo)))
		return nil
	})
	if err != nil {
		return err
	}

	buildInfos := filepath.Join(dir, domain.BuildInfoDirName)
	entries, err := os.ReadDir(buildInfos)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read build info directory"), "path", buildInfos)
	}
	for _, e := range entries {
		path := filepath.Join(buildInfos, e.Name())
		if e.IsDir() || referenced.Contains(path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", path)
		}
	}
	return nil
}

// Clean removes dir and everything in it.
func (m *Manager) Clean(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", dir)
	}
	return nil
}

func artifactPath(dir, sourceName, contractName string) string {
	return filepath.Join(dir, filepath.FromSlash(sourceName), contractName+domain.ArtifactFileExt)
}

func debugPath(artifactPath string) string {
	return strings.TrimSuffix(artifactPath, domain.ArtifactFileExt) + domain.DebugFileSuffix
}

// isArtifactFile reports whether path looks like <sourceName>/<Contract>.json,
// where sourceName ends in .sol.
func isArtifactFile(path string) bool {
	return strings.HasSuffix(path, domain.ArtifactFileExt) &&
		!strings.HasSuffix(path, domain.DebugFileSuffix) &&
		filepath.Ext(filepath.Dir(path)) == domain.SolidityFileExt
}

// walkArtifacts visits everything under dir except the build info directory.
// A missing dir is not an error.
func walkArtifacts(dir string, fn func(path string, d iofs.DirEntry) error) error {
	buildInfos := filepath.Join(dir, domain.BuildInfoDirName)
	err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path == buildInfos {
			return filepath.SkipDir
		}
		return fn(path, d)
	})
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return err
}

func writeJSON(path string, v any, indent bool) error {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil { //nolint:gosec // Artifacts are meant to be readable
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	return nil
}
