// Package fs provides file system adapters for discovering, resolving and
// parsing Solidity sources.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"iter"
	"path/filepath"
	"slices"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceFinder = (*Walker)(nil)

// Walker discovers Solidity sources.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// SourcePaths returns the absolute paths of all .sol files under dir, sorted.
// A missing dir yields no paths.
func (w *Walker) SourcePaths(ctx context.Context, dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceDiscoveryFailed.Error()), "path", dir)
	}

	var walkErr error
	var paths []string
	for path, err := range w.WalkFiles(abs) {
		if err != nil {
			walkErr = err
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if filepath.Ext(path) == domain.SolidityFileExt {
			paths = append(paths, path)
		}
	}
	if errors.Is(walkErr, iofs.ErrNotExist) {
		return nil, nil
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrSourceDiscoveryFailed.Error()), "path", abs)
	}

	slices.Sort(paths)
	return paths, nil
}

// WalkFiles yields every regular file under root, skipping VCS metadata and
// installed packages. Walk errors are yielded with an empty path and end the walk.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func skipDir(name string) bool {
	switch name {
	case ".git", ".jj", domain.NodeModulesDirName:
		return true
	default:
		return false
	}
}
