package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

var _ ports.FilesCacheLoader = (*Loader)(nil)

// Loader reads persisted caches. It never fails: an unusable cache file is
// reported as a warning and replaced by an empty cache.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader reporting discarded cache files to logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// ReadFromFile loads the cache at path.
func (l *Loader) ReadFromFile(path string) ports.FilesCache {
	//nolint:gosec // Path is the project's configured cache location
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn(fmt.Sprintf("ignoring unreadable cache %s: %v", path, err))
		}
		return New()
	}

	var file cacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		l.logger.Warn(fmt.Sprintf("ignoring corrupt cache %s", path))
		return New()
	}
	if file.Format != FormatVersion {
		l.logger.Warn(fmt.Sprintf("ignoring cache %s with format %q", path, file.Format))
		return New()
	}

	c := New()
	for absolutePath, entry := range file.Files {
		if !validEntry(entry) {
			continue
		}
		c.entries[absolutePath] = entry
	}
	return c
}

// validEntry rejects entries missing fields every written entry has.
func validEntry(entry domain.CacheEntry) bool {
	return entry.SourceName != "" && entry.SolcConfig.Version != ""
}
