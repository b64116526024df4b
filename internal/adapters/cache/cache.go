// Package cache implements the solidity files cache persisted between builds.
package cache

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// FormatVersion identifies the schema of the cache file. Files with any other
// format are discarded.
const FormatVersion = "smelt-sol-cache-1"

var _ ports.FilesCache = (*FileCache)(nil)

// cacheFile is the on-disk schema.
type cacheFile struct {
	Format string                       `json:"_format"`
	Files  map[string]domain.CacheEntry `json:"files"`
}

// FileCache implements ports.FilesCache in memory.
type FileCache struct {
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
}

// New creates an empty FileCache.
func New() *FileCache {
	return &FileCache{entries: make(map[string]domain.CacheEntry)}
}

// HasFileChanged reports whether the file has no entry, was modified after
// its entry was recorded, or config differs from the recorded configuration.
func (c *FileCache) HasFileChanged(absolutePath string, modTime time.Time, config *domain.SolcConfig) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[absolutePath]
	if !ok {
		return true
	}
	if modTime.UnixMilli() > entry.LastModificationDate {
		return true
	}
	if config != nil && !config.Equal(entry.SolcConfig) {
		return true
	}
	return false
}

// AddFile stores entry, replacing any previous entry for the file.
func (c *FileCache) AddFile(absolutePath string, entry domain.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[absolutePath] = entry
}

// RemoveEntry drops the entry of the file.
func (c *FileCache) RemoveEntry(absolutePath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, absolutePath)
}

// Entry returns the entry of the file.
func (c *FileCache) Entry(absolutePath string) (domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[absolutePath]
	return entry, ok
}

// Entries returns a copy of all entries.
func (c *FileCache) Entries() map[string]domain.CacheEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.entries)
}

// WriteToFile persists the cache to path. The file is written to a temporary
// file in the same directory and renamed over path, so readers see either the
// previous or the new cache.
func (c *FileCache) WriteToFile(path string) error {
	c.mu.RLock()
	data, err := json.MarshalIndent(cacheFile{Format: FormatVersion, Files: c.entries}, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	return nil
}
