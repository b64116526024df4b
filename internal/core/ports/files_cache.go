package ports

import (
	"time"

	"go.trai.ch/smelt/internal/core/domain"
)

// FilesCache records the state of every source file at its last successful compilation.
//
//go:generate go run go.uber.org/mock/mockgen -source=files_cache.go -destination=mocks/mock_files_cache.go -package=mocks
type FilesCache interface {
	// HasFileChanged reports whether the file needs recompiling. A nil config
	// means the compiler configuration is not compared.
	HasFileChanged(absolutePath string, modTime time.Time, config *domain.SolcConfig) bool

	// AddFile stores entry for the file, replacing any previous entry.
	AddFile(absolutePath string, entry domain.CacheEntry)

	// RemoveEntry drops the entry of the file.
	RemoveEntry(absolutePath string)

	// Entry returns the entry of the file.
	Entry(absolutePath string) (domain.CacheEntry, bool)

	// Entries returns a copy of all entries keyed by absolute path.
	Entries() map[string]domain.CacheEntry

	// WriteToFile persists the cache atomically.
	WriteToFile(path string) error
}

// FilesCacheLoader reads a persisted FilesCache.
type FilesCacheLoader interface {
	// ReadFromFile loads the cache at path. A missing, corrupt or outdated
	// file yields an empty cache.
	ReadFromFile(path string) FilesCache
}
