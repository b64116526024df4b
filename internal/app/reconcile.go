package app

import (
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

// invalidateMissingArtifacts drops the cache entry of every file in graph
// that claims an artifact which no longer exists, so the file is compiled again.
func invalidateMissingArtifacts(
	graph *domain.DependencyGraph,
	cache ports.FilesCache,
	artifacts ports.ArtifactManager,
	artifactsDir string,
) {
	for _, file := range graph.ResolvedFiles() {
		entry, ok := cache.Entry(file.AbsolutePath)
		if !ok {
			continue
		}
		for _, name := range entry.Artifacts {
			if !artifacts.ArtifactExists(artifactsDir, entry.SourceName, name) {
				cache.RemoveEntry(file.AbsolutePath)
				break
			}
		}
	}
}

// pruneUnreachable drops the cache entries of files that are no longer part
// of the project.
func pruneUnreachable(graph *domain.DependencyGraph, cache ports.FilesCache) {
	for path := range cache.Entries() {
		if _, ok := graph.File(path); !ok {
			cache.RemoveEntry(path)
		}
	}
}

// removeObsolete deletes artifacts and build infos not referenced by entries.
func removeObsolete(artifacts ports.ArtifactManager, dir string, entries map[string]domain.CacheEntry) error {
	if err := artifacts.RemoveObsoleteArtifacts(dir, entries); err != nil {
		return err
	}
	return artifacts.RemoveObsoleteBuildInfos(dir)
}
