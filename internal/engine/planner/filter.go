package planner

import (
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

// NeedsCompilation reports whether any file of job changed since it was last
// compiled. Files emitting artifacts are also compared against the job's
// configuration; files only included as dependencies are compared on their
// modification time alone.
func NeedsCompilation(job *domain.CompilationJob, cache ports.FilesCache) bool {
	config := job.SolcConfig()
	for _, file := range job.ResolvedFiles() {
		var current *domain.SolcConfig
		if job.EmitsArtifacts(file) {
			current = &config
		}
		if cache.HasFileChanged(file.AbsolutePath, file.LastModificationDate, current) {
			return true
		}
	}
	return false
}

// FilterJobs returns the jobs that need compiling. With force set every job is returned.
func FilterJobs(jobs []*domain.CompilationJob, cache ports.FilesCache, force bool) []*domain.CompilationJob {
	if force {
		return jobs
	}
	needed := make([]*domain.CompilationJob, 0, len(jobs))
	for _, job := range jobs {
		if NeedsCompilation(job, cache) {
			needed = append(needed, job)
		}
	}
	return needed
}
