package planner

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// MergePredicate reports whether a job may be merged with other jobs.
type MergePredicate func(job *domain.CompilationJob) bool

// AlwaysMergeable allows every job to be merged.
func AlwaysMergeable(*domain.CompilationJob) bool {
	return true
}

// MergeJobs merges mergeable jobs with equal configurations into one job per
// configuration. Jobs rejected by isMergeable are returned unchanged. The
// result keeps the order in which each configuration first appeared.
func MergeJobs(jobs []*domain.CompilationJob, isMergeable MergePredicate) []*domain.CompilationJob {
	out := make([]*domain.CompilationJob, 0, len(jobs))
	var groups []int // indexes into out of merged jobs

	for _, job := range jobs {
		if !isMergeable(job) {
			out = append(out, job)
			continue
		}

		merged := false
		for _, idx := range groups {
			if out[idx].SolcConfig().Equal(job.SolcConfig()) {
				out[idx] = out[idx].Merge(job)
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, len(out))
			out = append(out, job)
		}
	}

	return out
}

// NewBugFreePredicate returns a predicate rejecting jobs that compile with
// the optimizer enabled on a compiler version inside unsafeRange. Those
// versions can generate different bytecode for a contract depending on which
// other sources are part of the same compilation.
func NewBugFreePredicate(unsafeRange string) (MergePredicate, error) {
	if unsafeRange == "" {
		return AlwaysMergeable, nil
	}
	affected, err := semver.NewConstraint(unsafeRange)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidVersionRange.Error()), "range", unsafeRange)
	}

	return func(job *domain.CompilationJob) bool {
		cfg := job.SolcConfig()
		if !cfg.Settings.Optimizer.Enabled {
			return true
		}
		v, err := semver.NewVersion(cfg.Version)
		if err != nil {
			return false
		}
		return !affected.Check(v)
	}, nil
}

// MergeJobsWithoutBug merges jobs except those affected by the cross source
// unit optimizer bug in unsafeRange.
func MergeJobsWithoutBug(jobs []*domain.CompilationJob, unsafeRange string) ([]*domain.CompilationJob, error) {
	isMergeable, err := NewBugFreePredicate(unsafeRange)
	if err != nil {
		return nil, err
	}
	return MergeJobs(jobs, isMergeable), nil
}
