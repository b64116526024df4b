// Package planner turns a dependency graph into the compilation jobs that
// have to run.
package planner

import (
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/zerr"
)

type candidate struct {
	version *semver.Version
	config  domain.SolcConfig
}

// Factory selects a compiler configuration for single files.
type Factory struct {
	config      domain.SolidityConfig
	candidates  []candidate
	constraints constraintCache
}

// NewFactory creates a Factory for the given project configuration.
// It fails if a configured compiler or override version is not an exact version.
func NewFactory(config domain.SolidityConfig) (*Factory, error) {
	candidates := make([]candidate, 0, len(config.Compilers))
	for _, c := range config.Compilers {
		v, err := parseVersion(c.Version)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{version: v, config: c})
	}
	for name, o := range config.Overrides {
		if _, err := parseVersion(o.Version); err != nil {
			return nil, zerr.With(err, "override", name)
		}
	}

	// Newest first. The stable sort keeps the first configured compiler
	// ahead of later ones with the same version.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return b.version.Compare(a.version)
	})

	return &Factory{config: config, candidates: candidates}, nil
}

// CreateJobForFile derives the compilation job of file. The job compiles file
// together with everything it transitively imports, using the newest
// configured compiler that satisfies all of their pragmas, or the file's
// override when one is configured.
func (f *Factory) CreateJobForFile(
	graph *domain.DependencyGraph,
	file *domain.ResolvedFile,
) (*domain.CompilationJob, *domain.CreationError) {
	fail := func(kind domain.CreationErrorKind) (*domain.CompilationJob, *domain.CreationError) {
		return nil, &domain.CreationError{Kind: kind, File: file}
	}

	deps, err := graph.TransitiveDependencies(file)
	if err != nil {
		return fail(domain.OtherCreationError)
	}

	own, err := f.constraints.parseAll(file)
	if err != nil {
		return fail(domain.OtherCreationError)
	}
	inherited, err := f.constraints.parseAll(deps...)
	if err != nil {
		return fail(domain.OtherCreationError)
	}
	all := slices.Concat(own, inherited)

	if override, ok := f.config.Override(file.SourceName); ok {
		v, err := parseVersion(override.Version)
		if err != nil {
			return fail(domain.OtherCreationError)
		}
		if !satisfiesAll(v, all) {
			return fail(domain.IncompatibleOverride)
		}
		return newJob(override, file, deps), nil
	}

	for _, c := range f.candidates {
		if satisfiesAll(c.version, all) {
			return newJob(c.config, file, deps), nil
		}
	}

	for _, c := range f.candidates {
		if satisfiesAll(c.version, own) {
			return fail(domain.ImportsIncompatibleFile)
		}
	}
	return fail(domain.NoCompatibleVersion)
}

func newJob(config domain.SolcConfig, file *domain.ResolvedFile, deps []*domain.ResolvedFile) *domain.CompilationJob {
	job := domain.NewCompilationJob(config)
	job.AddFileToCompile(file, true)
	for _, dep := range deps {
		job.AddFileToCompile(dep, false)
	}
	return job
}
