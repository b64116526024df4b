package planner

import (
	"context"
	"runtime"

	"go.trai.ch/smelt/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// JobCreator derives the compilation job of a single file.
type JobCreator func(file *domain.ResolvedFile) (*domain.CompilationJob, *domain.CreationError)

// ComponentResult holds the jobs derived for a set of files and the files
// no job could be derived for.
type ComponentResult struct {
	Jobs   []*domain.CompilationJob
	Errors domain.CreationErrors
}

// BuildComponentJobs derives a job for every file of a connected component.
// Failures are collected rather than returned early. Jobs sharing a
// configuration are coalesced unless isMergeable rejects them, so a component
// yields one job per distinct configuration plus every rejected job.
func BuildComponentJobs(
	component *domain.DependencyGraph,
	create JobCreator,
	isMergeable MergePredicate,
) ComponentResult {
	result := ComponentResult{Errors: domain.CreationErrors{}}

	var jobs []*domain.CompilationJob
	for _, file := range component.ResolvedFiles() {
		job, cerr := create(file)
		if cerr != nil {
			result.Errors.Add(cerr)
			continue
		}
		jobs = append(jobs, job)
	}

	result.Jobs = MergeJobs(jobs, isMergeable)
	return result
}

// BuildAllJobs splits graph into connected components and derives the jobs of
// each component concurrently. Jobs are returned in component order.
func BuildAllJobs(
	ctx context.Context,
	graph *domain.DependencyGraph,
	create JobCreator,
	isMergeable MergePredicate,
) (ComponentResult, error) {
	components, err := graph.ConnectedComponents()
	if err != nil {
		return ComponentResult{}, err
	}

	results := make([]ComponentResult, len(components))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, component := range components {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = BuildComponentJobs(component, create, isMergeable)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ComponentResult{}, err
	}

	all := ComponentResult{Errors: domain.CreationErrors{}}
	for _, r := range results {
		all.Jobs = append(all.Jobs, r.Jobs...)
		all.Errors.Merge(r.Errors)
	}
	return all, nil
}

// ForGraph returns a JobCreator deriving jobs with f against graph.
func (f *Factory) ForGraph(graph *domain.DependencyGraph) JobCreator {
	return func(file *domain.ResolvedFile) (*domain.CompilationJob, *domain.CreationError) {
		return f.CreateJobForFile(graph, file)
	}
}
