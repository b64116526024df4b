// Package app implements the application layer for smelt.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/smelt/internal/engine/planner"
	"go.trai.ch/smelt/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sources      ports.SourceFinder
	resolvers    ports.ResolverFactory
	cacheLoader  ports.FilesCacheLoader
	scheduler    *scheduler.Scheduler
	artifacts    ports.ArtifactManager
	logger       ports.Logger
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sources ports.SourceFinder,
	resolvers ports.ResolverFactory,
	cacheLoader ports.FilesCacheLoader,
	sched *scheduler.Scheduler,
	artifacts ports.ArtifactManager,
	logger ports.Logger,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		sources:      sources,
		resolvers:    resolvers,
		cacheLoader:  cacheLoader,
		scheduler:    sched,
		artifacts:    artifacts,
		logger:       logger,
		watcher:      watcher,
	}
}

// CompileOptions configures a compilation.
type CompileOptions struct {
	// Cwd is the directory the configuration is searched from.
	Cwd string
	// Force compiles every job, ignoring the files cache.
	Force bool
	// Quiet suppresses progress messages.
	Quiet bool
	// Parallelism is the number of compiler processes run at once.
	// Zero means one per CPU.
	Parallelism int
}

// CompileResult summarizes a compilation.
type CompileResult struct {
	// Jobs is the number of compiler invocations.
	Jobs int
	// Artifacts maps the absolute path of every compiled file to its contract names.
	Artifacts map[string][]string
}

// Compile builds the project found from opts.Cwd.
func (a *App) Compile(ctx context.Context, opts CompileOptions) (*CompileResult, error) {
	// 1. Load the configuration
	project, err := a.configLoader.Load(opts.Cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	paths := project.Paths

	// 2. Resolve the sources and build the dependency graph
	graph, err := a.buildGraph(ctx, paths)
	if err != nil {
		return nil, err
	}

	// 3. Load the cache and drop entries whose artifacts are gone
	cache := a.cacheLoader.ReadFromFile(paths.SolidityFilesCachePath())
	invalidateMissingArtifacts(graph, cache, a.artifacts, paths.Artifacts)

	// 4. Derive the compilation jobs
	factory, err := planner.NewFactory(project.Solidity)
	if err != nil {
		return nil, err
	}
	isMergeable, err := planner.NewBugFreePredicate(project.UnsafeMergeRange)
	if err != nil {
		return nil, err
	}
	derived, err := planner.BuildAllJobs(ctx, graph, factory.ForGraph(graph), isMergeable)
	if err != nil {
		return nil, err
	}
	if derived.Errors.HasErrors() {
		report := derived.Errors.Report()
		a.logger.Error(zerr.New(report))
		return nil, errors.Join(domain.ErrBuildFailed,
			zerr.With(domain.ErrJobCreationFailed, "files", strconv.Itoa(derived.Errors.Count())))
	}

	// 5. Skip unchanged jobs and merge the rest
	jobs := planner.FilterJobs(derived.Jobs, cache, opts.Force)
	jobs, err = planner.MergeJobsWithoutBug(jobs, project.UnsafeMergeRange)
	if err != nil {
		return nil, err
	}

	// 6. Run the compiler
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	results, err := a.scheduler.Run(ctx, jobs, scheduler.RunOptions{
		ArtifactsDir: paths.Artifacts,
		Parallelism:  parallelism,
		Quiet:        opts.Quiet,
	})
	if err != nil {
		return nil, err
	}

	// 7. Record what was compiled and remove what is obsolete
	summary := &CompileResult{Jobs: len(results), Artifacts: make(map[string][]string)}
	for _, r := range results {
		for _, file := range r.Job.EmittingFiles() {
			names := r.Artifacts[file.AbsolutePath]
			cache.AddFile(file.AbsolutePath, newCacheEntry(file, r.Job.SolcConfig(), names))
			summary.Artifacts[file.AbsolutePath] = names
		}
	}
	pruneUnreachable(graph, cache)

	if err := removeObsolete(a.artifacts, paths.Artifacts, cache.Entries()); err != nil {
		return nil, err
	}
	if err := cache.WriteToFile(paths.SolidityFilesCachePath()); err != nil {
		return nil, err
	}

	return summary, nil
}

// Clean removes the artifacts and the files cache of the project found from cwd.
func (a *App) Clean(_ context.Context, cwd string) error {
	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.artifacts.Clean(project.Paths.Artifacts); err != nil {
		return err
	}

	cachePath := project.Paths.SolidityFilesCachePath()
	if err := os.Remove(cachePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove solidity files cache"), "path", cachePath)
	}
	a.logger.Info(fmt.Sprintf("Removed %s", project.Paths.Artifacts))
	return nil
}

// buildGraph resolves every source file of the project and everything they import.
func (a *App) buildGraph(ctx context.Context, paths domain.Paths) (*domain.DependencyGraph, error) {
	sourcePaths, err := a.sources.SourcePaths(ctx, paths.Sources)
	if err != nil {
		return nil, err
	}

	resolver := a.resolvers.NewResolver(paths.Root)
	roots := make([]*domain.ResolvedFile, 0, len(sourcePaths))
	for _, p := range sourcePaths {
		sourceName, err := resolver.LocalPathToSourceName(p)
		if err != nil {
			return nil, err
		}
		file, err := resolver.ResolveSourceName(ctx, sourceName)
		if err != nil {
			return nil, err
		}
		roots = append(roots, file)
	}

	return planner.BuildDependencyGraph(ctx, resolver, roots)
}

func newCacheEntry(file *domain.ResolvedFile, config domain.SolcConfig, artifacts []string) domain.CacheEntry {
	return domain.CacheEntry{
		LastModificationDate: file.LastModificationMillis(),
		ContentHash:          file.ContentHash,
		SourceName:           file.SourceName,
		SolcConfig:           config,
		Imports:              nonNil(file.Content.Imports),
		VersionPragmas:       nonNil(file.Content.VersionPragmas),
		Artifacts:            nonNil(artifacts),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
