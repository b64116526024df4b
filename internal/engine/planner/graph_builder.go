package planner

import (
	"context"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// BuildDependencyGraph builds the dependency graph reachable from roots,
// resolving every import with resolver. The imports of each file are resolved
// concurrently, but files and edges are added in declaration order so the
// graph does not depend on scheduling.
func BuildDependencyGraph(
	ctx context.Context,
	resolver ports.Resolver,
	roots []*domain.ResolvedFile,
) (*domain.DependencyGraph, error) {
	graph := domain.NewDependencyGraph()
	queue := make([]*domain.ResolvedFile, 0, len(roots))
	for _, root := range roots {
		if graph.AddFile(root) {
			queue = append(queue, root)
		}
	}

	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]

		imports, err := resolveImports(ctx, resolver, file)
		if err != nil {
			return nil, err
		}

		for _, imported := range imports {
			if existing, ok := graph.File(imported.AbsolutePath); ok {
				imported = existing
			} else {
				graph.AddFile(imported)
				queue = append(queue, imported)
			}
			if err := graph.AddDependency(file, imported); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}

func resolveImports(ctx context.Context, resolver ports.Resolver, file *domain.ResolvedFile) ([]*domain.ResolvedFile, error) {
	specifiers := file.Content.Imports
	resolved := make([]*domain.ResolvedFile, len(specifiers))

	g, ctx := errgroup.WithContext(ctx)
	for i, specifier := range specifiers {
		g.Go(func() error {
			f, err := resolver.ResolveImport(ctx, file, specifier)
			if err != nil {
				return err
			}
			resolved[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}
