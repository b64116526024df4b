package domain

import (
	"errors"
	"slices"

	"github.com/dominikbraun/graph"
	"go.trai.ch/zerr"
)

// fileHash identifies a resolved file in the graph by its absolute path.
func fileHash(f *ResolvedFile) string {
	return f.AbsolutePath
}

// DependencyGraph is a directed graph of resolved files where an edge A -> B means A imports B.
//
// Nodes keep their insertion order so that every traversal result is a
// stable function of the order files were added. The graph is safe for
// concurrent reads once it is no longer modified.
type DependencyGraph struct {
	imports graph.Graph[string, *ResolvedFile]
	links   graph.Graph[string, *ResolvedFile]
	order   []string
	index   map[string]int
	// deps holds the direct imports of each file in the order they were added.
	deps map[string][]string
}

// NewDependencyGraph creates an empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		imports: graph.New(fileHash, graph.Directed()),
		links:   graph.New(fileHash),
		index:   make(map[string]int),
		deps:    make(map[string][]string),
	}
}

// AddFile adds a file to the graph. It returns false if a file with the same
// absolute path is already present, in which case the graph is unchanged.
func (g *DependencyGraph) AddFile(f *ResolvedFile) bool {
	if _, ok := g.index[f.AbsolutePath]; ok {
		return false
	}
	// Both errors can only be ErrVertexAlreadyExists, ruled out above.
	_ = g.imports.AddVertex(f)
	_ = g.links.AddVertex(f)

	g.index[f.AbsolutePath] = len(g.order)
	g.order = append(g.order, f.AbsolutePath)
	return true
}

// AddDependency records that from imports to. Both files must already be in the graph.
// Adding the same dependency twice is a no-op.
func (g *DependencyGraph) AddDependency(from, to *ResolvedFile) error {
	for _, f := range []*ResolvedFile{from, to} {
		if !g.Has(f.AbsolutePath) {
			return zerr.With(ErrFileNotInGraph, "path", f.AbsolutePath)
		}
	}

	err := g.imports.AddEdge(from.AbsolutePath, to.AbsolutePath)
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return nil
	}
	if err != nil {
		return zerr.Wrap(err, "failed to add import edge")
	}
	g.deps[from.AbsolutePath] = append(g.deps[from.AbsolutePath], to.AbsolutePath)

	err = g.links.AddEdge(from.AbsolutePath, to.AbsolutePath)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return zerr.Wrap(err, "failed to add link edge")
	}
	return nil
}

// Has reports whether a file with the given absolute path is in the graph.
func (g *DependencyGraph) Has(absolutePath string) bool {
	_, ok := g.index[absolutePath]
	return ok
}

// File returns the file with the given absolute path.
func (g *DependencyGraph) File(absolutePath string) (*ResolvedFile, bool) {
	if !g.Has(absolutePath) {
		return nil, false
	}
	f, err := g.imports.Vertex(absolutePath)
	if err != nil {
		return nil, false
	}
	return f, true
}

// Len returns the number of files in the graph.
func (g *DependencyGraph) Len() int {
	return len(g.order)
}

// ResolvedFiles returns all files in insertion order.
func (g *DependencyGraph) ResolvedFiles() []*ResolvedFile {
	return g.files(g.order)
}

// Dependencies returns the files directly imported by f, in the order the imports were added.
func (g *DependencyGraph) Dependencies(f *ResolvedFile) ([]*ResolvedFile, error) {
	if !g.Has(f.AbsolutePath) {
		return nil, zerr.With(ErrFileNotInGraph, "path", f.AbsolutePath)
	}
	return g.files(g.deps[f.AbsolutePath]), nil
}

// Dependents returns the files that directly import f, in insertion order.
func (g *DependencyGraph) Dependents(f *ResolvedFile) ([]*ResolvedFile, error) {
	predecessors, err := g.imports.PredecessorMap()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read import graph")
	}
	in, ok := predecessors[f.AbsolutePath]
	if !ok {
		return nil, zerr.With(ErrFileNotInGraph, "path", f.AbsolutePath)
	}
	return inOrder(g, in), nil
}

// TransitiveDependencies returns every file reachable from f by following imports,
// in insertion order. The result never contains f itself, even when f is part of
// an import cycle.
func (g *DependencyGraph) TransitiveDependencies(f *ResolvedFile) ([]*ResolvedFile, error) {
	if !g.Has(f.AbsolutePath) {
		return nil, zerr.With(ErrFileNotInGraph, "path", f.AbsolutePath)
	}

	reached := make(map[string]struct{})
	queue := []string{f.AbsolutePath}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dep := range g.deps[current] {
			if _, ok := reached[dep]; ok {
				continue
			}
			reached[dep] = struct{}{}
			queue = append(queue, dep)
		}
	}
	delete(reached, f.AbsolutePath)
	return inOrder(g, reached), nil
}

// ConnectedComponents partitions the graph into its connected components,
// treating imports as undirected links. Components are ordered by their
// earliest inserted file, and each component keeps the graph's insertion
// order and only the edges among its own files.
func (g *DependencyGraph) ConnectedComponents() ([]*DependencyGraph, error) {
	adjacency, err := g.links.AdjacencyMap()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read dependency graph")
	}

	assigned := make(map[string]bool, len(g.order))
	var components []*DependencyGraph

	for _, start := range g.order {
		if assigned[start] {
			continue
		}

		members := map[string]struct{}{start: {}}
		assigned[start] = true
		queue := []string{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for neighbor := range adjacency[current] {
				if assigned[neighbor] {
					continue
				}
				assigned[neighbor] = true
				members[neighbor] = struct{}{}
				queue = append(queue, neighbor)
			}
		}

		component, err := g.subgraph(members)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return components, nil
}

// subgraph builds a new graph holding the given files and the edges between them.
func (g *DependencyGraph) subgraph(members map[string]struct{}) (*DependencyGraph, error) {
	sub := NewDependencyGraph()
	files := inOrder(g, members)
	for _, f := range files {
		sub.AddFile(f)
	}
	for _, f := range files {
		for _, dep := range g.files(g.deps[f.AbsolutePath]) {
			if err := sub.AddDependency(f, dep); err != nil {
				return nil, err
			}
		}
	}
	return sub, nil
}

// inOrder returns the files for the given path set in insertion order.
func inOrder[V any](g *DependencyGraph, set map[string]V) []*ResolvedFile {
	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	slices.SortFunc(paths, func(a, b string) int {
		return g.index[a] - g.index[b]
	})
	return g.files(paths)
}

func (g *DependencyGraph) files(paths []string) []*ResolvedFile {
	out := make([]*ResolvedFile, 0, len(paths))
	for _, p := range paths {
		f, err := g.imports.Vertex(p)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}
