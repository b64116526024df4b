package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/core/domain"
)

// file creates a resolved file under contracts/ with the given pragmas.
func file(name string, pragmas ...string) *domain.ResolvedFile {
	return &domain.ResolvedFile{
		AbsolutePath: "/project/contracts/" + name,
		SourceName:   "contracts/" + name,
		Content:      domain.FileContent{VersionPragmas: pragmas},
	}
}

// graphOf builds a graph of files where edges maps an importer to its imports.
func graphOf(t *testing.T, files []*domain.ResolvedFile, edges map[*domain.ResolvedFile][]*domain.ResolvedFile) *domain.DependencyGraph {
	t.Helper()
	g := domain.NewDependencyGraph()
	for _, f := range files {
		g.AddFile(f)
	}
	for _, f := range files {
		for _, dep := range edges[f] {
			require.NoError(t, g.AddDependency(f, dep))
		}
	}
	return g
}

func names(files []*domain.ResolvedFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.SourceName
	}
	return out
}

func compilers(versions ...string) domain.SolidityConfig {
	cfg := domain.SolidityConfig{}
	for _, v := range versions {
		cfg.Compilers = append(cfg.Compilers, domain.DefaultSolcConfig(v))
	}
	return cfg
}
