package planner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports/mocks"
	"go.trai.ch/smelt/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

func withImports(f *domain.ResolvedFile, imports ...string) *domain.ResolvedFile {
	f.Content.Imports = imports
	return f
}

func TestBuildDependencyGraph(t *testing.T) {
	t.Parallel()

	t.Run("follows imports", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		resolver := mocks.NewMockResolver(ctrl)

		a := withImports(file("A.sol"), "./B.sol", "./C.sol")
		b := withImports(file("B.sol"), "./C.sol")
		c := file("C.sol")
		cAgain := file("C.sol")
		d := file("D.sol")

		resolver.EXPECT().ResolveImport(gomock.Any(), a, "./B.sol").Return(b, nil)
		resolver.EXPECT().ResolveImport(gomock.Any(), a, "./C.sol").Return(c, nil)
		resolver.EXPECT().ResolveImport(gomock.Any(), b, "./C.sol").Return(cAgain, nil)

		g, err := planner.BuildDependencyGraph(context.Background(), resolver, []*domain.ResolvedFile{a, d})
		require.NoError(t, err)

		assert.Equal(t, []string{"contracts/A.sol", "contracts/D.sol", "contracts/B.sol", "contracts/C.sol"},
			names(g.ResolvedFiles()))

		deps, err := g.Dependencies(b)
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.Same(t, c, deps[0], "files resolved twice share the first instance")
	})

	t.Run("propagates resolution errors", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		resolver := mocks.NewMockResolver(ctrl)

		a := withImports(file("A.sol"), "./Missing.sol")
		resolveErr := errors.New("not found")
		resolver.EXPECT().ResolveImport(gomock.Any(), a, "./Missing.sol").Return(nil, resolveErr)

		_, err := planner.BuildDependencyGraph(context.Background(), resolver, []*domain.ResolvedFile{a})
		require.ErrorIs(t, err, resolveErr)
	})
}
