package fs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/adapters/fs"
)

func TestWalker_SourcePaths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "contracts/b/B.sol", "")
	writeFile(t, root, "contracts/A.sol", "")
	writeFile(t, root, "contracts/README.md", "")
	writeFile(t, root, "contracts/node_modules/dep/D.sol", "")
	writeFile(t, root, "contracts/.git/X.sol", "")

	paths, err := fs.NewWalker().SourcePaths(t.Context(), filepath.Join(root, "contracts"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "contracts", "A.sol"),
		filepath.Join(root, "contracts", "b", "B.sol"),
	}, paths)
}

func TestWalker_SourcePaths_MissingDir(t *testing.T) {
	t.Parallel()

	paths, err := fs.NewWalker().SourcePaths(t.Context(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestWalker_SourcePaths_Canceled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "A.sol", "")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := fs.NewWalker().SourcePaths(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.txt", "")
	writeFile(t, root, "b.txt", "")

	count := 0
	for _, err := range fs.NewWalker().WalkFiles(root) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}
