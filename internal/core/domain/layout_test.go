package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/smelt/internal/core/domain"
)

func TestDefaultPaths(t *testing.T) {
	t.Parallel()

	root := filepath.Join("/", "project")
	p := domain.DefaultPaths(root)

	assert.Equal(t, filepath.Join(root, "contracts"), p.Sources)
	assert.Equal(t, filepath.Join(root, "artifacts"), p.Artifacts)
	assert.Equal(t, filepath.Join(root, "cache", "solidity-files-cache.json"), p.SolidityFilesCachePath())
	assert.Equal(t, filepath.Join(root, "artifacts", "build-info"), p.BuildInfoPath())
}
