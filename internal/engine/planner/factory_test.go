package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/engine/planner"
)

func TestNewFactory_InvalidVersion(t *testing.T) {
	t.Parallel()

	_, err := planner.NewFactory(compilers("0.8"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidCompilerVersion.Error())

	cfg := compilers("0.8.9")
	cfg.Overrides = map[string]domain.SolcConfig{"contracts/A.sol": domain.DefaultSolcConfig("latest")}
	_, err = planner.NewFactory(cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidCompilerVersion.Error())
}

func TestFactory_CreateJobForFile(t *testing.T) {
	t.Parallel()

	t.Run("selects newest satisfying version", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.8.0")
		g := graphOf(t, []*domain.ResolvedFile{a}, nil)

		f, err := planner.NewFactory(compilers("0.7.6", "0.8.4", "0.8.9", "0.6.12"))
		require.NoError(t, err)

		job, cerr := f.CreateJobForFile(g, a)
		require.Nil(t, cerr)
		assert.Equal(t, "0.8.9", job.SolcConfig().Version)
		assert.True(t, job.EmitsArtifacts(a))
	})

	t.Run("intersects transitive pragmas", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", ">=0.6.0")
		b := file("B.sol", "<0.8.0")
		c := file("C.sol", "^0.7.0")
		unrelated := file("U.sol", "^0.8.0")
		g := graphOf(t, []*domain.ResolvedFile{a, b, c, unrelated}, map[*domain.ResolvedFile][]*domain.ResolvedFile{
			a:         {b},
			b:         {c},
			unrelated: {a},
		})

		f, err := planner.NewFactory(compilers("0.6.12", "0.7.6", "0.8.9"))
		require.NoError(t, err)

		job, cerr := f.CreateJobForFile(g, a)
		require.Nil(t, cerr)
		assert.Equal(t, "0.7.6", job.SolcConfig().Version)
		assert.Equal(t, []string{"contracts/A.sol", "contracts/B.sol", "contracts/C.sol"}, names(job.ResolvedFiles()))
		assert.True(t, job.EmitsArtifacts(a))
		assert.False(t, job.EmitsArtifacts(b))
		assert.False(t, job.EmitsArtifacts(c))
		assert.False(t, job.HasFile(unrelated), "importers are not part of the job")
	})

	t.Run("imports incompatible file", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.8.0")
		b := file("B.sol", "^0.7.0")
		g := graphOf(t, []*domain.ResolvedFile{a, b}, map[*domain.ResolvedFile][]*domain.ResolvedFile{a: {b}})

		f, err := planner.NewFactory(compilers("0.7.6", "0.8.9"))
		require.NoError(t, err)

		job, cerr := f.CreateJobForFile(g, a)
		assert.Nil(t, job)
		require.NotNil(t, cerr)
		assert.Equal(t, domain.ImportsIncompatibleFile, cerr.Kind)
		assert.Same(t, a, cerr.File)

		job, cerr = f.CreateJobForFile(g, b)
		require.Nil(t, cerr, "the imported file compiles fine on its own")
		assert.Equal(t, "0.7.6", job.SolcConfig().Version)
	})

	t.Run("no compatible version", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.5.0")
		g := graphOf(t, []*domain.ResolvedFile{a}, nil)

		f, err := planner.NewFactory(compilers("0.8.9"))
		require.NoError(t, err)

		_, cerr := f.CreateJobForFile(g, a)
		require.NotNil(t, cerr)
		assert.Equal(t, domain.NoCompatibleVersion, cerr.Kind)
	})

	t.Run("caret on zero major", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.7.0")
		g := graphOf(t, []*domain.ResolvedFile{a}, nil)

		f, err := planner.NewFactory(compilers("0.8.9"))
		require.NoError(t, err)

		_, cerr := f.CreateJobForFile(g, a)
		require.NotNil(t, cerr)
		assert.Equal(t, domain.NoCompatibleVersion, cerr.Kind)
	})

	t.Run("alternatives in a pragma", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.6.0 || ^0.8.0", ">=0.6.2")
		g := graphOf(t, []*domain.ResolvedFile{a}, nil)

		f, err := planner.NewFactory(compilers("0.6.12", "0.7.6"))
		require.NoError(t, err)

		job, cerr := f.CreateJobForFile(g, a)
		require.Nil(t, cerr)
		assert.Equal(t, "0.6.12", job.SolcConfig().Version)
	})

	t.Run("invalid pragma", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "not a range")
		g := graphOf(t, []*domain.ResolvedFile{a}, nil)

		f, err := planner.NewFactory(compilers("0.8.9"))
		require.NoError(t, err)

		_, cerr := f.CreateJobForFile(g, a)
		require.NotNil(t, cerr)
		assert.Equal(t, domain.OtherCreationError, cerr.Kind)
	})

	t.Run("file outside graph", func(t *testing.T) {
		t.Parallel()
		f, err := planner.NewFactory(compilers("0.8.9"))
		require.NoError(t, err)

		_, cerr := f.CreateJobForFile(domain.NewDependencyGraph(), file("A.sol"))
		require.NotNil(t, cerr)
		assert.Equal(t, domain.OtherCreationError, cerr.Kind)
	})

	t.Run("override", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.8.0")
		b := file("B.sol", ">=0.8.0 <0.8.5")
		g := graphOf(t, []*domain.ResolvedFile{a, b}, map[*domain.ResolvedFile][]*domain.ResolvedFile{a: {b}})

		override := domain.DefaultSolcConfig("0.8.4")
		override.Settings.Optimizer.Enabled = true
		cfg := compilers("0.8.9")
		cfg.Overrides = map[string]domain.SolcConfig{"contracts/A.sol": override}

		f, err := planner.NewFactory(cfg)
		require.NoError(t, err)

		job, cerr := f.CreateJobForFile(g, a)
		require.Nil(t, cerr)
		assert.True(t, job.SolcConfig().Equal(override))
	})

	t.Run("incompatible override", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.8.0")
		b := file("B.sol", ">=0.8.5")
		g := graphOf(t, []*domain.ResolvedFile{a, b}, map[*domain.ResolvedFile][]*domain.ResolvedFile{a: {b}})

		cfg := compilers("0.8.9")
		cfg.Overrides = map[string]domain.SolcConfig{"contracts/A.sol": domain.DefaultSolcConfig("0.8.4")}

		f, err := planner.NewFactory(cfg)
		require.NoError(t, err)

		_, cerr := f.CreateJobForFile(g, a)
		require.NotNil(t, cerr)
		assert.Equal(t, domain.IncompatibleOverride, cerr.Kind)
		assert.Same(t, a, cerr.File)
	})

	t.Run("deterministic with duplicate versions", func(t *testing.T) {
		t.Parallel()
		a := file("A.sol", "^0.8.0")
		g := graphOf(t, []*domain.ResolvedFile{a}, nil)

		first := domain.DefaultSolcConfig("0.8.9")
		second := domain.DefaultSolcConfig("0.8.9")
		second.Settings.Optimizer = domain.Optimizer{Enabled: true, Runs: 1000}

		f, err := planner.NewFactory(domain.SolidityConfig{Compilers: []domain.SolcConfig{first, second}})
		require.NoError(t, err)

		for range 10 {
			job, cerr := f.CreateJobForFile(g, a)
			require.Nil(t, cerr)
			assert.True(t, job.SolcConfig().Equal(first))
		}
	})
}
