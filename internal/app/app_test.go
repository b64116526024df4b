package app_test

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/adapters/artifacts"
	"go.trai.ch/smelt/internal/adapters/cache"
	"go.trai.ch/smelt/internal/adapters/fs"
	"go.trai.ch/smelt/internal/app"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports/mocks"
	"go.trai.ch/smelt/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root     string
	project  *domain.Project
	compiler *mocks.MockCompiler
	logger   *mocks.MockLogger
	watcher  *mocks.MockWatcher
	app      *app.App
}

// newFixture wires the application with real file system adapters and a
// fake compiler that emits one contract per source, named after the file.
func newFixture(t *testing.T, versions ...string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	solidity := domain.SolidityConfig{}
	for _, v := range versions {
		solidity.Compilers = append(solidity.Compilers, domain.DefaultSolcConfig(v))
	}
	f := &fixture{
		root: root,
		project: &domain.Project{
			Paths:            domain.DefaultPaths(root),
			Solidity:         solidity,
			UnsafeMergeRange: domain.DefaultUnsafeMergeRange,
		},
		compiler: mocks.NewMockCompiler(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
	}

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(root).Return(f.project, nil).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	store := artifacts.NewManager()
	sched := scheduler.NewScheduler(f.compiler, store, f.logger)
	sched.SetOutput(&strings.Builder{})

	f.app = app.New(
		loader,
		fs.NewWalker(),
		fs.NewResolverFactory(fs.NewParser()),
		cache.NewLoader(f.logger),
		sched,
		store,
		f.logger,
		f.watcher,
	)
	return f
}

func (f *fixture) write(t *testing.T, rel, content string) string {
	t.Helper()
	p := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func (f *fixture) artifact(sourceName, contract string) string {
	return filepath.Join(f.project.Paths.Artifacts, filepath.FromSlash(sourceName), contract+domain.ArtifactFileExt)
}

// expectCompiles makes the fake compiler answer times invocations and
// records the sources of each one.
func (f *fixture) expectCompiles(times int) *[][]string {
	var calls [][]string
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, input domain.CompilerInput) (*domain.CompilerOutput, error) {
			out := &domain.CompilerOutput{Contracts: map[string]map[string]domain.ContractOutput{}}
			var sources []string
			for name := range input.Sources {
				sources = append(sources, name)
				contract := strings.TrimSuffix(path.Base(name), domain.SolidityFileExt)
				out.Contracts[name] = map[string]domain.ContractOutput{contract: {}}
			}
			calls = append(calls, sources)
			return out, nil
		}).Times(times)
	return &calls
}

func (f *fixture) compile(t *testing.T, force bool) *app.CompileResult {
	t.Helper()
	result, err := f.app.Compile(t.Context(), app.CompileOptions{Cwd: f.root, Force: force, Parallelism: 1})
	require.NoError(t, err)
	return result
}

func TestApp_Compile_IsIncremental(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.8.20")
	a := f.write(t, "contracts/A.sol", "pragma solidity ^0.8.0;\nimport \"./B.sol\";\ncontract A {}\n")
	f.write(t, "contracts/B.sol", "pragma solidity ^0.8.0;\ncontract B {}\n")

	calls := f.expectCompiles(1)
	result := f.compile(t, false)

	require.Len(t, *calls, 1)
	assert.ElementsMatch(t, []string{"contracts/A.sol", "contracts/B.sol"}, (*calls)[0])
	assert.Equal(t, 1, result.Jobs)
	assert.Equal(t, []string{"A"}, result.Artifacts[a])
	assert.FileExists(t, f.artifact("contracts/A.sol", "A"))
	assert.FileExists(t, f.artifact("contracts/B.sol", "B"))
	assert.FileExists(t, f.project.Paths.SolidityFilesCachePath())

	// Nothing changed, so the compiler must not run again.
	result = f.compile(t, false)
	assert.Equal(t, 0, result.Jobs)
	assert.FileExists(t, f.artifact("contracts/A.sol", "A"))
}

func TestApp_Compile_Force(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.8.20")
	f.write(t, "contracts/A.sol", "pragma solidity ^0.8.0;\ncontract A {}\n")

	f.expectCompiles(2)
	f.compile(t, false)
	result := f.compile(t, true)
	assert.Equal(t, 1, result.Jobs)
}

func TestApp_Compile_KeepsUnsafeOptimizedJobsApart(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.6.12")
	f.project.Solidity.Compilers[0].Settings.Optimizer.Enabled = true
	f.write(t, "contracts/A.sol", "pragma solidity ^0.6.0;\nimport \"./C.sol\";\ncontract A {}\n")
	f.write(t, "contracts/B.sol", "pragma solidity ^0.6.0;\nimport \"./C.sol\";\ncontract B {}\n")
	f.write(t, "contracts/C.sol", "pragma solidity ^0.6.0;\ncontract C {}\n")

	calls := f.expectCompiles(3)
	result := f.compile(t, false)

	assert.Equal(t, 3, result.Jobs)
	require.Len(t, *calls, 3)
	for _, sources := range *calls {
		assert.LessOrEqual(t, len(sources), 2)
	}
}

func TestApp_Compile_MissingArtifactRecompiles(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.8.20")
	f.write(t, "contracts/A.sol", "pragma solidity ^0.8.0;\ncontract A {}\n")
	f.write(t, "contracts/C.sol", "pragma solidity ^0.8.0;\ncontract C {}\n")

	calls := f.expectCompiles(2)
	f.compile(t, false)

	require.NoError(t, os.Remove(f.artifact("contracts/A.sol", "A")))
	f.compile(t, false)

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"contracts/A.sol"}, (*calls)[1])
	assert.FileExists(t, f.artifact("contracts/A.sol", "A"))
	assert.FileExists(t, f.artifact("contracts/C.sol", "C"))
}

func TestApp_Compile_RemovesObsoleteArtifacts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.8.20")
	f.write(t, "contracts/A.sol", "pragma solidity ^0.8.0;\ncontract A {}\n")
	c := f.write(t, "contracts/C.sol", "pragma solidity ^0.8.0;\ncontract C {}\n")

	f.expectCompiles(1)
	f.compile(t, false)
	require.FileExists(t, f.artifact("contracts/C.sol", "C"))

	require.NoError(t, os.Remove(c))
	f.compile(t, false)

	assert.NoFileExists(t, f.artifact("contracts/C.sol", "C"))
	assert.FileExists(t, f.artifact("contracts/A.sol", "A"))

	loaded := cache.NewLoader(f.logger).ReadFromFile(f.project.Paths.SolidityFilesCachePath())
	_, ok := loaded.Entry(c)
	assert.False(t, ok, "entry of the removed file should be pruned")
}

func TestApp_Compile_CreationErrors(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.8.20")
	f.write(t, "contracts/Old.sol", "pragma solidity ^0.4.0;\ncontract Old {}\n")
	f.write(t, "contracts/New.sol", "pragma solidity ^0.8.0;\ncontract New {}\n")

	var reported error
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { reported = err })

	_, err := f.app.Compile(t.Context(), app.CompileOptions{Cwd: f.root})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
	require.ErrorContains(t, err, domain.ErrJobCreationFailed.Error())

	require.Error(t, reported)
	assert.Contains(t, reported.Error(), "These files don't match any compiler in your config:")
	assert.Contains(t, reported.Error(), "contracts/Old.sol")
	assert.NotContains(t, reported.Error(), "contracts/New.sol")
	assert.NoFileExists(t, f.project.Paths.SolidityFilesCachePath())
}

func TestApp_Compile_CompilerFailureKeepsCache(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.8.20")
	f.write(t, "contracts/A.sol", "pragma solidity ^0.8.0;\ncontract A {}\n")

	f.compiler.EXPECT().Compile(gomock.Any(), "0.8.20", gomock.Any()).Return(&domain.CompilerOutput{
		Errors: []domain.CompilerError{{Severity: domain.SeverityError, Type: "ParserError", Message: "boom"}},
	}, nil)

	_, err := f.app.Compile(t.Context(), app.CompileOptions{Cwd: f.root})
	require.ErrorContains(t, err, domain.ErrCompilationFailed.Error())
	assert.NoFileExists(t, f.project.Paths.SolidityFilesCachePath())
}

func TestApp_Clean(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "0.8.20")
	f.write(t, "contracts/A.sol", "pragma solidity ^0.8.0;\ncontract A {}\n")
	f.expectCompiles(1)
	f.compile(t, false)

	require.NoError(t, f.app.Clean(t.Context(), f.root))
	assert.NoDirExists(t, f.project.Paths.Artifacts)
	assert.NoFileExists(t, f.project.Paths.SolidityFilesCachePath())

	// Cleaning twice is fine.
	require.NoError(t, f.app.Clean(t.Context(), f.root))
}
