package scheduler_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports/mocks"
	"go.trai.ch/smelt/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	compiler  *mocks.MockCompiler
	artifacts *mocks.MockArtifactManager
	logger    *mocks.MockLogger
	out       *bytes.Buffer
	s         *scheduler.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		compiler:  mocks.NewMockCompiler(ctrl),
		artifacts: mocks.NewMockArtifactManager(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		out:       &bytes.Buffer{},
	}
	f.s = scheduler.NewScheduler(f.compiler, f.artifacts, f.logger)
	f.s.SetOutput(f.out)
	return f
}

func file(name string) *domain.ResolvedFile {
	return &domain.ResolvedFile{
		AbsolutePath: "/project/contracts/" + name,
		SourceName:   "contracts/" + name,
		Content:      domain.FileContent{RawContent: "// " + name},
	}
}

func job(version string, emitting *domain.ResolvedFile, deps ...*domain.ResolvedFile) *domain.CompilationJob {
	j := domain.NewCompilationJob(domain.DefaultSolcConfig(version))
	j.AddFileToCompile(emitting, true)
	for _, d := range deps {
		j.AddFileToCompile(d, false)
	}
	return j
}

func outputFor(contracts map[string][]string) *domain.CompilerOutput {
	out := &domain.CompilerOutput{Contracts: map[string]map[string]domain.ContractOutput{}}
	for source, names := range contracts {
		out.Contracts[source] = map[string]domain.ContractOutput{}
		for _, n := range names {
			out.Contracts[source][n] = domain.ContractOutput{}
		}
	}
	return out
}

func TestScheduler_Run_NothingToCompile(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.logger.EXPECT().Info("Nothing to compile")

	results, err := f.s.Run(t.Context(), nil, scheduler.RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)

	quiet := newFixture(t)
	_, err = quiet.s.Run(t.Context(), nil, scheduler.RunOptions{Quiet: true})
	require.NoError(t, err)
}

func TestScheduler_Run_SavesArtifactsOfEmittingFiles(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a, lib := file("A.sol"), file("Lib.sol")
	j := job("0.8.9", a, lib)

	f.logger.EXPECT().Info("Compiling 2 files with 0.8.9")
	f.compiler.EXPECT().
		Compile(gomock.Any(), "0.8.9", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, input domain.CompilerInput) (*domain.CompilerOutput, error) {
			assert.Equal(t, "Solidity", input.Language)
			assert.Equal(t, "// A.sol", input.Sources["contracts/A.sol"].Content)
			assert.Contains(t, input.Sources, "contracts/Lib.sol")
			return outputFor(map[string][]string{
				"contracts/A.sol":   {"AHelper", "A"},
				"contracts/Lib.sol": {"Lib"},
			}), nil
		})
	f.artifacts.EXPECT().
		SaveBuildInfo("/out", "0.8.9", gomock.Any(), gomock.Any()).
		Return("/out/build-info/1.json", nil)
	gomock.InOrder(
		f.artifacts.EXPECT().SaveArtifact("/out", gomock.Cond(func(a domain.Artifact) bool {
			return a.ContractName == "A" && a.SourceName == "contracts/A.sol"
		}), "/out/build-info/1.json"),
		f.artifacts.EXPECT().SaveArtifact("/out", gomock.Cond(func(a domain.Artifact) bool {
			return a.ContractName == "AHelper"
		}), "/out/build-info/1.json"),
	)
	f.logger.EXPECT().Info("Compiled 2 contracts successfully")

	results, err := f.s.Run(t.Context(), []*domain.CompilationJob{j}, scheduler.RunOptions{ArtifactsDir: "/out"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Same(t, j, results[0].Job)
	assert.Equal(t, "/out/build-info/1.json", results[0].BuildInfoPath)
	assert.Equal(t, map[string][]string{a.AbsolutePath: {"A", "AHelper"}}, results[0].Artifacts)
	assert.Equal(t, []scheduler.JobStatus{scheduler.StatusCompleted}, f.s.JobStatuses())
}

func TestScheduler_Run_CompilationErrors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.compiler.EXPECT().Compile(gomock.Any(), "0.8.9", gomock.Any()).Return(&domain.CompilerOutput{
		Errors: []domain.CompilerError{
			{Severity: domain.SeverityWarning, Type: "Warning", Message: "unused variable"},
			{Severity: domain.SeverityError, Type: "ParserError", FormattedMessage: "ParserError: Expected ';'\n"},
		},
	}, nil)

	_, err := f.s.Run(t.Context(), []*domain.CompilationJob{job("0.8.9", file("A.sol"))},
		scheduler.RunOptions{Quiet: true})
	require.ErrorContains(t, err, domain.ErrCompilationFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "0.8.9", zErr.Metadata()["version"])

	assert.Contains(t, f.out.String(), "Warning: unused variable")
	assert.Contains(t, f.out.String(), "ParserError: Expected ';'")
	assert.Equal(t, []scheduler.JobStatus{scheduler.StatusFailed}, f.s.JobStatuses())
}

func TestScheduler_Run_WarningsDoNotFail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	out := outputFor(map[string][]string{"contracts/A.sol": {"A"}})
	out.Errors = []domain.CompilerError{{Severity: domain.SeverityWarning, Type: "Warning", Message: "shadowing"}}

	f.compiler.EXPECT().Compile(gomock.Any(), "0.8.9", gomock.Any()).Return(out, nil)
	f.artifacts.EXPECT().SaveBuildInfo(gomock.Any(), "0.8.9", gomock.Any(), gomock.Any()).Return("bi.json", nil)
	f.artifacts.EXPECT().SaveArtifact(gomock.Any(), gomock.Any(), "bi.json")

	_, err := f.s.Run(t.Context(), []*domain.CompilationJob{job("0.8.9", file("A.sol"))},
		scheduler.RunOptions{Quiet: true})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Warning: shadowing")
}

func TestScheduler_Run_FailureStopsRemainingJobs(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	boom := errors.New("exec format error")
	f.compiler.EXPECT().Compile(gomock.Any(), "0.7.6", gomock.Any()).Return(nil, boom)

	jobs := []*domain.CompilationJob{job("0.7.6", file("A.sol")), job("0.8.9", file("B.sol"))}
	_, err := f.s.Run(t.Context(), jobs, scheduler.RunOptions{Parallelism: 1, Quiet: true})
	require.ErrorContains(t, err, boom.Error())

	assert.Equal(t, []scheduler.JobStatus{scheduler.StatusFailed, scheduler.StatusPending}, f.s.JobStatuses())
}

func TestScheduler_Run_Parallel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		started := make(chan string)
		proceed := make(chan struct{})
		f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, version string, _ domain.CompilerInput) (*domain.CompilerOutput, error) {
				started <- version
				<-proceed
				return outputFor(nil), nil
			})
		f.artifacts.EXPECT().SaveBuildInfo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Times(2).Return("bi.json", nil)

		jobs := []*domain.CompilationJob{job("0.7.6", file("A.sol")), job("0.8.9", file("B.sol"))}
		var results []scheduler.JobResult
		var runErr error
		done := make(chan struct{})
		go func() {
			defer close(done)
			results, runErr = f.s.Run(t.Context(), jobs, scheduler.RunOptions{Parallelism: 2, Quiet: true})
		}()

		// Both compilations are in flight before either finishes.
		got := []string{<-started, <-started}
		assert.ElementsMatch(t, []string{"0.7.6", "0.8.9"}, got)
		close(proceed)
		<-done

		require.NoError(t, runErr)
		require.Len(t, results, 2)
		assert.Same(t, jobs[0], results[0].Job)
		assert.Same(t, jobs[1], results[1].Job)
	})
}
