// Package scheduler runs compilation jobs and persists their artifacts.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/smelt/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// JobStatus represents the status of a compilation job.
type JobStatus string

const (
	// StatusPending indicates the job is waiting to be compiled.
	StatusPending JobStatus = "Pending"
	// StatusRunning indicates the compiler is running for the job.
	StatusRunning JobStatus = "Running"
	// StatusCompleted indicates the job compiled and its artifacts were saved.
	StatusCompleted JobStatus = "Completed"
	// StatusFailed indicates the job could not be compiled.
	StatusFailed JobStatus = "Failed"
)

// RunOptions configures a Run.
type RunOptions struct {
	// ArtifactsDir is the directory artifacts and build infos are written to.
	ArtifactsDir string
	// Parallelism is the number of jobs compiled at once. Values below 1 mean 1.
	Parallelism int
	// Quiet suppresses progress messages. Diagnostics and errors are still reported.
	Quiet bool
}

// JobResult is the outcome of a successfully compiled job.
type JobResult struct {
	Job           *domain.CompilationJob
	BuildInfoPath string
	// Artifacts maps the absolute path of every emitting file to the names
	// of the contracts saved for it.
	Artifacts map[string][]string
}

// Scheduler compiles jobs and saves what they produce.
type Scheduler struct {
	compiler  ports.Compiler
	artifacts ports.ArtifactManager
	logger    ports.Logger

	outMu sync.Mutex
	out   io.Writer
	r     *lipgloss.Renderer

	mu        sync.RWMutex
	jobStatus []JobStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
// Compiler diagnostics are written to stderr.
func NewScheduler(compiler ports.Compiler, artifacts ports.ArtifactManager, logger ports.Logger) *Scheduler {
	s := &Scheduler{
		compiler:  compiler,
		artifacts: artifacts,
		logger:    logger,
	}
	s.SetOutput(os.Stderr)
	return s
}

// SetOutput changes where compiler diagnostics are written.
func (s *Scheduler) SetOutput(w io.Writer) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	s.out = w
	s.r = style.Renderer(w)
}

// Run compiles every job. Results are returned in job order. The first
// failing job cancels the remaining ones.
func (s *Scheduler) Run(ctx context.Context, jobs []*domain.CompilationJob, opts RunOptions) ([]JobResult, error) {
	s.initJobStatuses(len(jobs))

	if len(jobs) == 0 {
		if !opts.Quiet {
			s.logger.Info("Nothing to compile")
		}
		return nil, nil
	}

	results := make([]JobResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Parallelism, 1))

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.updateStatus(i, StatusRunning)
			result, err := s.runJob(ctx, job, opts)
			if err != nil {
				s.updateStatus(i, StatusFailed)
				return err
			}
			s.updateStatus(i, StatusCompleted)
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !opts.Quiet {
		contracts := 0
		for _, r := range results {
			for _, names := range r.Artifacts {
				contracts += len(names)
			}
		}
		s.logger.Info(fmt.Sprintf("Compiled %d %s successfully", contracts, plural(contracts, "contract")))
	}
	return results, nil
}

func (s *Scheduler) runJob(ctx context.Context, job *domain.CompilationJob, opts RunOptions) (JobResult, error) {
	version := job.SolcConfig().Version
	input := domain.NewCompilerInput(job)

	if !opts.Quiet {
		n := len(job.ResolvedFiles())
		s.logger.Info(fmt.Sprintf("Compiling %d %s with %s", n, plural(n, "file"), version))
	}

	output, err := s.compiler.Compile(ctx, version, input)
	if err != nil {
		return JobResult{}, zerr.With(err, "version", version)
	}

	s.printDiagnostics(output.Errors)
	if output.HasErrors() {
		return JobResult{}, zerr.With(domain.ErrCompilationFailed, "version", version)
	}

	buildInfo, err := s.artifacts.SaveBuildInfo(opts.ArtifactsDir, version, input, *output)
	if err != nil {
		return JobResult{}, err
	}

	result := JobResult{
		Job:           job,
		BuildInfoPath: buildInfo,
		Artifacts:     make(map[string][]string),
	}
	for _, file := range job.EmittingFiles() {
		contracts := output.Contracts[file.SourceName]
		names := make([]string, 0, len(contracts))
		for name := range contracts {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			artifact := domain.NewArtifact(file.SourceName, name, contracts[name])
			if err := s.artifacts.SaveArtifact(opts.ArtifactsDir, artifact, buildInfo); err != nil {
				return JobResult{}, err
			}
		}
		result.Artifacts[file.AbsolutePath] = names
	}
	return result, nil
}

// printDiagnostics writes compiler messages, coloured by severity.
func (s *Scheduler) printDiagnostics(diagnostics []domain.CompilerError) {
	if len(diagnostics) == 0 {
		return
	}

	s.outMu.Lock()
	defer s.outMu.Unlock()
	for _, d := range diagnostics {
		msg := d.FormattedMessage
		if msg == "" {
			msg = fmt.Sprintf("%s: %s", d.Type, d.Message)
		}
		msg = strings.TrimRight(msg, "\n")
		_, _ = fmt.Fprintln(s.out, style.Diagnostic(s.r, d.Severity).Render(msg))
	}
}

func (s *Scheduler) initJobStatuses(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobStatus = make([]JobStatus, n)
	for i := range s.jobStatus {
		s.jobStatus[i] = StatusPending
	}
}

func (s *Scheduler) updateStatus(i int, status JobStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobStatus[i] = status
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
