package domain

// CompilationJob is one compiler invocation's worth of work: a compiler
// configuration and the ordered set of files passed to it.
//
// Files are shared with the dependency graph they were derived from and must
// not be modified.
type CompilationJob struct {
	config SolcConfig
	files  []*ResolvedFile
	emits  map[string]bool
}

// NewCompilationJob creates an empty job for the given configuration.
func NewCompilationJob(config SolcConfig) *CompilationJob {
	return &CompilationJob{
		config: config,
		emits:  make(map[string]bool),
	}
}

// AddFileToCompile adds file to the job. If the file is already part of the
// job, emitsArtifacts is OR-ed with its current flag.
func (j *CompilationJob) AddFileToCompile(file *ResolvedFile, emitsArtifacts bool) {
	current, ok := j.emits[file.AbsolutePath]
	if !ok {
		j.files = append(j.files, file)
	}
	j.emits[file.AbsolutePath] = current || emitsArtifacts
}

// SolcConfig returns the compiler configuration of the job.
func (j *CompilationJob) SolcConfig() SolcConfig {
	return j.config
}

// ResolvedFiles returns the job's files in the order they were added.
func (j *CompilationJob) ResolvedFiles() []*ResolvedFile {
	return j.files
}

// EmitsArtifacts reports whether file is a primary target of the job.
func (j *CompilationJob) EmitsArtifacts(file *ResolvedFile) bool {
	return j.emits[file.AbsolutePath]
}

// HasFile reports whether file is part of the job.
func (j *CompilationJob) HasFile(file *ResolvedFile) bool {
	_, ok := j.emits[file.AbsolutePath]
	return ok
}

// IsEmpty reports whether the job has no files.
func (j *CompilationJob) IsEmpty() bool {
	return len(j.files) == 0
}

// EmittingFiles returns the files flagged as emitting artifacts, in job order.
func (j *CompilationJob) EmittingFiles() []*ResolvedFile {
	var out []*ResolvedFile
	for _, f := range j.files {
		if j.emits[f.AbsolutePath] {
			out = append(out, f)
		}
	}
	return out
}

// Merge returns a new job holding the files of both jobs. The receiver's
// configuration is kept; callers are responsible for only merging jobs with
// equal configurations.
func (j *CompilationJob) Merge(other *CompilationJob) *CompilationJob {
	merged := NewCompilationJob(j.config)
	for _, f := range j.files {
		merged.AddFileToCompile(f, j.emits[f.AbsolutePath])
	}
	for _, f := range other.files {
		merged.AddFileToCompile(f, other.emits[f.AbsolutePath])
	}
	return merged
}
