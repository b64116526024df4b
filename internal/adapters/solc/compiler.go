// Package solc runs native solc binaries in standard JSON mode.
package solc

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// CompilersDirEnv overrides the directory solc binaries are looked up in.
const CompilersDirEnv = "SMELT_COMPILERS_DIR"

var (
	_ ports.Compiler = (*Compiler)(nil)

	versionPattern = regexp.MustCompile(`Version:\s*v?(\d+\.\d+\.\d+)`)
)

type commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Compiler invokes the solc binary matching a job's version.
type Compiler struct {
	dirs        []string
	execCommand commandFunc
	lookPath    func(file string) (string, error)

	mu       sync.Mutex
	binaries map[string]string // version -> path
}

// New creates a Compiler that searches dirs before falling back to PATH.
func New(dirs ...string) *Compiler {
	return &Compiler{
		dirs:        dirs,
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
		binaries:    make(map[string]string),
	}
}

// DefaultDirs returns the compiler directory from the environment, or the
// per-user cache directory.
func DefaultDirs() []string {
	if dir := os.Getenv(CompilersDirEnv); dir != "" {
		return []string{dir}
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(cache, "smelt", "compilers")}
}

// Compile runs solc --standard-json on input.
func (c *Compiler) Compile(
	ctx context.Context,
	version string,
	input domain.CompilerInput,
) (*domain.CompilerOutput, error) {
	binary, err := c.Locate(ctx, version)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode compiler input")
	}

	var stdout, stderr bytes.Buffer
	cmd := c.execCommand(ctx, binary, "--standard-json")
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Compilation errors are part of the output. The exit status only
	// matters when stdout cannot be decoded.
	runErr := cmd.Run()

	var output domain.CompilerOutput
	if err := json.Unmarshal(stdout.Bytes(), &output); err != nil {
		cause := runErr
		if cause == nil {
			cause = err
		}
		wrapped := zerr.Wrap(cause, domain.ErrCompilerInvocationFailed.Error())
		wrapped = zerr.With(wrapped, "version", version)
		return nil, zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}
	return &output, nil
}

// Locate returns the path of the solc binary for version.
func (c *Compiler) Locate(ctx context.Context, version string) (string, error) {
	c.mu.Lock()
	binary, ok := c.binaries[version]
	c.mu.Unlock()
	if ok {
		return binary, nil
	}

	binary, err := c.find(ctx, version)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.binaries[version] = binary
	c.mu.Unlock()
	return binary, nil
}

func (c *Compiler) find(ctx context.Context, version string) (string, error) {
	for _, dir := range c.dirs {
		for _, name := range []string{
			"solc-" + version,
			"solc-v" + version,
			filepath.Join(version, "solc"),
		} {
			path := filepath.Join(dir, name)
			if isExecutable(path) {
				return path, nil
			}
		}
	}

	if path, err := c.lookPath("solc-" + version); err == nil {
		return path, nil
	}
	if path, err := c.lookPath("solc"); err == nil {
		if v, err := c.binaryVersion(ctx, path); err == nil && v == version {
			return path, nil
		}
	}

	return "", zerr.With(domain.ErrCompilerNotFound, "version", version)
}

// binaryVersion asks binary for its version.
func (c *Compiler) binaryVersion(ctx context.Context, binary string) (string, error) {
	out, err := c.execCommand(ctx, binary, "--version").Output()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to query solc version"), "path", binary)
	}
	m := versionPattern.FindSubmatch(out)
	if m == nil {
		return "", zerr.With(zerr.New("unrecognized solc version output"), "path", binary)
	}
	return string(m[1]), nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
