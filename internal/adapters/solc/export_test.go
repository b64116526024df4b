// export_test.go exports private functions for white-box testing.
package solc

import (
	"context"
	"os/exec"
)

// NewWithExec creates a Compiler with substituted process and PATH lookups.
func NewWithExec(
	dirs []string,
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd,
	lookPath func(file string) (string, error),
) *Compiler {
	c := New(dirs...)
	c.execCommand = execCommand
	c.lookPath = lookPath
	return c
}
