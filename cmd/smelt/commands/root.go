// Package commands implements the CLI commands for the smelt build tool.
package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/smelt/internal/app"
	"go.trai.ch/smelt/internal/build"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables overriding flags,
// e.g. SMELT_FORCE=true or SMELT_JSON_LOGS=true.
const EnvPrefix = "SMELT"

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for smelt.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	v       *viper.Viper
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "smelt",
		Short:         "An incremental build tool for Solidity projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", "", "Run as if smelt was started in this directory")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write log messages as JSON")
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	c := &CLI{
		app:     a,
		logger:  logger,
		v:       v,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if l, ok := c.logger.(jsonLogger); ok {
			l.SetJSON(c.v.GetBool("json-logs"))
		}
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the output of the commands. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(out)
}

// workingDir returns the absolute directory the project is searched from.
func (c *CLI) workingDir() (string, error) {
	dir := c.v.GetString("dir")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}
	return abs, nil
}

// compileOptions reads the compile flags of cmd, falling back to SMELT_* variables.
func (c *CLI) compileOptions(cmd *cobra.Command) (app.CompileOptions, error) {
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return app.CompileOptions{}, zerr.Wrap(err, "failed to bind flags")
	}
	cwd, err := c.workingDir()
	if err != nil {
		return app.CompileOptions{}, err
	}
	return app.CompileOptions{
		Cwd:         cwd,
		Force:       c.v.GetBool("force"),
		Quiet:       c.v.GetBool("quiet"),
		Parallelism: c.v.GetInt("parallel"),
	}, nil
}

func addCompileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("force", "f", false, "Compile every file, bypassing the files cache")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress messages")
	cmd.Flags().IntP("parallel", "p", 1, "Number of compiler processes to run at once (0 for one per CPU)")
}
