// Package main is the entry point for the smelt Solidity build tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/cmd/smelt/commands"
	"go.trai.ch/smelt/internal/app"
	"go.trai.ch/smelt/internal/core/domain"
	_ "go.trai.ch/smelt/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App, components.Logger)
	if err := cli.Execute(ctx); err != nil {
		// Build failures were already reported while building.
		if !errors.Is(err, domain.ErrBuildFailed) {
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}
