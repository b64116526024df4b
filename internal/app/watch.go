package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/smelt/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch compiles the project and compiles it again whenever a source file
// changes, until ctx is done. Compilation failures are logged and do not end
// the watch.
func (a *App) Watch(ctx context.Context, opts CompileOptions) error {
	project, err := a.configLoader.Load(opts.Cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.compileAndReport(ctx, opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, project.Paths.Sources); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	rebuild := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case rebuild <- paths:
		default:
			// A rebuild is already pending and picks up these changes too.
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("Watching " + project.Paths.Sources)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return nil
		case paths := <-rebuild:
			a.logger.Info(fmt.Sprintf("%d %s changed", len(paths), plural(len(paths), "file")))
			a.compileAndReport(ctx, opts)
		}
	}
}

func (a *App) compileAndReport(ctx context.Context, opts CompileOptions) {
	_, err := a.Compile(ctx, opts)
	if err == nil || ctx.Err() != nil || errors.Is(err, domain.ErrBuildFailed) {
		return
	}
	a.logger.Error(err)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
