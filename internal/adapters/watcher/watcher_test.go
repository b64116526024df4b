package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/adapters/watcher"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/smelt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestConvertEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		event  fsnotify.Event
		want   ports.WatchEvent
		wantOK bool
	}{
		{
			name:   "write",
			event:  fsnotify.Event{Name: "/p/A.sol", Op: fsnotify.Write},
			want:   ports.WatchEvent{Path: "/p/A.sol", Operation: ports.OpWrite},
			wantOK: true,
		},
		{
			name:   "create",
			event:  fsnotify.Event{Name: "/p/A.sol", Op: fsnotify.Create},
			want:   ports.WatchEvent{Path: "/p/A.sol", Operation: ports.OpCreate},
			wantOK: true,
		},
		{
			name:   "remove",
			event:  fsnotify.Event{Name: "/p/A.sol", Op: fsnotify.Remove},
			want:   ports.WatchEvent{Path: "/p/A.sol", Operation: ports.OpRemove},
			wantOK: true,
		},
		{
			name:   "rename",
			event:  fsnotify.Event{Name: "/p/A.sol", Op: fsnotify.Rename},
			want:   ports.WatchEvent{Path: "/p/A.sol", Operation: ports.OpRename},
			wantOK: true,
		},
		{
			name:  "chmod only",
			event: fsnotify.Event{Name: "/p/A.sol", Op: fsnotify.Chmod},
		},
		{
			name:  "not solidity",
			event: fsnotify.Event{Name: "/p/README.md", Op: fsnotify.Write},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := watcher.ConvertEvent(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatcher_ReportsSolidityChanges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o750))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	w := watcher.NewWatcher(logger)
	require.NoError(t, w.Start(ctx, root))
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "Ignored.sol"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o600))
	target := filepath.Join(root, "A.sol")
	require.NoError(t, os.WriteFile(target, []byte("contract A {}"), 0o600))

	events := make(chan ports.WatchEvent)
	go func() {
		for e := range w.Events() {
			events <- e
		}
		close(events)
	}()

	select {
	case e := <-events:
		assert.Equal(t, target, e.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}

	cancel()
	for range events {
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, w.Start(t.Context(), t.TempDir()))
	t.Cleanup(func() { _ = w.Stop() })

	require.Error(t, w.Start(t.Context(), t.TempDir()))
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, w.Stop())

	for range w.Events() {
		t.Fatal("no events expected")
	}
}
