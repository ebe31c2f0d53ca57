package preset

import (
	"io"
	"log/slog"
	"time"

	"github.com/philipparndt/gofnplot/pkg/watcher"
)

// Follow watches a preset file and sends every successfully parsed version on
// the returned channel. Parse failures are logged and skipped so the running
// scene keeps its last good state. No presets are sent after Close.
//
// Receivers must apply the preset on the thread that owns the scene.
func Follow(path string, debounce time.Duration) (<-chan *Preset, io.Closer, error) {
	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return nil, nil, err
	}

	f := &follower{
		watcher: fw,
		updates: make(chan *Preset, 1),
		done:    make(chan struct{}),
	}

	err = fw.Watch([]string{path}, f.reload)
	if err != nil {
		fw.Close()
		return nil, nil, err
	}
	fw.Start()

	return f.updates, f, nil
}

type follower struct {
	watcher *watcher.FileWatcher
	updates chan *Preset
	done    chan struct{}
}

func (f *follower) reload(path string) {
	p, err := Parse(path)
	if err != nil {
		slog.Warn("preset reload failed", "path", path, "error", err)
		return
	}
	slog.Info("preset reloaded", "path", path)

	// Keep only the newest preset when the receiver lags behind.
	select {
	case <-f.updates:
	default:
	}
	select {
	case f.updates <- p:
	case <-f.done:
	}
}

func (f *follower) Close() error {
	select {
	case <-f.done:
		return nil
	default:
	}
	close(f.done)
	return f.watcher.Close()
}
