// Package watch propagates on-disk changes of a properties resource to
// every live PropertySet reading it.
// Implements: prd003-watcher.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/connprops/internal/log"
	"github.com/mesh-intelligence/connprops/pkg/props"
)

// defaultDebounce coalesces the burst of events an atomic rewrite produces
// into a single reload.
const defaultDebounce = 200 * time.Millisecond

// Watcher triggers a broadcast reload whenever the watched resource file is
// written or replaced. The parent directory is watched rather than the file
// itself: atomic rewrites swap the inode, which would silently detach a
// per-file watch.
type Watcher struct {
	resource  string
	base      string
	debounce  time.Duration
	fsw       *fsnotify.Watcher
	logger    zerolog.Logger
	broadcast func(string) error
}

// New creates a watcher for the resource file at path. The directory
// containing the file must exist.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		resource:  abs,
		base:      filepath.Base(abs),
		debounce:  defaultDebounce,
		fsw:       fsw,
		logger:    log.WithComponent("watch"),
		broadcast: props.BroadcastReload,
	}, nil
}

// Run blocks, dispatching reload broadcasts for the watched resource until
// the context is cancelled. It always returns ctx.Err() on shutdown.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.Debug().Err(err).Msg("close watcher")
		}
	}()

	w.logger.Info().
		Str("resource", w.resource).
		Msg("watching properties resource for changes")

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			w.logger.Info().Msg("watcher stopped")
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != w.base {
				continue
			}
			// Write covers in-place edits, Create and Rename cover the
			// temp-file-and-rename flow Update uses.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug().
				Str("op", event.Op.String()).
				Str("path", event.Name).
				Msg("resource changed")

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				if err := w.broadcast(w.resource); err != nil {
					w.logger.Error().
						Err(err).
						Str("resource", w.resource).
						Msg("broadcast reload failed")
					return
				}
				w.logger.Info().
					Str("resource", w.resource).
					Msg("broadcast reload complete")
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")
		}
	}
}
