package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a [Holder] whenever its JSON config file is written.
type Watcher struct {
	watcher *fsnotify.Watcher
	holder  *Holder
	path    string

	logger *logger.Logger
}

// NewWatcher creates a watcher for the JSON file of the holder's current
// configuration. It returns (nil, nil) when no JSON file is configured.
func NewWatcher(holder *Holder, log *logger.Logger) (*Watcher, error) {
	snapshot := holder.Snapshot()
	if snapshot.JSONFilePath == "" {
		return nil, nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating config watcher: %w", err)
	}

	path := filepath.Clean(snapshot.JSONFilePath)

	// the directory is watched, not the file, to survive editors that
	// replace the file via rename
	if err = w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("error watching config directory: %w", err)
	}

	return &Watcher{
		watcher: w,
		holder:  holder,
		path:    path,
		logger:  log,
	}, nil
}

// Run blocks until ctx is done, reloading the configuration on every write
// or create event for the watched file.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	w.logger.Info().Str("path", w.path).Msg("config watcher started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("config watcher stopped")
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := w.holder.Reload(); err != nil {
				w.logger.Err(err).Str("path", w.path).Msg("config reload failed, keeping previous config")
				continue
			}
			w.logger.Info().Str("path", w.path).Msg("config reloaded")
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Err(err).Msg("config watcher error")
		}
	}
}
