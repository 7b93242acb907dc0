// Copyright 2023 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package filewatcher reloads workflow sources when they change on disk.
package filewatcher

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wdltools/wdl/loader"
	"github.com/wdltools/wdl/logging"
)

// OnReload is invoked after every reload with the time the reload took and
// either the loaded files or the loading error.
type OnReload func(ctx context.Context, elapsed time.Duration, result *loader.Result, err error)

// FileWatcher reloads paths with a loader whenever a file below them is
// created, written, removed or renamed.
type FileWatcher struct {
	paths    []string
	loader   *loader.FileLoader
	onReload OnReload
	logger   logging.Logger
}

// NewFileWatcher returns a watcher for paths.
func NewFileWatcher(paths []string, fl *loader.FileLoader, onReload OnReload, logger logging.Logger) *FileWatcher {
	return &FileWatcher{
		paths:    paths,
		loader:   fl,
		onReload: onReload,
		logger:   logger,
	}
}

// Start registers the watches and processes events in the background until
// ctx is cancelled.
func (w *FileWatcher) Start(ctx context.Context) error {
	watcher, err := w.getWatcher(w.paths)
	if err != nil {
		return err
	}
	go w.readWatcher(ctx, watcher)
	return nil
}

func (w *FileWatcher) getWatcher(rootPaths []string) (*fsnotify.Watcher, error) {
	watchPaths, err := getWatchPaths(rootPaths)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, path := range watchPaths {
		w.logger.WithFields(map[string]any{"path": path}).Debug("watching path")
		if err := watcher.Add(path); err != nil {
			_ = watcher.Close()
			return nil, err
		}
	}

	return watcher, nil
}

func (w *FileWatcher) readWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	mask := fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if (evt.Op & mask) != 0 {
				w.logger.WithFields(map[string]any{
					"event": evt.String(),
				}).Debug("Registered file event.")
				w.processWatcherUpdate(ctx)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error: %v", err)
		}
	}
}

func (w *FileWatcher) processWatcherUpdate(ctx context.Context) {
	t0 := time.Now()
	result, err := w.loader.All(w.paths)
	w.onReload(ctx, time.Since(t0), result, err)
}

// getWatchPaths returns the directories containing every file below
// rootPaths. Watching directories catches files that are replaced by
// editors.
func getWatchPaths(rootPaths []string) ([]string, error) {
	paths := []string{}

	for _, path := range rootPaths {
		result, err := loader.Paths(path, true)
		if err != nil {
			return nil, err
		}

		paths = append(paths, loader.Dirs(result)...)
	}

	return paths, nil
}
