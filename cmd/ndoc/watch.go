package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"go.jacobcolvin.com/ndoc/extract"
)

// watch calls fn after supported source files under paths change, until
// ctx is done. Changes within delay of each other cause a single call.
func watch(ctx context.Context, logger *slog.Logger, paths []string, delay time.Duration, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		err := addTree(watcher, path)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	timer := time.NewTimer(delay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				info, err := os.Stat(event.Name)
				if err == nil && info.IsDir() {
					err = addTree(watcher, event.Name)
					if err != nil {
						logger.Warn("watch new directory",
							slog.String("path", event.Name),
							slog.Any("error", err),
						)
					}
				}
			}

			if event.Op == fsnotify.Chmod || extract.DetectLanguage(event.Name) == extract.LanguageUnknown {
				continue
			}

			logger.Debug("file changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()),
			)
			timer.Reset(delay)

		case <-timer.C:
			err := fn()
			if err != nil {
				logger.Error("generate documentation", slog.Any("error", err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watcher error", slog.Any("error", err))
		}
	}
}

// addTree watches root and every directory below it. For a file, its
// directory is watched.
func addTree(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return watcher.Add(path)
		}

		return nil
	})
}
