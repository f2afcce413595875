package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/yamlunist/loader"
)

// Debounce timer - editors often write files in multiple steps
const debounceDelay = 100 * time.Millisecond

// watchedFiles returns a matcher for the source file and every path its CST
// dump may live at.
func watchedFiles(source, cstPath string) func(name string) bool {
	names := map[string]bool{filepath.Clean(source): true}
	if cstPath != "" {
		names[filepath.Clean(cstPath)] = true
	} else {
		for _, suffix := range loader.DumpSuffixes {
			names[filepath.Clean(source+suffix)] = true
		}
	}
	return func(name string) bool { return names[filepath.Clean(name)] }
}

// watch runs fn once and again after every change to a file accepted by
// match, until ctx is done. Runs never overlap. Directories are watched
// rather than files so that atomic saves, which replace the file, keep
// being noticed.
func watch(ctx context.Context, stderr io.Writer, dirs []string, match func(string) bool, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	seen := map[string]bool{}
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	run := func() {
		err := fn()
		var cmdErr *CommandError
		if err != nil && !errors.As(err, &cmdErr) {
			printError(stderr, err.Error())
		}
		printInfof(stderr, "Watching %s for changes", pathStyle.Render(strings.Join(dirs, ", ")))
	}
	run()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Remove/Rename are common in atomic saves
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 || !match(event.Name) {
				continue
			}
			debounce = time.After(debounceDelay)

		case <-debounce:
			debounce = nil
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(stderr, fmt.Sprintf("file watcher error: %v", err))
		}
	}
}

// watchDirs returns the directories holding the source and the dump.
func watchDirs(source, cstPath string) []string {
	dirs := []string{filepath.Dir(source)}
	if cstPath != "" {
		dirs = append(dirs, filepath.Dir(cstPath))
	}
	return dirs
}
