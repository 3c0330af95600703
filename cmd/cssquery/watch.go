package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// watchAndRun runs fn once immediately, then again every time one of the
// given files changes on disk, until interrupted. Grounded on the
// AleutianFOSS file watcher's fsnotify.NewWatcher/watcher.Add/select
// shape, trimmed to a flat file list instead of a recursive directory
// walk since cssquery only ever watches the one fixture file a
// subcommand was invoked with.
func watchAndRun(paths []string, fn func() error) error {
	if err := fn(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := fn(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
