// /home/krylon/go/src/github.com/blicero/tabpod/scanner/watcher.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 11:30:55 krylon>

package scanner

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/logdomain"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// DefaultSettle is how long a file must go without being written to
// before the Watcher reports it.
const DefaultSettle = 2 * time.Second

// Watcher watches folders for audio files being created or modified and
// sends their paths to the Paths channel once no more writes to them
// have been seen for Settle. Subdirectories are watched as well,
// including those created later on.
type Watcher struct {
	log    *log.Logger
	fsw    *fsnotify.Watcher
	Paths  chan string
	Settle time.Duration
}

// NewWatcher creates a Watcher.
func NewWatcher() (*Watcher, error) {
	var (
		err error
		w   = &Watcher{
			Paths:  make(chan string, 16),
			Settle: DefaultSettle,
		}
	)

	if w.log, err = common.GetLogger(logdomain.Scanner); err != nil {
		return nil, err
	} else if w.fsw, err = fsnotify.NewWatcher(); err != nil {
		w.log.Printf("[ERROR] Cannot create watcher: %s\n", err.Error())
		return nil, err
	}

	return w, nil
} // func NewWatcher() (*Watcher, error)

// Add starts watching the folder root and its subdirectories.
func (w *Watcher) Add(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "cannot access %s", path)
		} else if !d.IsDir() {
			return nil
		} else if err = w.fsw.Add(path); err != nil {
			return errors.Wrapf(err, "cannot watch %s", path)
		}

		w.log.Printf("[DEBUG] Watching %s\n", path)
		return nil
	})
} // func (w *Watcher) Add(root string) error

// Run processes file system events until the Watcher is closed. It closes
// the Paths channel when it returns. Files that are still being written
// to at that point are not reported.
func (w *Watcher) Run() {
	var (
		pending = make(map[string]time.Time)
		ival    = w.Settle / 4
	)

	if ival < 10*time.Millisecond {
		ival = 10 * time.Millisecond
	}

	var tick = time.NewTicker(ival)

	defer close(w.Paths)
	defer tick.Stop()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			w.handle(ev, pending)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			w.log.Printf("[ERROR] Watcher: %s\n", err.Error())
		case now := <-tick.C:
			w.flush(pending, now)
		}
	}
} // func (w *Watcher) Run()

func (w *Watcher) handle(ev fsnotify.Event, pending map[string]time.Time) {
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		delete(pending, ev.Name)
		return
	} else if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}

	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err = w.Add(ev.Name); err != nil {
				w.log.Printf("[ERROR] %s\n", err.Error())
			}
			return
		}
	}

	if IsAudioFile(ev.Name) {
		w.log.Printf("[TRACE] %s: %s\n", ev.Op, ev.Name)
		pending[ev.Name] = time.Now()
	}
} // func (w *Watcher) handle(ev fsnotify.Event, pending map[string]time.Time)

// flush reports the files that have not been written to for Settle.
func (w *Watcher) flush(pending map[string]time.Time, now time.Time) {
	for path, last := range pending {
		if now.Sub(last) >= w.Settle {
			delete(pending, path)
			w.Paths <- path
		}
	}
} // func (w *Watcher) flush(pending map[string]time.Time, now time.Time)

// Close stops watching. Run returns once the pending events are
// processed.
func (w *Watcher) Close() error {
	return w.fsw.Close()
} // func (w *Watcher) Close() error
