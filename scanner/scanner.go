// /home/krylon/go/src/github.com/blicero/tabpod/scanner/scanner.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 10:12:40 krylon>

// Package scanner implements processing directory trees looking for audio
// files to add to the catalog.
package scanner

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/db"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/objects"
	"github.com/pkg/errors"
)

// DefaultMinSize is the size below which files are not considered.
const DefaultMinSize = 64 * 1024 // 64 KiB

var suffixPattern = regexp.MustCompile("(?i)[.](?:mp3|m4[abp]|mp4|aac|og[ag]|opus|wma|flac|wav)$")

// IsAudioFile returns true if the path looks like an audio file.
func IsAudioFile(path string) bool {
	return suffixPattern.MatchString(path)
} // func IsAudioFile(path string) bool

// Walker implements traversing directory trees to find audio files.
// New Tracks are stored in the database and sent to the Tracks channel.
type Walker struct {
	log     *log.Logger
	lock    sync.Mutex
	db      *db.Database
	root    string
	folder  *objects.Folder
	Tracks  chan *objects.Track
	MinSize int64
}

// New creates a new Walker that uses the given database connection.
func New(conn *db.Database) (*Walker, error) {
	var w = &Walker{
		db:      conn,
		Tracks:  make(chan *objects.Track, 8),
		MinSize: DefaultMinSize,
	}
	var err error

	if w.log, err = common.GetLogger(logdomain.Scanner); err != nil {
		fmt.Fprintf(os.Stderr,
			"Error getting Logger for %s: %s\n",
			logdomain.Scanner,
			err.Error())
		return nil, err
	}

	return w, nil
} // func New(conn *db.Database) (*Walker, error)

// Scan walks the given folders one after another and closes the Tracks
// channel when it is done. It returns the first error it encountered.
func (w *Walker) Scan(roots ...string) error {
	var first error

	defer close(w.Tracks)

	for _, root := range roots {
		if err := w.Walk(root); err != nil && first == nil {
			first = err
		}
	}

	return first
} // func (w *Walker) Scan(roots ...string) error

// Walk initiates the traversal of the Walker's directory tree.
func (w *Walker) Walk(root string) error {
	var err error

	if root, err = filepath.Abs(root); err != nil {
		return errors.Wrapf(err, "cannot resolve path of %s", root)
	}

	w.log.Printf("[INFO] Scan %s\n", root)
	defer w.log.Printf("[INFO] Done scanning %s\n", root)

	w.lock.Lock()
	defer w.lock.Unlock()

	w.root = root
	defer func() { w.root = "" }()

	var folder *objects.Folder

	if folder, err = w.db.FolderGetByPath(root); err != nil {
		w.log.Printf("[ERROR] Cannot look up Folder %s: %s\n",
			root,
			err.Error())
		return err
	} else if folder == nil {
		folder = &objects.Folder{Path: root}
		if err = w.db.FolderAdd(folder); err != nil {
			w.log.Printf("[ERROR] Failed to add Folder %s to database: %s\n",
				root,
				err.Error())
			return err
		}
	}

	w.folder = folder
	defer func() { w.folder = nil }()

	if err = fs.WalkDir(os.DirFS(root), ".", w.visit); err != nil {
		w.log.Printf("[ERROR] Error processing folder %q: %s\n",
			root,
			err.Error())
		return err
	} else if err = w.db.FolderUpdateScan(folder, time.Now()); err != nil {
		w.log.Printf("[ERROR] Cannot update scan timestamp on folder %q: %s\n",
			root,
			err.Error())
		return err
	}

	return nil
} // func (w *Walker) Walk(root string) error

func (w *Walker) visit(path string, d fs.DirEntry, incoming error) error {
	if incoming != nil {
		w.log.Printf("[INFO] Incoming error for %s: %s\n",
			path,
			incoming.Error())
		return nil
	}

	if d.IsDir() {
		return nil
	}

	var (
		info     fs.FileInfo
		err      error
		t        *objects.Track
		fullPath = filepath.Join(w.root, path)
	)

	w.log.Printf("[TRACE] Process %s\n", fullPath)

	if !IsAudioFile(path) {
		return nil
	} else if info, err = d.Info(); err != nil {
		return err
	} else if info.Size() < w.MinSize {
		w.log.Printf("[DEBUG] %s is too small (%s)\n",
			fullPath,
			krylib.FmtBytes(info.Size()))
		return nil
	} else if t, err = w.db.TrackGetByPath(fullPath); err != nil {
		w.log.Printf("[ERROR] Failed to look up file %s: %s\n",
			fullPath,
			err.Error())
		return nil
	} else if t != nil {
		w.log.Printf("[TRACE] %s is already known\n", fullPath)
		return nil
	} else if t, err = readTrack(fullPath, info); err != nil {
		w.log.Printf("[ERROR] Cannot read %s: %s\n",
			fullPath,
			err.Error())
		return nil
	}

	var dup *objects.Track

	if dup, err = w.db.TrackGetByChecksum(t.Checksum); err != nil {
		w.log.Printf("[ERROR] Failed to look up checksum of %s: %s\n",
			fullPath,
			err.Error())
		return nil
	} else if dup != nil {
		w.log.Printf("[INFO] %s is a duplicate of %s\n",
			fullPath,
			dup.Path)
		return nil
	} else if err = w.db.TrackAdd(t); err != nil {
		w.log.Printf("[ERROR] Cannot add %s to database: %s\n",
			fullPath,
			err.Error())
		return err
	}

	w.Tracks <- t

	return nil
} // func (w *Walker) visit(path string, d fs.DirEntry, incoming error) error
