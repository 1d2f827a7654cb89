// /home/krylon/go/src/github.com/blicero/tabpod/objects/folder.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-02 19:45:26 krylon>

package objects

import "time"

// Folder is a directory tree that has been scanned for audio files.
type Folder struct {
	ID       int64
	Path     string
	LastScan time.Time
}

// Clone return a pointer to a freshly-allocated memberwise copy of the receiver.
func (f *Folder) Clone() *Folder {
	return &Folder{
		ID:       f.ID,
		Path:     f.Path,
		LastScan: f.LastScan,
	}
} // func (f *Folder) Clone() *Folder

// Scanned returns true if the Folder has been scanned at least once.
func (f *Folder) Scanned() bool {
	return !f.LastScan.IsZero() && f.LastScan.Unix() > 0
} // func (f *Folder) Scanned() bool
