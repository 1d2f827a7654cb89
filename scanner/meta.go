// /home/krylon/go/src/github.com/blicero/tabpod/scanner/meta.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 10:40:02 krylon>

package scanner

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/objects"
	"github.com/dhowden/tag"
	"github.com/pkg/errors"
)

// This file contains functions to extract metadata from audio files.

// readTrack creates a Track for the file at path. Files without tags still
// yield a Track, titled after the file and filed under the folder it
// lives in.
func readTrack(path string, info fs.FileInfo) (*objects.Track, error) {
	var (
		fh  *os.File
		m   tag.Metadata
		err error
		t   = &objects.Track{
			Path:         path,
			Size:         info.Size(),
			Checked:      true,
			MediaType:    objects.MediaAudio,
			TimeAdded:    time.Now(),
			TimeModified: info.ModTime(),
		}
	)

	if fh, err = os.Open(path); err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", path)
	}

	defer fh.Close() // nolint: errcheck

	if m, err = tag.ReadFrom(fh); err == nil {
		t.Title = strings.TrimSpace(m.Title())
		t.Artist = strings.TrimSpace(m.Artist())
		t.Album = strings.TrimSpace(m.Album())
		t.AlbumArtist = strings.TrimSpace(m.AlbumArtist())
		t.Composer = strings.TrimSpace(m.Composer())
		t.Genre = strings.TrimSpace(m.Genre())
		t.Comment = m.Comment()
		t.Year = m.Year()
		t.TrackNr, t.Tracks = m.Track()
		t.CDNr, t.CDs = m.Disc()
		t.Kind = string(m.FileType()) + " audio file"
	} else if err != tag.ErrNoTagsFound {
		return nil, errors.Wrapf(err, "cannot read tags from %s", path)
	}

	if t.Title == "" {
		var base = filepath.Base(path)
		t.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if t.Album == "" {
		t.Album = t.GetParentFolder()
	}

	if t.Checksum, err = checksum(fh); err != nil {
		return nil, errors.Wrapf(err, "cannot compute checksum of %s", path)
	}

	return t, nil
} // func readTrack(path string, info fs.FileInfo) (*objects.Track, error)

// checksum computes a checksum of the audio data, leaving out the tags,
// so retagging a file does not change it. If the format is not
// understood, the whole file is hashed.
func checksum(fh io.ReadSeeker) (string, error) {
	var (
		err  error
		sum  string
		data []byte
	)

	if _, err = fh.Seek(0, io.SeekStart); err != nil {
		return "", err
	} else if sum, err = tag.Sum(fh); err == nil {
		return sum, nil
	} else if _, err = fh.Seek(0, io.SeekStart); err != nil {
		return "", err
	} else if data, err = io.ReadAll(fh); err != nil {
		return "", err
	}

	return common.GetChecksum(data)
} // func checksum(fh io.ReadSeeker) (string, error)
