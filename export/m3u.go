// /home/krylon/go/src/github.com/blicero/tabpod/export/m3u.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 13:22:09 krylon>

// Package export writes Playlists to m3u files and creates Playlists from
// them.
package export

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/objects"
	"github.com/pkg/errors"
	"github.com/ushis/m3u"
)

// Lookup finds the Track with the given path, or returns nil.
type Lookup func(path string) *objects.Track

// WritePlaylist writes the Members of the Playlist as an extended m3u
// playlist.
func WritePlaylist(pl *objects.Playlist, w io.Writer) error {
	var list = make(m3u.Playlist, 0, len(pl.Members))

	for _, t := range pl.Members {
		var title = t.DisplayTitle()

		if t.Artist != "" {
			title = t.Artist + " - " + title
		}

		list = append(list, m3u.Track{
			Path:  t.Path,
			Title: title,
			Time:  t.Length / 1000,
		})
	}

	if _, err := list.WriteTo(w); err != nil {
		return errors.Wrapf(err, "cannot write playlist %q", pl.Name)
	}

	return nil
} // func WritePlaylist(pl *objects.Playlist, w io.Writer) error

// WritePlaylistFile writes the Playlist to the file at path, replacing
// it if it exists.
func WritePlaylistFile(pl *objects.Playlist, path string) error {
	var (
		err error
		fh  *os.File
	)

	if fh, err = os.Create(path); err != nil {
		return errors.Wrapf(err, "cannot create %s", path)
	} else if err = WritePlaylist(pl, fh); err != nil {
		fh.Close() // nolint: errcheck
		return err
	} else if err = fh.Close(); err != nil {
		return errors.Wrapf(err, "cannot close %s", path)
	}

	if log, lerr := common.GetLogger(logdomain.Export); lerr == nil {
		log.Printf("[INFO] Exported %d Tracks of %q to %s\n",
			len(pl.Members),
			pl.Name,
			path)
	}

	return nil
} // func WritePlaylistFile(pl *objects.Playlist, path string) error

// ReadPlaylist parses an m3u playlist and creates a regular Playlist with
// the given name from the entries lookup can resolve. The entries it
// cannot resolve are returned as well.
func ReadPlaylist(r io.Reader, name string, lookup Lookup) (*objects.Playlist, []string, error) {
	var (
		err     error
		list    m3u.Playlist
		missing []string
		pl      = &objects.Playlist{Name: name}
	)

	if list, err = m3u.Parse(r); err != nil {
		return nil, nil, errors.Wrapf(err, "cannot parse playlist %q", name)
	}

	for _, item := range list {
		var path = strings.TrimSpace(item.Path)

		if path == "" {
			continue
		} else if strings.HasPrefix(path, "file://") {
			if u, uerr := url.Parse(path); uerr == nil {
				path = u.Path
			}
		}

		if t := lookup(path); t != nil {
			pl.Members = append(pl.Members, t)
		} else {
			missing = append(missing, path)
		}
	}

	return pl, missing, nil
} // func ReadPlaylist(r io.Reader, name string, lookup Lookup) (*objects.Playlist, []string, error)

// ReadPlaylistFile reads the m3u file at path. The Playlist is named after
// the file, and relative entries are taken relative to its directory.
func ReadPlaylistFile(path string, lookup Lookup) (*objects.Playlist, []string, error) {
	var (
		err     error
		fh      *os.File
		pl      *objects.Playlist
		missing []string
		dir     = filepath.Dir(path)
		name    = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	)

	if fh, err = os.Open(path); err != nil {
		return nil, nil, errors.Wrapf(err, "cannot open %s", path)
	}

	defer fh.Close() // nolint: errcheck

	var resolve = func(p string) *objects.Track {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		return lookup(filepath.Clean(p))
	}

	if pl, missing, err = ReadPlaylist(fh, name, resolve); err != nil {
		return nil, nil, err
	}

	if log, lerr := common.GetLogger(logdomain.Export); lerr == nil {
		log.Printf("[INFO] Read %d Tracks from %s\n",
			len(pl.Members),
			path)

		for _, m := range missing {
			log.Printf("[WARN] %s: %s is not in the library\n",
				path,
				m)
		}
	}

	return pl, missing, nil
} // func ReadPlaylistFile(path string, lookup Lookup) (*objects.Playlist, []string, error)
