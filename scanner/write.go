// /home/krylon/go/src/github.com/blicero/tabpod/scanner/write.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 11:02:17 krylon>

package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blicero/tabpod/objects"
	"github.com/bogem/id3v2/v2"
	pkgerr "github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned by WriteTags for files other than MP3.
var ErrUnsupportedFormat = errors.New("writing tags is only supported for MP3 files")

// WriteTags writes the Track's metadata into the ID3v2 tag of its file.
func WriteTags(t *objects.Track) error {
	if !strings.EqualFold(filepath.Ext(t.Path), ".mp3") {
		return ErrUnsupportedFormat
	}

	var (
		err error
		tag *id3v2.Tag
		enc = id3v2.EncodingUTF8
	)

	if tag, err = id3v2.Open(t.Path, id3v2.Options{Parse: true}); err != nil {
		return pkgerr.Wrapf(err, "cannot open %s", t.Path)
	}

	defer tag.Close() // nolint: errcheck

	tag.SetDefaultEncoding(enc)
	tag.SetTitle(t.Title)
	tag.SetArtist(t.Artist)
	tag.SetAlbum(t.Album)
	tag.SetGenre(t.Genre)

	if t.Year > 0 {
		tag.SetYear(strconv.Itoa(t.Year))
	}

	if t.Composer != "" {
		tag.AddTextFrame(tag.CommonID("Composer"), enc, t.Composer)
	}

	if t.AlbumArtist != "" {
		tag.AddTextFrame(tag.CommonID("Band/Orchestra/Accompaniment"), enc, t.AlbumArtist)
	}

	if t.TrackNr > 0 {
		var pos = strconv.Itoa(t.TrackNr)
		if t.Tracks > 0 {
			pos = fmt.Sprintf("%d/%d", t.TrackNr, t.Tracks)
		}
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), enc, pos)
	}

	if err = tag.Save(); err != nil {
		return pkgerr.Wrapf(err, "cannot save tags of %s", t.Path)
	}

	return nil
} // func WriteTags(t *objects.Track) error
