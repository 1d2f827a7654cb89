// /home/krylon/go/src/github.com/blicero/tabpod/objects/track.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 18:44:02 krylon>

// Package objects contains the data types the application deals with:
// Tracks, Playlists and the rules of smart Playlists.
package objects

import (
	"net/url"
	"path"
	"path/filepath"
	"time"
)

// RatingStep is the amount a Track's Rating increases per star.
// RatingMax is the highest number of stars a Track can have.
const (
	RatingStep = 20
	RatingMax  = 5
)

// MediaType flags describe what kind of media a Track contains.
const (
	MediaAudio      uint32 = 0x0001
	MediaMovie      uint32 = 0x0002
	MediaPodcast    uint32 = 0x0004
	MediaAudiobook  uint32 = 0x0008
	MediaMusicVideo uint32 = 0x0020
	MediaTVShow     uint32 = 0x0040
)

// Track represents an audio (or video) file in the library.
type Track struct {
	ID           int64
	Path         string
	Checksum     string
	Title        string
	Artist       string
	Album        string
	AlbumArtist  string
	Genre        string
	Composer     string
	Comment      string
	Grouping     string
	Kind         string
	TVShow       string
	Year         int
	TrackNr      int
	Tracks       int
	CDNr         int
	CDs          int
	Season       int
	Rating       int
	PlayCount    int
	SkipCount    int
	Bitrate      int
	SampleRate   int
	Size         int64
	Length       int64 // milliseconds
	BPM          int
	Compilation  bool
	Checked      bool
	MediaType    uint32
	TimeAdded    time.Time
	TimeModified time.Time
	TimePlayed   time.Time
	TimeSkipped  time.Time
}

// DisplayTitle returns a - somewhat - presentable string to represent the Track.
func (t *Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}

	return path.Base(t.Path)
} // func (t *Track) DisplayTitle() string

// StarRating returns the Track's rating in stars (0 - RatingMax).
func (t *Track) StarRating() int {
	return t.Rating / RatingStep
} // func (t *Track) StarRating() int

// SetStarRating sets the Track's Rating to the given number of stars.
// Values out of range are clamped.
func (t *Track) SetStarRating(stars int) {
	if stars < 0 {
		stars = 0
	} else if stars > RatingMax {
		stars = RatingMax
	}

	t.Rating = stars * RatingStep
} // func (t *Track) SetStarRating(stars int)

// Duration returns the playing time of the Track.
func (t *Track) Duration() time.Duration {
	return time.Duration(t.Length) * time.Millisecond
} // func (t *Track) Duration() time.Duration

// Clone returns an identical copy of the receiver.
func (t *Track) Clone() *Track {
	var c = *t
	return &c
} // func (t *Track) Clone() *Track

// GetParentFolder returns the name of the Folder the file lives in,
// i.e. basename(dirname(path))
func (t *Track) GetParentFolder() string {
	return filepath.Base(filepath.Dir(t.Path))
} // func (t *Track) GetParentFolder() string

// PathURL returns the Track's path as a file:// URL.
func (t *Track) PathURL() string {
	var u = url.URL{Scheme: "file", Path: t.Path}
	return u.String()
} // func (t *Track) PathURL() string
