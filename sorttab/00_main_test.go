// /home/krylon/go/src/github.com/blicero/tabpod/sorttab/00_main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-18 18:30:11 krylon>

package sorttab

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/objects"
	"github.com/blicero/tabpod/prefs"
)

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/tabpod_sorttab_test_20060102_150405")
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	} else if result = m.Run(); result == 0 {
		fmt.Printf("Removing BaseDir %s\n",
			baseDir)
		_ = os.RemoveAll(baseDir)
	} else {
		fmt.Printf(">>> TEST DIRECTORY: %s\n", baseDir)
	}

	os.Exit(result)
} // func TestMain(m *testing.M)

var refTime = time.Date(2026, 10, 13, 12, 0, 0, 0, time.UTC)

// makeLibrary returns a Playlist of n Tracks, the first 60 percent by
// "Artist A", the rest by "Artist B". Ratings cycle through 0 to 5 stars.
func makeLibrary(n int) *objects.Playlist {
	var pl = &objects.Playlist{
		Name:    "Library",
		Master:  true,
		Members: make([]*objects.Track, n),
	}

	for i := range pl.Members {
		var artist = "Artist A"
		if i >= n*6/10 {
			artist = "Artist B"
		}

		pl.Members[i] = &objects.Track{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("Track %03d", i+1),
			Artist:    artist,
			Album:     fmt.Sprintf("%s - Album %d", artist, i%3),
			Genre:     "Rock",
			Year:      1970 + i%10,
			PlayCount: i % 7,
			TimeAdded: refTime.AddDate(0, 0, -i),
		}
		pl.Members[i].SetStarRating(i % 6)
	}

	return pl
} // func makeLibrary(n int) *objects.Playlist

func newCascade(t *testing.T, cats ...Category) (*Cascade, *TrackList) {
	var (
		err  error
		c    *Cascade
		disp = new(TrackList)
		p    = prefs.Default()
	)

	p.SortTabNum = len(cats)
	for i, cat := range cats {
		p.Tab(i).Category = cat.Name()
	}

	if c, err = New(p, disp); err != nil {
		t.Fatalf("Cannot create Cascade: %s", err.Error())
	}

	c.Now = func() time.Time { return refTime }

	return c, disp
} // func newCascade(t *testing.T, cats ...Category) (*Cascade, *TrackList)

func findEntry(entries []*Entry, name string) *Entry {
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}

	return nil
} // func findEntry(entries []*Entry, name string) *Entry
