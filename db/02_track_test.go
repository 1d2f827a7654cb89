// /home/krylon/go/src/github.com/blicero/tabpod/db/02_track_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 20:31:09 krylon>

package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/blicero/tabpod/objects"
)

var testTracks []*objects.Track

func TestFolderAdd(t *testing.T) {
	if conn == nil {
		t.SkipNow()
	}

	var (
		err  error
		f    = &objects.Folder{Path: "/data/music"}
		f2   *objects.Folder
		now  = time.Now().Truncate(time.Second)
		list []objects.Folder
	)

	if err = conn.FolderAdd(f); err != nil {
		t.Fatalf("Cannot add Folder %s: %s", f.Path, err.Error())
	} else if f.ID == 0 {
		t.Fatal("Folder was added, but ID was not set")
	} else if err = conn.FolderUpdateScan(f, now); err != nil {
		t.Fatalf("Cannot update scan time: %s", err.Error())
	} else if f2, err = conn.FolderGetByPath(f.Path); err != nil {
		t.Fatalf("Cannot look up Folder %s: %s", f.Path, err.Error())
	} else if f2 == nil {
		t.Fatalf("Folder %s was not found", f.Path)
	} else if f2.ID != f.ID || !f2.LastScan.Equal(now) {
		t.Errorf("Folder from database differs: %d/%s != %d/%s",
			f2.ID,
			f2.LastScan,
			f.ID,
			now)
	} else if f2, err = conn.FolderGetByID(f.ID); err != nil || f2 == nil {
		t.Errorf("Cannot look up Folder #%d: %v", f.ID, err)
	} else if list, err = conn.FolderGetAll(); err != nil {
		t.Errorf("Cannot load all Folders: %s", err.Error())
	} else if len(list) != 1 {
		t.Errorf("Expected 1 Folder, got %d", len(list))
	}

	if f2, err = conn.FolderGetByPath("/does/not/exist"); err != nil {
		t.Errorf("Looking up a missing Folder failed: %s", err.Error())
	} else if f2 != nil {
		t.Errorf("Looking up a missing Folder returned %s", f2.Path)
	}
} // func TestFolderAdd(t *testing.T)

func TestTrackAdd(t *testing.T) {
	if conn == nil {
		t.SkipNow()
	}

	var added = time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)

	testTracks = make([]*objects.Track, 10)

	for i := range testTracks {
		var tr = &objects.Track{
			Path:      fmt.Sprintf("/data/music/track%02d.mp3", i),
			Checksum:  fmt.Sprintf("%064x", i+1),
			Title:     fmt.Sprintf("Track %02d", i),
			Artist:    "Artist",
			Album:     "Album",
			Year:      1990 + i,
			TrackNr:   i + 1,
			Length:    int64(200000 + i*1000),
			Size:      int64(4<<20 + i),
			MediaType: objects.MediaAudio,
			Checked:   true,
			TimeAdded: added,
		}
		tr.SetStarRating(i % 6)

		if err := conn.TrackAdd(tr); err != nil {
			t.Fatalf("Cannot add Track %s: %s", tr.Path, err.Error())
		} else if tr.ID == 0 {
			t.Fatalf("Track %s was added, but ID was not set", tr.Path)
		}

		testTracks[i] = tr
	}

	if err := conn.TrackAdd(&objects.Track{}); err != ErrInvalidValue {
		t.Errorf("Adding a Track without a path should fail with ErrInvalidValue, not %v",
			err)
	} else if err = conn.TrackAdd(testTracks[0].Clone()); err == nil {
		t.Error("Adding a Track with a duplicate path should fail")
	}
} // func TestTrackAdd(t *testing.T)

func TestTrackGet(t *testing.T) {
	if conn == nil || len(testTracks) == 0 {
		t.SkipNow()
	}

	var (
		err error
		tr  *objects.Track
		ref = testTracks[3]
	)

	if tr, err = conn.TrackGetByID(ref.ID); err != nil {
		t.Fatalf("Cannot load Track #%d: %s", ref.ID, err.Error())
	} else if tr == nil {
		t.Fatalf("Track #%d was not found", ref.ID)
	} else if *tr != *ref {
		t.Errorf("Track from database differs:\n%#v\n%#v", tr, ref)
	}

	if tr, err = conn.TrackGetByPath(ref.Path); err != nil || tr == nil {
		t.Errorf("Cannot look up Track %s: %v", ref.Path, err)
	} else if tr.ID != ref.ID {
		t.Errorf("Lookup by path returned Track #%d, expected #%d", tr.ID, ref.ID)
	}

	if tr, err = conn.TrackGetByChecksum(ref.Checksum); err != nil || tr == nil {
		t.Errorf("Cannot look up Track by checksum: %v", err)
	} else if tr.ID != ref.ID {
		t.Errorf("Lookup by checksum returned Track #%d, expected #%d", tr.ID, ref.ID)
	}

	if tr, err = conn.TrackGetByID(ref.ID + 1000); err != nil {
		t.Errorf("Looking up a missing Track failed: %s", err.Error())
	} else if tr != nil {
		t.Errorf("Looking up a missing Track returned %s", tr.Path)
	}

	var all []*objects.Track

	if all, err = conn.TrackGetAll(); err != nil {
		t.Fatalf("Cannot load all Tracks: %s", err.Error())
	} else if len(all) != len(testTracks) {
		t.Errorf("Expected %d Tracks, got %d", len(testTracks), len(all))
	}
} // func TestTrackGet(t *testing.T)

func TestTrackUpdate(t *testing.T) {
	if conn == nil || len(testTracks) == 0 {
		t.SkipNow()
	}

	var (
		err error
		tr  *objects.Track
		ref = testTracks[5]
	)

	ref.PlayCount++
	ref.TimePlayed = time.Now().Truncate(time.Second)
	ref.Genre = "Krautrock"
	ref.Compilation = true

	if err = conn.TrackUpdate(ref); err != nil {
		t.Fatalf("Cannot update Track %s: %s", ref.Path, err.Error())
	} else if tr, err = conn.TrackGetByID(ref.ID); err != nil || tr == nil {
		t.Fatalf("Cannot load Track #%d: %v", ref.ID, err)
	} else if *tr != *ref {
		t.Errorf("Track was not updated:\n%#v\n%#v", tr, ref)
	}

	var ghost = ref.Clone()
	ghost.ID += 1000

	if err = conn.TrackUpdate(ghost); err != ErrObjectNotFound {
		t.Errorf("Updating a missing Track should yield ErrObjectNotFound, not %v",
			err)
	}
} // func TestTrackUpdate(t *testing.T)
