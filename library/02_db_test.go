// /home/krylon/go/src/github.com/blicero/tabpod/library/02_db_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 17. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-18 22:50:27 krylon>

package library

import (
	"path/filepath"
	"testing"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/db"
	"github.com/blicero/tabpod/objects"
	"github.com/blicero/tabpod/spl"
)

func TestPersistence(t *testing.T) {
	var (
		err    error
		conn   *db.Database
		lib    *Library
		mix    = &objects.Playlist{Name: "Mix"}
		tracks = makeTracks(12)
	)

	if conn, err = db.Open(common.DbPath); err != nil {
		t.Fatalf("Cannot open database: %s", err.Error())
	}

	defer conn.Close() // nolint: errcheck

	if lib, err = New(conn); err != nil {
		t.Fatalf("Cannot create Library: %s", err.Error())
	}

	for _, tr := range tracks {
		if err = lib.AddTrack(tr); err != nil {
			t.Fatalf("Cannot add Track %s: %s", tr.Path, err.Error())
		}
	}

	newTopRated(t, lib, 0)

	if err = lib.PlaylistAdd(mix, 0); err != nil {
		t.Fatalf("Cannot add Playlist: %s", err.Error())
	}

	for _, idx := range []int{7, 2, 9} {
		if err = lib.PlaylistAddTrack(mix, tracks[idx], -1); err != nil {
			t.Fatalf("Cannot add Track to Playlist: %s", err.Error())
		}
	}

	tracks[3].PlayCount = 42
	if err = lib.TrackChanged(tracks[3]); err != nil {
		t.Fatalf("TrackChanged failed: %s", err.Error())
	} else if err = lib.RemoveTrack(tracks[2]); err != nil {
		t.Fatalf("Cannot remove Track: %s", err.Error())
	}

	// Load everything again from the database.
	var (
		lib2  *Library
		lists []*objects.Playlist
	)

	if lib2, err = Open(conn); err != nil {
		t.Fatalf("Cannot load Library: %s", err.Error())
	} else if len(lib2.Master().Members) != len(tracks)-1 {
		t.Fatalf("Expected %d Tracks, got %d",
			len(tracks)-1,
			len(lib2.Master().Members))
	} else if lib2.IsChanged() {
		t.Error("Freshly loaded Library should not be marked as changed")
	}

	if tr := lib2.TrackByID(tracks[3].ID); tr == nil {
		t.Errorf("Track #%d was not loaded", tracks[3].ID)
	} else if tr.PlayCount != 42 {
		t.Errorf("Play count was not stored: %d", tr.PlayCount)
	}

	lists = lib2.Playlists()

	if len(lists) != 2 {
		t.Fatalf("Expected 2 Playlists, got %d", len(lists))
	} else if lists[0].Name != "Mix" || lists[1].Name != "Top rated" {
		t.Fatalf("Playlists were not loaded in order: %q, %q",
			lists[0].Name,
			lists[1].Name)
	} else if len(lists[0].Members) != 2 ||
		lists[0].Members[0].ID != tracks[7].ID ||
		lists[0].Members[1].ID != tracks[9].ID {
		t.Errorf("Members of %q were not loaded properly: %v",
			lists[0].Name,
			lists[0].Members)
	} else if !lists[1].IsSPL || len(lists[1].Rules.Rules) != 1 {
		t.Errorf("Smart Playlist %q was not loaded properly", lists[1].Name)
	} else if len(lists[1].Members) != 4 {
		t.Errorf("Expected 4 Tracks in %q, got %d",
			lists[1].Name,
			len(lists[1].Members))
	}

	if err = lib2.PlaylistRemove(lists[0]); err != nil {
		t.Fatalf("Cannot remove Playlist: %s", err.Error())
	}

	var lib3 *Library

	if lib3, err = Open(conn); err != nil {
		t.Fatalf("Cannot load Library: %s", err.Error())
	} else if lists = lib3.Playlists(); len(lists) != 1 {
		t.Errorf("Expected 1 Playlist after removal, got %d", len(lists))
	}
} // func TestPersistence(t *testing.T)

func TestLoadSmartPlaylistOrder(t *testing.T) {
	var (
		err    error
		conn   *db.Database
		lib    *Library
		ed     *spl.Editor
		top    *objects.Playlist
		tracks = makeTracks(12)
	)

	if conn, err = db.Open(filepath.Join(common.BaseDir, "spl_order.db")); err != nil {
		t.Fatalf("Cannot open database: %s", err.Error())
	}

	defer conn.Close() // nolint: errcheck

	if lib, err = New(conn); err != nil {
		t.Fatalf("Cannot create Library: %s", err.Error())
	}

	for _, tr := range tracks {
		if err = lib.AddTrack(tr); err != nil {
			t.Fatalf("Cannot add Track %s: %s", tr.Path, err.Error())
		}
	}

	if top = newTopRated(t, lib, -1); top == nil {
		t.Fatal("Smart Playlist was not added to the Library")
	} else if len(top.Members) == 0 {
		t.Fatal("Smart Playlist has no members")
	}

	// The Playlist referring to "Top rated" comes first in the list.
	if ed, err = spl.NewEditor(lib, nil, 0); err != nil {
		t.Fatalf("Cannot create Editor: %s", err.Error())
	}

	ed.SetName("In Top rated")

	if err = ed.SetField(0, objects.FieldPlaylist); err != nil {
		t.Fatalf("Cannot set field: %s", err.Error())
	} else if err = ed.SetPlaylist(0, top.ID); err != nil {
		t.Fatalf("Cannot set Playlist: %s", err.Error())
	} else if err = ed.Commit(); err != nil {
		t.Fatalf("Cannot commit smart Playlist: %s", err.Error())
	}

	var expect = len(top.Members)

	if lib, err = Open(conn); err != nil {
		t.Fatalf("Cannot reload Library: %s", err.Error())
	}

	var lists = lib.Playlists()

	if len(lists) != 2 {
		t.Fatalf("Expected 2 Playlists, got %d", len(lists))
	} else if lists[0].Name != "In Top rated" {
		t.Fatalf("First Playlist is %q, expected \"In Top rated\"", lists[0].Name)
	} else if len(lists[0].Members) != expect {
		t.Errorf("Playlist %q has %d members after loading, expected %d",
			lists[0].Name,
			len(lists[0].Members),
			expect)
	}
} // func TestLoadSmartPlaylistOrder(t *testing.T)
