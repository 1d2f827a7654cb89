// /home/krylon/go/src/github.com/blicero/tabpod/export/01_m3u_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 13:58:14 krylon>

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blicero/tabpod/objects"
)

func testLibrary(root string) (map[string]*objects.Track, Lookup) {
	var tracks = map[string]*objects.Track{}

	for i, name := range []string{"one.mp3", "two.mp3", "sub/three.mp3"} {
		var path = filepath.Join(root, name)

		tracks[path] = &objects.Track{
			ID:     int64(i + 1),
			Path:   path,
			Title:  strings.TrimSuffix(filepath.Base(name), ".mp3"),
			Artist: "Somebody",
			Length: int64(60000 * (i + 1)),
		}
	}

	return tracks, func(path string) *objects.Track { return tracks[path] }
} // func testLibrary(root string) (map[string]*objects.Track, Lookup)

func TestRoundTrip(t *testing.T) {
	var (
		err     error
		buf     bytes.Buffer
		pl      *objects.Playlist
		missing []string
		root    = "/data/music"
		lib, lk = testLibrary(root)
		orig    = &objects.Playlist{
			Name: "Road trip",
			Members: []*objects.Track{
				lib[filepath.Join(root, "two.mp3")],
				lib[filepath.Join(root, "sub/three.mp3")],
				lib[filepath.Join(root, "one.mp3")],
			},
		}
	)

	if err = WritePlaylist(orig, &buf); err != nil {
		t.Fatalf("Cannot write playlist: %s", err.Error())
	} else if !strings.Contains(buf.String(), "Somebody - two") {
		t.Errorf("Playlist lacks the title of the first Track:\n%s", buf.String())
	}

	if pl, missing, err = ReadPlaylist(&buf, "Copy", lk); err != nil {
		t.Fatalf("Cannot read playlist: %s", err.Error())
	} else if len(missing) != 0 {
		t.Errorf("Unexpected missing entries: %v", missing)
	} else if pl.Name != "Copy" || pl.IsSPL || pl.Master {
		t.Errorf("Unexpected Playlist %q (SPL %t, master %t)",
			pl.Name,
			pl.IsSPL,
			pl.Master)
	} else if len(pl.Members) != len(orig.Members) {
		t.Fatalf("Expected %d Tracks, got %d", len(orig.Members), len(pl.Members))
	}

	for i, tr := range pl.Members {
		if tr != orig.Members[i] {
			t.Errorf("Track #%d is %s, expected %s", i, tr.Path, orig.Members[i].Path)
		}
	}
} // func TestRoundTrip(t *testing.T)

func TestReadPlaylistFile(t *testing.T) {
	var (
		err     error
		pl      *objects.Playlist
		missing []string
		root    = filepath.Join(baseDir, "music")
		_, lk   = testLibrary(root)
		path    = filepath.Join(root, "Favourites.m3u")
		content = "#EXTM3U\n" +
			"#EXTINF:60,Somebody - one\n" +
			"one.mp3\n" +
			"#EXTINF:180,Somebody - three\n" +
			filepath.Join(root, "sub/three.mp3") + "\n" +
			"#EXTINF:100,Nobody - ghost\n" +
			"ghost.mp3\n"
	)

	if err = os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Cannot create %s: %s", root, err.Error())
	} else if err = os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Cannot write %s: %s", path, err.Error())
	}

	if pl, missing, err = ReadPlaylistFile(path, lk); err != nil {
		t.Fatalf("Cannot read %s: %s", path, err.Error())
	} else if pl.Name != "Favourites" {
		t.Errorf("Playlist is named %q, expected Favourites", pl.Name)
	} else if len(pl.Members) != 2 {
		t.Errorf("Expected 2 Tracks, got %d", len(pl.Members))
	} else if len(missing) != 1 || missing[0] != "ghost.mp3" {
		t.Errorf("Unexpected missing entries: %v", missing)
	}

	var out = filepath.Join(root, "Export.m3u")

	if err = WritePlaylistFile(pl, out); err != nil {
		t.Fatalf("Cannot export playlist: %s", err.Error())
	} else if pl, _, err = ReadPlaylistFile(out, lk); err != nil {
		t.Fatalf("Cannot read exported playlist: %s", err.Error())
	} else if len(pl.Members) != 2 {
		t.Errorf("Expected 2 Tracks in exported playlist, got %d", len(pl.Members))
	}
} // func TestReadPlaylistFile(t *testing.T)
