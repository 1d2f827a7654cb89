// /home/krylon/go/src/github.com/blicero/tabpod/db/03_playlist_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 20:58:40 krylon>

package db

import (
	"testing"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/objects"
)

var (
	testList *objects.Playlist
	testSPL  *objects.Playlist
)

func TestPlaylistAdd(t *testing.T) {
	if conn == nil || len(testTracks) == 0 {
		t.SkipNow()
	}

	var err error

	testList = &objects.Playlist{
		UUID:    common.GetUUID(),
		Name:    "Favourites",
		Members: []*objects.Track{testTracks[4], testTracks[1], testTracks[7]},
	}

	testSPL = objects.NewSPL("Highly rated")
	testSPL.UUID = common.GetUUID()
	testSPL.Pref.CheckLimits = true
	testSPL.Pref.LimitSort = objects.LimitSortLowestRating
	testSPL.Rules.Match = objects.MatchOr
	testSPL.Rules.Rules = []*objects.SPLRule{
		{
			Field:     objects.FieldRating,
			Action:    objects.ActionIsGreaterThan,
			FromValue: 60,
		},
		{
			Field:  objects.FieldArtist,
			Action: objects.ActionContains,
			String: "Art",
		},
	}

	if err = conn.PlaylistAdd(testList, 0); err != nil {
		t.Fatalf("Cannot add Playlist %s: %s", testList.Name, err.Error())
	} else if err = conn.PlaylistAdd(testSPL, 1); err != nil {
		t.Fatalf("Cannot add Playlist %s: %s", testSPL.Name, err.Error())
	} else if testList.ID == 0 || testSPL.ID == 0 {
		t.Fatal("Playlists were added, but IDs were not set")
	} else if err = conn.MemberSetAll(testList); err != nil {
		t.Fatalf("Cannot store members: %s", err.Error())
	} else if err = conn.RuleReplace(testSPL); err != nil {
		t.Fatalf("Cannot store rules: %s", err.Error())
	}

	if err = conn.PlaylistAdd(&objects.Playlist{Name: "Library", Master: true}, 0); err != ErrInvalidValue {
		t.Errorf("Adding the Master Playlist should fail with ErrInvalidValue, not %v",
			err)
	} else if err = conn.RuleReplace(testList); err != ErrInvalidValue {
		t.Errorf("Storing rules for a regular Playlist should fail with ErrInvalidValue, not %v",
			err)
	}
} // func TestPlaylistAdd(t *testing.T)

func TestPlaylistLoad(t *testing.T) {
	if testList == nil || testSPL == nil {
		t.SkipNow()
	}

	var (
		err   error
		lists []*objects.Playlist
		ids   []int64
		rules []*objects.SPLRule
	)

	if lists, err = conn.PlaylistGetAll(); err != nil {
		t.Fatalf("Cannot load Playlists: %s", err.Error())
	} else if len(lists) != 2 {
		t.Fatalf("Expected 2 Playlists, got %d", len(lists))
	} else if lists[0].ID != testList.ID || lists[1].ID != testSPL.ID {
		t.Errorf("Playlists are out of order: %d, %d", lists[0].ID, lists[1].ID)
	} else if lists[1].Pref != testSPL.Pref {
		t.Errorf("Playlist settings differ:\n%#v\n%#v",
			lists[1].Pref,
			testSPL.Pref)
	} else if !lists[1].IsSPL || lists[1].Rules.Match != objects.MatchOr {
		t.Errorf("Smart Playlist %s was not loaded properly", lists[1].Name)
	}

	if ids, err = conn.MemberGetByPlaylist(testList); err != nil {
		t.Fatalf("Cannot load members: %s", err.Error())
	} else if len(ids) != len(testList.Members) {
		t.Fatalf("Expected %d members, got %d", len(testList.Members), len(ids))
	}

	for idx, id := range ids {
		if id != testList.Members[idx].ID {
			t.Errorf("Member #%d is Track %d, expected %d",
				idx,
				id,
				testList.Members[idx].ID)
		}
	}

	if rules, err = conn.RuleGetByPlaylist(testSPL); err != nil {
		t.Fatalf("Cannot load rules: %s", err.Error())
	} else if len(rules) != len(testSPL.Rules.Rules) {
		t.Fatalf("Expected %d rules, got %d", len(testSPL.Rules.Rules), len(rules))
	}

	for idx, r := range rules {
		if *r != *testSPL.Rules.Rules[idx] {
			t.Errorf("Rule #%d differs:\n%#v\n%#v",
				idx,
				r,
				testSPL.Rules.Rules[idx])
		}
	}
} // func TestPlaylistLoad(t *testing.T)

func TestMembers(t *testing.T) {
	if testList == nil {
		t.SkipNow()
	}

	var (
		err error
		ids []int64
	)

	if err = conn.MemberRemove(testList, testTracks[1]); err != nil {
		t.Fatalf("Cannot remove member: %s", err.Error())
	} else if err = conn.MemberAdd(testList, testTracks[9], 3); err != nil {
		t.Fatalf("Cannot add member: %s", err.Error())
	} else if ids, err = conn.MemberGetByPlaylist(testList); err != nil {
		t.Fatalf("Cannot load members: %s", err.Error())
	} else if len(ids) != 3 || ids[2] != testTracks[9].ID {
		t.Errorf("Unexpected members: %v", ids)
	}

	// Deleting a Track removes it from all Playlists.
	if err = conn.TrackDelete(testTracks[4]); err != nil {
		t.Fatalf("Cannot delete Track: %s", err.Error())
	} else if ids, err = conn.MemberGetByPlaylist(testList); err != nil {
		t.Fatalf("Cannot load members: %s", err.Error())
	} else if len(ids) != 2 {
		t.Errorf("Expected 2 members after deleting a Track, got %v", ids)
	}

	if err = conn.MemberClear(testList); err != nil {
		t.Fatalf("Cannot clear Playlist: %s", err.Error())
	} else if ids, err = conn.MemberGetByPlaylist(testList); err != nil {
		t.Fatalf("Cannot load members: %s", err.Error())
	} else if len(ids) != 0 {
		t.Errorf("Playlist still has members after clearing it: %v", ids)
	}
} // func TestMembers(t *testing.T)

func TestTransaction(t *testing.T) {
	if testSPL == nil {
		t.SkipNow()
	}

	var (
		err   error
		rules []*objects.SPLRule
		name  = testSPL.Name
	)

	if err = conn.Begin(); err != nil {
		t.Fatalf("Cannot begin transaction: %s", err.Error())
	} else if err = conn.Begin(); err != ErrTxInProgress {
		t.Errorf("Nested Begin should fail with ErrTxInProgress, not %v", err)
	}

	testSPL.Rules.Rules = testSPL.Rules.Rules[:1]
	testSPL.Name = "Renamed"

	if err = conn.RuleReplace(testSPL); err != nil {
		t.Errorf("Cannot replace rules: %s", err.Error())
	} else if err = conn.SavepointCreate("rename"); err != nil {
		t.Errorf("Cannot create savepoint: %s", err.Error())
	} else if err = conn.PlaylistUpdate(testSPL, 1); err != nil {
		t.Errorf("Cannot update Playlist: %s", err.Error())
	} else if err = conn.SavepointRollback("rename"); err != nil {
		t.Errorf("Cannot roll back to savepoint: %s", err.Error())
	} else if err = conn.SavepointRelease("bogus"); err != ErrInvalidSavepoint {
		t.Errorf("Releasing an unknown savepoint should fail with ErrInvalidSavepoint, not %v",
			err)
	} else if rules, err = conn.RuleGetByPlaylist(testSPL); err != nil {
		t.Errorf("Cannot load rules: %s", err.Error())
	} else if len(rules) != 1 {
		t.Errorf("Expected 1 rule within the transaction, got %d", len(rules))
	}

	if err = conn.Rollback(); err != nil {
		t.Fatalf("Cannot roll back transaction: %s", err.Error())
	} else if rules, err = conn.RuleGetByPlaylist(testSPL); err != nil {
		t.Fatalf("Cannot load rules: %s", err.Error())
	} else if len(rules) != 2 {
		t.Errorf("Expected 2 rules after rollback, got %d", len(rules))
	} else if err = conn.Commit(); err != ErrNoTxInProgress {
		t.Errorf("Commit without transaction should fail with ErrNoTxInProgress, not %v",
			err)
	}

	testSPL.Name = name
} // func TestTransaction(t *testing.T)

func TestPlaylistDelete(t *testing.T) {
	if testSPL == nil {
		t.SkipNow()
	}

	var (
		err   error
		lists []*objects.Playlist
		rules []*objects.SPLRule
	)

	if err = conn.PlaylistDelete(testSPL); err != nil {
		t.Fatalf("Cannot delete Playlist: %s", err.Error())
	} else if lists, err = conn.PlaylistGetAll(); err != nil {
		t.Fatalf("Cannot load Playlists: %s", err.Error())
	} else if len(lists) != 1 {
		t.Errorf("Expected 1 Playlist, got %d", len(lists))
	} else if rules, err = conn.RuleGetByPlaylist(testSPL); err != nil {
		t.Fatalf("Cannot load rules: %s", err.Error())
	} else if len(rules) != 0 {
		t.Errorf("Rules of deleted Playlist are still there: %d", len(rules))
	}
} // func TestPlaylistDelete(t *testing.T)

func TestZClose(t *testing.T) {
	if conn == nil {
		t.SkipNow()
	}

	if err := conn.PerformMaintenance(); err != nil {
		t.Errorf("Maintenance failed: %s", err.Error())
	} else if err = conn.Close(); err != nil {
		t.Errorf("Cannot close database: %s", err.Error())
	}

	conn = nil
} // func TestZClose(t *testing.T)
