// /home/krylon/go/src/github.com/blicero/tabpod/spl/02_limit_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 19:31:40 krylon>

package spl

import (
	"testing"

	"github.com/blicero/tabpod/objects"
)

func limitedSPL(ltype objects.LimitType, value int64, order objects.LimitSort) *objects.Playlist {
	return &objects.Playlist{
		Name:  "Limited",
		IsSPL: true,
		Pref: objects.SPLPref{
			CheckLimits: true,
			LimitType:   ltype,
			LimitValue:  value,
			LimitSort:   order,
		},
	}
} // func limitedSPL(ltype objects.LimitType, value int64, order objects.LimitSort) *objects.Playlist

func TestLimitSongs(t *testing.T) {
	var (
		tracks = makeTracks(100)
		ev     = newTestEvaluator(t, nil)
		pl     = limitedSPL(objects.LimitSongs, 10, objects.LimitSortMostOftenPlayed)
		member = make(map[*objects.Track]bool)
		minIn  = 1 << 30
	)

	ev.Update(pl, tracks)

	if len(pl.Members) != 10 {
		t.Fatalf("Expected 10 members, got %d", len(pl.Members))
	}

	for _, m := range pl.Members {
		member[m] = true
		if m.PlayCount < minIn {
			minIn = m.PlayCount
		}
	}

	for _, tr := range tracks {
		if !member[tr] && tr.PlayCount > minIn {
			t.Errorf("Track %s was played %d times but left out, while a member was played only %d times",
				tr.Title,
				tr.PlayCount,
				minIn)
		}
	}
} // func TestLimitSongs(t *testing.T)

func TestLimitSize(t *testing.T) {
	var (
		total  int64
		tracks = makeTracks(100)
		ev     = newTestEvaluator(t, nil)
		pl     = limitedSPL(objects.LimitMB, 20, objects.LimitSortTitle)
	)

	ev.Update(pl, tracks)

	// Sizes are 4, 5, 6, 4, ... MB in title order, so the fifth Track
	// pushes the total over the limit.
	if len(pl.Members) != 4 {
		t.Fatalf("Expected 4 members, got %d", len(pl.Members))
	}

	for _, m := range pl.Members {
		total += m.Size
	}

	if total > 20<<20 {
		t.Errorf("Members occupy %d bytes, more than the limit", total)
	}
} // func TestLimitSize(t *testing.T)

func TestLimitTime(t *testing.T) {
	var (
		tracks = makeTracks(100)
		ev     = newTestEvaluator(t, nil)
		pl     = limitedSPL(objects.LimitMinutes, 10, objects.LimitSortLeastRecentlyAdded)
	)

	ev.Update(pl, tracks)

	if len(pl.Members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(pl.Members))
	} else if pl.Members[0] != tracks[99] || pl.Members[1] != tracks[98] {
		t.Errorf("Expected the oldest Tracks, got %s and %s",
			pl.Members[0].Title,
			pl.Members[1].Title)
	}
} // func TestLimitTime(t *testing.T)

func TestLimitRandom(t *testing.T) {
	var (
		tracks = makeTracks(100)
		ev     = newTestEvaluator(t, nil)
		pl     = limitedSPL(objects.LimitSongs, 5, objects.LimitSortRandom)
	)

	pl.Pref.CheckRules = true
	pl.Rules.Rules = []*objects.SPLRule{
		{Field: objects.FieldArtist, Action: objects.ActionIsString, String: "Artist B"},
	}

	ev.Update(pl, tracks)

	if len(pl.Members) != 5 {
		t.Fatalf("Expected 5 members, got %d", len(pl.Members))
	}

	for _, m := range pl.Members {
		if m.Artist != "Artist B" {
			t.Errorf("Track %s by %s should not be a member",
				m.Title,
				m.Artist)
		}
	}
} // func TestLimitRandom(t *testing.T)

func TestUpdateLive(t *testing.T) {
	var (
		tracks = makeTracks(20)
		ev     = newTestEvaluator(t, nil)
		live   = limitedSPL(objects.LimitSongs, 3, objects.LimitSortTitle)
		frozen = limitedSPL(objects.LimitSongs, 3, objects.LimitSortTitle)
	)

	live.Pref.LiveUpdate = true

	ev.UpdateLive([]*objects.Playlist{live, frozen}, tracks)

	if len(live.Members) != 3 {
		t.Errorf("Live playlist has %d members, expected 3",
			len(live.Members))
	}

	if len(frozen.Members) != 0 {
		t.Errorf("Playlist without live update was updated: %d members",
			len(frozen.Members))
	}
} // func TestUpdateLive(t *testing.T)
