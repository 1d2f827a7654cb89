// /home/krylon/go/src/github.com/blicero/tabpod/spl/01_eval_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 19:20:04 krylon>

package spl

import (
	"testing"

	"github.com/blicero/tabpod/objects"
)

func TestEvalRule(t *testing.T) {
	var (
		other = &objects.Playlist{ID: 7, Name: "Favorites"}
		owner = &fakeOwner{lists: []*objects.Playlist{other}}
		tr    = &objects.Track{
			Title:       "Stairway to Heaven",
			Artist:      "Led Zeppelin",
			Year:        1971,
			Rating:      80,
			Length:      482000,
			Compilation: false,
			MediaType:   objects.MediaAudio,
			TimeAdded:   refTime.AddDate(0, 0, -10),
			TimePlayed:  refTime.Add(-3600e9),
		}
	)

	other.Members = []*objects.Track{tr}

	type testCase struct {
		rule   objects.SPLRule
		expect bool
	}

	var cases = []testCase{
		{
			rule:   objects.SPLRule{Field: objects.FieldArtist, Action: objects.ActionContains, String: "zeppelin"},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldArtist, Action: objects.ActionDoesNotContain, String: "ZEPP"},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldTitle, Action: objects.ActionIsString, String: "stairway to heaven"},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldTitle, Action: objects.ActionIsNot, String: "stairway to heaven"},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldTitle, Action: objects.ActionStartsWith, String: "Stair"},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldTitle, Action: objects.ActionEndsWith, String: "hell"},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldAlbum, Action: objects.ActionIsString, String: ""},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldYear, Action: objects.ActionIsInt, FromValue: 1971},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldYear, Action: objects.ActionIsNotInt, FromValue: 1971},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldRating, Action: objects.ActionIsGreaterThan, FromValue: 60},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldRating, Action: objects.ActionIsLessThan, FromValue: 80},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldYear, Action: objects.ActionIsInTheRange, FromValue: 1979, ToValue: 1970},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldYear, Action: objects.ActionIsNotInTheRange, FromValue: 1970, ToValue: 1979},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldTime, Action: objects.ActionIsGreaterThan, FromValue: 300000},
			expect: true,
		},
		{
			rule: objects.SPLRule{
				Field:     objects.FieldDateAdded,
				Action:    objects.ActionIsInTheLast,
				FromDate:  -2,
				FromUnits: objects.UnitWeeks,
			},
			expect: true,
		},
		{
			rule: objects.SPLRule{
				Field:     objects.FieldDateAdded,
				Action:    objects.ActionIsInTheLast,
				FromDate:  -1,
				FromUnits: objects.UnitWeeks,
			},
			expect: false,
		},
		{
			rule: objects.SPLRule{
				Field:     objects.FieldLastSkipped,
				Action:    objects.ActionIsNotInTheLast,
				FromDate:  -1,
				FromUnits: objects.UnitDays,
			},
			expect: true,
		},
		{
			rule: objects.SPLRule{
				Field:     objects.FieldLastPlayed,
				Action:    objects.ActionIsInt,
				FromValue: refTime.Unix(),
			},
			expect: true,
		},
		{
			rule: objects.SPLRule{
				Field:     objects.FieldDateAdded,
				Action:    objects.ActionIsGreaterThan,
				FromValue: refTime.AddDate(0, 0, -20).Unix(),
			},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldCompilation, Action: objects.ActionIsInt},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldCompilation, Action: objects.ActionIsNotInt},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldPlaylist, Action: objects.ActionIsInt, FromValue: 7},
			expect: true,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldPlaylist, Action: objects.ActionIsNotInt, FromValue: 7},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldPlaylist, Action: objects.ActionIsInt, FromValue: 99},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldVideoKind, Action: objects.ActionBinaryAnd, FromValue: int64(objects.MediaMovie | objects.MediaTVShow)},
			expect: false,
		},
		{
			rule:   objects.SPLRule{Field: objects.FieldVideoKind, Action: objects.ActionNotBinaryAnd, FromValue: int64(objects.MediaMovie | objects.MediaTVShow)},
			expect: true,
		},
	}

	for idx, c := range cases {
		if res := EvalRule(&c.rule, tr, owner, refTime); res != c.expect {
			t.Errorf("Rule #%d (%s %s) returned %t, expected %t",
				idx,
				c.rule.Field,
				c.rule.Action,
				res,
				c.expect)
		}
	}
} // func TestEvalRule(t *testing.T)

func TestMatchAndOr(t *testing.T) {
	var (
		tracks = makeTracks(100)
		ev     = newTestEvaluator(t, nil)
		rules  = []*objects.SPLRule{
			{Field: objects.FieldArtist, Action: objects.ActionIsString, String: "artist a"},
			{Field: objects.FieldYear, Action: objects.ActionIsLessThan, FromValue: 1980},
			{Field: objects.FieldPlayCount, Action: objects.ActionIsGreaterThan, FromValue: 2},
		}
		pl = &objects.Playlist{
			Name:  "AndOr",
			IsSPL: true,
			Pref:  objects.SPLPref{CheckRules: true},
			Rules: objects.SPLRules{Rules: rules},
		}
	)

	for _, tr := range tracks {
		var all, some = true, false

		for _, r := range rules {
			var ok = EvalRule(r, tr, nil, refTime)
			all = all && ok
			some = some || ok
		}

		pl.Rules.Match = objects.MatchAnd
		if res := ev.Matches(pl, tr); res != all {
			t.Errorf("AND: %s matches = %t, expected %t",
				tr.Title,
				res,
				all)
		}

		pl.Rules.Match = objects.MatchOr
		if res := ev.Matches(pl, tr); res != some {
			t.Errorf("OR: %s matches = %t, expected %t",
				tr.Title,
				res,
				some)
		}
	}
} // func TestMatchAndOr(t *testing.T)

func TestMatchFlags(t *testing.T) {
	var (
		ev = newTestEvaluator(t, nil)
		pl = &objects.Playlist{
			Name:  "Flags",
			IsSPL: true,
			Rules: objects.SPLRules{
				Rules: []*objects.SPLRule{
					{Field: objects.FieldArtist, Action: objects.ActionIsString, String: "nobody"},
				},
			},
		}
		checked   = &objects.Track{Artist: "Somebody", Checked: true}
		unchecked = &objects.Track{Artist: "Somebody"}
	)

	// Without CheckRules, every Track matches.
	if !ev.Matches(pl, checked) {
		t.Error("Rules should be ignored when CheckRules is false")
	}

	pl.Pref.MatchCheckedOnly = true
	if ev.Matches(pl, unchecked) {
		t.Error("Unchecked Track should not match with MatchCheckedOnly")
	}

	pl.Pref.CheckRules = true
	if ev.Matches(pl, checked) {
		t.Error("Track should not match rule")
	}

	pl.Rules.Rules = nil
	pl.Rules.Match = objects.MatchAnd
	if !ev.Matches(pl, checked) {
		t.Error("Empty AND rule set should match")
	}

	pl.Rules.Match = objects.MatchOr
	if ev.Matches(pl, checked) {
		t.Error("Empty OR rule set should not match")
	}
} // func TestMatchFlags(t *testing.T)

func TestRatingAtLeastFour(t *testing.T) {
	var (
		err    error
		rule   *objects.SPLRule
		tracks = makeTracks(100)
		ev     = newTestEvaluator(t, nil)
		pl     = objects.NewSPL("Good stuff")
		expect = make(map[*objects.Track]bool)
	)

	if rule, err = ParseRule("rating >= 4"); err != nil {
		t.Fatalf("Cannot parse rule: %s", err.Error())
	}

	pl.Pref.LiveUpdate = false
	pl.Rules.Rules = []*objects.SPLRule{rule}

	for _, tr := range tracks {
		if tr.Rating/objects.RatingStep >= 4 {
			expect[tr] = true
		}
	}

	ev.Update(pl, tracks)

	if len(pl.Members) != len(expect) {
		t.Fatalf("Smart playlist has %d members, expected %d",
			len(pl.Members),
			len(expect))
	}

	for _, m := range pl.Members {
		if !expect[m] {
			t.Errorf("Track %s (%d stars) should not be a member",
				m.Title,
				m.StarRating())
		}
	}
} // func TestRatingAtLeastFour(t *testing.T)
