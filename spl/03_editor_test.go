// /home/krylon/go/src/github.com/blicero/tabpod/spl/03_editor_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 19:44:12 krylon>

package spl

import (
	"errors"
	"testing"

	"github.com/blicero/tabpod/objects"
)

func newTestOwner(t *testing.T) *fakeOwner {
	var o = &fakeOwner{tracks: makeTracks(50)}
	o.ev = newTestEvaluator(t, o)
	return o
} // func newTestOwner(t *testing.T) *fakeOwner

func TestEditorNew(t *testing.T) {
	var (
		err   error
		ed    *Editor
		owner = newTestOwner(t)
	)

	if ed, err = NewEditor(owner, nil, -1); err != nil {
		t.Fatalf("Cannot create Editor: %s", err.Error())
	}

	ed.SetName("Artist A")
	ed.SetMatch(objects.MatchAnd)

	if err = ed.SetField(0, objects.FieldArtist); err != nil {
		t.Fatalf("Cannot set field: %s", err.Error())
	} else if err = ed.SetAction(0, objects.ActionIsString); err != nil {
		t.Fatalf("Cannot set action: %s", err.Error())
	} else if err = ed.SetString(0, "artist a"); err != nil {
		t.Fatalf("Cannot set string: %s", err.Error())
	}

	if len(owner.lists) != 0 {
		t.Fatal("New playlist was added before Commit")
	} else if err = ed.Commit(); err != nil {
		t.Fatalf("Cannot commit: %s", err.Error())
	} else if len(owner.lists) != 1 {
		t.Fatalf("Owner has %d playlists after Commit, expected 1",
			len(owner.lists))
	} else if !owner.changed {
		t.Error("Commit did not signal a data change")
	}

	var pl = owner.lists[0]

	if pl.Name != "Artist A" {
		t.Errorf("Playlist is called %q, expected %q", pl.Name, "Artist A")
	} else if len(pl.Members) != 30 {
		t.Errorf("Playlist has %d members, expected 30", len(pl.Members))
	}

	if err = ed.Commit(); !errors.Is(err, ErrEditorClosed) {
		t.Errorf("Second Commit should fail with ErrEditorClosed, got %v", err)
	}
} // func TestEditorNew(t *testing.T)

func TestEditorCancel(t *testing.T) {
	var (
		err   error
		ed    *Editor
		owner = newTestOwner(t)
		pl    = objects.NewSPL("Original")
	)

	pl.Rules.Rules[0].String = "Artist B"

	if err = owner.PlaylistAdd(pl, -1); err != nil {
		t.Fatalf("Cannot add playlist: %s", err.Error())
	} else if ed, err = NewEditor(owner, pl, -1); err != nil {
		t.Fatalf("Cannot create Editor: %s", err.Error())
	}

	ed.SetName("Changed")
	if _, err = ed.AddRule(0); err != nil {
		t.Fatalf("Cannot add rule: %s", err.Error())
	} else if err = ed.SetString(0, "Artist A"); err != nil {
		t.Fatalf("Cannot set string: %s", err.Error())
	}

	ed.Cancel()

	if pl.Name != "Original" {
		t.Errorf("Cancel did not discard the name change: %q", pl.Name)
	} else if len(pl.Rules.Rules) != 1 {
		t.Errorf("Cancel did not discard the new rule: %d rules",
			len(pl.Rules.Rules))
	} else if pl.Rules.Rules[0].String != "Artist B" {
		t.Errorf("Cancel did not discard the rule change: %q",
			pl.Rules.Rules[0].String)
	} else if owner.changed {
		t.Error("Cancel signalled a data change")
	}
} // func TestEditorCancel(t *testing.T)

func TestEditorRules(t *testing.T) {
	var (
		err   error
		idx   int
		ed    *Editor
		r     *objects.SPLRule
		owner = newTestOwner(t)
	)

	if ed, err = NewEditor(owner, nil, 0); err != nil {
		t.Fatalf("Cannot create Editor: %s", err.Error())
	}

	if err = ed.RemoveRule(0); !errors.Is(err, ErrLastRule) {
		t.Errorf("Removing the last rule should fail with ErrLastRule, got %v", err)
	}

	if idx, err = ed.AddRule(0); err != nil {
		t.Fatalf("Cannot add rule: %s", err.Error())
	} else if idx != 1 {
		t.Errorf("New rule has index %d, expected 1", idx)
	}

	// Changing a string field to a date field resets the action.
	if err = ed.SetField(idx, objects.FieldLastPlayed); err != nil {
		t.Fatalf("Cannot set field: %s", err.Error())
	} else if r, err = ed.Rule(idx); err != nil {
		t.Fatalf("Cannot get rule: %s", err.Error())
	} else if r.Action != objects.ActionIsInt {
		t.Errorf("Action was not reset: %s", r.Action)
	}

	if err = ed.SetAction(idx, objects.ActionContains); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Setting a string action on a date field should fail, got %v", err)
	} else if err = ed.SetAction(idx, objects.ActionIsInTheLast); err != nil {
		t.Fatalf("Cannot set action: %s", err.Error())
	} else if OperandKind(r) != OperandInTheLast {
		t.Errorf("Unexpected operand kind %s", OperandKind(r))
	} else if err = ed.SetInTheLast(idx, 2, objects.UnitWeeks); err != nil {
		t.Fatalf("Cannot set operand: %s", err.Error())
	} else if r.FromDate != -2 || r.FromUnits != objects.UnitWeeks {
		t.Errorf("Unexpected operand: %d * %d", r.FromDate, r.FromUnits)
	}

	if err = ed.SetField(0, objects.FieldRating); err != nil {
		t.Fatalf("Cannot set field: %s", err.Error())
	} else if err = ed.SetAction(0, objects.ActionIsInTheRange); err != nil {
		t.Fatalf("Cannot set action: %s", err.Error())
	} else if err = ed.SetRange(0, 3, 5); err != nil {
		t.Fatalf("Cannot set range: %s", err.Error())
	} else if r, _ = ed.Rule(0); r.FromValue != 60 || r.ToValue != 100 {
		t.Errorf("Rating range was not scaled: %d - %d", r.FromValue, r.ToValue)
	} else if err = ed.SetString(0, "foo"); !errors.Is(err, ErrWrongOperand) {
		t.Errorf("Setting a string on a rating rule should fail, got %v", err)
	}

	if err = ed.RemoveRule(1); err != nil {
		t.Errorf("Cannot remove rule: %s", err.Error())
	} else if len(ed.Playlist().Rules.Rules) != 1 {
		t.Errorf("Playlist has %d rules, expected 1",
			len(ed.Playlist().Rules.Rules))
	}

	if err = ed.SetLimit(25, objects.LimitType(42)); err == nil {
		t.Error("Setting an invalid limit type should fail")
	} else if err = ed.SetLimit(2, objects.LimitHours); err != nil {
		t.Errorf("Cannot set limit: %s", err.Error())
	}
} // func TestEditorRules(t *testing.T)
