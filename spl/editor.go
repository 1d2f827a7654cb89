// /home/krylon/go/src/github.com/blicero/tabpod/spl/editor.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 18:40:55 krylon>

package spl

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/objects"
)

// Errors returned by the Editor.
var (
	ErrLastRule      = errors.New("a smart playlist needs at least one rule")
	ErrInvalidAction = errors.New("action is not valid for the rule's field")
	ErrInvalidField  = errors.New("unknown field")
	ErrInvalidRule   = errors.New("invalid rule")
	ErrNoSuchRule    = errors.New("rule index out of range")
	ErrEditorClosed  = errors.New("editor has already been closed")
	ErrWrongOperand  = errors.New("operand does not fit the rule's action")
)

//go:generate stringer -type=Operand

// Operand describes which values a rule needs, depending on its Field
// and Action.
type Operand uint8

// These are the kinds of Operand a rule can have.
const (
	OperandNone Operand = iota
	OperandString
	OperandValue
	OperandRange
	OperandDate
	OperandDateRange
	OperandInTheLast
	OperandPlaylist
	OperandMask
)

// OperandKind returns the kind of operand the rule requires.
func OperandKind(r *objects.SPLRule) Operand {
	switch TypeOf(r.Field) {
	case TypeString:
		return OperandString
	case TypeInt:
		if r.Action&^0x02000000 == objects.ActionIsInTheRange {
			return OperandRange
		}
		return OperandValue
	case TypeDate:
		switch r.Action &^ 0x02000000 {
		case objects.ActionIsInTheRange:
			return OperandDateRange
		case objects.ActionIsInTheLast:
			return OperandInTheLast
		default:
			return OperandDate
		}
	case TypePlaylist:
		return OperandPlaylist
	case TypeBinaryAnd:
		return OperandMask
	default:
		return OperandNone
	}
} // func OperandKind(r *objects.SPLRule) Operand

// Owner is what the Editor needs from the library a smart Playlist
// belongs to.
type Owner interface {
	Resolver
	PlaylistAdd(pl *objects.Playlist, pos int) error
	UpdateSPL(pl *objects.Playlist)
	DataChanged()
}

// Editor modifies a working copy of a smart Playlist. Changes are only
// applied to the original when Commit is called.
type Editor struct {
	log    *log.Logger
	owner  Owner
	orig   *objects.Playlist
	work   *objects.Playlist
	isNew  bool
	pos    int
	closed bool
}

// NewEditor creates an Editor for the given smart Playlist. If pl is nil,
// a new smart Playlist is created, which is added to the owner at
// position pos when the Editor is committed.
func NewEditor(owner Owner, pl *objects.Playlist, pos int) (*Editor, error) {
	var (
		err error
		ed  = &Editor{
			owner: owner,
			pos:   pos,
		}
	)

	if ed.log, err = common.GetLogger(logdomain.SmartPlaylist); err != nil {
		return nil, err
	}

	if pl == nil {
		ed.isNew = true
		ed.orig = objects.NewSPL("New Playlist")
	} else if !pl.IsSPL {
		return nil, fmt.Errorf("Playlist %q is not a smart playlist", pl.Name)
	} else {
		ed.orig = pl
	}

	ed.work = ed.orig.Clone()

	if len(ed.work.Rules.Rules) == 0 {
		ed.work.Rules.Rules = append(ed.work.Rules.Rules, newRule())
	}

	return ed, nil
} // func NewEditor(owner Owner, pl *objects.Playlist, pos int) (*Editor, error)

func newRule() *objects.SPLRule {
	return &objects.SPLRule{
		Field:  objects.FieldTitle,
		Action: objects.ActionContains,
	}
} // func newRule() *objects.SPLRule

// Playlist returns the working copy.
func (ed *Editor) Playlist() *objects.Playlist {
	return ed.work
} // func (ed *Editor) Playlist() *objects.Playlist

// Rule returns the rule at the given index of the working copy.
func (ed *Editor) Rule(idx int) (*objects.SPLRule, error) {
	if ed.closed {
		return nil, ErrEditorClosed
	} else if idx < 0 || idx >= len(ed.work.Rules.Rules) {
		return nil, ErrNoSuchRule
	}

	return ed.work.Rules.Rules[idx], nil
} // func (ed *Editor) Rule(idx int) (*objects.SPLRule, error)

// SetName sets the name of the Playlist.
func (ed *Editor) SetName(name string) {
	ed.work.Name = name
} // func (ed *Editor) SetName(name string)

// SetMatch sets the match operator. This implies that rules are checked.
func (ed *Editor) SetMatch(m objects.MatchOperator) {
	ed.work.Rules.Match = m
	ed.work.Pref.CheckRules = true
} // func (ed *Editor) SetMatch(m objects.MatchOperator)

// SetNoRules disables checking the rules, so only the limits apply.
func (ed *Editor) SetNoRules() {
	ed.work.Pref.CheckRules = false
} // func (ed *Editor) SetNoRules()

// SetLimits enables or disables the limit clause.
func (ed *Editor) SetLimits(on bool) {
	ed.work.Pref.CheckLimits = on
} // func (ed *Editor) SetLimits(on bool)

// SetLimit sets the limit value and the unit it is given in.
func (ed *Editor) SetLimit(value int64, unit objects.LimitType) error {
	if _, ok := objects.LimitTypeNames[unit]; !ok {
		return fmt.Errorf("Invalid limit type %d", unit)
	} else if value < 0 {
		return fmt.Errorf("Invalid limit value %d", value)
	}

	ed.work.Pref.LimitValue = value
	ed.work.Pref.LimitType = unit
	return nil
} // func (ed *Editor) SetLimit(value int64, unit objects.LimitType) error

// SetLimitSort sets the order used to pick Tracks when the limit applies.
func (ed *Editor) SetLimitSort(order objects.LimitSort) error {
	if _, ok := objects.LimitSortNames[order]; !ok {
		return fmt.Errorf("Invalid limit sort order %s", order)
	}

	ed.work.Pref.LimitSort = order
	return nil
} // func (ed *Editor) SetLimitSort(order objects.LimitSort) error

// SetMatchCheckedOnly restricts the Playlist to checked Tracks.
func (ed *Editor) SetMatchCheckedOnly(on bool) {
	ed.work.Pref.MatchCheckedOnly = on
} // func (ed *Editor) SetMatchCheckedOnly(on bool)

// SetLiveUpdate enables or disables live updating.
func (ed *Editor) SetLiveUpdate(on bool) {
	ed.work.Pref.LiveUpdate = on
} // func (ed *Editor) SetLiveUpdate(on bool)

// AddRule inserts a new rule after the one at index pos. A pos of -1
// inserts it at the front. It returns the index of the new rule.
func (ed *Editor) AddRule(pos int) (int, error) {
	if ed.closed {
		return -1, ErrEditorClosed
	}

	var rules = ed.work.Rules.Rules

	if pos < -1 || pos >= len(rules) {
		pos = len(rules) - 1
	}

	var idx = pos + 1

	rules = append(rules, nil)
	copy(rules[idx+1:], rules[idx:])
	rules[idx] = newRule()
	ed.work.Rules.Rules = rules

	return idx, nil
} // func (ed *Editor) AddRule(pos int) (int, error)

// RemoveRule removes the rule at the given index. The last remaining rule
// cannot be removed.
func (ed *Editor) RemoveRule(idx int) error {
	if ed.closed {
		return ErrEditorClosed
	} else if idx < 0 || idx >= len(ed.work.Rules.Rules) {
		return ErrNoSuchRule
	} else if len(ed.work.Rules.Rules) == 1 {
		return ErrLastRule
	}

	ed.work.Rules.Rules = append(ed.work.Rules.Rules[:idx], ed.work.Rules.Rules[idx+1:]...)
	return nil
} // func (ed *Editor) RemoveRule(idx int) error

// SetField changes the Field of a rule. If the rule's Action is not valid
// for the new Field, it is reset to the first valid one, and the operands
// are cleared.
func (ed *Editor) SetField(idx int, f objects.Field) error {
	var (
		err  error
		r    *objects.SPLRule
		prev FieldType
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	} else if TypeOf(f) == TypeInvalid {
		return ErrInvalidField
	}

	prev = TypeOf(r.Field)
	r.Field = f

	if !ValidAction(f, r.Action) {
		r.Action = typeActions[TypeOf(f)][0]
	}

	if prev != TypeOf(f) {
		r.String = ""
		r.FromValue, r.ToValue = 0, 0
		r.FromDate, r.ToDate = 0, 0
		r.FromUnits, r.ToUnits = 1, 1
		if TypeOf(f) == TypeDate {
			r.FromUnits = objects.UnitDays
		}
	}

	return nil
} // func (ed *Editor) SetField(idx int, f objects.Field) error

// SetAction changes the Action of a rule.
func (ed *Editor) SetAction(idx int, a objects.Action) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	} else if !ValidAction(r.Field, a) {
		return ErrInvalidAction
	}

	r.Action = a

	if a&^0x02000000 == objects.ActionIsInTheLast && r.FromUnits <= 1 {
		r.FromUnits = objects.UnitDays
	}

	return nil
} // func (ed *Editor) SetAction(idx int, a objects.Action) error

// SetString sets the operand of a string rule.
func (ed *Editor) SetString(idx int, s string) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	} else if OperandKind(r) != OperandString {
		return ErrWrongOperand
	}

	r.String = s
	return nil
} // func (ed *Editor) SetString(idx int, s string) error

// SetValue sets the operand of a numeric rule. The value is given in the
// units the user sees (stars, seconds, megabytes) and scaled as needed.
func (ed *Editor) SetValue(idx int, v int64) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	}

	switch OperandKind(r) {
	case OperandValue, OperandRange, OperandMask, OperandPlaylist:
		r.FromValue = v * Scale(r.Field)
		return nil
	default:
		return ErrWrongOperand
	}
} // func (ed *Editor) SetValue(idx int, v int64) error

// SetRange sets both bounds of a range rule, in user-visible units.
func (ed *Editor) SetRange(idx int, from, to int64) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	} else if OperandKind(r) != OperandRange {
		return ErrWrongOperand
	}

	r.FromValue = from * Scale(r.Field)
	r.ToValue = to * Scale(r.Field)
	return nil
} // func (ed *Editor) SetRange(idx int, from, to int64) error

// SetDate sets the operand of a date rule.
func (ed *Editor) SetDate(idx int, t time.Time) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	}

	switch OperandKind(r) {
	case OperandDate, OperandDateRange:
		r.FromValue = t.Unix()
		return nil
	default:
		return ErrWrongOperand
	}
} // func (ed *Editor) SetDate(idx int, t time.Time) error

// SetDateRange sets both bounds of a date range rule.
func (ed *Editor) SetDateRange(idx int, from, to time.Time) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	} else if OperandKind(r) != OperandDateRange {
		return ErrWrongOperand
	}

	r.FromValue = from.Unix()
	r.ToValue = to.Unix()
	return nil
} // func (ed *Editor) SetDateRange(idx int, from, to time.Time) error

// SetInTheLast sets the operand of an "in the last" rule, e.g. 3 weeks
// is SetInTheLast(idx, 3, objects.UnitWeeks).
func (ed *Editor) SetInTheLast(idx int, n, units int64) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	} else if OperandKind(r) != OperandInTheLast {
		return ErrWrongOperand
	}

	switch units {
	case objects.UnitDays, objects.UnitWeeks, objects.UnitMonths:
	default:
		return fmt.Errorf("Invalid unit %d", units)
	}

	if n < 0 {
		n = -n
	}

	r.FromDate = -n
	r.FromUnits = units
	return nil
} // func (ed *Editor) SetInTheLast(idx int, n, units int64) error

// SetPlaylist makes a playlist rule refer to the Playlist with the given ID.
func (ed *Editor) SetPlaylist(idx int, id int64) error {
	var (
		err error
		r   *objects.SPLRule
	)

	if r, err = ed.Rule(idx); err != nil {
		return err
	} else if OperandKind(r) != OperandPlaylist {
		return ErrWrongOperand
	} else if ed.owner.PlaylistByID(id) == nil {
		return fmt.Errorf("No playlist with ID %d", id)
	}

	r.FromValue = id
	return nil
} // func (ed *Editor) SetPlaylist(idx int, id int64) error

// Commit copies the working copy's name, rules and settings back to the
// original Playlist, adds it to the owner if it is new, and updates its
// Members.
func (ed *Editor) Commit() error {
	if ed.closed {
		return ErrEditorClosed
	}

	ed.orig.Name = ed.work.Name
	ed.orig.Rules = ed.work.Rules.Clone()
	ed.orig.Pref = ed.work.Pref

	if ed.isNew {
		if err := ed.owner.PlaylistAdd(ed.orig, ed.pos); err != nil {
			ed.log.Printf("[ERROR] Cannot add smart playlist %q: %s\n",
				ed.orig.Name,
				err.Error())
			return err
		}
		ed.isNew = false
	}

	ed.owner.UpdateSPL(ed.orig)
	ed.owner.DataChanged()
	ed.closed = true

	ed.log.Printf("[DEBUG] Committed smart playlist %q with %d rules\n",
		ed.orig.Name,
		len(ed.orig.Rules.Rules))

	return nil
} // func (ed *Editor) Commit() error

// Cancel discards all changes.
func (ed *Editor) Cancel() {
	ed.work = ed.orig.Clone()
	ed.closed = true
} // func (ed *Editor) Cancel()
