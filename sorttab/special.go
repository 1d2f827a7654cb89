// /home/krylon/go/src/github.com/blicero/tabpod/sorttab/special.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-18 18:02:14 krylon>

package sorttab

import (
	"github.com/blicero/tabpod/interval"
	"github.com/blicero/tabpod/objects"
)

//go:generate stringer -type=SpCondition

// SpCondition identifies one of the conditions of the special sort tab.
type SpCondition uint8

// These are the conditions the special sort tab can check.
const (
	CondRating SpCondition = iota
	CondPlaycount
	CondPlayed
	CondModified
	CondAdded
)

// condition is a single, enabled condition of a special sort tab, ready
// to be checked against Tracks.
type condition struct {
	kind  SpCondition
	stars uint32
	low   int
	high  int
	item  objects.Item
	iv    interval.Interval
	valid bool
}

func (cd *condition) match(t *objects.Track) bool {
	switch cd.kind {
	case CondRating:
		return cd.stars&(1<<uint(t.StarRating())) != 0
	case CondPlaycount:
		return cd.low <= t.PlayCount && (cd.high < 0 || t.PlayCount <= cd.high)
	default:
		return cd.iv.Contains(t.ItemTime(cd.item))
	}
} // func (cd *condition) match(t *objects.Track) bool

// buildConditions collects the enabled conditions of a special sort tab.
// Time conditions whose interval cannot be parsed are marked invalid.
func (c *Cascade) buildConditions(inst int) []condition {
	var (
		tp    = c.tabPrefs(inst)
		now   = c.Now()
		conds = make([]condition, 0, 5)
	)

	if tp.SpRatingCond {
		conds = append(conds, condition{
			kind:  CondRating,
			stars: tp.SpRatingState,
			valid: true,
		})
	}

	if tp.SpPlaycountCond {
		conds = append(conds, condition{
			kind:  CondPlaycount,
			low:   tp.SpPlaycountLow,
			high:  tp.SpPlaycountHigh,
			valid: true,
		})
	}

	var timeConds = []struct {
		on   bool
		kind SpCondition
		item objects.Item
		text string
	}{
		{tp.SpPlayedCond, CondPlayed, objects.ItemTimePlayed, tp.SpPlayedState},
		{tp.SpModifiedCond, CondModified, objects.ItemTimeModified, tp.SpModifiedState},
		{tp.SpAddedCond, CondAdded, objects.ItemTimeAdded, tp.SpAddedState},
	}

	for _, tc := range timeConds {
		if !tc.on {
			continue
		}

		var (
			err error
			cd  = condition{kind: tc.kind, item: tc.item}
		)

		if cd.iv, err = interval.Parse(tc.text, now); err != nil {
			c.log.Printf("[WARN] Sort tab %d: cannot parse interval %q for %s, condition is ignored: %s\n",
				inst,
				tc.text,
				tc.kind,
				err.Error())
		} else {
			cd.valid = true
		}

		conds = append(conds, cd)
	}

	return conds
} // func (c *Cascade) buildConditions(inst int) []condition

// spCheck returns true if the Track satisfies the conditions of the
// special sort tab. Conditions are combined with AND or OR, depending on
// the tab's preferences. If no condition could be checked, no Track
// passes.
func (c *Cascade) spCheck(tab *Tab, t *objects.Track) bool {
	if t == nil {
		return false
	} else if tab.conds == nil {
		tab.conds = c.buildConditions(tab.inst)
	}

	var (
		or      = c.tabPrefs(tab.inst).SpOr
		checked bool
	)

	for idx := range tab.conds {
		var cd = &tab.conds[idx]

		if !cd.valid {
			continue
		}

		checked = true

		var ok = cd.match(t)

		if or && ok {
			return true
		} else if !or && !ok {
			return false
		}
	}

	return checked && !or
} // func (c *Cascade) spCheck(tab *Tab, t *objects.Track) bool

func (c *Cascade) addSpecial(tab *Tab, t *objects.Track, final, display bool) {
	if t != nil {
		tab.spMembers = append(tab.spMembers, t)

		if (tab.isGo || c.tabPrefs(tab.inst).SpAutodisplay) && c.spCheck(tab, t) {
			tab.spSelected = append(tab.spSelected, t)
			c.AddTrack(t, false, display, tab.inst+1)
		}
	}

	if final {
		c.AddTrack(nil, true, display, tab.inst+1)
	}
} // func (c *Cascade) addSpecial(tab *Tab, t *objects.Track, final, display bool)

func (c *Cascade) changedSpecial(tab *Tab, t *objects.Track) {
	if !containsTrack(tab.spMembers, t) {
		return
	}

	var wasSelected = containsTrack(tab.spSelected, t)

	if !(tab.isGo || c.tabPrefs(tab.inst).SpAutodisplay) {
		return
	}

	switch passes := c.spCheck(tab, t); {
	case wasSelected && passes:
		c.TrackChanged(t, false, tab.inst+1)
	case wasSelected:
		removeTrack(&tab.spSelected, t)
		c.RemoveTrack(t, tab.inst+1)
	case passes:
		tab.spSelected = append(tab.spSelected, t)
		c.AddTrack(t, false, true, tab.inst+1)
	}
} // func (c *Cascade) changedSpecial(tab *Tab, t *objects.Track)

// spRedisplay checks all members of a special sort tab again and passes
// the ones that satisfy the conditions on to the next tab.
func (c *Cascade) spRedisplay(tab *Tab) {
	tab.conds = nil
	tab.spSelected = nil
	c.Init(tab.inst+1, Keep)

	for _, t := range tab.spMembers {
		if c.spCheck(tab, t) {
			tab.spSelected = append(tab.spSelected, t)
			c.AddTrack(t, false, true, tab.inst+1)
		}
	}

	c.AddTrack(nil, true, true, tab.inst+1)
} // func (c *Cascade) spRedisplay(tab *Tab)

func (c *Cascade) special(inst int) *Tab {
	var tab = c.tab(inst)

	if tab == nil || tab.cat != CatSpecial {
		c.log.Printf("[DEBUG] Sort tab %d is not a special sort tab\n", inst)
		return nil
	}

	return tab
} // func (c *Cascade) special(inst int) *Tab

// spConditionsChanged is called whenever a condition of a special sort
// tab is modified.
func (c *Cascade) spConditionsChanged(inst int) {
	var tab = c.special(inst)

	if tab == nil {
		return
	}

	tab.conds = nil

	if tab.isGo || c.tabPrefs(inst).SpAutodisplay {
		c.spRedisplay(tab)
	}
} // func (c *Cascade) spConditionsChanged(inst int)

// SpGo passes the members of special sort tab inst that satisfy its
// conditions on to the next tab. From then on, the tab keeps doing so
// for Tracks that are added until it is initialized again.
func (c *Cascade) SpGo(inst int) {
	var tab = c.special(inst)

	if tab == nil {
		return
	}

	tab.isGo = true
	c.spRedisplay(tab)
} // func (c *Cascade) SpGo(inst int)

// IsGo returns true if SpGo has been called on special sort tab inst
// since it was last initialized.
func (c *Cascade) IsGo(inst int) bool {
	if tab := c.tab(inst); tab != nil {
		return tab.isGo
	}

	return false
} // func (c *Cascade) IsGo(inst int) bool

// SetSpOr switches between combining the conditions with OR (true) and
// AND (false).
func (c *Cascade) SetSpOr(inst int, or bool) {
	if inst < 0 || inst >= len(c.tabs) {
		return
	}

	c.tabPrefs(inst).SpOr = or
	c.spConditionsChanged(inst)
} // func (c *Cascade) SetSpOr(inst int, or bool)

// SetSpCondition enables or disables one of the conditions.
func (c *Cascade) SetSpCondition(inst int, cond SpCondition, on bool) {
	if inst < 0 || inst >= len(c.tabs) {
		return
	}

	var tp = c.tabPrefs(inst)

	switch cond {
	case CondRating:
		tp.SpRatingCond = on
	case CondPlaycount:
		tp.SpPlaycountCond = on
	case CondPlayed:
		tp.SpPlayedCond = on
	case CondModified:
		tp.SpModifiedCond = on
	case CondAdded:
		tp.SpAddedCond = on
	default:
		c.log.Printf("[ERROR] Invalid condition %d\n", cond)
		return
	}

	c.spConditionsChanged(inst)
} // func (c *Cascade) SetSpCondition(inst int, cond SpCondition, on bool)

// SetSpRating sets whether Tracks with the given number of stars pass
// the rating condition.
func (c *Cascade) SetSpRating(inst, stars int, on bool) {
	if inst < 0 || inst >= len(c.tabs) || stars < 0 || stars > objects.RatingMax {
		return
	}

	var tp = c.tabPrefs(inst)

	if on {
		tp.SpRatingState |= 1 << uint(stars)
	} else {
		tp.SpRatingState &^= 1 << uint(stars)
	}

	c.spConditionsChanged(inst)
} // func (c *Cascade) SetSpRating(inst, stars int, on bool)

// SetSpPlaycount sets the range for the play count condition. A negative
// high value means there is no upper limit.
func (c *Cascade) SetSpPlaycount(inst, low, high int) {
	if inst < 0 || inst >= len(c.tabs) {
		return
	}

	var tp = c.tabPrefs(inst)

	tp.SpPlaycountLow = low
	tp.SpPlaycountHigh = high

	c.spConditionsChanged(inst)
} // func (c *Cascade) SetSpPlaycount(inst, low, high int)

// SetSpInterval sets the interval for one of the time conditions, e.g.
// "> -2w". See package interval for the syntax.
func (c *Cascade) SetSpInterval(inst int, cond SpCondition, text string) {
	if inst < 0 || inst >= len(c.tabs) {
		return
	}

	var tp = c.tabPrefs(inst)

	switch cond {
	case CondPlayed:
		tp.SpPlayedState = text
	case CondModified:
		tp.SpModifiedState = text
	case CondAdded:
		tp.SpAddedState = text
	default:
		c.log.Printf("[ERROR] Condition %s has no interval\n", cond)
		return
	}

	c.spConditionsChanged(inst)
} // func (c *Cascade) SetSpInterval(inst int, cond SpCondition, text string)

// SetSpAutoDisplay sets whether the special sort tab passes on matching
// Tracks without waiting for SpGo.
func (c *Cascade) SetSpAutoDisplay(inst int, on bool) {
	if inst < 0 || inst >= len(c.tabs) {
		return
	}

	c.tabPrefs(inst).SpAutodisplay = on
	c.spConditionsChanged(inst)
} // func (c *Cascade) SetSpAutoDisplay(inst int, on bool)
