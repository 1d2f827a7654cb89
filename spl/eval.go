// /home/krylon/go/src/github.com/blicero/tabpod/spl/eval.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 18:21:09 krylon>

// Package spl implements smart playlists: evaluating their rules against
// Tracks, applying the limit clause, and editing rule sets.
package spl

import (
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/objects"
	"github.com/davecgh/go-spew/spew"
)

// Resolver looks up the Playlists referenced by "playlist" rules.
type Resolver interface {
	PlaylistByID(id int64) *objects.Playlist
}

// EvalRule returns true if the Track satisfies the rule. res is used to
// look up Playlists for rules on FieldPlaylist and may be nil.
func EvalRule(r *objects.SPLRule, t *objects.Track, res Resolver, now time.Time) bool {
	var result bool

	switch TypeOf(r.Field) {
	case TypeString:
		result = evalString(r, stringValue(t, r.Field))
	case TypeInt:
		result = evalInt(r, intValue(t, r.Field))
	case TypeDate:
		result = evalDate(r, dateValue(t, r.Field), now)
	case TypeBoolean:
		result = intValue(t, r.Field) != 0
		if r.Action == objects.ActionIsNotInt {
			result = !result
		}
		return result
	case TypePlaylist:
		var pl *objects.Playlist
		if res != nil {
			pl = res.PlaylistByID(r.FromValue)
		}
		result = pl != nil && pl.Contains(t)
		if r.Action == objects.ActionIsNotInt {
			result = !result
		}
		return result
	case TypeBinaryAnd:
		result = intValue(t, r.Field)&r.FromValue != 0
	default:
		return false
	}

	if r.Action.IsNegated() {
		result = !result
	}

	return result
} // func EvalRule(r *objects.SPLRule, t *objects.Track, res Resolver, now time.Time) bool

// evalString evaluates the non-negated form of the rule's Action.
func evalString(r *objects.SPLRule, val string) bool {
	var (
		s   = strings.ToLower(val)
		ref = strings.ToLower(r.String)
	)

	switch r.Action &^ 0x02000000 {
	case objects.ActionIsString:
		return s == ref
	case objects.ActionContains:
		return strings.Contains(s, ref)
	case objects.ActionStartsWith:
		return strings.HasPrefix(s, ref)
	case objects.ActionEndsWith:
		return strings.HasSuffix(s, ref)
	default:
		return false
	}
} // func evalString(r *objects.SPLRule, val string) bool

func evalInt(r *objects.SPLRule, val int64) bool {
	switch r.Action &^ 0x02000000 {
	case objects.ActionIsInt:
		return val == r.FromValue
	case objects.ActionIsGreaterThan:
		return val > r.FromValue
	case objects.ActionIsLessThan:
		return val < r.FromValue
	case objects.ActionIsInTheRange:
		var lo, hi = r.FromValue, r.ToValue
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo <= val && val <= hi
	default:
		return false
	}
} // func evalInt(r *objects.SPLRule, val int64) bool

func evalDate(r *objects.SPLRule, stamp, now time.Time) bool {
	var val int64

	if !stamp.IsZero() {
		val = stamp.Unix()
	}

	switch r.Action &^ 0x02000000 {
	case objects.ActionIsInt:
		if stamp.IsZero() {
			return false
		}
		var ref = time.Unix(r.FromValue, 0).In(stamp.Location())
		var y1, m1, d1 = stamp.Date()
		var y2, m2, d2 = ref.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case objects.ActionIsInTheLast:
		if stamp.IsZero() {
			return false
		}
		var offset = r.FromDate * r.FromUnits
		if offset > 0 {
			offset = -offset
		}
		return val >= now.Unix()+offset
	default:
		return evalInt(r, val)
	}
} // func evalDate(r *objects.SPLRule, stamp, now time.Time) bool

// Evaluator applies the rules of smart Playlists to Tracks.
type Evaluator struct {
	log *log.Logger
	res Resolver
	rnd *rand.Rand
	Now func() time.Time
}

// NewEvaluator creates a new Evaluator that uses the given Resolver to
// look up Playlists.
func NewEvaluator(res Resolver) (*Evaluator, error) {
	var (
		err error
		ev  = &Evaluator{
			res: res,
			rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
			Now: time.Now,
		}
	)

	if ev.log, err = common.GetLogger(logdomain.SmartPlaylist); err != nil {
		return nil, err
	}

	return ev, nil
} // func NewEvaluator(res Resolver) (*Evaluator, error)

// Seed resets the random number generator used for the random limit order.
func (ev *Evaluator) Seed(seed int64) {
	ev.rnd = rand.New(rand.NewSource(seed))
} // func (ev *Evaluator) Seed(seed int64)

// Matches returns true if the Track satisfies the rules of the smart
// Playlist. With MatchAnd, a Track has to satisfy every rule, with MatchOr
// at least one. An empty rule set thus matches everything with MatchAnd
// and nothing with MatchOr.
func (ev *Evaluator) Matches(pl *objects.Playlist, t *objects.Track) bool {
	if pl.Pref.MatchCheckedOnly && !t.Checked {
		return false
	} else if !pl.Pref.CheckRules {
		return true
	}

	var now = ev.Now()

	if pl.Rules.Match == objects.MatchOr {
		for _, r := range pl.Rules.Rules {
			if EvalRule(r, t, ev.res, now) {
				return true
			}
		}
		return false
	}

	for _, r := range pl.Rules.Rules {
		if !EvalRule(r, t, ev.res, now) {
			return false
		}
	}

	return true
} // func (ev *Evaluator) Matches(pl *objects.Playlist, t *objects.Track) bool

// Update recomputes the Members of the smart Playlist from the given
// Tracks, usually the Members of the master Playlist.
func (ev *Evaluator) Update(pl *objects.Playlist, tracks []*objects.Track) {
	if !pl.IsSPL {
		ev.log.Printf("[CANTHAPPEN] Update called on regular Playlist %q\n",
			pl.Name)
		return
	}

	if common.Debug {
		ev.log.Printf("[TRACE] Updating smart playlist %q: %s\n",
			pl.Name,
			spew.Sdump(pl.Rules))
	}

	var matched = make([]*objects.Track, 0, len(tracks))

	for _, t := range tracks {
		if ev.Matches(pl, t) {
			matched = append(matched, t)
		}
	}

	if pl.Pref.CheckLimits {
		matched = ev.applyLimit(pl, matched)
	}

	pl.Members = matched

	ev.log.Printf("[DEBUG] Smart playlist %q has %d of %d tracks\n",
		pl.Name,
		len(pl.Members),
		len(tracks))
} // func (ev *Evaluator) Update(pl *objects.Playlist, tracks []*objects.Track)

// UpdateLive updates all smart Playlists that have LiveUpdate set.
func (ev *Evaluator) UpdateLive(lists []*objects.Playlist, tracks []*objects.Track) {
	for _, pl := range dependencyOrder(lists) {
		if pl.Pref.LiveUpdate {
			ev.Update(pl, tracks)
		}
	}
} // func (ev *Evaluator) UpdateLive(lists []*objects.Playlist, tracks []*objects.Track)

// UpdateAll recomputes every smart Playlist among lists.
func (ev *Evaluator) UpdateAll(lists []*objects.Playlist, tracks []*objects.Track) {
	for _, pl := range dependencyOrder(lists) {
		ev.Update(pl, tracks)
	}
} // func (ev *Evaluator) UpdateAll(lists []*objects.Playlist, tracks []*objects.Track)

// dependencyOrder returns the smart Playlists among lists, each one after
// the smart Playlists its "playlist" rules refer to. A cycle is broken at
// the Playlist where it was entered.
func dependencyOrder(lists []*objects.Playlist) []*objects.Playlist {
	var (
		byID  = make(map[int64]*objects.Playlist, len(lists))
		seen  = make(map[*objects.Playlist]bool, len(lists))
		res   = make([]*objects.Playlist, 0, len(lists))
		visit func(pl *objects.Playlist)
	)

	for _, pl := range lists {
		if pl.IsSPL {
			byID[pl.ID] = pl
		}
	}

	visit = func(pl *objects.Playlist) {
		if seen[pl] {
			return
		}

		seen[pl] = true

		for _, r := range pl.Rules.Rules {
			if r.Field != objects.FieldPlaylist {
				continue
			} else if dep := byID[r.FromValue]; dep != nil {
				visit(dep)
			}
		}

		res = append(res, pl)
	}

	for _, pl := range lists {
		if pl.IsSPL {
			visit(pl)
		}
	}

	return res
} // func dependencyOrder(lists []*objects.Playlist) []*objects.Playlist

func (ev *Evaluator) applyLimit(pl *objects.Playlist, tracks []*objects.Track) []*objects.Track {
	var (
		limit int64
		cost  func(t *objects.Track) int64
	)

	switch pl.Pref.LimitType {
	case objects.LimitMinutes:
		limit = pl.Pref.LimitValue * 60 * 1000
		cost = func(t *objects.Track) int64 { return t.Length }
	case objects.LimitHours:
		limit = pl.Pref.LimitValue * 3600 * 1000
		cost = func(t *objects.Track) int64 { return t.Length }
	case objects.LimitMB:
		limit = pl.Pref.LimitValue << 20
		cost = func(t *objects.Track) int64 { return t.Size }
	case objects.LimitGB:
		limit = pl.Pref.LimitValue << 30
		cost = func(t *objects.Track) int64 { return t.Size }
	case objects.LimitSongs:
		limit = pl.Pref.LimitValue
		cost = func(t *objects.Track) int64 { return 1 }
	default:
		ev.log.Printf("[ERROR] Invalid limit type %d in smart playlist %q\n",
			pl.Pref.LimitType,
			pl.Name)
		return tracks
	}

	ev.sortForLimit(tracks, pl.Pref.LimitSort)

	var (
		total int64
		res   = make([]*objects.Track, 0, len(tracks))
	)

	for _, t := range tracks {
		total += cost(t)
		if total > limit {
			break
		}
		res = append(res, t)
	}

	return res
} // func (ev *Evaluator) applyLimit(pl *objects.Playlist, tracks []*objects.Track) []*objects.Track

func (ev *Evaluator) sortForLimit(tracks []*objects.Track, order objects.LimitSort) {
	var less func(a, b *objects.Track) bool

	switch order & 0x7fffffff {
	case objects.LimitSortRandom:
		ev.rnd.Shuffle(len(tracks), func(i, j int) {
			tracks[i], tracks[j] = tracks[j], tracks[i]
		})
		return
	case objects.LimitSortTitle:
		less = func(a, b *objects.Track) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case objects.LimitSortAlbum:
		less = func(a, b *objects.Track) bool {
			return strings.ToLower(a.Album) < strings.ToLower(b.Album)
		}
	case objects.LimitSortArtist:
		less = func(a, b *objects.Track) bool {
			return strings.ToLower(a.Artist) < strings.ToLower(b.Artist)
		}
	case objects.LimitSortGenre:
		less = func(a, b *objects.Track) bool {
			return strings.ToLower(a.Genre) < strings.ToLower(b.Genre)
		}
	case objects.LimitSortMostRecentlyAdded:
		less = func(a, b *objects.Track) bool {
			return a.TimeAdded.After(b.TimeAdded)
		}
	case objects.LimitSortMostOftenPlayed:
		less = func(a, b *objects.Track) bool {
			return a.PlayCount > b.PlayCount
		}
	case objects.LimitSortMostRecentlyPlayed:
		less = func(a, b *objects.Track) bool {
			return a.TimePlayed.After(b.TimePlayed)
		}
	case objects.LimitSortHighestRating:
		less = func(a, b *objects.Track) bool {
			return a.Rating > b.Rating
		}
	default:
		ev.log.Printf("[ERROR] Invalid limit sort order %s\n", order)
		return
	}

	// The "least"/"lowest" variants reverse the order of the ones above.
	if order&0x80000000 != 0 {
		var fwd = less
		less = func(a, b *objects.Track) bool { return fwd(b, a) }
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		return less(tracks[i], tracks[j])
	})
} // func (ev *Evaluator) sortForLimit(tracks []*objects.Track, order objects.LimitSort)
