// /home/krylon/go/src/github.com/blicero/tabpod/sorttab/cascade.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-18 17:45:31 krylon>

// Package sorttab implements the sort tab cascade: a chain of filters
// that narrows the Tracks of a Playlist step by step, each step grouping
// the Tracks it receives by one Category (or by the conditions of the
// special sort tab) and passing on the Tracks of the selected entries.
// The Tracks that make it through the last tab are handed to a Display.
//
// A Cascade is not safe for concurrent use.
package sorttab

import (
	"log"
	"time"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/objects"
	"github.com/blicero/tabpod/prefs"
)

// Tab is one stage of the Cascade.
type Tab struct {
	inst        int
	cat         Category
	entries     []*Entry
	index       map[string]*Entry
	master      *Entry
	compilation *Entry
	selected    []*Entry
	lastSel     []string
	lastAll     bool
	unselected  bool

	// special sort tab
	spMembers  []*objects.Track
	spSelected []*objects.Track
	isGo       bool
	conds      []condition
}

func (tab *Tab) reset(cat Category) {
	tab.entries = nil
	tab.index = make(map[string]*Entry)
	tab.master = nil
	tab.compilation = nil
	tab.selected = nil
	tab.unselected = false
	tab.spMembers = nil
	tab.spSelected = nil
	tab.isGo = false
	tab.conds = nil

	if cat != Keep && cat != tab.cat {
		tab.cat = cat
		tab.lastSel = nil
		tab.lastAll = false
	}
} // func (tab *Tab) reset(cat Category)

func (tab *Tab) isAllSelected() bool {
	return len(tab.selected) == 1 && tab.selected[0].Master
} // func (tab *Tab) isAllSelected() bool

func (tab *Tab) isSelected(e *Entry) bool {
	for _, s := range tab.selected {
		if s == e {
			return true
		}
	}

	return false
} // func (tab *Tab) isSelected(e *Entry) bool

func (tab *Tab) wasSelected(e *Entry) bool {
	if e.Master {
		return tab.lastAll
	}

	for _, name := range tab.lastSel {
		if name == e.Name {
			return true
		}
	}

	return false
} // func (tab *Tab) wasSelected(e *Entry) bool

// entryOf returns the non-master Entry the Track belongs to. Since Tracks
// are not moved between entries when their tags change, this looks at
// the members rather than the Track's current value for the Category.
func (tab *Tab) entryOf(t *objects.Track) *Entry {
	for _, e := range tab.entries {
		if !e.Master && e.Contains(t) {
			return e
		}
	}

	return nil
} // func (tab *Tab) entryOf(t *objects.Track) *Entry

func (tab *Tab) deleteEntry(e *Entry) {
	for idx, x := range tab.entries {
		if x == e {
			tab.entries = append(tab.entries[:idx], tab.entries[idx+1:]...)
			break
		}
	}

	for idx, x := range tab.selected {
		if x == e {
			tab.selected = append(tab.selected[:idx], tab.selected[idx+1:]...)
			break
		}
	}

	if e == tab.compilation {
		tab.compilation = nil
	} else if tab.index[e.Name] == e {
		delete(tab.index, e.Name)
	}
} // func (tab *Tab) deleteEntry(e *Entry)

// Cascade is the chain of sort tabs between a source Playlist and a
// Display.
type Cascade struct {
	log     *log.Logger
	prefs   *prefs.Prefs
	tabs    []*Tab
	source  *objects.Playlist
	display Display
	sorter  *Sorter
	Now     func() time.Time
}

// New creates a Cascade with as many sort tabs as the preferences ask for.
func New(p *prefs.Prefs, d Display) (*Cascade, error) {
	var (
		err error
		c   = &Cascade{
			prefs:   p,
			display: d,
			tabs:    make([]*Tab, p.SortTabNum),
			sorter:  NewSorter(p.StCaseSensitive, p.SortIgnoreStrings),
			Now:     time.Now,
		}
	)

	if c.log, err = common.GetLogger(logdomain.SortTab); err != nil {
		return nil, err
	}

	for i := range c.tabs {
		var cat Category

		if cat, err = ParseCategory(p.Tab(i).Category); err != nil {
			c.log.Printf("[ERROR] Invalid category for sort tab %d: %s\n",
				i,
				err.Error())
			cat = CatArtist
			p.Tab(i).Category = cat.Name()
		}

		c.tabs[i] = &Tab{
			inst:  i,
			cat:   cat,
			index: make(map[string]*Entry),
		}
	}

	return c, nil
} // func New(p *prefs.Prefs, d Display) (*Cascade, error)

// Count returns the number of sort tabs.
func (c *Cascade) Count() int {
	return len(c.tabs)
} // func (c *Cascade) Count() int

// Category returns the Category of sort tab inst.
func (c *Cascade) Category(inst int) Category {
	if tab := c.tab(inst); tab != nil {
		return tab.cat
	}

	return Keep
} // func (c *Cascade) Category(inst int) Category

func (c *Cascade) tab(inst int) *Tab {
	if inst < 0 || inst >= len(c.tabs) {
		return nil
	}

	return c.tabs[inst]
} // func (c *Cascade) tab(inst int) *Tab

func (c *Cascade) tabPrefs(inst int) *prefs.TabPrefs {
	return c.prefs.Tab(inst)
} // func (c *Cascade) tabPrefs(inst int) *prefs.TabPrefs

// SetSource makes the Cascade display the given Playlist.
func (c *Cascade) SetSource(pl *objects.Playlist) {
	c.source = pl
	c.Init(0, Keep)

	if pl == nil {
		return
	}

	for _, t := range pl.Members {
		c.AddTrack(t, false, true, 0)
	}

	c.AddTrack(nil, true, true, 0)
} // func (c *Cascade) SetSource(pl *objects.Playlist)

// Source returns the Playlist the Cascade currently displays.
func (c *Cascade) Source() *objects.Playlist {
	return c.source
} // func (c *Cascade) Source() *objects.Playlist

// Init clears sort tab inst and all the tabs following it. If cat is not
// Keep, the tab's Category is changed.
func (c *Cascade) Init(inst int, cat Category) {
	if inst == len(c.tabs) {
		c.display.Clear()
		return
	}

	var tab = c.tab(inst)

	if tab == nil {
		c.log.Printf("[DEBUG] Init: invalid sort tab %d\n", inst)
		return
	}

	tab.reset(cat)

	if cat != Keep {
		c.tabPrefs(inst).Category = tab.cat.Name()
	}

	c.Init(inst+1, Keep)
} // func (c *Cascade) Init(inst int, cat Category)

// AddTrack adds a Track to sort tab inst. If the Track ends up in a
// selected entry, it is passed on to the next tab. final signals that
// the current batch of Tracks is complete, t may be nil in that case.
// Tracks that pass the last tab are handed to the Display if display is
// true.
func (c *Cascade) AddTrack(t *objects.Track, final, display bool, inst int) {
	if inst == len(c.tabs) {
		if t != nil && display {
			c.display.Add(t)
		}
		return
	}

	var tab = c.tab(inst)

	if tab == nil {
		c.log.Printf("[DEBUG] AddTrack: invalid sort tab %d\n", inst)
		return
	} else if tab.cat == CatSpecial {
		c.addSpecial(tab, t, final, display)
		return
	}

	var selectEntry *Entry

	if t != nil {
		var first = tab.master == nil

		if first {
			tab.master = &Entry{Name: AllName, Master: true}
			tab.entries = append([]*Entry{tab.master}, tab.entries...)
		}

		tab.master.Members = append(tab.master.Members, t)

		var entry = c.entryFor(tab, t)
		entry.Members = append(entry.Members, t)

		if tab.isAllSelected() || tab.isSelected(entry) {
			c.AddTrack(t, false, display, inst+1)
		} else if len(tab.selected) == 0 && tab.lastAll {
			selectEntry = tab.master
		} else if tab.wasSelected(entry) {
			selectEntry = entry
		} else if first &&
			len(tab.lastSel) == 0 &&
			!tab.unselected &&
			c.tabPrefs(inst).Autoselect {
			selectEntry = tab.master
		}
	}

	if final &&
		selectEntry == nil &&
		tab.master != nil &&
		len(tab.selected) == 0 &&
		!tab.unselected &&
		c.tabPrefs(inst).Autoselect {
		selectEntry = tab.master
	}

	if selectEntry != nil {
		c.addToSelection(tab, selectEntry, display)
	}

	if final {
		c.AddTrack(nil, true, display, inst+1)
	}
} // func (c *Cascade) AddTrack(t *objects.Track, final, display bool, inst int)

// entryFor returns the Entry a new Track goes into, creating it if needed.
func (c *Cascade) entryFor(tab *Tab, t *objects.Track) *Entry {
	if tab.cat == CatArtist && t.Compilation && c.prefs.GroupCompilations {
		if tab.compilation == nil {
			tab.compilation = &Entry{Name: CompilationsName, Compilation: true}

			// Right after "All"
			var rest = append([]*Entry{tab.compilation}, tab.entries[1:]...)
			tab.entries = append(tab.entries[:1], rest...)
		}

		return tab.compilation
	}

	var name = t.ItemString(tab.cat.Item())

	if e, ok := tab.index[name]; ok {
		return e
	}

	var e = &Entry{Name: name}
	tab.entries = append(tab.entries, e)
	tab.index[name] = e

	return e
} // func (c *Cascade) entryFor(tab *Tab, t *objects.Track) *Entry

// addToSelection selects an additional Entry and passes its members on
// to the next tab. Selecting the master Entry replaces the selection.
func (c *Cascade) addToSelection(tab *Tab, e *Entry, display bool) {
	if e.Master {
		tab.selected = []*Entry{e}
		c.Init(tab.inst+1, Keep)
	} else if tab.isAllSelected() || tab.isSelected(e) {
		return
	} else {
		tab.selected = append(tab.selected, e)
	}

	for _, t := range e.Members {
		c.AddTrack(t, false, display, tab.inst+1)
	}
} // func (c *Cascade) addToSelection(tab *Tab, e *Entry, display bool)

// RemoveTrack removes a Track from sort tab inst and, if it had been
// passed on, from the following tabs.
func (c *Cascade) RemoveTrack(t *objects.Track, inst int) {
	if inst == len(c.tabs) {
		c.display.Remove(t)
		return
	}

	var tab = c.tab(inst)

	if tab == nil || t == nil {
		c.log.Printf("[DEBUG] RemoveTrack: invalid sort tab %d\n", inst)
		return
	} else if tab.cat == CatSpecial {
		removeTrack(&tab.spMembers, t)
		if removeTrack(&tab.spSelected, t) {
			c.RemoveTrack(t, inst+1)
		}
		return
	} else if tab.master == nil || !tab.master.remove(t) {
		return
	}

	var (
		entry   = tab.entryOf(t)
		forward = tab.isAllSelected()
	)

	if entry != nil {
		forward = forward || tab.isSelected(entry)
		entry.remove(t)

		if len(entry.Members) == 0 {
			tab.deleteEntry(entry)
		}
	}

	if forward {
		c.RemoveTrack(t, inst+1)
	}
} // func (c *Cascade) RemoveTrack(t *objects.Track, inst int)

// TrackChanged notifies sort tab inst that the Track's data has changed.
// If removed is true, the Track is removed instead.
//
// A Track stays in the Entry it was added to, even if the value it was
// grouped by has changed, until the tab is refreshed.
func (c *Cascade) TrackChanged(t *objects.Track, removed bool, inst int) {
	if removed {
		c.RemoveTrack(t, inst)
		return
	} else if inst == len(c.tabs) {
		c.display.Changed(t)
		return
	}

	var tab = c.tab(inst)

	if tab == nil || t == nil {
		c.log.Printf("[DEBUG] TrackChanged: invalid sort tab %d\n", inst)
		return
	} else if tab.cat == CatSpecial {
		c.changedSpecial(tab, t)
		return
	}

	var entry = tab.entryOf(t)

	if entry == nil {
		return
	} else if tab.isAllSelected() || tab.isSelected(entry) {
		c.TrackChanged(t, false, inst+1)
	}
} // func (c *Cascade) TrackChanged(t *objects.Track, removed bool, inst int)

func (c *Cascade) lookupEntry(tab *Tab, name string) *Entry {
	switch {
	case name == AllName:
		return tab.master
	case name == CompilationsName && tab.compilation != nil:
		return tab.compilation
	default:
		return tab.index[name]
	}
} // func (c *Cascade) lookupEntry(tab *Tab, name string) *Entry

// Select selects the entries of sort tab inst with the given names and
// passes their Tracks on to the next tab. Selecting "All" selects every
// Track. Names that do not match any entry are ignored; if none match,
// the selection is cleared.
func (c *Cascade) Select(inst int, names ...string) {
	var tab = c.tab(inst)

	if tab == nil || tab.cat == CatSpecial {
		c.log.Printf("[DEBUG] Select: invalid sort tab %d\n", inst)
		return
	}

	var sel = make([]*Entry, 0, len(names))

	for _, name := range names {
		var e = c.lookupEntry(tab, name)

		if e == nil {
			c.log.Printf("[DEBUG] Select: no entry %q in sort tab %d\n",
				name,
				inst)
			continue
		} else if e.Master {
			sel = []*Entry{e}
			break
		}

		sel = append(sel, e)
	}

	if len(sel) == 0 {
		c.Unselect(inst)
		return
	}

	tab.selected = nil
	tab.unselected = false
	tab.lastSel = nil
	tab.lastAll = false
	c.Init(inst+1, Keep)

	for _, e := range sel {
		if e.Master {
			tab.lastAll = true
		} else {
			tab.lastSel = append(tab.lastSel, e.Name)
		}

		c.addToSelection(tab, e, true)
	}

	c.AddTrack(nil, true, true, inst+1)
} // func (c *Cascade) Select(inst int, names ...string)

// SelectAll selects the master Entry of sort tab inst.
func (c *Cascade) SelectAll(inst int) {
	c.Select(inst, AllName)
} // func (c *Cascade) SelectAll(inst int)

// Unselect clears the selection of sort tab inst. The tab will not
// select "All" on its own until it is initialized again.
func (c *Cascade) Unselect(inst int) {
	var tab = c.tab(inst)

	if tab == nil || tab.cat == CatSpecial {
		c.log.Printf("[DEBUG] Unselect: invalid sort tab %d\n", inst)
		return
	}

	tab.selected = nil
	tab.lastSel = nil
	tab.lastAll = false
	tab.unselected = true
	c.Init(inst+1, Keep)
} // func (c *Cascade) Unselect(inst int)

// SetCategory switches sort tab inst to a different Category and fills it
// again with the Tracks selected in the previous tab. If the Category
// does not change, the display state of the special sort tab is kept.
func (c *Cascade) SetCategory(inst int, cat Category) {
	var tab = c.tab(inst)

	if tab == nil {
		c.log.Printf("[DEBUG] SetCategory: invalid sort tab %d\n", inst)
		return
	} else if cat == Keep {
		cat = tab.cat
	}

	var (
		oldCat = tab.cat
		isGo   = tab.isGo
	)

	c.Init(inst, cat)

	if cat == oldCat {
		tab.isGo = isGo
	}

	for _, t := range c.SelectedTracks(inst - 1) {
		c.AddTrack(t, false, true, inst)
	}

	c.AddTrack(nil, true, true, inst)
} // func (c *Cascade) SetCategory(inst int, cat Category)

// Refresh rebuilds sort tab inst from the Tracks selected in the
// previous tab.
func (c *Cascade) Refresh(inst int) {
	c.SetCategory(inst, Keep)
} // func (c *Cascade) Refresh(inst int)

// Sort sets the order in which Entries are returned: prefs.SortNone
// (the order in which they were created), prefs.SortAscending or
// prefs.SortDescending.
func (c *Cascade) Sort(order string) {
	switch order {
	case prefs.SortNone, prefs.SortAscending, prefs.SortDescending:
		c.prefs.StSort = order
	default:
		c.log.Printf("[ERROR] Invalid sort order %q\n", order)
	}
} // func (c *Cascade) Sort(order string)

// SelectedTracks returns the Tracks sort tab inst passes on to the next
// tab. For inst == -1, the members of the source Playlist are returned.
func (c *Cascade) SelectedTracks(inst int) []*objects.Track {
	var res []*objects.Track

	if inst == -1 {
		if c.source != nil {
			res = make([]*objects.Track, len(c.source.Members))
			copy(res, c.source.Members)
		}
		return res
	}

	var tab = c.tab(inst)

	switch {
	case tab == nil:
		return nil
	case tab.cat == CatSpecial:
		res = make([]*objects.Track, len(tab.spSelected))
		copy(res, tab.spSelected)
	case tab.isAllSelected():
		res = make([]*objects.Track, len(tab.master.Members))
		copy(res, tab.master.Members)
	default:
		for _, e := range tab.entries {
			if tab.isSelected(e) {
				res = append(res, e.Members...)
			}
		}
	}

	return res
} // func (c *Cascade) SelectedTracks(inst int) []*objects.Track

// Entries returns the Entries of sort tab inst, in the configured order.
func (c *Cascade) Entries(inst int) []*Entry {
	var tab = c.tab(inst)

	if tab == nil || tab.cat == CatSpecial {
		return nil
	}

	var res = make([]*Entry, len(tab.entries))
	copy(res, tab.entries)

	switch c.prefs.StSort {
	case prefs.SortAscending:
		c.sorter.SortEntries(res, false)
	case prefs.SortDescending:
		c.sorter.SortEntries(res, true)
	}

	return res
} // func (c *Cascade) Entries(inst int) []*Entry

// Selected returns the names of the selected Entries of sort tab inst.
func (c *Cascade) Selected(inst int) []string {
	var tab = c.tab(inst)

	if tab == nil {
		return nil
	}

	var names = make([]string, len(tab.selected))

	for idx, e := range tab.selected {
		names[idx] = e.Name
	}

	return names
} // func (c *Cascade) Selected(inst int) []string
