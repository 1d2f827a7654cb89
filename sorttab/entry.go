// /home/krylon/go/src/github.com/blicero/tabpod/sorttab/entry.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 21:03:55 krylon>

package sorttab

import (
	"sort"
	"strings"

	"github.com/blicero/tabpod/objects"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Names of the synthetic entries.
const (
	AllName          = "All"
	CompilationsName = "Compilations"
)

// Entry groups the Tracks of a sort tab that share the same value for the
// tab's Category. The Master Entry ("All") contains every Track of the
// tab.
type Entry struct {
	Name        string
	Master      bool
	Compilation bool
	Members     []*objects.Track
}

// Contains returns true if the Track is a member of the Entry.
func (e *Entry) Contains(t *objects.Track) bool {
	for _, m := range e.Members {
		if m == t {
			return true
		}
	}

	return false
} // func (e *Entry) Contains(t *objects.Track) bool

func (e *Entry) remove(t *objects.Track) bool {
	return removeTrack(&e.Members, t)
} // func (e *Entry) remove(t *objects.Track) bool

func removeTrack(list *[]*objects.Track, t *objects.Track) bool {
	for idx, m := range *list {
		if m == t {
			*list = append((*list)[:idx], (*list)[idx+1:]...)
			return true
		}
	}

	return false
} // func removeTrack(list *[]*objects.Track, t *objects.Track) bool

func containsTrack(list []*objects.Track, t *objects.Track) bool {
	for _, m := range list {
		if m == t {
			return true
		}
	}

	return false
} // func containsTrack(list []*objects.Track, t *objects.Track) bool

// Sorter compares entry names. Leading prefixes such as "a " or "an "
// are ignored, and case is ignored unless the comparison is case
// sensitive.
type Sorter struct {
	prefixes []string
	coll     *collate.Collator
}

// NewSorter creates a Sorter.
func NewSorter(caseSensitive bool, prefixes []string) *Sorter {
	var (
		opts = []collate.Option{collate.Numeric}
		s    = &Sorter{
			prefixes: make([]string, 0, len(prefixes)),
		}
	)

	if !caseSensitive {
		opts = append(opts, collate.IgnoreCase)
	}

	for _, p := range prefixes {
		if p != "" {
			s.prefixes = append(s.prefixes, strings.ToLower(p))
		}
	}

	s.coll = collate.New(language.Und, opts...)

	return s
} // func NewSorter(caseSensitive bool, prefixes []string) *Sorter

// Fuzzy returns the name with the first matching prefix removed.
func (s *Sorter) Fuzzy(name string) string {
	var lower = strings.ToLower(name)

	for _, p := range s.prefixes {
		if strings.HasPrefix(lower, p) && len(name) > len(p) {
			return name[len(p):]
		}
	}

	return name
} // func (s *Sorter) Fuzzy(name string) string

// Compare returns a negative number, zero or a positive number if a sorts
// before, equal to or after b.
func (s *Sorter) Compare(a, b string) int {
	return s.coll.CompareString(s.Fuzzy(a), s.Fuzzy(b))
} // func (s *Sorter) Compare(a, b string) int

// SortEntries sorts the Entries by name. Master and compilation Entries
// stay in front.
func (s *Sorter) SortEntries(entries []*Entry, descending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		var a, b = entries[i], entries[j]

		if a.Master != b.Master {
			return a.Master
		} else if a.Compilation != b.Compilation {
			return a.Compilation
		}

		var res = s.Compare(a.Name, b.Name)

		if descending {
			return res > 0
		}
		return res < 0
	})
} // func (s *Sorter) SortEntries(entries []*Entry, descending bool)
