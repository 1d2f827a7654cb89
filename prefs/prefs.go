// /home/krylon/go/src/github.com/blicero/tabpod/prefs/prefs.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 20:02:18 krylon>

// Package prefs handles the user's preferences, which are stored in a
// TOML file.
package prefs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/blicero/krylib"
	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/logdomain"
	"github.com/pkg/errors"
)

// Sort orders for the entries of the sort tabs.
const (
	SortNone       = "none"
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// MaxSortTabs is the maximum number of sort tabs.
const MaxSortTabs = 6

var defaultCategories = []string{
	"artist",
	"album",
	"genre",
	"composer",
	"title",
	"year",
}

// TabPrefs are the preferences of a single sort tab instance.
// The Sp* fields configure the conditions of the special sort tab.
// The *State fields for the time conditions hold interval
// specifications, e.g. "> -1w".
type TabPrefs struct {
	Category        string `toml:"category"`
	Autoselect      bool   `toml:"autoselect"`
	SpOr            bool   `toml:"sp_or"`
	SpRatingCond    bool   `toml:"sp_rating_cond"`
	SpRatingState   uint32 `toml:"sp_rating_state"`
	SpPlaycountCond bool   `toml:"sp_playcount_cond"`
	SpPlaycountLow  int    `toml:"sp_playcount_low"`
	SpPlaycountHigh int    `toml:"sp_playcount_high"`
	SpPlayedCond    bool   `toml:"sp_played_cond"`
	SpPlayedState   string `toml:"sp_played_state"`
	SpModifiedCond  bool   `toml:"sp_modified_cond"`
	SpModifiedState string `toml:"sp_modified_state"`
	SpAddedCond     bool   `toml:"sp_added_cond"`
	SpAddedState    string `toml:"sp_added_state"`
	SpAutodisplay   bool   `toml:"sp_autodisplay"`
}

// DefaultTab returns the default preferences for sort tab inst.
func DefaultTab(inst int) TabPrefs {
	var cat = defaultCategories[inst%len(defaultCategories)]

	return TabPrefs{
		Category:        cat,
		Autoselect:      true,
		SpPlaycountHigh: -1,
		SpPlayedState:   "> -1w",
		SpModifiedState: "> -1m",
		SpAddedState:    "> -1m",
	}
} // func DefaultTab(inst int) TabPrefs

// Prefs are the user's preferences.
type Prefs struct {
	SortTabNum        int        `toml:"sort_tab_num"`
	StSort            string     `toml:"st_sort"`
	StCaseSensitive   bool       `toml:"st_case_sensitive"`
	GroupCompilations bool       `toml:"group_compilations"`
	SortIgnoreStrings []string   `toml:"sort_ign_strings"`
	WriteTags         bool       `toml:"write_tags"`
	Player            string     `toml:"player"`
	Tabs              []TabPrefs `toml:"tab"`
}

// Default returns the default preferences.
func Default() *Prefs {
	var p = &Prefs{
		SortTabNum:        2,
		StSort:            SortNone,
		GroupCompilations: true,
		SortIgnoreStrings: []string{"a ", "an "},
		Player:            "vlc",
	}

	for i := 0; i < p.SortTabNum; i++ {
		p.Tabs = append(p.Tabs, DefaultTab(i))
	}

	return p
} // func Default() *Prefs

// Tab returns the preferences for sort tab inst, filling in defaults for
// instances that have no preferences yet.
func (p *Prefs) Tab(inst int) *TabPrefs {
	if inst < 0 {
		return nil
	}

	for len(p.Tabs) <= inst {
		p.Tabs = append(p.Tabs, DefaultTab(len(p.Tabs)))
	}

	return &p.Tabs[inst]
} // func (p *Prefs) Tab(inst int) *TabPrefs

func (p *Prefs) sanitize() {
	if p.SortTabNum < 0 {
		p.SortTabNum = 0
	} else if p.SortTabNum > MaxSortTabs {
		p.SortTabNum = MaxSortTabs
	}

	switch p.StSort {
	case SortNone, SortAscending, SortDescending:
	default:
		p.StSort = SortNone
	}

	for i := range p.Tabs {
		if p.Tabs[i].Category == "" {
			p.Tabs[i].Category = DefaultTab(i).Category
		}
	}
} // func (p *Prefs) sanitize()

// Load reads the preferences from the given file. If the file does not
// exist, the default preferences are returned.
func Load(path string) (*Prefs, error) {
	var (
		err    error
		exists bool
		p      = Default()
	)

	if exists, err = krylib.Fexists(path); err != nil {
		return nil, errors.Wrapf(err, "Cannot check if %s exists", path)
	} else if !exists {
		return p, nil
	}

	var (
		data []byte
		md   toml.MetaData
		raw  struct {
			Tabs []toml.Primitive `toml:"tab"`
		}
	)

	if data, err = os.ReadFile(path); err != nil {
		return nil, errors.Wrapf(err, "Cannot read preferences file %s", path)
	} else if _, err = toml.Decode(string(data), p); err != nil {
		return nil, errors.Wrapf(err, "Cannot parse preferences file %s", path)
	} else if md, err = toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrapf(err, "Cannot parse preferences file %s", path)
	}

	// Keys missing from a [[tab]] table keep their default values.
	p.Tabs = make([]TabPrefs, len(raw.Tabs))
	for i, prim := range raw.Tabs {
		p.Tabs[i] = DefaultTab(i)
		if err = md.PrimitiveDecode(prim, &p.Tabs[i]); err != nil {
			return nil, errors.Wrapf(err, "Cannot parse preferences for sort tab %d in %s",
				i,
				path)
		}
	}

	p.sanitize()

	return p, nil
} // func Load(path string) (*Prefs, error)

// Save writes the preferences to the given file. The data is written to
// a temporary file first, which then replaces the old file.
func (p *Prefs) Save(path string) error {
	var (
		err  error
		buf  bytes.Buffer
		tmp  *os.File
		name string
	)

	if lg, lerr := common.GetLogger(logdomain.Prefs); lerr == nil {
		lg.Printf("[DEBUG] Saving preferences to %s\n", path)
	}

	if err = toml.NewEncoder(&buf).Encode(p); err != nil {
		return errors.Wrap(err, "Cannot encode preferences")
	} else if tmp, err = os.CreateTemp(filepath.Dir(path), ".prefs-*.toml"); err != nil {
		return errors.Wrapf(err, "Cannot create temporary file in %s",
			filepath.Dir(path))
	}

	name = tmp.Name()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()     // nolint: errcheck
		os.Remove(name) // nolint: errcheck
		return errors.Wrapf(err, "Cannot write %s", name)
	} else if err = tmp.Close(); err != nil {
		os.Remove(name) // nolint: errcheck
		return errors.Wrapf(err, "Cannot close %s", name)
	} else if err = os.Rename(name, path); err != nil {
		os.Remove(name) // nolint: errcheck
		return errors.Wrapf(err, "Cannot rename %s to %s", name, path)
	}

	return nil
} // func (p *Prefs) Save(path string) error

// LoadDefault loads the preferences from common.PrefsPath.
func LoadDefault() (*Prefs, error) {
	return Load(common.PrefsPath)
} // func LoadDefault() (*Prefs, error)
