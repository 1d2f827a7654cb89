// /home/krylon/go/src/github.com/blicero/tabpod/library/library.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-18 20:47:19 krylon>

// Package library holds the music library in memory: the master Playlist
// containing every Track, and the ordered list of regular and smart
// Playlists. If it is backed by a Database, every change is written
// through to it.
//
// A Library is not safe for concurrent use.
package library

import (
	"errors"
	"fmt"
	"log"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/db"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/objects"
	"github.com/blicero/tabpod/spl"
)

// MasterName is the name of the master Playlist.
const MasterName = "Library"

// ErrDuplicate is returned when adding a Track whose path is already in
// the Library.
var ErrDuplicate = errors.New("Track is already in the library")

// ErrNotFound is returned when a Track or Playlist is not part of the
// Library.
var ErrNotFound = errors.New("not found in library")

// ErrMaster is returned when trying to add, remove or modify the master
// Playlist in a way that is not allowed.
var ErrMaster = errors.New("operation not allowed on master playlist")

// ErrSmartPlaylist is returned when trying to add Tracks to or remove
// Tracks from a smart Playlist directly.
var ErrSmartPlaylist = errors.New("members of a smart playlist are computed from its rules")

// Library is the in-memory music library.
type Library struct {
	log       *log.Logger
	db        *db.Database
	master    *objects.Playlist
	lists     []*objects.Playlist
	byID      map[int64]*objects.Track
	byPath    map[string]*objects.Track
	eval      *spl.Evaluator
	listeners []Listener
	changed   bool
	trackCnt  int64
	listCnt   int64
}

// New creates an empty Library. conn may be nil, in which case nothing is
// persisted.
func New(conn *db.Database) (*Library, error) {
	var (
		err error
		lib = &Library{
			db:     conn,
			byID:   make(map[int64]*objects.Track),
			byPath: make(map[string]*objects.Track),
			master: &objects.Playlist{
				UUID:   common.GetUUID(),
				Name:   MasterName,
				Master: true,
			},
		}
	)

	if lib.log, err = common.GetLogger(logdomain.Library); err != nil {
		return nil, err
	} else if lib.eval, err = spl.NewEvaluator(lib); err != nil {
		return nil, err
	}

	return lib, nil
} // func New(conn *db.Database) (*Library, error)

// Open creates a Library and loads all Tracks and Playlists from the
// Database.
func Open(conn *db.Database) (*Library, error) {
	var (
		err    error
		lib    *Library
		tracks []*objects.Track
		lists  []*objects.Playlist
	)

	if conn == nil {
		return nil, fmt.Errorf("Open needs a database connection")
	} else if lib, err = New(conn); err != nil {
		return nil, err
	} else if tracks, err = conn.TrackGetAll(); err != nil {
		lib.log.Printf("[ERROR] Cannot load Tracks: %s\n", err.Error())
		return nil, err
	} else if lists, err = conn.PlaylistGetAll(); err != nil {
		lib.log.Printf("[ERROR] Cannot load Playlists: %s\n", err.Error())
		return nil, err
	}

	for _, t := range tracks {
		lib.index(t)
	}

	for _, pl := range lists {
		if pl.IsSPL {
			if pl.Rules.Rules, err = conn.RuleGetByPlaylist(pl); err != nil {
				lib.log.Printf("[ERROR] Cannot load rules of Playlist %q: %s\n",
					pl.Name,
					err.Error())
				return nil, err
			}
		} else {
			var ids []int64

			if ids, err = conn.MemberGetByPlaylist(pl); err != nil {
				lib.log.Printf("[ERROR] Cannot load members of Playlist %q: %s\n",
					pl.Name,
					err.Error())
				return nil, err
			}

			pl.Members = make([]*objects.Track, 0, len(ids))
			for _, id := range ids {
				if t := lib.byID[id]; t != nil {
					pl.Members = append(pl.Members, t)
				}
			}
		}

		lib.lists = append(lib.lists, pl)
	}

	// Rules may refer to other Playlists, so all of them must be loaded
	// before the smart Playlists are computed.
	lib.eval.UpdateAll(lib.lists, lib.master.Members)

	lib.log.Printf("[INFO] Loaded %d Tracks and %d Playlists\n",
		len(lib.master.Members),
		len(lib.lists))

	return lib, nil
} // func Open(conn *db.Database) (*Library, error)

func (lib *Library) index(t *objects.Track) {
	lib.master.Members = append(lib.master.Members, t)
	lib.byID[t.ID] = t
	lib.byPath[t.Path] = t
} // func (lib *Library) index(t *objects.Track)

// Master returns the master Playlist.
func (lib *Library) Master() *objects.Playlist {
	return lib.master
} // func (lib *Library) Master() *objects.Playlist

// Evaluator returns the Evaluator used for the smart Playlists.
func (lib *Library) Evaluator() *spl.Evaluator {
	return lib.eval
} // func (lib *Library) Evaluator() *spl.Evaluator

// Playlists returns the regular and smart Playlists, in order. The master
// Playlist is not included.
func (lib *Library) Playlists() []*objects.Playlist {
	var res = make([]*objects.Playlist, len(lib.lists))
	copy(res, lib.lists)
	return res
} // func (lib *Library) Playlists() []*objects.Playlist

// TrackByID looks up a Track by its ID.
func (lib *Library) TrackByID(id int64) *objects.Track {
	return lib.byID[id]
} // func (lib *Library) TrackByID(id int64) *objects.Track

// TrackByPath looks up a Track by its path.
func (lib *Library) TrackByPath(path string) *objects.Track {
	return lib.byPath[path]
} // func (lib *Library) TrackByPath(path string) *objects.Track

// AddTrack adds a Track to the Library. The Track is stored in the
// Database, if there is one, which sets its ID.
func (lib *Library) AddTrack(t *objects.Track) error {
	if t == nil || t.Path == "" {
		return db.ErrInvalidValue
	} else if lib.byPath[t.Path] != nil {
		return ErrDuplicate
	}

	if lib.db != nil {
		if t.ID != 0 {
			// Already stored, e.g. by the scanner.
			if lib.byID[t.ID] != nil {
				return ErrDuplicate
			}
		} else if err := lib.db.TrackAdd(t); err != nil {
			lib.log.Printf("[ERROR] Cannot store Track %s: %s\n",
				t.Path,
				err.Error())
			return err
		}
	} else {
		lib.trackCnt++
		t.ID = lib.trackCnt
	}

	lib.index(t)
	lib.eval.UpdateLive(lib.lists, lib.master.Members)
	lib.DataChanged()
	lib.notify(EventAdded, t)

	return nil
} // func (lib *Library) AddTrack(t *objects.Track) error

// RemoveTrack removes a Track from the Library and from every Playlist.
func (lib *Library) RemoveTrack(t *objects.Track) error {
	if t == nil || lib.byID[t.ID] != t {
		return ErrNotFound
	} else if lib.db != nil {
		if err := lib.db.TrackDelete(t); err != nil {
			lib.log.Printf("[ERROR] Cannot delete Track %s: %s\n",
				t.Path,
				err.Error())
			return err
		}
	}

	removeMember(lib.master, t)
	for _, pl := range lib.lists {
		removeMember(pl, t)
	}

	delete(lib.byID, t.ID)
	delete(lib.byPath, t.Path)

	lib.eval.UpdateLive(lib.lists, lib.master.Members)
	lib.DataChanged()
	lib.notify(EventRemoved, t)

	return nil
} // func (lib *Library) RemoveTrack(t *objects.Track) error

// TrackChanged must be called after the data of a Track has been
// modified. The Track is written to the Database and the live smart
// Playlists are updated.
func (lib *Library) TrackChanged(t *objects.Track) error {
	if t == nil || lib.byID[t.ID] != t {
		return ErrNotFound
	} else if lib.db != nil {
		if err := lib.db.TrackUpdate(t); err != nil {
			lib.log.Printf("[ERROR] Cannot update Track %s: %s\n",
				t.Path,
				err.Error())
			return err
		}
	}

	lib.eval.UpdateLive(lib.lists, lib.master.Members)
	lib.DataChanged()
	lib.notify(EventChanged, t)

	return nil
} // func (lib *Library) TrackChanged(t *objects.Track) error

func removeMember(pl *objects.Playlist, t *objects.Track) bool {
	for idx, m := range pl.Members {
		if m == t {
			pl.Members = append(pl.Members[:idx], pl.Members[idx+1:]...)
			return true
		}
	}

	return false
} // func removeMember(pl *objects.Playlist, t *objects.Track) bool

// DataChanged marks the Library as modified.
func (lib *Library) DataChanged() {
	lib.changed = true
} // func (lib *Library) DataChanged()

// IsChanged returns true if the Library was modified since it was
// opened or since the last call to ClearChanged.
func (lib *Library) IsChanged() bool {
	return lib.changed
} // func (lib *Library) IsChanged() bool

// ClearChanged resets the modification flag.
func (lib *Library) ClearChanged() {
	lib.changed = false
} // func (lib *Library) ClearChanged()
