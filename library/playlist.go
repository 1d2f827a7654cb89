// /home/krylon/go/src/github.com/blicero/tabpod/library/playlist.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-18 21:15:02 krylon>

package library

import (
	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/objects"
)

// PlaylistAdd inserts a Playlist at position pos. A negative pos or one
// past the end appends it. Smart Playlists are computed right away.
func (lib *Library) PlaylistAdd(pl *objects.Playlist, pos int) error {
	if pl == nil {
		return ErrNotFound
	} else if pl.Master {
		return ErrMaster
	} else if lib.PlaylistExists(pl) {
		lib.log.Printf("[ERROR] Playlist %q is already in the library\n",
			pl.Name)
		return ErrDuplicate
	}

	if pos < 0 || pos > len(lib.lists) {
		pos = len(lib.lists)
	}

	if pl.UUID == "" {
		pl.UUID = common.GetUUID()
	}

	if pl.IsSPL {
		lib.eval.Update(pl, lib.master.Members)
	}

	if lib.db != nil {
		if err := lib.storePlaylist(pl, pos); err != nil {
			return err
		}
	} else {
		lib.listCnt++
		pl.ID = lib.listCnt
	}

	lib.lists = append(lib.lists, nil)
	copy(lib.lists[pos+1:], lib.lists[pos:])
	lib.lists[pos] = pl

	if lib.db != nil && pos < len(lib.lists)-1 {
		lib.storePositions(pos + 1)
	}

	lib.log.Printf("[DEBUG] Added Playlist %q at position %d\n",
		pl.Name,
		pos)

	lib.DataChanged()
	return nil
} // func (lib *Library) PlaylistAdd(pl *objects.Playlist, pos int) error

// storePlaylist adds a new Playlist with its members or rules to the
// Database, within one transaction.
func (lib *Library) storePlaylist(pl *objects.Playlist, pos int) (err error) {
	if err = lib.db.Begin(); err != nil {
		lib.log.Printf("[ERROR] Cannot begin transaction: %s\n", err.Error())
		return err
	}

	defer func() {
		if err != nil {
			lib.db.Rollback() // nolint: errcheck
		} else if err = lib.db.Commit(); err != nil {
			lib.log.Printf("[ERROR] Cannot store Playlist %q: %s\n",
				pl.Name,
				err.Error())
		}

		if err != nil {
			pl.ID = 0
		}
	}()

	if err = lib.db.PlaylistAdd(pl, pos); err != nil {
		return err
	} else if pl.IsSPL {
		err = lib.db.RuleReplace(pl)
	} else {
		err = lib.db.MemberSetAll(pl)
	}

	return err
} // func (lib *Library) storePlaylist(pl *objects.Playlist, pos int) (err error)

// storePositions writes the positions of the Playlists from index from
// onwards to the Database.
func (lib *Library) storePositions(from int) {
	for idx := from; idx < len(lib.lists); idx++ {
		if err := lib.db.PlaylistUpdate(lib.lists[idx], idx); err != nil {
			lib.log.Printf("[ERROR] Cannot update position of Playlist %q: %s\n",
				lib.lists[idx].Name,
				err.Error())
		}
	}
} // func (lib *Library) storePositions(from int)

// PlaylistRemove removes a Playlist from the Library.
func (lib *Library) PlaylistRemove(pl *objects.Playlist) error {
	if pl != nil && pl.Master {
		return ErrMaster
	}

	var pos = lib.position(pl)

	if pos < 0 {
		return ErrNotFound
	} else if lib.db != nil {
		if err := lib.db.PlaylistDelete(pl); err != nil {
			lib.log.Printf("[ERROR] Cannot delete Playlist %q: %s\n",
				pl.Name,
				err.Error())
			return err
		}
	}

	lib.lists = append(lib.lists[:pos], lib.lists[pos+1:]...)

	if lib.db != nil {
		lib.storePositions(pos)
	}

	lib.DataChanged()
	return nil
} // func (lib *Library) PlaylistRemove(pl *objects.Playlist) error

func (lib *Library) position(pl *objects.Playlist) int {
	for idx, p := range lib.lists {
		if p == pl {
			return idx
		}
	}

	return -1
} // func (lib *Library) position(pl *objects.Playlist) int

// PlaylistExists returns true if the Playlist is part of the Library.
func (lib *Library) PlaylistExists(pl *objects.Playlist) bool {
	return pl != nil && (pl == lib.master || lib.position(pl) >= 0)
} // func (lib *Library) PlaylistExists(pl *objects.Playlist) bool

// PlaylistByID looks up a Playlist by its ID.
func (lib *Library) PlaylistByID(id int64) *objects.Playlist {
	for _, pl := range lib.lists {
		if pl.ID == id {
			return pl
		}
	}

	return nil
} // func (lib *Library) PlaylistByID(id int64) *objects.Playlist

// PlaylistByName returns the first Playlist with the given name. The
// master Playlist can be looked up by MasterName.
func (lib *Library) PlaylistByName(name string) *objects.Playlist {
	for _, pl := range lib.lists {
		if pl.Name == name {
			return pl
		}
	}

	if name == MasterName {
		return lib.master
	}

	return nil
} // func (lib *Library) PlaylistByName(name string) *objects.Playlist

// PlaylistAddTrack inserts a Track into a regular Playlist at position
// pos. A negative pos appends it.
func (lib *Library) PlaylistAddTrack(pl *objects.Playlist, t *objects.Track, pos int) error {
	switch {
	case pl == nil || t == nil:
		return ErrNotFound
	case pl.Master:
		return ErrMaster
	case pl.IsSPL:
		return ErrSmartPlaylist
	case lib.position(pl) < 0 || lib.byID[t.ID] != t:
		return ErrNotFound
	}

	if pos < 0 || pos > len(pl.Members) {
		pos = len(pl.Members)
	}

	pl.Members = append(pl.Members, nil)
	copy(pl.Members[pos+1:], pl.Members[pos:])
	pl.Members[pos] = t

	if lib.db != nil {
		if err := lib.db.MemberSetAll(pl); err != nil {
			lib.log.Printf("[ERROR] Cannot store members of Playlist %q: %s\n",
				pl.Name,
				err.Error())
			removeMember(pl, t)
			return err
		}
	}

	lib.eval.UpdateLive(lib.lists, lib.master.Members)
	lib.DataChanged()
	return nil
} // func (lib *Library) PlaylistAddTrack(pl *objects.Playlist, t *objects.Track, pos int) error

// PlaylistRemoveTrack removes a Track from a regular Playlist.
func (lib *Library) PlaylistRemoveTrack(pl *objects.Playlist, t *objects.Track) error {
	switch {
	case pl == nil || t == nil:
		return ErrNotFound
	case pl.Master:
		return ErrMaster
	case pl.IsSPL:
		return ErrSmartPlaylist
	case !removeMember(pl, t):
		return ErrNotFound
	}

	if lib.db != nil {
		if err := lib.db.MemberRemove(pl, t); err != nil {
			lib.log.Printf("[ERROR] Cannot remove Track from Playlist %q: %s\n",
				pl.Name,
				err.Error())
			return err
		}
	}

	lib.eval.UpdateLive(lib.lists, lib.master.Members)
	lib.DataChanged()
	return nil
} // func (lib *Library) PlaylistRemoveTrack(pl *objects.Playlist, t *objects.Track) error

// PlaylistRename gives a Playlist a new name.
func (lib *Library) PlaylistRename(pl *objects.Playlist, name string) error {
	var pos = lib.position(pl)

	if pos < 0 {
		return ErrNotFound
	}

	pl.Name = name

	if lib.db != nil {
		if err := lib.db.PlaylistUpdate(pl, pos); err != nil {
			return err
		}
	}

	lib.DataChanged()
	return nil
} // func (lib *Library) PlaylistRename(pl *objects.Playlist, name string) error

// UpdateSPL recomputes the Members of a smart Playlist and stores its
// name, settings and rules.
func (lib *Library) UpdateSPL(pl *objects.Playlist) {
	if pl == nil || !pl.IsSPL {
		return
	}

	lib.eval.Update(pl, lib.master.Members)

	var pos = lib.position(pl)

	if lib.db == nil || pos < 0 {
		return
	} else if err := lib.db.PlaylistUpdate(pl, pos); err != nil {
		lib.log.Printf("[ERROR] Cannot update smart Playlist %q: %s\n",
			pl.Name,
			err.Error())
	} else if err = lib.db.RuleReplace(pl); err != nil {
		lib.log.Printf("[ERROR] Cannot store rules of smart Playlist %q: %s\n",
			pl.Name,
			err.Error())
	}
} // func (lib *Library) UpdateSPL(pl *objects.Playlist)
