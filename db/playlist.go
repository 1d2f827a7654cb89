// /home/krylon/go/src/github.com/blicero/tabpod/db/playlist.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 19:33:50 krylon>

package db

import (
	"database/sql"
	"fmt"

	"github.com/blicero/tabpod/db/query"
	"github.com/blicero/tabpod/objects"
)

// PlaylistAdd adds a Playlist to the database, at position pos in the
// list of Playlists, and sets its ID. The Master Playlist is not stored,
// it is implied by the track table.
func (db *Database) PlaylistAdd(pl *objects.Playlist, pos int) error {
	var (
		err error
		res sql.Result
		id  int64
	)

	if pl.Master || pl.UUID == "" {
		return ErrInvalidValue
	} else if res, err = db.exec(
		query.PlaylistAdd,
		pl.UUID,
		pl.Name,
		pos,
		pl.IsSPL,
		pl.Pref.LiveUpdate,
		pl.Pref.CheckRules,
		pl.Pref.CheckLimits,
		pl.Pref.LimitType,
		pl.Pref.LimitSort,
		pl.Pref.LimitValue,
		pl.Pref.MatchCheckedOnly,
		pl.Rules.Match); err != nil {
		err = fmt.Errorf("Cannot add Playlist %s to database: %s",
			pl.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if id, err = res.LastInsertId(); err != nil {
		db.log.Printf("[ERROR] Cannot get ID of new Playlist %s: %s\n",
			pl.Name,
			err.Error())
		return err
	}

	pl.ID = id
	return nil
} // func (db *Database) PlaylistAdd(pl *objects.Playlist, pos int) error

// PlaylistDelete removes a Playlist, its members and its rules from the
// database.
func (db *Database) PlaylistDelete(pl *objects.Playlist) error {
	if _, err := db.exec(query.PlaylistDelete, pl.ID); err != nil {
		err = fmt.Errorf("Cannot delete Playlist %s (%d) from database: %s",
			pl.Name,
			pl.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	return nil
} // func (db *Database) PlaylistDelete(pl *objects.Playlist) error

// PlaylistUpdate stores the name, position and smart Playlist settings of
// a Playlist. Members and rules are stored separately.
func (db *Database) PlaylistUpdate(pl *objects.Playlist, pos int) error {
	if _, err := db.exec(
		query.PlaylistUpdate,
		pl.Name,
		pos,
		pl.Pref.LiveUpdate,
		pl.Pref.CheckRules,
		pl.Pref.CheckLimits,
		pl.Pref.LimitType,
		pl.Pref.LimitSort,
		pl.Pref.LimitValue,
		pl.Pref.MatchCheckedOnly,
		pl.Rules.Match,
		pl.ID); err != nil {
		err = fmt.Errorf("Cannot update Playlist %s (%d): %s",
			pl.Name,
			pl.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	return nil
} // func (db *Database) PlaylistUpdate(pl *objects.Playlist, pos int) error

// PlaylistGetAll loads all Playlists in their stored order. Members and
// rules are not loaded.
func (db *Database) PlaylistGetAll() ([]*objects.Playlist, error) {
	rows, err := db.queryRows(query.PlaylistGetAll)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var lists = make([]*objects.Playlist, 0, 8)

	for rows.Next() {
		var pl = new(objects.Playlist)

		if err = rows.Scan(
			&pl.ID,
			&pl.UUID,
			&pl.Name,
			&pl.IsSPL,
			&pl.Pref.LiveUpdate,
			&pl.Pref.CheckRules,
			&pl.Pref.CheckLimits,
			&pl.Pref.LimitType,
			&pl.Pref.LimitSort,
			&pl.Pref.LimitValue,
			&pl.Pref.MatchCheckedOnly,
			&pl.Rules.Match); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		lists = append(lists, pl)
	}

	return lists, nil
} // func (db *Database) PlaylistGetAll() ([]*objects.Playlist, error)

// MemberAdd adds a Track to a Playlist at the given position.
func (db *Database) MemberAdd(pl *objects.Playlist, t *objects.Track, pos int) error {
	if _, err := db.exec(query.MemberAdd, pl.ID, t.ID, pos); err != nil {
		err = fmt.Errorf("Cannot add Track %d to Playlist %s: %s",
			t.ID,
			pl.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	return nil
} // func (db *Database) MemberAdd(pl *objects.Playlist, t *objects.Track, pos int) error

// MemberRemove removes a Track from a Playlist.
func (db *Database) MemberRemove(pl *objects.Playlist, t *objects.Track) error {
	if _, err := db.exec(query.MemberRemove, pl.ID, t.ID); err != nil {
		err = fmt.Errorf("Cannot remove Track %d from Playlist %s: %s",
			t.ID,
			pl.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	return nil
} // func (db *Database) MemberRemove(pl *objects.Playlist, t *objects.Track) error

// MemberClear removes all Tracks from a Playlist.
func (db *Database) MemberClear(pl *objects.Playlist) error {
	if _, err := db.exec(query.MemberClear, pl.ID); err != nil {
		err = fmt.Errorf("Cannot clear Playlist %s: %s",
			pl.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	return nil
} // func (db *Database) MemberClear(pl *objects.Playlist) error

// MemberSetAll replaces the stored members of a Playlist with its
// current Members.
func (db *Database) MemberSetAll(pl *objects.Playlist) error {
	var (
		err  error
		tx   *sql.Tx
		done func(bool) error
	)

	if tx, done, err = db.adHoc(); err != nil {
		return err
	}

	if _, err = db.execTx(tx, query.MemberClear, pl.ID); err != nil {
		db.log.Printf("[ERROR] Cannot clear Playlist %s: %s\n",
			pl.Name,
			err.Error())
		done(false) // nolint: errcheck
		return err
	}

	for idx, t := range pl.Members {
		if _, err = db.execTx(tx, query.MemberAdd, pl.ID, t.ID, idx); err != nil {
			db.log.Printf("[ERROR] Cannot add Track %d to Playlist %s: %s\n",
				t.ID,
				pl.Name,
				err.Error())
			done(false) // nolint: errcheck
			return err
		}
	}

	return done(true)
} // func (db *Database) MemberSetAll(pl *objects.Playlist) error

// MemberGetByPlaylist returns the IDs of the Tracks in a Playlist, in
// order.
func (db *Database) MemberGetByPlaylist(pl *objects.Playlist) ([]int64, error) {
	rows, err := db.queryRows(query.MemberGetByPlaylist, pl.ID)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var ids = make([]int64, 0, 16)

	for rows.Next() {
		var id int64

		if err = rows.Scan(&id); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
} // func (db *Database) MemberGetByPlaylist(pl *objects.Playlist) ([]int64, error)

// RuleReplace replaces the stored rules of a smart Playlist with its
// current Rules.
func (db *Database) RuleReplace(pl *objects.Playlist) error {
	var (
		err  error
		tx   *sql.Tx
		done func(bool) error
	)

	if !pl.IsSPL {
		return ErrInvalidValue
	} else if tx, done, err = db.adHoc(); err != nil {
		return err
	}

	if _, err = db.execTx(tx, query.RuleClear, pl.ID); err != nil {
		db.log.Printf("[ERROR] Cannot delete rules of Playlist %s: %s\n",
			pl.Name,
			err.Error())
		done(false) // nolint: errcheck
		return err
	}

	for idx, r := range pl.Rules.Rules {
		if _, err = db.execTx(
			tx,
			query.RuleAdd,
			pl.ID,
			idx,
			r.Field,
			r.Action,
			r.String,
			r.FromValue,
			r.FromDate,
			r.FromUnits,
			r.ToValue,
			r.ToDate,
			r.ToUnits); err != nil {
			db.log.Printf("[ERROR] Cannot add rule #%d of Playlist %s: %s\n",
				idx,
				pl.Name,
				err.Error())
			done(false) // nolint: errcheck
			return err
		}
	}

	return done(true)
} // func (db *Database) RuleReplace(pl *objects.Playlist) error

// RuleGetByPlaylist loads the rules of a smart Playlist, in order.
func (db *Database) RuleGetByPlaylist(pl *objects.Playlist) ([]*objects.SPLRule, error) {
	rows, err := db.queryRows(query.RuleGetByPlaylist, pl.ID)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var rules = make([]*objects.SPLRule, 0, 4)

	for rows.Next() {
		var r = new(objects.SPLRule)

		if err = rows.Scan(
			&r.Field,
			&r.Action,
			&r.String,
			&r.FromValue,
			&r.FromDate,
			&r.FromUnits,
			&r.ToValue,
			&r.ToDate,
			&r.ToUnits); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		rules = append(rules, r)
	}

	return rules, nil
} // func (db *Database) RuleGetByPlaylist(pl *objects.Playlist) ([]*objects.SPLRule, error)
