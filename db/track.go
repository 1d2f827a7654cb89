// /home/krylon/go/src/github.com/blicero/tabpod/db/track.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 18:41:36 krylon>

package db

import (
	"database/sql"
	"fmt"

	"github.com/blicero/tabpod/db/query"
	"github.com/blicero/tabpod/objects"
)

// trackValues returns the values of a Track's columns, in the order
// TrackAdd and TrackUpdate expect them, without the ID.
func trackValues(t *objects.Track) []any {
	return []any{
		t.Path,
		t.Checksum,
		t.Title,
		t.Artist,
		t.Album,
		t.AlbumArtist,
		t.Genre,
		t.Composer,
		t.Comment,
		t.Grouping,
		t.Kind,
		t.TVShow,
		t.Year,
		t.TrackNr,
		t.Tracks,
		t.CDNr,
		t.CDs,
		t.Season,
		t.Rating,
		t.PlayCount,
		t.SkipCount,
		t.Bitrate,
		t.SampleRate,
		t.Size,
		t.Length,
		t.BPM,
		t.Compilation,
		t.Checked,
		t.MediaType,
		stamp(t.TimeAdded),
		stamp(t.TimeModified),
		stamp(t.TimePlayed),
		stamp(t.TimeSkipped),
	}
} // func trackValues(t *objects.Track) []any

// scanTrack reads a Track from the current row, which must contain the
// columns listed in trackColumns.
func scanTrack(rows *sql.Rows) (*objects.Track, error) {
	var (
		err     error
		added   int64
		changed int64
		played  int64
		skipped int64
		t       = new(objects.Track)
	)

	if err = rows.Scan(
		&t.ID,
		&t.Path,
		&t.Checksum,
		&t.Title,
		&t.Artist,
		&t.Album,
		&t.AlbumArtist,
		&t.Genre,
		&t.Composer,
		&t.Comment,
		&t.Grouping,
		&t.Kind,
		&t.TVShow,
		&t.Year,
		&t.TrackNr,
		&t.Tracks,
		&t.CDNr,
		&t.CDs,
		&t.Season,
		&t.Rating,
		&t.PlayCount,
		&t.SkipCount,
		&t.Bitrate,
		&t.SampleRate,
		&t.Size,
		&t.Length,
		&t.BPM,
		&t.Compilation,
		&t.Checked,
		&t.MediaType,
		&added,
		&changed,
		&played,
		&skipped); err != nil {
		return nil, err
	}

	t.TimeAdded = fromStamp(added)
	t.TimeModified = fromStamp(changed)
	t.TimePlayed = fromStamp(played)
	t.TimeSkipped = fromStamp(skipped)

	return t, nil
} // func scanTrack(rows *sql.Rows) (*objects.Track, error)

// TrackAdd adds a Track to the database and sets its ID.
func (db *Database) TrackAdd(t *objects.Track) error {
	var (
		err error
		res sql.Result
		id  int64
	)

	if t.Path == "" {
		return ErrInvalidValue
	} else if res, err = db.exec(query.TrackAdd, trackValues(t)...); err != nil {
		err = fmt.Errorf("Cannot add Track %s to database: %s",
			t.Path,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if id, err = res.LastInsertId(); err != nil {
		db.log.Printf("[ERROR] Cannot get ID of new Track %s: %s\n",
			t.Path,
			err.Error())
		return err
	}

	t.ID = id
	return nil
} // func (db *Database) TrackAdd(t *objects.Track) error

// TrackDelete removes a Track from the database. It disappears from all
// Playlists along with it.
func (db *Database) TrackDelete(t *objects.Track) error {
	if _, err := db.exec(query.TrackDelete, t.ID); err != nil {
		err = fmt.Errorf("Cannot delete Track %s (%d) from database: %s",
			t.Path,
			t.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	return nil
} // func (db *Database) TrackDelete(t *objects.Track) error

// TrackUpdate writes all fields of the Track to the database.
func (db *Database) TrackUpdate(t *objects.Track) error {
	var (
		err  error
		res  sql.Result
		cnt  int64
		args = append(trackValues(t), t.ID)
	)

	if res, err = db.exec(query.TrackUpdate, args...); err != nil {
		err = fmt.Errorf("Cannot update Track %s (%d): %s",
			t.Path,
			t.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if cnt, err = res.RowsAffected(); err != nil {
		db.log.Printf("[ERROR] Cannot get number of updated rows: %s\n",
			err.Error())
		return err
	} else if cnt == 0 {
		return ErrObjectNotFound
	}

	return nil
} // func (db *Database) TrackUpdate(t *objects.Track) error

func (db *Database) trackGetOne(qid query.ID, arg any) (*objects.Track, error) {
	rows, err := db.queryRows(qid, arg)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var t *objects.Track

		if t, err = scanTrack(rows); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		return t, nil
	}

	return nil, nil
} // func (db *Database) trackGetOne(qid query.ID, arg any) (*objects.Track, error)

// TrackGetByID loads a Track by its ID. If there is no such Track, it
// returns nil, nil.
func (db *Database) TrackGetByID(id int64) (*objects.Track, error) {
	return db.trackGetOne(query.TrackGetByID, id)
} // func (db *Database) TrackGetByID(id int64) (*objects.Track, error)

// TrackGetByPath looks up a Track by its path.
func (db *Database) TrackGetByPath(path string) (*objects.Track, error) {
	return db.trackGetOne(query.TrackGetByPath, path)
} // func (db *Database) TrackGetByPath(path string) (*objects.Track, error)

// TrackGetByChecksum looks up a Track by the checksum of its audio data.
func (db *Database) TrackGetByChecksum(sum string) (*objects.Track, error) {
	if sum == "" {
		return nil, ErrInvalidValue
	}

	return db.trackGetOne(query.TrackGetByChecksum, sum)
} // func (db *Database) TrackGetByChecksum(sum string) (*objects.Track, error)

// TrackGetAll loads all Tracks, ordered by their ID.
func (db *Database) TrackGetAll() ([]*objects.Track, error) {
	rows, err := db.queryRows(query.TrackGetAll)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var tracks = make([]*objects.Track, 0, 64)

	for rows.Next() {
		var t *objects.Track

		if t, err = scanTrack(rows); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		tracks = append(tracks, t)
	}

	return tracks, nil
} // func (db *Database) TrackGetAll() ([]*objects.Track, error)
