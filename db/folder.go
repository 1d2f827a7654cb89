// /home/krylon/go/src/github.com/blicero/tabpod/db/folder.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 21:02:11 krylon>

package db

import (
	"fmt"
	"time"

	"github.com/blicero/tabpod/db/query"
	"github.com/blicero/tabpod/objects"
)

// FolderAdd adds a new Folder to the database.
func (db *Database) FolderAdd(f *objects.Folder) error {
	var (
		err error
		id  int64
	)

	res, err := db.exec(query.FolderAdd, f.Path)
	if err != nil {
		err = fmt.Errorf("Cannot add Folder %s to database: %s",
			f.Path,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if id, err = res.LastInsertId(); err != nil {
		db.log.Printf("[ERROR] Cannot get ID of new Folder %s: %s\n",
			f.Path,
			err.Error())
		return err
	}

	f.ID = id
	return nil
} // func (db *Database) FolderAdd(f *objects.Folder) error

// FolderUpdateScan updates a Folder's last_scan timestamp.
func (db *Database) FolderUpdateScan(f *objects.Folder, t time.Time) error {
	if _, err := db.exec(query.FolderUpdateScan, t.Unix(), f.ID); err != nil {
		err = fmt.Errorf("Cannot update scan time of Folder %s: %s",
			f.Path,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	f.LastScan = t
	return nil
} // func (db *Database) FolderUpdateScan(f *objects.Folder, t time.Time) error

// FolderGetByPath looks up a Folder by its Path. If there is no such
// Folder, it returns nil, nil.
func (db *Database) FolderGetByPath(path string) (*objects.Folder, error) {
	rows, err := db.queryRows(query.FolderGetByPath, path)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			s int64
			f = &objects.Folder{Path: path}
		)

		if err = rows.Scan(&f.ID, &s); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		f.LastScan = fromStamp(s)

		return f, nil
	}

	return nil, nil
} // func (db *Database) FolderGetByPath(path string) (*objects.Folder, error)

// FolderGetByID looks up a Folder by its ID
func (db *Database) FolderGetByID(id int64) (*objects.Folder, error) {
	rows, err := db.queryRows(query.FolderGetByID, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			s int64
			f = &objects.Folder{ID: id}
		)

		if err = rows.Scan(&f.Path, &s); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		f.LastScan = fromStamp(s)

		return f, nil
	}

	return nil, nil
} // func (db *Database) FolderGetByID(id int64) (*objects.Folder, error)

// FolderGetAll return all Folders from the database.
func (db *Database) FolderGetAll() ([]objects.Folder, error) {
	rows, err := db.queryRows(query.FolderGetAll)
	if err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var folders = make([]objects.Folder, 0, 4)

	for rows.Next() {
		var (
			s int64
			f objects.Folder
		)

		if err = rows.Scan(&f.ID, &f.Path, &s); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		f.LastScan = fromStamp(s)
		folders = append(folders, f)
	}

	return folders, nil
} // func (db *Database) FolderGetAll() ([]objects.Folder, error)
