// /home/krylon/go/src/github.com/blicero/tabpod/db/05_tx_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 18:40:12 krylon>

package db

import (
	"database/sql"
	"testing"
)

func TestAdHocCommitError(t *testing.T) {
	if conn == nil {
		t.SkipNow()
	} else if conn.InTransaction() {
		t.Fatal("Connection has a pending transaction")
	}

	var (
		err  error
		tx   *sql.Tx
		done func(bool) error
	)

	if tx, done, err = conn.adHoc(); err != nil {
		t.Fatalf("Cannot begin ad-hoc transaction: %s", err.Error())
	}

	// Finish the transaction behind the helper's back, so the commit
	// must fail.
	if err = tx.Rollback(); err != nil {
		t.Fatalf("Cannot roll back transaction: %s", err.Error())
	} else if err = done(true); err == nil {
		t.Error("Failed commit of ad-hoc transaction was not reported")
	}
} // func TestAdHocCommitError(t *testing.T)

func TestCommitError(t *testing.T) {
	if conn == nil {
		t.SkipNow()
	}

	var err error

	if err = conn.Begin(); err != nil {
		t.Fatalf("Cannot begin transaction: %s", err.Error())
	} else if err = conn.tx.Rollback(); err != nil {
		t.Fatalf("Cannot roll back transaction: %s", err.Error())
	} else if err = conn.Commit(); err == nil {
		t.Error("Failed commit was not reported")
	}

	if conn.InTransaction() {
		t.Error("Connection still has a transaction after a failed commit")
	}

	var done func(bool) error

	if _, done, err = conn.adHoc(); err != nil {
		t.Fatalf("Cannot begin ad-hoc transaction: %s", err.Error())
	} else if err = done(true); err != nil {
		t.Errorf("Commit of empty ad-hoc transaction failed: %s", err.Error())
	}
} // func TestCommitError(t *testing.T)
