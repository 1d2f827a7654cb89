// /home/krylon/go/src/github.com/blicero/tabpod/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 20:31:07 krylon>

// Package logdomain provides constants for log sources.
package logdomain

//go:generate stringer -type=ID

// ID represents a log source
type ID uint8

// These constants signify the various parts of the application.
const (
	Common ID = iota
	DBPool
	Database
	Scanner
	Library
	SortTab
	SmartPlaylist
	Prefs
	Export
	CLI
	Player
)

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		DBPool,
		Database,
		Scanner,
		Library,
		SortTab,
		SmartPlaylist,
		Prefs,
		Export,
		CLI,
		Player,
	}
} // func AllDomains() []ID
