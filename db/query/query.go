// /home/krylon/go/src/github.com/blicero/tabpod/db/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 20:12:33 krylon>

// Package query provides symbolic constants to identify SQL queries.
package query

//go:generate stringer -type=ID

// ID identifies a database query.
type ID uint8

const (
	FolderAdd ID = iota
	FolderGetByPath
	FolderGetByID
	FolderGetAll
	FolderUpdateScan
	TrackAdd
	TrackDelete
	TrackGetByID
	TrackGetByPath
	TrackGetByChecksum
	TrackGetAll
	TrackUpdate
	PlaylistAdd
	PlaylistDelete
	PlaylistGetAll
	PlaylistUpdate
	MemberAdd
	MemberRemove
	MemberClear
	MemberGetByPlaylist
	RuleAdd
	RuleClear
	RuleGetByPlaylist
)
