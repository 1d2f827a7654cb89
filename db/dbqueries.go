// /home/krylon/go/src/github.com/blicero/tabpod/db/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 17:55:04 krylon>

package db

import "github.com/blicero/tabpod/db/query"

// trackColumns lists the columns of the track table in the order
// scanTrack expects them.
const trackColumns = `
       id,
       path,
       checksum,
       title,
       artist,
       album,
       album_artist,
       genre,
       composer,
       comment,
       grouping,
       kind,
       tv_show,
       year,
       track_nr,
       tracks,
       cd_nr,
       cds,
       season,
       rating,
       play_count,
       skip_count,
       bitrate,
       sample_rate,
       size,
       length,
       bpm,
       compilation,
       checked,
       media_type,
       time_added,
       time_modified,
       time_played,
       time_skipped
`

var dbQueries = map[query.ID]string{
	query.FolderAdd:        "INSERT INTO folder (path) VALUES (?)",
	query.FolderGetByPath:  "SELECT id, last_scan FROM folder WHERE path = ?",
	query.FolderGetByID:    "SELECT path, last_scan FROM folder WHERE id = ?",
	query.FolderGetAll:     "SELECT id, path, last_scan FROM folder",
	query.FolderUpdateScan: "UPDATE folder SET last_scan = ? WHERE id = ?",
	query.TrackAdd: `
INSERT INTO track (
       path,
       checksum,
       title,
       artist,
       album,
       album_artist,
       genre,
       composer,
       comment,
       grouping,
       kind,
       tv_show,
       year,
       track_nr,
       tracks,
       cd_nr,
       cds,
       season,
       rating,
       play_count,
       skip_count,
       bitrate,
       sample_rate,
       size,
       length,
       bpm,
       compilation,
       checked,
       media_type,
       time_added,
       time_modified,
       time_played,
       time_skipped)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
        ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
        ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
        ?, ?, ?)
`,
	query.TrackDelete:        "DELETE FROM track WHERE id = ?",
	query.TrackGetByID:       "SELECT " + trackColumns + " FROM track WHERE id = ?",
	query.TrackGetByPath:     "SELECT " + trackColumns + " FROM track WHERE path = ?",
	query.TrackGetByChecksum: "SELECT " + trackColumns + " FROM track WHERE checksum = ? LIMIT 1",
	query.TrackGetAll:        "SELECT " + trackColumns + " FROM track ORDER BY id",
	query.TrackUpdate: `
UPDATE track
SET path = ?,
    checksum = ?,
    title = ?,
    artist = ?,
    album = ?,
    album_artist = ?,
    genre = ?,
    composer = ?,
    comment = ?,
    grouping = ?,
    kind = ?,
    tv_show = ?,
    year = ?,
    track_nr = ?,
    tracks = ?,
    cd_nr = ?,
    cds = ?,
    season = ?,
    rating = ?,
    play_count = ?,
    skip_count = ?,
    bitrate = ?,
    sample_rate = ?,
    size = ?,
    length = ?,
    bpm = ?,
    compilation = ?,
    checked = ?,
    media_type = ?,
    time_added = ?,
    time_modified = ?,
    time_played = ?,
    time_skipped = ?
WHERE id = ?
`,
	query.PlaylistAdd: `
INSERT INTO playlist (
       uuid,
       name,
       position,
       is_spl,
       live_update,
       check_rules,
       check_limits,
       limit_type,
       limit_sort,
       limit_value,
       match_checked_only,
       match_op)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
	query.PlaylistDelete: "DELETE FROM playlist WHERE id = ?",
	query.PlaylistGetAll: `
SELECT id,
       uuid,
       name,
       is_spl,
       live_update,
       check_rules,
       check_limits,
       limit_type,
       limit_sort,
       limit_value,
       match_checked_only,
       match_op
FROM playlist
ORDER BY position, id
`,
	query.PlaylistUpdate: `
UPDATE playlist
SET name = ?,
    position = ?,
    live_update = ?,
    check_rules = ?,
    check_limits = ?,
    limit_type = ?,
    limit_sort = ?,
    limit_value = ?,
    match_checked_only = ?,
    match_op = ?
WHERE id = ?
`,
	query.MemberAdd:           "INSERT INTO playlist_member (playlist_id, track_id, position) VALUES (?, ?, ?)",
	query.MemberRemove:        "DELETE FROM playlist_member WHERE playlist_id = ? AND track_id = ?",
	query.MemberClear:         "DELETE FROM playlist_member WHERE playlist_id = ?",
	query.MemberGetByPlaylist: "SELECT track_id FROM playlist_member WHERE playlist_id = ? ORDER BY position, id",
	query.RuleAdd: `
INSERT INTO spl_rule (
       playlist_id,
       position,
       field,
       action,
       string,
       from_value,
       from_date,
       from_units,
       to_value,
       to_date,
       to_units)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
	query.RuleClear: "DELETE FROM spl_rule WHERE playlist_id = ?",
	query.RuleGetByPlaylist: `
SELECT field,
       action,
       string,
       from_value,
       from_date,
       from_units,
       to_value,
       to_date,
       to_units
FROM spl_rule
WHERE playlist_id = ?
ORDER BY position
`,
}
