// /home/krylon/go/src/github.com/blicero/tabpod/db/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 20:30:18 krylon>

package db

var initQueries = []string{
	`
CREATE TABLE folder (
    id			INTEGER PRIMARY KEY,
    path		TEXT UNIQUE NOT NULL,
    last_scan           INTEGER NOT NULL DEFAULT 0,
    CHECK (path LIKE '/%')
)
`,
	`
CREATE TABLE track (
    id                   INTEGER PRIMARY KEY,
    path                 TEXT UNIQUE NOT NULL,
    checksum             TEXT NOT NULL DEFAULT '',
    title                TEXT NOT NULL DEFAULT '',
    artist               TEXT NOT NULL DEFAULT '',
    album                TEXT NOT NULL DEFAULT '',
    album_artist         TEXT NOT NULL DEFAULT '',
    genre                TEXT NOT NULL DEFAULT '',
    composer             TEXT NOT NULL DEFAULT '',
    comment              TEXT NOT NULL DEFAULT '',
    grouping             TEXT NOT NULL DEFAULT '',
    kind                 TEXT NOT NULL DEFAULT '',
    tv_show              TEXT NOT NULL DEFAULT '',
    year                 INTEGER NOT NULL DEFAULT 0,
    track_nr             INTEGER NOT NULL DEFAULT 0,
    tracks               INTEGER NOT NULL DEFAULT 0,
    cd_nr                INTEGER NOT NULL DEFAULT 0,
    cds                  INTEGER NOT NULL DEFAULT 0,
    season               INTEGER NOT NULL DEFAULT 0,
    rating               INTEGER NOT NULL DEFAULT 0,
    play_count           INTEGER NOT NULL DEFAULT 0,
    skip_count           INTEGER NOT NULL DEFAULT 0,
    bitrate              INTEGER NOT NULL DEFAULT 0,
    sample_rate          INTEGER NOT NULL DEFAULT 0,
    size                 INTEGER NOT NULL DEFAULT 0,
    length               INTEGER NOT NULL DEFAULT 0,
    bpm                  INTEGER NOT NULL DEFAULT 0,
    compilation          INTEGER NOT NULL DEFAULT 0,
    checked              INTEGER NOT NULL DEFAULT 1,
    media_type           INTEGER NOT NULL DEFAULT 1,
    time_added           INTEGER NOT NULL DEFAULT 0,
    time_modified        INTEGER NOT NULL DEFAULT 0,
    time_played          INTEGER NOT NULL DEFAULT 0,
    time_skipped         INTEGER NOT NULL DEFAULT 0,
    CHECK (rating BETWEEN 0 AND 100)
)
`,
	"CREATE INDEX track_path_idx ON track (path)",
	"CREATE INDEX track_checksum_idx ON track (checksum)",
	"CREATE INDEX track_artist_idx ON track (artist)",
	`
CREATE TABLE playlist (
    id                   INTEGER PRIMARY KEY,
    uuid                 TEXT UNIQUE NOT NULL,
    name                 TEXT NOT NULL,
    position             INTEGER NOT NULL DEFAULT 0,
    is_spl               INTEGER NOT NULL DEFAULT 0,
    live_update          INTEGER NOT NULL DEFAULT 1,
    check_rules          INTEGER NOT NULL DEFAULT 1,
    check_limits         INTEGER NOT NULL DEFAULT 0,
    limit_type           INTEGER NOT NULL DEFAULT 3,
    limit_sort           INTEGER NOT NULL DEFAULT 2,
    limit_value          INTEGER NOT NULL DEFAULT 25,
    match_checked_only   INTEGER NOT NULL DEFAULT 0,
    match_op             INTEGER NOT NULL DEFAULT 0
)
`,
	"CREATE INDEX playlist_pos_idx ON playlist (position)",
	`
CREATE TABLE playlist_member (
    id                   INTEGER PRIMARY KEY,
    playlist_id          INTEGER NOT NULL,
    track_id             INTEGER NOT NULL,
    position             INTEGER NOT NULL,
    FOREIGN KEY (playlist_id) REFERENCES playlist (id)
        ON DELETE CASCADE
        ON UPDATE RESTRICT,
    FOREIGN KEY (track_id) REFERENCES track (id)
        ON DELETE CASCADE
        ON UPDATE RESTRICT
)
`,
	"CREATE INDEX member_pl_idx ON playlist_member (playlist_id, position)",
	`
CREATE TABLE spl_rule (
    id                   INTEGER PRIMARY KEY,
    playlist_id          INTEGER NOT NULL,
    position             INTEGER NOT NULL,
    field                INTEGER NOT NULL,
    action               INTEGER NOT NULL,
    string               TEXT NOT NULL DEFAULT '',
    from_value           INTEGER NOT NULL DEFAULT 0,
    from_date            INTEGER NOT NULL DEFAULT 0,
    from_units           INTEGER NOT NULL DEFAULT 0,
    to_value             INTEGER NOT NULL DEFAULT 0,
    to_date              INTEGER NOT NULL DEFAULT 0,
    to_units             INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (playlist_id) REFERENCES playlist (id)
        ON DELETE CASCADE
        ON UPDATE RESTRICT
)
`,
	"CREATE INDEX rule_pl_idx ON spl_rule (playlist_id, position)",
}
