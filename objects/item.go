// /home/krylon/go/src/github.com/blicero/tabpod/objects/item.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 21:05:55 krylon>

package objects

import (
	"strconv"
	"time"
)

//go:generate stringer -type=Item

// Item identifies a single field of a Track.
type Item uint8

// These are the Track fields that can be addressed by an Item.
const (
	ItemTitle Item = iota
	ItemArtist
	ItemAlbum
	ItemAlbumArtist
	ItemGenre
	ItemComposer
	ItemComment
	ItemGrouping
	ItemYear
	ItemRating
	ItemPlayCount
	ItemTimeAdded
	ItemTimeModified
	ItemTimePlayed
	ItemTimeSkipped
)

// ItemString returns the value of the given Item as a string.
// For the timestamp Items, the empty string is returned.
func (t *Track) ItemString(i Item) string {
	switch i {
	case ItemTitle:
		return t.Title
	case ItemArtist:
		return t.Artist
	case ItemAlbum:
		return t.Album
	case ItemAlbumArtist:
		return t.AlbumArtist
	case ItemGenre:
		return t.Genre
	case ItemComposer:
		return t.Composer
	case ItemComment:
		return t.Comment
	case ItemGrouping:
		return t.Grouping
	case ItemYear:
		if t.Year == 0 {
			return ""
		}
		return strconv.Itoa(t.Year)
	case ItemRating:
		return strconv.Itoa(t.StarRating())
	case ItemPlayCount:
		return strconv.Itoa(t.PlayCount)
	default:
		return ""
	}
} // func (t *Track) ItemString(i Item) string

// ItemTime returns the timestamp for one of the time Items.
// For all other Items, the zero Time is returned.
func (t *Track) ItemTime(i Item) time.Time {
	switch i {
	case ItemTimeAdded:
		return t.TimeAdded
	case ItemTimeModified:
		return t.TimeModified
	case ItemTimePlayed:
		return t.TimePlayed
	case ItemTimeSkipped:
		return t.TimeSkipped
	default:
		return time.Time{}
	}
} // func (t *Track) ItemTime(i Item) time.Time
