// /home/krylon/go/src/github.com/blicero/tabpod/sorttab/category.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 21:12:40 krylon>

package sorttab

import (
	"fmt"
	"strings"

	"github.com/blicero/tabpod/objects"
)

//go:generate stringer -type=Category

// Category determines how a sort tab groups its Tracks.
type Category uint8

// CatSpecial filters Tracks by the conditions of the special sort tab
// instead of grouping them. Keep is passed to Init or SetCategory to
// leave a tab's Category unchanged.
const (
	CatArtist Category = iota
	CatAlbum
	CatGenre
	CatComposer
	CatTitle
	CatYear
	CatSpecial
	Keep Category = 0xff
)

var catNames = map[Category]string{
	CatArtist:   "artist",
	CatAlbum:    "album",
	CatGenre:    "genre",
	CatComposer: "composer",
	CatTitle:    "title",
	CatYear:     "year",
	CatSpecial:  "special",
}

// Name returns the name of the Category as used in the preferences.
func (c Category) Name() string {
	return catNames[c]
} // func (c Category) Name() string

// ParseCategory looks up a Category by its name.
func ParseCategory(s string) (Category, error) {
	var n = strings.ToLower(strings.TrimSpace(s))

	for c, name := range catNames {
		if name == n {
			return c, nil
		}
	}

	return Keep, fmt.Errorf("Unknown category %q", s)
} // func ParseCategory(s string) (Category, error)

// Item returns the Track field a normal Category groups by.
func (c Category) Item() objects.Item {
	switch c {
	case CatArtist:
		return objects.ItemArtist
	case CatAlbum:
		return objects.ItemAlbum
	case CatGenre:
		return objects.ItemGenre
	case CatComposer:
		return objects.ItemComposer
	case CatYear:
		return objects.ItemYear
	default:
		return objects.ItemTitle
	}
} // func (c Category) Item() objects.Item
