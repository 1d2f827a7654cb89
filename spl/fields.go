// /home/krylon/go/src/github.com/blicero/tabpod/spl/fields.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 19:02:37 krylon>

package spl

import (
	"time"

	"github.com/blicero/tabpod/objects"
)

//go:generate stringer -type=FieldType

// FieldType classifies the Fields by the kind of value they hold, which
// determines the Actions that can be applied to them.
type FieldType uint8

// These are the types of Field
const (
	TypeString FieldType = iota
	TypeInt
	TypeDate
	TypeBoolean
	TypePlaylist
	TypeBinaryAnd
	TypeInvalid
)

var fieldTypes = map[objects.Field]FieldType{
	objects.FieldTitle:        TypeString,
	objects.FieldAlbum:        TypeString,
	objects.FieldArtist:       TypeString,
	objects.FieldBitrate:      TypeInt,
	objects.FieldSampleRate:   TypeInt,
	objects.FieldYear:         TypeInt,
	objects.FieldGenre:        TypeString,
	objects.FieldKind:         TypeString,
	objects.FieldDateModified: TypeDate,
	objects.FieldTrackNumber:  TypeInt,
	objects.FieldSize:         TypeInt,
	objects.FieldTime:         TypeInt,
	objects.FieldComment:      TypeString,
	objects.FieldDateAdded:    TypeDate,
	objects.FieldComposer:     TypeString,
	objects.FieldPlayCount:    TypeInt,
	objects.FieldLastPlayed:   TypeDate,
	objects.FieldDiscNumber:   TypeInt,
	objects.FieldRating:       TypeInt,
	objects.FieldCompilation:  TypeBoolean,
	objects.FieldBPM:          TypeInt,
	objects.FieldGrouping:     TypeString,
	objects.FieldPlaylist:     TypePlaylist,
	objects.FieldVideoKind:    TypeBinaryAnd,
	objects.FieldTVShow:       TypeString,
	objects.FieldSeasonNr:     TypeInt,
	objects.FieldSkipCount:    TypeInt,
	objects.FieldLastSkipped:  TypeDate,
	objects.FieldAlbumArtist:  TypeString,
}

// TypeOf returns the FieldType of the given Field.
func TypeOf(f objects.Field) FieldType {
	if ft, ok := fieldTypes[f]; ok {
		return ft
	}

	return TypeInvalid
} // func TypeOf(f objects.Field) FieldType

// The first Action in each list is the one a rule falls back to when
// its Field is changed to a different type.
var typeActions = map[FieldType][]objects.Action{
	TypeString: {
		objects.ActionContains,
		objects.ActionDoesNotContain,
		objects.ActionIsString,
		objects.ActionIsNot,
		objects.ActionStartsWith,
		objects.ActionEndsWith,
	},
	TypeInt: {
		objects.ActionIsInt,
		objects.ActionIsNotInt,
		objects.ActionIsGreaterThan,
		objects.ActionIsLessThan,
		objects.ActionIsInTheRange,
		objects.ActionIsNotInTheRange,
	},
	TypeDate: {
		objects.ActionIsInt,
		objects.ActionIsNotInt,
		objects.ActionIsGreaterThan,
		objects.ActionIsLessThan,
		objects.ActionIsInTheLast,
		objects.ActionIsNotInTheLast,
		objects.ActionIsInTheRange,
		objects.ActionIsNotInTheRange,
	},
	TypeBoolean: {
		objects.ActionIsInt,
		objects.ActionIsNotInt,
	},
	TypePlaylist: {
		objects.ActionIsInt,
		objects.ActionIsNotInt,
	},
	TypeBinaryAnd: {
		objects.ActionBinaryAnd,
		objects.ActionNotBinaryAnd,
	},
}

// Actions returns the Actions that are valid for the given Field.
func Actions(f objects.Field) []objects.Action {
	var (
		list = typeActions[TypeOf(f)]
		res  = make([]objects.Action, len(list))
	)

	copy(res, list)
	return res
} // func Actions(f objects.Field) []objects.Action

// ValidAction returns true if the Action can be applied to the Field.
func ValidAction(f objects.Field, a objects.Action) bool {
	for _, x := range typeActions[TypeOf(f)] {
		if x == a {
			return true
		}
	}

	return false
} // func ValidAction(f objects.Field, a objects.Action) bool

// Scale returns the factor by which a value entered by the user has to be
// multiplied to get the value stored in a rule: stars for ratings,
// seconds for the playing time and megabytes for the file size.
func Scale(f objects.Field) int64 {
	switch f {
	case objects.FieldRating:
		return objects.RatingStep
	case objects.FieldTime:
		return 1000
	case objects.FieldSize:
		return 1 << 20
	default:
		return 1
	}
} // func Scale(f objects.Field) int64

func stringValue(t *objects.Track, f objects.Field) string {
	switch f {
	case objects.FieldTitle:
		return t.Title
	case objects.FieldAlbum:
		return t.Album
	case objects.FieldArtist:
		return t.Artist
	case objects.FieldGenre:
		return t.Genre
	case objects.FieldKind:
		return t.Kind
	case objects.FieldComment:
		return t.Comment
	case objects.FieldComposer:
		return t.Composer
	case objects.FieldGrouping:
		return t.Grouping
	case objects.FieldTVShow:
		return t.TVShow
	case objects.FieldAlbumArtist:
		return t.AlbumArtist
	default:
		return ""
	}
} // func stringValue(t *objects.Track, f objects.Field) string

func intValue(t *objects.Track, f objects.Field) int64 {
	switch f {
	case objects.FieldBitrate:
		return int64(t.Bitrate)
	case objects.FieldSampleRate:
		return int64(t.SampleRate)
	case objects.FieldYear:
		return int64(t.Year)
	case objects.FieldTrackNumber:
		return int64(t.TrackNr)
	case objects.FieldSize:
		return t.Size
	case objects.FieldTime:
		return t.Length
	case objects.FieldPlayCount:
		return int64(t.PlayCount)
	case objects.FieldDiscNumber:
		return int64(t.CDNr)
	case objects.FieldRating:
		return int64(t.Rating)
	case objects.FieldBPM:
		return int64(t.BPM)
	case objects.FieldSeasonNr:
		return int64(t.Season)
	case objects.FieldSkipCount:
		return int64(t.SkipCount)
	case objects.FieldVideoKind:
		return int64(t.MediaType)
	case objects.FieldCompilation:
		if t.Compilation {
			return 1
		}
		return 0
	default:
		return 0
	}
} // func intValue(t *objects.Track, f objects.Field) int64

func dateValue(t *objects.Track, f objects.Field) time.Time {
	switch f {
	case objects.FieldDateModified:
		return t.TimeModified
	case objects.FieldDateAdded:
		return t.TimeAdded
	case objects.FieldLastPlayed:
		return t.TimePlayed
	case objects.FieldLastSkipped:
		return t.TimeSkipped
	default:
		return time.Time{}
	}
} // func dateValue(t *objects.Track, f objects.Field) time.Time
