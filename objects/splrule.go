// /home/krylon/go/src/github.com/blicero/tabpod/objects/splrule.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 20:17:29 krylon>

package objects

import "fmt"

// The numeric values of the following types match the ones used in the
// iTunesDB, so rule sets keep their meaning when they are stored.

// Field identifies the Track attribute a smart playlist rule looks at.
type Field uint32

// These are the fields supported in smart playlist rules.
const (
	FieldTitle        Field = 0x02
	FieldAlbum        Field = 0x03
	FieldArtist       Field = 0x04
	FieldBitrate      Field = 0x05
	FieldSampleRate   Field = 0x06
	FieldYear         Field = 0x07
	FieldGenre        Field = 0x08
	FieldKind         Field = 0x09
	FieldDateModified Field = 0x0a
	FieldTrackNumber  Field = 0x0b
	FieldSize         Field = 0x0c
	FieldTime         Field = 0x0d
	FieldComment      Field = 0x0e
	FieldDateAdded    Field = 0x10
	FieldComposer     Field = 0x12
	FieldPlayCount    Field = 0x16
	FieldLastPlayed   Field = 0x17
	FieldDiscNumber   Field = 0x18
	FieldRating       Field = 0x19
	FieldCompilation  Field = 0x1f
	FieldBPM          Field = 0x23
	FieldGrouping     Field = 0x27
	FieldPlaylist     Field = 0x28
	FieldVideoKind    Field = 0x3c
	FieldTVShow       Field = 0x3e
	FieldSeasonNr     Field = 0x3f
	FieldSkipCount    Field = 0x44
	FieldLastSkipped  Field = 0x45
	FieldAlbumArtist  Field = 0x47
)

// FieldNames maps Fields to the names used when displaying or parsing rules.
var FieldNames = map[Field]string{
	FieldTitle:        "title",
	FieldAlbum:        "album",
	FieldArtist:       "artist",
	FieldBitrate:      "bitrate",
	FieldSampleRate:   "samplerate",
	FieldYear:         "year",
	FieldGenre:        "genre",
	FieldKind:         "kind",
	FieldDateModified: "modified",
	FieldTrackNumber:  "tracknumber",
	FieldSize:         "size",
	FieldTime:         "time",
	FieldComment:      "comment",
	FieldDateAdded:    "added",
	FieldComposer:     "composer",
	FieldPlayCount:    "playcount",
	FieldLastPlayed:   "played",
	FieldDiscNumber:   "discnumber",
	FieldRating:       "rating",
	FieldCompilation:  "compilation",
	FieldBPM:          "bpm",
	FieldGrouping:     "grouping",
	FieldPlaylist:     "playlist",
	FieldVideoKind:    "videokind",
	FieldTVShow:       "tvshow",
	FieldSeasonNr:     "season",
	FieldSkipCount:    "skipcount",
	FieldLastSkipped:  "skipped",
	FieldAlbumArtist:  "albumartist",
}

func (f Field) String() string {
	if s, ok := FieldNames[f]; ok {
		return s
	}

	return fmt.Sprintf("Field(0x%02x)", uint32(f))
} // func (f Field) String() string

// Action is the kind of predicate a rule applies to its Field.
type Action uint32

// The "not" variants have bit 25 set, the string variants bit 24.
const (
	ActionIsInt            Action = 0x00000001
	ActionIsGreaterThan    Action = 0x00000010
	ActionIsLessThan       Action = 0x00000040
	ActionIsInTheRange     Action = 0x00000100
	ActionIsInTheLast      Action = 0x00000200
	ActionBinaryAnd        Action = 0x00000400
	ActionIsString         Action = 0x01000001
	ActionContains         Action = 0x01000002
	ActionStartsWith       Action = 0x01000004
	ActionEndsWith         Action = 0x01000008
	ActionIsNotInt         Action = 0x02000001
	ActionIsNotGreaterThan Action = 0x02000010
	ActionIsNotLessThan    Action = 0x02000040
	ActionIsNotInTheRange  Action = 0x02000100
	ActionIsNotInTheLast   Action = 0x02000200
	ActionNotBinaryAnd     Action = 0x02000400
	ActionIsNot            Action = 0x03000001
	ActionDoesNotContain   Action = 0x03000002
	ActionNotStartsWith    Action = 0x03000004
	ActionNotEndsWith      Action = 0x03000008
)

// ActionNames maps Actions to the names used when displaying or parsing rules.
var ActionNames = map[Action]string{
	ActionIsInt:            "is",
	ActionIsGreaterThan:    "greater",
	ActionIsLessThan:       "less",
	ActionIsInTheRange:     "range",
	ActionIsInTheLast:      "inthelast",
	ActionBinaryAnd:        "and",
	ActionIsString:         "is",
	ActionContains:         "contains",
	ActionStartsWith:       "startswith",
	ActionEndsWith:         "endswith",
	ActionIsNotInt:         "isnot",
	ActionIsNotGreaterThan: "notgreater",
	ActionIsNotLessThan:    "notless",
	ActionIsNotInTheRange:  "notrange",
	ActionIsNotInTheLast:   "notinthelast",
	ActionNotBinaryAnd:     "notand",
	ActionIsNot:            "isnot",
	ActionDoesNotContain:   "notcontains",
	ActionNotStartsWith:    "notstartswith",
	ActionNotEndsWith:      "notendswith",
}

func (a Action) String() string {
	if s, ok := ActionNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Action(0x%08x)", uint32(a))
} // func (a Action) String() string

// IsNegated returns true for the "not" variants of the Actions.
func (a Action) IsNegated() bool {
	return a&0x02000000 != 0
} // func (a Action) IsNegated() bool

// IsStringAction returns true if the Action compares strings.
func (a Action) IsStringAction() bool {
	return a&0x01000000 != 0
} // func (a Action) IsStringAction() bool

// Units used by the "in the last" Actions, in seconds.
const (
	UnitDays   int64 = 86400
	UnitWeeks  int64 = 604800
	UnitMonths int64 = 2628000
)

// MatchOperator determines how the rules of a smart playlist are combined.
type MatchOperator uint8

// A Track must match all rules (MatchAnd) or at least one (MatchOr).
const (
	MatchAnd MatchOperator = iota
	MatchOr
)

func (m MatchOperator) String() string {
	if m == MatchOr {
		return "OR"
	}
	return "AND"
} // func (m MatchOperator) String() string

// LimitType is the unit in which the limit of a smart playlist is given.
type LimitType uint32

// These are the units a limit can be expressed in.
const (
	LimitMinutes LimitType = 0x01
	LimitMB      LimitType = 0x02
	LimitSongs   LimitType = 0x03
	LimitHours   LimitType = 0x04
	LimitGB      LimitType = 0x05
)

// LimitTypeNames maps LimitTypes to their names.
var LimitTypeNames = map[LimitType]string{
	LimitMinutes: "minutes",
	LimitMB:      "MB",
	LimitSongs:   "tracks",
	LimitHours:   "hours",
	LimitGB:      "GB",
}

func (l LimitType) String() string {
	if s, ok := LimitTypeNames[l]; ok {
		return s
	}

	return fmt.Sprintf("LimitType(%d)", uint32(l))
} // func (l LimitType) String() string

// LimitSort is the order in which Tracks are picked when a limit applies.
type LimitSort uint32

// The "least"/"lowest" variants have the high bit set.
const (
	LimitSortRandom              LimitSort = 0x02
	LimitSortTitle               LimitSort = 0x03
	LimitSortAlbum               LimitSort = 0x04
	LimitSortArtist              LimitSort = 0x05
	LimitSortGenre               LimitSort = 0x07
	LimitSortMostRecentlyAdded   LimitSort = 0x10
	LimitSortLeastRecentlyAdded  LimitSort = 0x80000010
	LimitSortMostOftenPlayed     LimitSort = 0x14
	LimitSortLeastOftenPlayed    LimitSort = 0x80000014
	LimitSortMostRecentlyPlayed  LimitSort = 0x15
	LimitSortLeastRecentlyPlayed LimitSort = 0x80000015
	LimitSortHighestRating       LimitSort = 0x17
	LimitSortLowestRating        LimitSort = 0x80000017
)

// LimitSortNames maps LimitSorts to their names.
var LimitSortNames = map[LimitSort]string{
	LimitSortRandom:              "random",
	LimitSortTitle:               "title",
	LimitSortAlbum:               "album",
	LimitSortArtist:              "artist",
	LimitSortGenre:               "genre",
	LimitSortMostRecentlyAdded:   "recently-added",
	LimitSortLeastRecentlyAdded:  "least-recently-added",
	LimitSortMostOftenPlayed:     "most-played",
	LimitSortLeastOftenPlayed:    "least-played",
	LimitSortMostRecentlyPlayed:  "recently-played",
	LimitSortLeastRecentlyPlayed: "least-recently-played",
	LimitSortHighestRating:       "highest-rating",
	LimitSortLowestRating:        "lowest-rating",
}

func (l LimitSort) String() string {
	if s, ok := LimitSortNames[l]; ok {
		return s
	}

	return fmt.Sprintf("LimitSort(0x%x)", uint32(l))
} // func (l LimitSort) String() string

// SPLRule is a single condition of a smart playlist.
//
// For date Fields, FromValue and ToValue are Unix timestamps, unless the
// Action is one of the "in the last" variants, in which case
// FromDate * FromUnits gives the (negative) offset from the current time
// in seconds.
// Rating values are stored in the same scale as Track.Rating, Time in
// milliseconds, Size in bytes.
type SPLRule struct {
	Field     Field
	Action    Action
	String    string
	FromValue int64
	FromDate  int64
	FromUnits int64
	ToValue   int64
	ToDate    int64
	ToUnits   int64
}

// Clone returns a copy of the receiver.
func (r *SPLRule) Clone() *SPLRule {
	var c = *r
	return &c
} // func (r *SPLRule) Clone() *SPLRule

// SPLRules is the rule set of a smart playlist.
type SPLRules struct {
	Match MatchOperator
	Rules []*SPLRule
}

// Clone returns a deep copy of the receiver.
func (rs *SPLRules) Clone() SPLRules {
	var c = SPLRules{
		Match: rs.Match,
		Rules: make([]*SPLRule, len(rs.Rules)),
	}

	for idx, r := range rs.Rules {
		c.Rules[idx] = r.Clone()
	}

	return c
} // func (rs *SPLRules) Clone() SPLRules

// SPLPref holds the settings of a smart playlist.
type SPLPref struct {
	LiveUpdate       bool
	CheckRules       bool
	CheckLimits      bool
	LimitType        LimitType
	LimitSort        LimitSort
	LimitValue       int64
	MatchCheckedOnly bool
}
