// /home/krylon/go/src/github.com/blicero/tabpod/interval/interval.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 21:40:13 krylon>

// Package interval parses the textual time ranges used by the conditions
// of the special sort tab, e.g. "> -2w", "2026-01-01 < 2026-03-31" or
// "yesterday".
package interval

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrEmpty is returned when trying to parse an empty string.
var ErrEmpty = errors.New("empty interval")

// Interval is a range of time. A zero Lower or Upper bound means the
// Interval is open at that end. Both bounds are inclusive.
type Interval struct {
	Lower time.Time
	Upper time.Time
}

// Contains returns true if the timestamp falls within the Interval.
// A zero timestamp (e.g. a Track that was never played) is never
// contained in any Interval.
func (iv Interval) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	} else if !iv.Lower.IsZero() && t.Before(iv.Lower) {
		return false
	} else if !iv.Upper.IsZero() && t.After(iv.Upper) {
		return false
	}

	return true
} // func (iv Interval) Contains(t time.Time) bool

func (iv Interval) String() string {
	const format = "2006-01-02 15:04:05"
	var lo, hi = "...", "..."

	if !iv.Lower.IsZero() {
		lo = iv.Lower.Format(format)
	}
	if !iv.Upper.IsZero() {
		hi = iv.Upper.Format(format)
	}

	return fmt.Sprintf("[%s, %s]", lo, hi)
} // func (iv Interval) String() string

// A term is a single point in time, as it appears on either side of
// the "<" in an interval. If day is true, the term denotes a whole day,
// starting at start.
type term struct {
	start    time.Time
	day      bool
	relative bool
}

func (tm term) end() time.Time {
	if tm.day {
		return tm.start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return tm.start
} // func (tm term) end() time.Time

var (
	absPat = regexp.MustCompile(
		`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)
	relPat = regexp.MustCompile(`^([-+]?)\s*(\d+)\s*([a-z]*)$`)
)

// Parse parses an interval specification. now is the reference point for
// relative terms and the keywords "now", "today" and "yesterday".
//
// The accepted forms are "A < B", "< B", "> A" and a single term. A term
// is one of the keywords, an absolute date (YYYY-MM-DD or YYYY/MM/DD,
// optionally followed by HH:MM or HH:MM:SS), or a relative offset such
// as "-2d", "+3 h" or "-1 month". An offset without a unit is in seconds
// and needs a sign. A single absolute date covers that whole
// day, a single relative term covers the time between that point and now.
func Parse(text string, now time.Time) (Interval, error) {
	var (
		err    error
		iv     Interval
		lo, hi term
		s      = strings.ToLower(strings.TrimSpace(text))
	)

	if s == "" {
		return iv, ErrEmpty
	}

	switch {
	case strings.HasPrefix(s, "<"):
		if hi, err = parseTerm(s[1:], now); err != nil {
			return iv, err
		}
		iv.Upper = hi.end()
	case strings.HasPrefix(s, ">"):
		if lo, err = parseTerm(s[1:], now); err != nil {
			return iv, err
		}
		iv.Lower = lo.start
	case strings.Contains(s, "<"):
		var pieces = strings.SplitN(s, "<", 2)

		if lo, err = parseTerm(pieces[0], now); err != nil {
			return iv, err
		} else if hi, err = parseTerm(pieces[1], now); err != nil {
			return iv, err
		}

		iv.Lower = lo.start
		iv.Upper = hi.end()

		if iv.Upper.Before(iv.Lower) {
			iv.Lower, iv.Upper = hi.start, lo.end()
		}
	default:
		if lo, err = parseTerm(s, now); err != nil {
			return iv, err
		}

		switch {
		case lo.day:
			iv.Lower, iv.Upper = lo.start, lo.end()
		case lo.relative && lo.start.After(now):
			iv.Lower, iv.Upper = now, lo.start
		case lo.relative:
			iv.Lower, iv.Upper = lo.start, now
		default:
			iv.Lower, iv.Upper = lo.start, lo.start
		}
	}

	return iv, nil
} // func Parse(text string, now time.Time) (Interval, error)

func parseTerm(text string, now time.Time) (term, error) {
	var (
		tm term
		s  = strings.TrimSpace(text)
	)

	switch s {
	case "":
		return tm, ErrEmpty
	case "now":
		tm.start = now
		return tm, nil
	case "today":
		tm.start = midnight(now)
		tm.day = true
		return tm, nil
	case "yesterday":
		tm.start = midnight(now).AddDate(0, 0, -1)
		tm.day = true
		return tm, nil
	}

	if m := absPat.FindStringSubmatch(s); m != nil {
		return parseAbsolute(m, now.Location())
	} else if m = relPat.FindStringSubmatch(s); m != nil {
		return parseRelative(m, now)
	}

	return tm, fmt.Errorf("Cannot parse time %q", s)
} // func parseTerm(text string, now time.Time) (term, error)

func parseAbsolute(m []string, loc *time.Location) (term, error) {
	var (
		tm     term
		fields [6]int
	)

	for i := 0; i < 6; i++ {
		if m[i+1] == "" {
			continue
		}

		var n, err = strconv.Atoi(m[i+1])
		if err != nil {
			return tm, fmt.Errorf("Invalid number %q in date: %s",
				m[i+1],
				err.Error())
		}
		fields[i] = n
	}

	if fields[1] < 1 || fields[1] > 12 {
		return tm, fmt.Errorf("Invalid month %d", fields[1])
	} else if fields[2] < 1 || fields[2] > 31 {
		return tm, fmt.Errorf("Invalid day %d", fields[2])
	} else if fields[3] > 23 || fields[4] > 59 || fields[5] > 59 {
		return tm, fmt.Errorf("Invalid time of day %02d:%02d:%02d",
			fields[3],
			fields[4],
			fields[5])
	}

	tm.start = time.Date(
		fields[0],
		time.Month(fields[1]),
		fields[2],
		fields[3],
		fields[4],
		fields[5],
		0,
		loc)
	tm.day = m[4] == ""

	return tm, nil
} // func parseAbsolute(m []string, loc *time.Location) (term, error)

func parseRelative(m []string, now time.Time) (term, error) {
	var (
		err error
		n   int
		tm  = term{relative: true}
	)

	if n, err = strconv.Atoi(m[2]); err != nil {
		return tm, fmt.Errorf("Invalid number %q: %s", m[2], err.Error())
	}

	if m[1] == "-" {
		n = -n
	}

	switch m[3] {
	case "":
		// Seconds, but a bare number such as "2026" is most likely a
		// date with parts missing.
		if m[1] == "" {
			return tm, fmt.Errorf("Number %s needs a sign or a unit", m[2])
		}
		tm.start = now.Add(time.Duration(n) * time.Second)
	case "s", "sec", "second", "seconds":
		tm.start = now.Add(time.Duration(n) * time.Second)
	case "min", "minute", "minutes":
		tm.start = now.Add(time.Duration(n) * time.Minute)
	case "h", "hour", "hours":
		tm.start = now.Add(time.Duration(n) * time.Hour)
	case "d", "day", "days":
		tm.start = now.AddDate(0, 0, n)
	case "w", "week", "weeks":
		tm.start = now.AddDate(0, 0, n*7)
	case "m", "month", "months":
		tm.start = now.AddDate(0, n, 0)
	case "y", "year", "years":
		tm.start = now.AddDate(n, 0, 0)
	default:
		return tm, fmt.Errorf("Unknown time unit %q", m[3])
	}

	return tm, nil
} // func parseRelative(m []string, now time.Time) (term, error)

func midnight(t time.Time) time.Time {
	var y, mon, d = t.Date()
	return time.Date(y, mon, d, 0, 0, 0, 0, t.Location())
} // func midnight(t time.Time) time.Time
