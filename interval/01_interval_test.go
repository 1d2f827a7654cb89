// /home/krylon/go/src/github.com/blicero/tabpod/interval/01_interval_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 21:44:50 krylon>

package interval

import (
	"testing"
	"time"
)

var now = time.Date(2026, 10, 5, 14, 30, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	type testCase struct {
		text  string
		lower time.Time
		upper time.Time
		err   bool
	}

	var (
		today     = time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
		endOfDay  = today.AddDate(0, 0, 1).Add(-time.Nanosecond)
		yesterday = today.AddDate(0, 0, -1)
	)

	var cases = []testCase{
		{text: "", err: true},
		{text: "   ", err: true},
		{text: "blabla", err: true},
		{text: "2026-13-01", err: true},
		{text: "-3 parsecs", err: true},
		{text: "2026", err: true},
		{text: "> 2026", err: true},
		{text: "2026 < today", err: true},
		{text: "-30", lower: now.Add(-30 * time.Second), upper: now},
		{text: "today", lower: today, upper: endOfDay},
		{text: "yesterday", lower: yesterday, upper: today.Add(-time.Nanosecond)},
		{text: "2026-10-05", lower: today, upper: endOfDay},
		{text: "2026/10/05", lower: today, upper: endOfDay},
		{text: "> -2d", lower: now.AddDate(0, 0, -2)},
		{text: "<-1w", upper: now.AddDate(0, 0, -7)},
		{text: "-1h", lower: now.Add(-time.Hour), upper: now},
		{text: "-2 weeks", lower: now.AddDate(0, 0, -14), upper: now},
		{
			text:  "2026-01-01 < 2026-01-31",
			lower: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			upper: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			text:  "2026-01-31 < 2026-01-01",
			lower: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			upper: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			text:  "2026-01-01 12:00 < now",
			lower: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			upper: now,
		},
	}

	for _, c := range cases {
		var iv, err = Parse(c.text, now)

		if c.err {
			if err == nil {
				t.Errorf("Parsing %q should have failed, but returned %s",
					c.text,
					iv)
			}
			continue
		} else if err != nil {
			t.Errorf("Error parsing %q: %s", c.text, err.Error())
			continue
		}

		if !iv.Lower.Equal(c.lower) {
			t.Errorf("Lower bound of %q: expected %s, got %s",
				c.text,
				c.lower,
				iv.Lower)
		}

		if !iv.Upper.Equal(c.upper) {
			t.Errorf("Upper bound of %q: expected %s, got %s",
				c.text,
				c.upper,
				iv.Upper)
		}
	}
} // func TestParse(t *testing.T)

func TestContains(t *testing.T) {
	var (
		err error
		iv  Interval
	)

	if iv, err = Parse("> -1w", now); err != nil {
		t.Fatalf("Cannot parse interval: %s", err.Error())
	}

	type testCase struct {
		stamp  time.Time
		expect bool
	}

	var cases = []testCase{
		{time.Time{}, false},
		{now, true},
		{now.AddDate(0, 0, -3), true},
		{now.AddDate(0, 0, -8), false},
		{now.AddDate(1, 0, 0), true},
	}

	for _, c := range cases {
		if res := iv.Contains(c.stamp); res != c.expect {
			t.Errorf("%s.Contains(%s) = %t, expected %t",
				iv,
				c.stamp,
				res,
				c.expect)
		}
	}
} // func TestContains(t *testing.T)
