// /home/krylon/go/src/github.com/blicero/tabpod/spl/parse.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 19:03:26 krylon>

package spl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blicero/tabpod/objects"
)

// Operators that can be used instead of the Action names in ParseRule.
var symbolActions = map[string]objects.Action{
	"=":  objects.ActionIsInt,
	"!=": objects.ActionIsNotInt,
	">":  objects.ActionIsGreaterThan,
	"<":  objects.ActionIsLessThan,
	">=": objects.ActionIsGreaterThan,
	"<=": objects.ActionIsLessThan,
}

// ParseField looks up a Field by its name.
func ParseField(name string) (objects.Field, error) {
	var n = strings.ToLower(name)

	for f, s := range objects.FieldNames {
		if s == n {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidField, name)
} // func ParseField(name string) (objects.Field, error)

// ParseLimitType looks up a LimitType by its name.
func ParseLimitType(name string) (objects.LimitType, error) {
	for l, s := range objects.LimitTypeNames {
		if strings.EqualFold(s, name) {
			return l, nil
		}
	}

	return 0, fmt.Errorf("Unknown limit type %q", name)
} // func ParseLimitType(name string) (objects.LimitType, error)

// ParseLimitSort looks up a LimitSort by its name.
func ParseLimitSort(name string) (objects.LimitSort, error) {
	for l, s := range objects.LimitSortNames {
		if strings.EqualFold(s, name) {
			return l, nil
		}
	}

	return 0, fmt.Errorf("Unknown limit sort order %q", name)
} // func ParseLimitSort(name string) (objects.LimitSort, error)

// ParseMatch parses a match operator, "and" or "or".
func ParseMatch(s string) (objects.MatchOperator, error) {
	switch strings.ToLower(s) {
	case "and", "all":
		return objects.MatchAnd, nil
	case "or", "any":
		return objects.MatchOr, nil
	default:
		return 0, fmt.Errorf("Unknown match operator %q", s)
	}
} // func ParseMatch(s string) (objects.MatchOperator, error)

func parseAction(f objects.Field, name string) (objects.Action, error) {
	var n = strings.ToLower(name)

	if a, ok := symbolActions[n]; ok {
		if TypeOf(f) == TypeString {
			switch a {
			case objects.ActionIsInt:
				a = objects.ActionIsString
			case objects.ActionIsNotInt:
				a = objects.ActionIsNot
			}
		}
		if ValidAction(f, a) {
			return a, nil
		}
	}

	for _, a := range typeActions[TypeOf(f)] {
		if objects.ActionNames[a] == n {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q for field %s",
		ErrInvalidAction,
		name,
		f)
} // func parseAction(f objects.Field, name string) (objects.Action, error)

// ParseRule builds a rule from a textual description of the form
// "field action operand...". Numeric operands are given in the units the
// user sees (stars, seconds, megabytes), dates as YYYY-MM-DD, "in the
// last" operands as a number and a unit (days, weeks, months), playlists
// by their ID. The operators =, !=, <, >, <= and >= may be used in place
// of the Action names.
//
// Examples:
//
//	artist contains led zeppelin
//	rating >= 4
//	year range 1970 1979
//	played inthelast 2 weeks
//	compilation is
func ParseRule(text string) (*objects.SPLRule, error) {
	var (
		err    error
		tokens = strings.Fields(text)
		r      = &objects.SPLRule{FromUnits: 1, ToUnits: 1}
	)

	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least a field and an action",
			ErrInvalidRule,
			text)
	}

	if r.Field, err = ParseField(tokens[0]); err != nil {
		return nil, err
	} else if r.Action, err = parseAction(r.Field, tokens[1]); err != nil {
		return nil, err
	}

	var (
		args  = tokens[2:]
		scale = Scale(r.Field)
	)

	switch OperandKind(r) {
	case OperandNone:
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: %s does not take an operand",
				ErrInvalidRule,
				r.Field)
		}
	case OperandString:
		r.String = strings.Join(args, " ")
	case OperandValue, OperandMask, OperandPlaylist:
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: expected one value", ErrInvalidRule)
		} else if r.FromValue, err = strconv.ParseInt(args[0], 0, 64); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, err.Error())
		}
		r.FromValue *= scale
	case OperandRange:
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: expected two values", ErrInvalidRule)
		} else if r.FromValue, err = strconv.ParseInt(args[0], 0, 64); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, err.Error())
		} else if r.ToValue, err = strconv.ParseInt(args[1], 0, 64); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, err.Error())
		}
		r.FromValue *= scale
		r.ToValue *= scale
	case OperandDate:
		var t time.Time
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: expected one date", ErrInvalidRule)
		} else if t, err = time.ParseInLocation("2006-01-02", args[0], time.Local); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, err.Error())
		}
		r.FromValue = t.Unix()
	case OperandDateRange:
		var t1, t2 time.Time
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: expected two dates", ErrInvalidRule)
		} else if t1, err = time.ParseInLocation("2006-01-02", args[0], time.Local); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, err.Error())
		} else if t2, err = time.ParseInLocation("2006-01-02", args[1], time.Local); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, err.Error())
		}
		r.FromValue = t1.Unix()
		r.ToValue = t2.AddDate(0, 0, 1).Unix() - 1
	case OperandInTheLast:
		var n int64
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: expected a number and a unit", ErrInvalidRule)
		} else if n, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRule, err.Error())
		}

		switch strings.ToLower(args[1]) {
		case "d", "day", "days":
			r.FromUnits = objects.UnitDays
		case "w", "week", "weeks":
			r.FromUnits = objects.UnitWeeks
		case "m", "month", "months":
			r.FromUnits = objects.UnitMonths
		default:
			return nil, fmt.Errorf("%w: unknown unit %q", ErrInvalidRule, args[1])
		}

		if n < 0 {
			n = -n
		}
		r.FromDate = -n
	}

	// Turn the inclusive comparisons into the exclusive ones a rule can
	// express.
	switch tokens[1] {
	case ">=":
		r.FromValue--
	case "<=":
		if OperandKind(r) == OperandDate {
			r.FromValue += 86400
		} else {
			r.FromValue++
		}
	}

	return r, nil
} // func ParseRule(text string) (*objects.SPLRule, error)
