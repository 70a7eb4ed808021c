// Package main - normalize.go
//
// Query normalization and resolution for timelist.
//
// This file turns a raw launcher query into a single resolved instant:
// - Empty queries resolve to the current time
// - All-digit queries above a threshold are taken as raw epoch seconds
// - Informal phrases ("last night", "bedtime") are rewritten before parsing
// - The rewritten string is parsed by a layered set of strategies: signed
//   offsets ("-1 week"), day words with clock times ("yesterday 9pm"), and
//   finally a general natural-language parser
//
// A query that survives none of the strategies yields errUnparseable, which
// the launcher contract treats as "no results" rather than a failure.

package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ijt/go-anytime"
)

// errUnparseable marks a query no strategy could resolve. The run emits
// nothing and still exits 0 when this is the cause.
var errUnparseable = errors.New("unparseable query")

// rawEpochThreshold is the smallest numeric query treated as an epoch value
// rather than as text. The cutoff is a heuristic inherited from the original
// workflow, not a contract.
const rawEpochThreshold = 10000

type phrase struct {
	match       string
	replacement string
}

// phraseTable rewrites informal phrases to forms the parsers accept.
// Order matters: multi-word phrases must run before their substrings so
// "last night" never degrades into "last 9pm".
var phraseTable = []phrase{
	{"bedtime", "10pm"},
	{"morning", "7am"},
	{"last night", "yesterday 9pm"},
	{"tonight", "today 9pm"},
	{"night", "9pm"},
	{"afternoon", "3pm"},
	{"last week", "-1 week"},
	{"next week", "+1 week"},
}

// normalizeQuery applies the built-in phrase table, then any user phrases,
// replacing every occurrence of each phrase in order.
func normalizeQuery(query string, extra []phrase) string {
	for _, p := range phraseTable {
		query = strings.ReplaceAll(query, p.match, p.replacement)
	}
	for _, p := range extra {
		query = strings.ReplaceAll(query, p.match, p.replacement)
	}
	return query
}

// resolveQuery derives the single resolved instant for a run. The result is
// always in UTC at second precision. Relative terms are interpreted against
// now in UTC.
func resolveQuery(query string, now time.Time, extra []phrase) (time.Time, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return now.UTC().Truncate(time.Second), nil
	}
	if sec, ok := rawEpoch(query); ok {
		return time.Unix(sec, 0).UTC(), nil
	}

	q := normalizeQuery(query, extra)
	if t, ok := parseSignedOffset(q, now); ok {
		return t.UTC().Truncate(time.Second), nil
	}
	if t, ok := parseDayClock(q, now); ok {
		return t, nil
	}
	if t, err := anytime.Parse(q, now.UTC()); err == nil {
		return t.UTC().Truncate(time.Second), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", errUnparseable, query)
}

// rawEpoch reports whether the query is purely numeric and large enough to
// be an already-resolved epoch value. Such queries bypass all text handling.
func rawEpoch(query string) (int64, bool) {
	for _, c := range query {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(query, 10, 64)
	if err != nil || n <= rawEpochThreshold {
		return 0, false
	}
	return n, true
}

var signedOffsetRe = regexp.MustCompile(`^([+-])(\d+) ?(second|minute|hour|day|week|month|year)s?$`)

// parseSignedOffset handles "+N unit" / "-N unit" strings, which is what the
// phrase table emits for "last week" and "next week". Calendar units go
// through AddDate so month and year offsets follow civil-time arithmetic.
func parseSignedOffset(q string, now time.Time) (time.Time, bool) {
	m := signedOffsetRe.FindStringSubmatch(strings.ToLower(q))
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	if m[1] == "-" {
		n = -n
	}
	switch m[3] {
	case "second":
		return now.Add(time.Duration(n) * time.Second), true
	case "minute":
		return now.Add(time.Duration(n) * time.Minute), true
	case "hour":
		return now.Add(time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, n), true
	case "week":
		return now.AddDate(0, 0, 7*n), true
	case "month":
		return now.AddDate(0, n, 0), true
	case "year":
		return now.AddDate(n, 0, 0), true
	}
	return time.Time{}, false
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)$`)

var dayOffsets = map[string]int{
	"yesterday": -1,
	"today":     0,
	"tomorrow":  1,
}

// parseDayClock handles the shapes the phrase table produces: an optional
// day word ("yesterday", "today", "tomorrow") followed by an optional
// 12-hour clock time ("9pm", "9:30pm"). A bare day word resolves to
// midnight of that day; a bare clock time resolves against today.
func parseDayClock(q string, now time.Time) (time.Time, bool) {
	fields := strings.Fields(strings.ToLower(q))
	if len(fields) == 0 || len(fields) > 2 {
		return time.Time{}, false
	}

	now = now.UTC()
	day := now
	clock := fields[0]
	if off, ok := dayOffsets[fields[0]]; ok {
		day = now.AddDate(0, 0, off)
		if len(fields) == 1 {
			y, m, d := day.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
		clock = fields[1]
	} else if len(fields) == 2 {
		return time.Time{}, false
	}

	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return time.Time{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	min := 0
	if m[2] != "" {
		min, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || min > 59 {
		return time.Time{}, false
	}
	if hour == 12 {
		hour = 0
	}
	if m[3] == "pm" {
		hour += 12
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, hour, min, 0, 0, time.UTC), true
}
