// Package main - format.go
//
// Timestamp formatters for timelist.
//
// This file derives the six fixed representations of the resolved instant:
// unix seconds, epoch milliseconds, a simple date and an ISO 8601 string in
// UTC, and the same pair in the display zone. The display zone is passed
// explicitly to every call; no process-global zone state is touched.

package main

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	simpleLayout = "02-01-2006 15:04:05"
	isoLayout    = "2006-01-02T15:04:05-07:00"
)

// Stable per-role item identifiers.
const (
	uidUnixSeconds = "time.unix-seconds"
	uidEpochMs     = "time.epoch-ms"
	uidSimpleUTC   = "time.simple-utc"
	uidISOUTC      = "time.iso-utc"
	uidSimpleZone  = "time.simple-zone"
	uidISOZone     = "time.iso-zone"
)

// collectItems appends the six representations of t to the feedback list,
// in display order. zone is the second display zone (Europe/London unless
// overridden) and zoneName its IANA name for subtitles.
func collectItems(fb *Feedback, t time.Time, zone *time.Location, zoneName string) {
	label := zoneLabel(zoneName)

	unix := strconv.FormatInt(t.Unix(), 10)
	fb.Add(uidUnixSeconds, unix, unix, "Unix timestamp (s)")

	millis := strconv.FormatInt(t.Unix()*1000, 10)
	fb.Add(uidEpochMs, millis, millis, "Epoch timestamp (ms)")

	simpleUTC := t.UTC().Format(simpleLayout)
	fb.Add(uidSimpleUTC, simpleUTC, simpleUTC, "Simple date (UTC)")

	// A zero offset renders as +00:00 with this layout; the launcher rows
	// show the conventional Z suffix instead.
	isoUTC := strings.Replace(t.UTC().Format(isoLayout), "+00:00", "Z", 1)
	fb.Add(uidISOUTC, isoUTC, isoUTC, "ISO 8601 (UTC)")

	local := t.In(zone)
	simpleZone := local.Format(simpleLayout)
	fb.Add(uidSimpleZone, simpleZone, simpleZone, "Simple date ("+label+")")

	// Keeps the zone's real offset at the instant, BST included.
	isoZone := local.Format(isoLayout)
	fb.Add(uidISOZone, isoZone, isoZone, "ISO 8601 ("+label+")")
}

// zoneLabel shortens an IANA zone name for display: "Europe/London" reads
// as "London" in subtitles.
func zoneLabel(zoneName string) string {
	if i := strings.LastIndex(zoneName, "/"); i >= 0 {
		return strings.ReplaceAll(zoneName[i+1:], "_", " ")
	}
	return zoneName
}
