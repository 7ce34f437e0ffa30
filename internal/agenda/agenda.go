// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package agenda derives a day-bucketed calendar view from a flat list of
// meetings. Aggregation is pure: the same meetings and anchor date always
// produce a value-equal map.
package agenda

import (
	"time"

	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

// WindowDays is the number of days shown after the anchor day. The agenda
// window is the inclusive range [startOfDay(anchor), endOfDay(anchor+10)].
const WindowDays = 10

const dayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day bucket, formatted YYYY-MM-DD.
type DayKey string

// Item is a meeting projected into a specific calendar day bucket.
type Item struct {
	Day     DayKey
	Meeting models.Meeting
}

// ItemsMap is the derived agenda: one bucket per day of the window. Days
// without meetings carry an empty bucket so the calendar can render them.
type ItemsMap map[DayKey][]Item

// KeyFor returns the bucket key for the calendar day of t.
func KeyFor(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the calendar day of t.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// GenerateItems buckets meetings by the calendar day of their start
// timestamp over the agenda window anchored at anchor. Meetings starting
// outside the window are dropped; multi-day meetings are keyed solely by
// their start day. Day boundaries and bucket keys are computed in the
// anchor's timezone, whatever zone the start timestamps were decoded in.
// O(n) in the number of meetings.
func GenerateItems(meetings []models.Meeting, anchor time.Time) ItemsMap {
	windowStart := StartOfDay(anchor)
	windowEnd := EndOfDay(anchor.AddDate(0, 0, WindowDays))

	items := make(ItemsMap, WindowDays+1)
	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		items[KeyFor(day)] = []Item{}
	}

	for _, meeting := range meetings {
		start := meeting.StartDate
		if start.Before(windowStart) || start.After(windowEnd) {
			continue
		}
		key := KeyFor(start.In(anchor.Location()))
		items[key] = append(items[key], Item{Day: key, Meeting: meeting})
	}

	return items
}
