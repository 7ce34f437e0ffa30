// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package schedule expands the weekly opening hours of a location into
// concrete open intervals inside a date window, for display next to the
// agenda.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

const clockLayout = "15:04"

// Interval is one concrete open period of a location.
type Interval struct {
	Start time.Time
	End   time.Time
}

// weekdays maps time.Weekday numbering (0 = Sunday) to rrule weekdays.
var weekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// ExpandOpeningHours turns the location's weekly (day, start, end) entries
// into the open intervals falling inside [from, to], sorted by start time.
// An interval whose end is not after its start is rejected.
func ExpandOpeningHours(location models.Location, from, to time.Time) ([]Interval, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("window end %s is before start %s", to, from)
	}

	var intervals []Interval
	for _, hours := range location.OpeningHours {
		if hours.Day < 0 || hours.Day > 6 {
			return nil, fmt.Errorf("opening hour day %d out of range", hours.Day)
		}
		openAt, err := time.Parse(clockLayout, hours.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parsing start time %q: %w", hours.StartTime, err)
		}
		closeAt, err := time.Parse(clockLayout, hours.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parsing end time %q: %w", hours.EndTime, err)
		}
		if !closeAt.After(openAt) {
			return nil, fmt.Errorf("opening hour %s-%s is empty", hours.StartTime, hours.EndTime)
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   startOfDay(from),
			Byweekday: []rrule.Weekday{weekdays[hours.Day]},
		})
		if err != nil {
			return nil, fmt.Errorf("building weekly rule: %w", err)
		}

		for _, day := range rule.Between(startOfDay(from), to, true) {
			start := atClock(day, openAt)
			end := atClock(day, closeAt)
			if end.Before(from) || start.After(to) {
				continue
			}
			intervals = append(intervals, Interval{Start: start, End: end})
		}
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
	return intervals, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func atClock(day, clock time.Time) time.Time {
	year, month, d := day.Date()
	return time.Date(year, month, d, clock.Hour(), clock.Minute(), 0, 0, day.Location())
}
