// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package agenda

import (
	"io"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
)

const icsProdID = "-//Amphitryon//Amphitryon Client//FR"

// WriteICS serializes an agenda window to iCalendar. Events are emitted in
// day order, then in bucket order, so the output is stable for a given map.
func WriteICS(items ItemsMap, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProdID)

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	stamp := time.Now().UTC()
	for _, key := range keys {
		for _, item := range items[DayKey(key)] {
			meeting := item.Meeting
			event := cal.AddEvent(meeting.ID)
			event.SetDtStampTime(stamp)
			event.SetStartAt(meeting.StartDate)
			event.SetEndAt(meeting.EndDate)
			event.SetSummary(meeting.Name)
			if meeting.Description != "" {
				event.SetDescription(meeting.Description)
			}
			if meeting.LocationName != "" {
				event.SetLocation(meeting.LocationName)
			}
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
