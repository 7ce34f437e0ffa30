// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

func meetingAt(id string, start, end time.Time) models.Meeting {
	return models.Meeting{
		ID:        id,
		Name:      "Révision AMT",
		StartDate: start,
		EndDate:   end,
	}
}

func TestGenerateItems_Window(t *testing.T) {
	anchor := time.Date(2021, 4, 20, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		bucketed bool
	}{
		{
			name:     "start on anchor day",
			start:    time.Date(2021, 4, 20, 0, 0, 0, 0, time.UTC),
			bucketed: true,
		},
		{
			name:     "start on last window day",
			start:    time.Date(2021, 4, 30, 23, 59, 0, 0, time.UTC),
			bucketed: true,
		},
		{
			name:     "start before window",
			start:    time.Date(2021, 4, 19, 23, 59, 0, 0, time.UTC),
			bucketed: false,
		},
		{
			name:     "start after window",
			start:    time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
			bucketed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meetings := []models.Meeting{meetingAt("m1", tt.start, tt.start.Add(time.Hour))}
			items := GenerateItems(meetings, anchor)

			// One bucket per day of the window, whether populated or not.
			assert.Len(t, items, WindowDays+1)

			total := 0
			for _, bucket := range items {
				total += len(bucket)
			}
			if tt.bucketed {
				assert.Equal(t, 1, total)
				assert.Len(t, items[KeyFor(tt.start)], 1)
			} else {
				assert.Zero(t, total)
			}
		})
	}
}

func TestGenerateItems_BucketsByStartDay(t *testing.T) {
	anchor := time.Date(2021, 4, 20, 0, 0, 0, 0, time.UTC)
	start := time.Date(2021, 4, 26, 15, 0, 0, 0, time.UTC)
	end := time.Date(2021, 4, 26, 16, 0, 0, 0, time.UTC)

	items := GenerateItems([]models.Meeting{meetingAt("m1", start, end)}, anchor)

	require.Contains(t, items, DayKey("2021-04-26"))
	require.Len(t, items[DayKey("2021-04-26")], 1)
	assert.Equal(t, "m1", items[DayKey("2021-04-26")][0].Meeting.ID)

	for key, bucket := range items {
		if key == DayKey("2021-04-26") {
			continue
		}
		assert.Empty(t, bucket, "bucket %s should be empty", key)
	}
}

func TestGenerateItems_MultiDayKeyedByStart(t *testing.T) {
	anchor := time.Date(2021, 4, 20, 0, 0, 0, 0, time.UTC)
	start := time.Date(2021, 4, 22, 22, 0, 0, 0, time.UTC)
	end := time.Date(2021, 4, 24, 2, 0, 0, 0, time.UTC)

	items := GenerateItems([]models.Meeting{meetingAt("m1", start, end)}, anchor)

	assert.Len(t, items[DayKey("2021-04-22")], 1)
	assert.Empty(t, items[DayKey("2021-04-23")])
	assert.Empty(t, items[DayKey("2021-04-24")])
}

func TestGenerateItems_KeysFollowAnchorTimezone(t *testing.T) {
	// Wire timestamps arrive in UTC while the anchor lives in the local
	// zone. 2021-04-19 23:00 UTC is 2021-04-20 01:00 at UTC+2: inside the
	// window and on the anchor's own calendar day.
	local := time.FixedZone("UTC+2", 2*60*60)
	anchor := time.Date(2021, 4, 20, 9, 0, 0, 0, local)
	start := time.Date(2021, 4, 19, 23, 0, 0, 0, time.UTC)

	items := GenerateItems([]models.Meeting{meetingAt("m1", start, start.Add(time.Hour))}, anchor)

	// Exactly the window's buckets, no spurious out-of-window day.
	require.Len(t, items, WindowDays+1)
	assert.NotContains(t, items, DayKey("2021-04-19"))
	require.Len(t, items[DayKey("2021-04-20")], 1)
	assert.Equal(t, "m1", items[DayKey("2021-04-20")][0].Meeting.ID)
	assert.Equal(t, DayKey("2021-04-20"), items[DayKey("2021-04-20")][0].Day)
}

func TestGenerateItems_Idempotent(t *testing.T) {
	anchor := time.Date(2021, 4, 20, 8, 0, 0, 0, time.UTC)
	meetings := []models.Meeting{
		meetingAt("m1", time.Date(2021, 4, 21, 10, 0, 0, 0, time.UTC), time.Date(2021, 4, 21, 11, 0, 0, 0, time.UTC)),
		meetingAt("m2", time.Date(2021, 4, 21, 14, 0, 0, 0, time.UTC), time.Date(2021, 4, 21, 15, 0, 0, 0, time.UTC)),
		meetingAt("m3", time.Date(2021, 4, 28, 9, 0, 0, 0, time.UTC), time.Date(2021, 4, 28, 10, 0, 0, 0, time.UTC)),
	}

	first := GenerateItems(meetings, anchor)
	second := GenerateItems(meetings, anchor)

	assert.Equal(t, first, second)
}

func TestGenerateItems_EmptyInput(t *testing.T) {
	anchor := time.Date(2021, 4, 20, 0, 0, 0, 0, time.UTC)

	items := GenerateItems(nil, anchor)

	assert.Len(t, items, WindowDays+1)
	for _, bucket := range items {
		assert.Empty(t, bucket)
	}
}

func TestEndOfDay(t *testing.T) {
	end := EndOfDay(time.Date(2021, 4, 20, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(time.Date(2021, 4, 21, 0, 0, 0, 0, time.UTC)))
}
