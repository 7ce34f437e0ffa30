// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

func TestExpandOpeningHours_Weekly(t *testing.T) {
	location := models.Location{
		ID:   "l1",
		Name: "Salle B30",
		OpeningHours: []models.OpeningHour{
			// Mondays 08:00-12:00
			{Day: 1, StartTime: "08:00", EndTime: "12:00"},
		},
	}
	// Two full weeks starting on a Monday.
	from := time.Date(2021, 4, 19, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 5, 2, 23, 59, 59, 0, time.UTC)

	intervals, err := ExpandOpeningHours(location, from, to)
	require.NoError(t, err)

	require.Len(t, intervals, 2)
	assert.Equal(t, time.Date(2021, 4, 19, 8, 0, 0, 0, time.UTC), intervals[0].Start)
	assert.Equal(t, time.Date(2021, 4, 19, 12, 0, 0, 0, time.UTC), intervals[0].End)
	assert.Equal(t, time.Date(2021, 4, 26, 8, 0, 0, 0, time.UTC), intervals[1].Start)
}

func TestExpandOpeningHours_MultipleDaysSorted(t *testing.T) {
	location := models.Location{
		OpeningHours: []models.OpeningHour{
			{Day: 3, StartTime: "14:00", EndTime: "18:00"}, // Wednesday
			{Day: 1, StartTime: "08:00", EndTime: "12:00"}, // Monday
		},
	}
	from := time.Date(2021, 4, 19, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 4, 25, 23, 59, 59, 0, time.UTC)

	intervals, err := ExpandOpeningHours(location, from, to)
	require.NoError(t, err)

	require.Len(t, intervals, 2)
	assert.True(t, intervals[0].Start.Before(intervals[1].Start))
	assert.Equal(t, time.Weekday(1), intervals[0].Start.Weekday())
	assert.Equal(t, time.Weekday(3), intervals[1].Start.Weekday())
}

func TestExpandOpeningHours_Errors(t *testing.T) {
	from := time.Date(2021, 4, 19, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	tests := []struct {
		name  string
		hours models.OpeningHour
	}{
		{name: "bad day", hours: models.OpeningHour{Day: 7, StartTime: "08:00", EndTime: "12:00"}},
		{name: "bad start time", hours: models.OpeningHour{Day: 1, StartTime: "8h00", EndTime: "12:00"}},
		{name: "bad end time", hours: models.OpeningHour{Day: 1, StartTime: "08:00", EndTime: "noon"}},
		{name: "empty interval", hours: models.OpeningHour{Day: 1, StartTime: "12:00", EndTime: "08:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location := models.Location{OpeningHours: []models.OpeningHour{tt.hours}}
			_, err := ExpandOpeningHours(location, from, to)
			assert.Error(t, err)
		})
	}

	t.Run("inverted window", func(t *testing.T) {
		_, err := ExpandOpeningHours(models.Location{}, to, from)
		assert.Error(t, err)
	})
}

func TestExpandOpeningHours_NoHours(t *testing.T) {
	from := time.Date(2021, 4, 19, 0, 0, 0, 0, time.UTC)

	intervals, err := ExpandOpeningHours(models.Location{}, from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, intervals)
}
