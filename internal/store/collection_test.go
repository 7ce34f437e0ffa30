// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

func TestContainsID(t *testing.T) {
	meetings := []models.Meeting{{ID: "a"}, {ID: "b"}}

	assert.True(t, ContainsID(meetings, "b", meetingID))
	assert.False(t, ContainsID(meetings, "c", meetingID))
	assert.False(t, ContainsID(nil, "a", meetingID))
}

func TestReplaceByID(t *testing.T) {
	meetings := []models.Meeting{{ID: "a", Name: "un"}, {ID: "b", Name: "deux"}}

	ReplaceByID(meetings, "b", meetingID, models.Meeting{ID: "b", Name: "remplacé"})
	assert.Equal(t, "un", meetings[0].Name)
	assert.Equal(t, "remplacé", meetings[1].Name)

	// Replacing an absent id is a silent no-op.
	ReplaceByID(meetings, "c", meetingID, models.Meeting{ID: "c"})
	assert.Len(t, meetings, 2)
}

func TestRemoveByID(t *testing.T) {
	locations := []models.Location{{ID: "x"}, {ID: "y"}, {ID: "x"}}

	filtered := RemoveByID(locations, "x", locationID)
	assert.Equal(t, []models.Location{{ID: "y"}}, filtered)

	// Removing an absent id is idempotent.
	assert.Equal(t, filtered, RemoveByID(filtered, "x", locationID))
}

func TestRemoveByLocation(t *testing.T) {
	meetings := []models.Meeting{
		{ID: "m-1", LocationID: "loc-1"},
		{ID: "m-2", LocationID: "loc-2"},
	}

	filtered := RemoveByLocation(meetings, "loc-1")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "m-2", filtered[0].ID)
}
