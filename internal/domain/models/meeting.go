// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"slices"
	"time"
)

// Meeting is the cached representation of a scheduled gathering at a location.
type Meeting struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	LocationID   string    `json:"locationID"`
	LocationName string    `json:"locationName"`
	OwnerID      string    `json:"ownerID"`
	ChatID       string    `json:"chatID"`
	Tags         []Tag     `json:"tags"`
	MembersID    []string  `json:"membersId"`
	MaxPeople    int       `json:"maxPeople"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	IsPrivate    bool      `json:"isPrivate"`
}

// Tag is a free-form label attached to meetings, locations and hosts.
type Tag struct {
	Name string `json:"name"`
}

// HasMember reports whether the given user id is already a member.
func (m Meeting) HasMember(userID string) bool {
	return slices.Contains(m.MembersID, userID)
}

// Clone returns a deep copy so that cached values never alias decoded ones.
func (m Meeting) Clone() Meeting {
	c := m
	c.Tags = slices.Clone(m.Tags)
	c.MembersID = slices.Clone(m.MembersID)
	return c
}

// CloneMeetings deep-copies a meeting collection.
func CloneMeetings(meetings []Meeting) []Meeting {
	if meetings == nil {
		return nil
	}
	out := make([]Meeting, len(meetings))
	for i, m := range meetings {
		out[i] = m.Clone()
	}
	return out
}
