// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package models

import "slices"

// Location is a bookable physical space owned by a host.
type Location struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	NbPeople     int           `json:"nbPeople"`
	HostID       string        `json:"hostId"`
	HostName     string        `json:"hostName"`
	Tags         []Tag         `json:"tags"`
	OpeningHours []OpeningHour `json:"openingHours"`
}

// OpeningHour is one weekly opening interval of a location.
// Day follows time.Weekday numbering (0 = Sunday). Times are "HH:MM".
type OpeningHour struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Day       int    `json:"day"`
}

// Clone returns a deep copy so that cached values never alias decoded ones.
func (l Location) Clone() Location {
	c := l
	c.Tags = slices.Clone(l.Tags)
	c.OpeningHours = slices.Clone(l.OpeningHours)
	return c
}

// CloneLocations deep-copies a location collection.
func CloneLocations(locations []Location) []Location {
	if locations == nil {
		return nil
	}
	out := make([]Location, len(locations))
	for i, l := range locations {
		out[i] = l.Clone()
	}
	return out
}
