// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package models

import "slices"

// Host is a venue operator with an address and a Covid policy.
type Host struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     Address   `json:"address"`
	Description string    `json:"description"`
	Tags        []Tag     `json:"tags"`
	CovidData   CovidData `json:"covidData"`
}

// Address is a postal address.
type Address struct {
	ID       string `json:"id"`
	Street   string `json:"street"`
	StreetNb string `json:"streetNb"`
	CityName string `json:"cityName"`
	NPA      string `json:"npa"`
}

// CovidData holds the sanitary policy of a host.
type CovidData struct {
	IsOpen                bool   `json:"isOpen"`
	MasksRequired         bool   `json:"masksRequired"`
	DisinfectionRequired  bool   `json:"disinfectionRequired"`
	RecommendedDistancing string `json:"recommendedDistancing"`
	Comments              string `json:"comments"`
}

// Clone returns a deep copy so that cached values never alias decoded ones.
func (h Host) Clone() Host {
	c := h
	c.Tags = slices.Clone(h.Tags)
	return c
}
