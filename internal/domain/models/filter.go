// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package models

import "time"

// Filter is a meeting search query. Every field is optional; a nil field
// means the dimension is unconstrained.
type Filter struct {
	Name      *string    `json:"name"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Tags      []Tag      `json:"tags"`
	Location  *Location  `json:"location"`
}
