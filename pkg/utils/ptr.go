// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package utils

import "time"

// StringPtr converts a string to a pointer to a string.
func StringPtr(s string) *string {
	return &s
}

// TimePtr converts a time.Time to a pointer to a time.Time.
func TimePtr(t time.Time) *time.Time {
	return &t
}
