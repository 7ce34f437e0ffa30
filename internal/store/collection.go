// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package store

import "github.com/amphitryon/amphitryon-client/internal/domain/models"

// Id accessors shared by the collection helpers.
var (
	meetingID  = func(m models.Meeting) string { return m.ID }
	locationID = func(l models.Location) string { return l.ID }
)

// ContainsID reports whether the collection holds an entity with the id.
func ContainsID[T any](items []T, id string, idOf func(T) string) bool {
	for _, item := range items {
		if idOf(item) == id {
			return true
		}
	}
	return false
}

// ReplaceByID replaces every entry whose id matches with the replacement
// entity. Absence of a match is a silent no-op: the remote system is
// authoritative and has already applied the change.
func ReplaceByID[T any](items []T, id string, idOf func(T) string, replacement T) []T {
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = replacement
		}
	}
	return items
}

// RemoveByID filters out every entry whose id matches. Removing an absent id
// is a no-op, making deletion idempotent.
func RemoveByID[T any](items []T, id string, idOf func(T) string) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
