// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package models

// User is the authenticated account, either a student or a host.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	IsStudent bool   `json:"isStudent"`
}
