// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"slices"
	"time"
)

// Chat is the append-only message thread bound one-to-one to a meeting.
// Messages are never edited or removed by the client.
type Chat struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// Message is one chat entry.
type Message struct {
	Message  string    `json:"message"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
}

// Clone returns a deep copy so that cached values never alias decoded ones.
func (c Chat) Clone() Chat {
	out := c
	out.Messages = slices.Clone(c.Messages)
	return out
}
