// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package domain holds the boundary contracts of the synchronization layer:
// the remote gateway consumed by the stores, the response surface it returns,
// and the semantic error taxonomy derived from failed responses.
package domain

import (
	"context"
	"time"

	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

// Response is the minimal surface of a settled remote call. The stores only
// ever look at the success flag, the HTTP status, a named header and the
// decoded body.
type Response interface {
	OK() bool
	Status() int
	Header(name string) string
	Decode(v any) error
}

// RemoteGateway is the network boundary of the synchronization layer. Every
// call suspends until the remote service settles; a non-nil error means the
// call itself could not complete (transport failure), while an unsuccessful
// Response means the service answered with a non-2xx status.
type RemoteGateway interface {
	// Session
	ConnectUser(ctx context.Context) (Response, error)
	CreateUser(ctx context.Context, user models.User) (Response, error)
	// SetSessionToken installs the token forwarded on all subsequent calls.
	SetSessionToken(token string)

	// Meetings
	LoadMeetingsCreatedByUser(ctx context.Context) (Response, error)
	LoadUserMeetings(ctx context.Context, from, to time.Time) (Response, error)
	CreateMeeting(ctx context.Context, meeting models.Meeting) (Response, error)
	UpdateMeeting(ctx context.Context, meeting models.Meeting) (Response, error)
	DeleteMeeting(ctx context.Context, meetingID string) (Response, error)
	JoinMeeting(ctx context.Context, meetingID string) (Response, error)
	LeaveMeeting(ctx context.Context, meetingID string) (Response, error)
	SearchMeetingWithID(ctx context.Context, meetingID string) (Response, error)
	SearchMeeting(ctx context.Context, filter models.Filter) (Response, error)

	// Chat
	LoadChat(ctx context.Context, chatID string) (Response, error)
	SendMessage(ctx context.Context, chatID string, message models.Message) (Response, error)

	// Locations and hosts
	GetAllLocations(ctx context.Context) (Response, error)
	GetAllLocationsAvailable(ctx context.Context, from, to time.Time, excludeMeetingID string) (Response, error)
	GetLocationDetails(ctx context.Context, locationID string) (Response, error)
	GetHostDetails(ctx context.Context, hostID string) (Response, error)
	GetHostLocations(ctx context.Context) (Response, error)
	GetReservations(ctx context.Context, from, to time.Time) (Response, error)
	CreateLocation(ctx context.Context, location models.Location) (Response, error)
	UpdateLocation(ctx context.Context, location models.Location) (Response, error)
	DeleteLocation(ctx context.Context, locationID string) (Response, error)
}

// Alerter presents a user-facing notification. The stores call it exactly
// once per failed remote call and once per confirmation message; it is the
// only way a failure becomes visible outside a store.
type Alerter interface {
	Alert(title, message string)
}
