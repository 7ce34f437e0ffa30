// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amphitryon/amphitryon-client/internal/domain"
	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

// MockRemoteGateway implements domain.RemoteGateway for testing
type MockRemoteGateway struct {
	mock.Mock
}

func (m *MockRemoteGateway) respond(args mock.Arguments) (domain.Response, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Response), args.Error(1)
}

func (m *MockRemoteGateway) ConnectUser(ctx context.Context) (domain.Response, error) {
	return m.respond(m.Called(ctx))
}

func (m *MockRemoteGateway) CreateUser(ctx context.Context, user models.User) (domain.Response, error) {
	return m.respond(m.Called(ctx, user))
}

func (m *MockRemoteGateway) SetSessionToken(token string) {
	m.Called(token)
}

func (m *MockRemoteGateway) LoadMeetingsCreatedByUser(ctx context.Context) (domain.Response, error) {
	return m.respond(m.Called(ctx))
}

func (m *MockRemoteGateway) LoadUserMeetings(ctx context.Context, from, to time.Time) (domain.Response, error) {
	return m.respond(m.Called(ctx, from, to))
}

func (m *MockRemoteGateway) CreateMeeting(ctx context.Context, meeting models.Meeting) (domain.Response, error) {
	return m.respond(m.Called(ctx, meeting))
}

func (m *MockRemoteGateway) UpdateMeeting(ctx context.Context, meeting models.Meeting) (domain.Response, error) {
	return m.respond(m.Called(ctx, meeting))
}

func (m *MockRemoteGateway) DeleteMeeting(ctx context.Context, meetingID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, meetingID))
}

func (m *MockRemoteGateway) JoinMeeting(ctx context.Context, meetingID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, meetingID))
}

func (m *MockRemoteGateway) LeaveMeeting(ctx context.Context, meetingID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, meetingID))
}

func (m *MockRemoteGateway) SearchMeetingWithID(ctx context.Context, meetingID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, meetingID))
}

func (m *MockRemoteGateway) SearchMeeting(ctx context.Context, filter models.Filter) (domain.Response, error) {
	return m.respond(m.Called(ctx, filter))
}

func (m *MockRemoteGateway) LoadChat(ctx context.Context, chatID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, chatID))
}

func (m *MockRemoteGateway) SendMessage(ctx context.Context, chatID string, message models.Message) (domain.Response, error) {
	return m.respond(m.Called(ctx, chatID, message))
}

func (m *MockRemoteGateway) GetAllLocations(ctx context.Context) (domain.Response, error) {
	return m.respond(m.Called(ctx))
}

func (m *MockRemoteGateway) GetAllLocationsAvailable(ctx context.Context, from, to time.Time, excludeMeetingID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, from, to, excludeMeetingID))
}

func (m *MockRemoteGateway) GetLocationDetails(ctx context.Context, locationID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, locationID))
}

func (m *MockRemoteGateway) GetHostDetails(ctx context.Context, hostID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, hostID))
}

func (m *MockRemoteGateway) GetHostLocations(ctx context.Context) (domain.Response, error) {
	return m.respond(m.Called(ctx))
}

func (m *MockRemoteGateway) GetReservations(ctx context.Context, from, to time.Time) (domain.Response, error) {
	return m.respond(m.Called(ctx, from, to))
}

func (m *MockRemoteGateway) CreateLocation(ctx context.Context, location models.Location) (domain.Response, error) {
	return m.respond(m.Called(ctx, location))
}

func (m *MockRemoteGateway) UpdateLocation(ctx context.Context, location models.Location) (domain.Response, error) {
	return m.respond(m.Called(ctx, location))
}

func (m *MockRemoteGateway) DeleteLocation(ctx context.Context, locationID string) (domain.Response, error) {
	return m.respond(m.Called(ctx, locationID))
}
