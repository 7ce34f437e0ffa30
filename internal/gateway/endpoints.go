// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package gateway

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/amphitryon/amphitryon-client/internal/domain"
	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

// dateRangeRequest bounds a window query inclusively on both ends.
type dateRangeRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// availabilityRequest asks for the locations free over a window. The meeting
// being edited, if any, is excluded so its own reservation does not make its
// location look busy.
type availabilityRequest struct {
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	ExcludeMeetingID string    `json:"excludeMeetingId,omitempty"`
}

// ConnectUser authenticates against the service. The session token comes back
// as a response header, not in the body.
func (c *Client) ConnectUser(ctx context.Context) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/login", nil, true)
}

// CreateUser registers a new student account.
func (c *Client) CreateUser(ctx context.Context, user models.User) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPost, "/signUpStudent", user, true)
}

// LoadMeetingsCreatedByUser fetches the meetings the user owns.
func (c *Client) LoadMeetingsCreatedByUser(ctx context.Context) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/getCreatedMeetings", nil, false)
}

// LoadUserMeetings fetches the meetings the user is a member of between the
// two dates.
func (c *Client) LoadUserMeetings(ctx context.Context, from, to time.Time) (domain.Response, error) {
	body := dateRangeRequest{StartDate: from, EndDate: to}
	return c.doRequest(ctx, http.MethodPost, "/getMyMeetings", body, false)
}

// CreateMeeting submits a meeting draft and returns the created entity.
func (c *Client) CreateMeeting(ctx context.Context, meeting models.Meeting) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPost, "/meeting", meeting, false)
}

// UpdateMeeting replaces a meeting wholesale.
func (c *Client) UpdateMeeting(ctx context.Context, meeting models.Meeting) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPut, "/meeting", meeting, false)
}

// DeleteMeeting removes a meeting by id.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodDelete, "/meeting/"+url.PathEscape(meetingID), nil, false)
}

// JoinMeeting adds the user to a meeting and returns the updated entity.
func (c *Client) JoinMeeting(ctx context.Context, meetingID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPost, "/meeting/join/"+url.PathEscape(meetingID), nil, false)
}

// LeaveMeeting removes the user from a meeting.
func (c *Client) LeaveMeeting(ctx context.Context, meetingID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPost, "/leaveMeeting/"+url.PathEscape(meetingID), nil, false)
}

// SearchMeetingWithID fetches one meeting by id.
func (c *Client) SearchMeetingWithID(ctx context.Context, meetingID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/meeting/"+url.PathEscape(meetingID), nil, false)
}

// SearchMeeting fetches the meetings matching the filter.
func (c *Client) SearchMeeting(ctx context.Context, filter models.Filter) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPost, "/meetings/filter", filter, false)
}

// LoadChat fetches the message thread of a meeting.
func (c *Client) LoadChat(ctx context.Context, chatID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/chat/"+url.PathEscape(chatID), nil, false)
}

// SendMessage appends a message to a thread and returns the updated thread.
func (c *Client) SendMessage(ctx context.Context, chatID string, message models.Message) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPost, "/chat/createMessage/"+url.PathEscape(chatID), message, false)
}

// GetAllLocations fetches every known location.
func (c *Client) GetAllLocations(ctx context.Context) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/locations", nil, false)
}

// GetAllLocationsAvailable fetches the locations free over the window,
// ignoring the reservation held by excludeMeetingID when non-empty.
func (c *Client) GetAllLocationsAvailable(ctx context.Context, from, to time.Time, excludeMeetingID string) (domain.Response, error) {
	body := availabilityRequest{StartDate: from, EndDate: to, ExcludeMeetingID: excludeMeetingID}
	return c.doRequest(ctx, http.MethodPost, "/locations/available", body, false)
}

// GetLocationDetails fetches one location by id.
func (c *Client) GetLocationDetails(ctx context.Context, locationID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/location/"+url.PathEscape(locationID), nil, false)
}

// GetHostDetails fetches one host by id.
func (c *Client) GetHostDetails(ctx context.Context, hostID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/host/"+url.PathEscape(hostID), nil, false)
}

// GetHostLocations fetches the locations operated by the signed-in host.
func (c *Client) GetHostLocations(ctx context.Context) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodGet, "/hostLocations", nil, false)
}

// GetReservations fetches the meetings reserved at the host's locations
// between the two dates.
func (c *Client) GetReservations(ctx context.Context, from, to time.Time) (domain.Response, error) {
	body := dateRangeRequest{StartDate: from, EndDate: to}
	return c.doRequest(ctx, http.MethodPost, "/reservations", body, false)
}

// CreateLocation submits a location draft and returns the created entity.
func (c *Client) CreateLocation(ctx context.Context, location models.Location) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPost, "/location", location, false)
}

// UpdateLocation replaces a location wholesale.
func (c *Client) UpdateLocation(ctx context.Context, location models.Location) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodPut, "/location", location, false)
}

// DeleteLocation removes a location by id.
func (c *Client) DeleteLocation(ctx context.Context, locationID string) (domain.Response, error) {
	return c.doRequest(ctx, http.MethodDelete, "/location/"+url.PathEscape(locationID), nil, false)
}
