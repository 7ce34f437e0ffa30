// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amphitryon/amphitryon-client/internal/domain/models"
)

const testSessionHeader = "SESSION_TOKEN_AMPHITRYON"

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:        baseURL,
		SessionHeader:  testSessionHeader,
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	})
}

func TestClientDecodesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/getCreatedMeetings", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Meeting{{ID: "meeting-1", Name: "Révisions"}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.LoadMeetingsCreatedByUser(context.Background())
	require.NoError(t, err)
	require.True(t, resp.OK())
	assert.Equal(t, http.StatusOK, resp.Status())

	var meetings []models.Meeting
	require.NoError(t, resp.Decode(&meetings))
	require.Len(t, meetings, 1)
	assert.Equal(t, "Révisions", meetings[0].Name)
}

func TestClientForwardsSessionToken(t *testing.T) {
	var seenToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenToken = r.Header.Get(testSessionHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAllLocations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seenToken, "no token before a session is established")

	client.SetSessionToken("session-token-123")
	_, err = client.GetAllLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "session-token-123", seenToken)

	client.SetSessionToken("")
	_, err = client.GetAllLocations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seenToken, "sign-out clears the token")
}

func TestClientReturnsNonSuccessResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"message":"La description est requise"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.CreateMeeting(context.Background(), models.Meeting{Name: "Sans description"})
	require.NoError(t, err, "a settled HTTP exchange is not a transport error")
	require.NotNil(t, resp)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusNotAcceptable, resp.Status())

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, resp.Decode(&body))
	assert.Equal(t, "La description est requise", body.Message)
}

func TestClientRetriesTransportFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			// Drop the connection mid-exchange to force a transport error.
			if hj, ok := w.(http.Hijacker); ok {
				if conn, _, err := hj.Hijack(); err == nil {
					_ = conn.Close()
				}
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.GetHostLocations(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, 2, attempts)
}

func TestClientGivesUpAfterMaxRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // every dial fails

	client := newTestClient(server.URL)
	resp, err := client.GetAllLocations(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestClientEncodesDateRange(t *testing.T) {
	var got dateRangeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/getMyMeetings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	from := time.Date(2021, 4, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 4, 30, 23, 59, 59, 0, time.UTC)

	client := newTestClient(server.URL)
	_, err := client.LoadUserMeetings(context.Background(), from, to)
	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(from))
	assert.True(t, got.EndDate.Equal(to))
}

func TestClientEscapesPathIDs(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.DeleteMeeting(context.Background(), "id with/slash")
	require.NoError(t, err)
	assert.Equal(t, "/meeting/id%20with%2Fslash", gotPath)
}
