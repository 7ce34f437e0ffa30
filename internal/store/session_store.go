// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amphitryon/amphitryon-client/internal/domain"
	"github.com/amphitryon/amphitryon-client/internal/domain/models"
	"github.com/amphitryon/amphitryon-client/internal/logging"
)

// SessionStore owns the authenticated user and the session token handshake.
// The token arrives as a named response header on connect and sign-up and is
// installed on the gateway so every subsequent call carries it.
type SessionStore struct {
	gateway       domain.RemoteGateway
	alerter       domain.Alerter
	sessionHeader string

	mu                sync.Mutex
	sessionToken      string
	authenticatedUser Field[models.User]
	isLoggedIn        bool
	isLoading         bool

	notifier notifier
}

// NewSessionStore creates a session store. sessionHeader is the deployment's
// session token header name.
func NewSessionStore(gateway domain.RemoteGateway, alerter domain.Alerter, sessionHeader string) *SessionStore {
	return &SessionStore{
		gateway:       gateway,
		alerter:       alerter,
		sessionHeader: sessionHeader,
	}
}

func (s *SessionStore) ready() bool {
	return s.gateway != nil && s.alerter != nil && s.sessionHeader != ""
}

func (s *SessionStore) setLoading(loading bool) {
	s.mu.Lock()
	s.isLoading = loading
	s.mu.Unlock()
	s.notifier.notify()
}

// Connect authenticates the user against the remote service. On success the
// session token header is captured, installed on the gateway, and the
// authenticated user is cached.
func (s *SessionStore) Connect(ctx context.Context) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	s.setLoading(true)
	resp, err := s.gateway.ConnectUser(ctx)
	if err != nil || !responseOK(resp) {
		derr := domain.ClassifyCall(resp, err)
		slog.WarnContext(ctx, "connect failed", "status", derr.Status, logging.ErrKey, derr)
		s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
		s.setLoading(false)
		return
	}
	var user models.User
	if err := resp.Decode(&user); err != nil {
		derr := domain.ClassifyCall(nil, err)
		slog.WarnContext(ctx, "connect response undecodable", logging.ErrKey, err)
		s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
		s.setLoading(false)
		return
	}

	token := resp.Header(s.sessionHeader)
	s.gateway.SetSessionToken(token)

	s.mu.Lock()
	s.sessionToken = token
	s.authenticatedUser = Loaded(user)
	s.isLoggedIn = true
	s.isLoading = false
	s.mu.Unlock()
	s.notifier.notify()
}

// SignUp creates a new account. On success the session token header is
// captured like on Connect and the submitted user becomes the authenticated
// one.
func (s *SessionStore) SignUp(ctx context.Context, user models.User) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	s.setLoading(true)
	resp, err := s.gateway.CreateUser(ctx, user)
	if err != nil || !responseOK(resp) {
		derr := domain.ClassifyCall(resp, err)
		slog.WarnContext(ctx, "sign up failed", "status", derr.Status, logging.ErrKey, derr)
		s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
		s.setLoading(false)
		return
	}

	token := resp.Header(s.sessionHeader)
	s.gateway.SetSessionToken(token)

	s.mu.Lock()
	s.sessionToken = token
	s.authenticatedUser = Loaded(user)
	s.isLoggedIn = true
	s.isLoading = false
	s.mu.Unlock()
	s.notifier.notify()
}

// SignOut clears the session locally and removes the token from the gateway.
func (s *SessionStore) SignOut() {
	if !s.ready() {
		slog.Error("store not initialized", logging.PriorityCritical())
		return
	}

	s.gateway.SetSessionToken("")

	s.mu.Lock()
	s.sessionToken = ""
	s.authenticatedUser = Field[models.User]{}
	s.isLoggedIn = false
	s.mu.Unlock()
	s.notifier.notify()
}

// AuthenticatedUser returns the cached user field.
func (s *SessionStore) AuthenticatedUser() Field[models.User] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticatedUser
}

// IsLoggedIn reports whether a session is established.
func (s *SessionStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoggedIn
}

// IsLoading reports whether a session handshake is in flight.
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// SessionToken returns the captured token, empty when signed out.
func (s *SessionStore) SessionToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionToken
}

// Subscribe registers a change listener. The channel receives one signal per
// atomic store update; the returned function unsubscribes.
func (s *SessionStore) Subscribe() (<-chan struct{}, func()) {
	return s.notifier.subscribe()
}
