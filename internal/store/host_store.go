// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amphitryon/amphitryon-client/internal/agenda"
	"github.com/amphitryon/amphitryon-client/internal/domain"
	"github.com/amphitryon/amphitryon-client/internal/domain/models"
	"github.com/amphitryon/amphitryon-client/internal/logging"
	"github.com/amphitryon/amphitryon-client/pkg/concurrent"
)

// HostStore caches the locations a host operates and the meetings reserved
// at them. Same contract as StudentStore: confirm-then-commit, batched
// writes, one notification per atomic update.
type HostStore struct {
	gateway domain.RemoteGateway
	alerter domain.Alerter
	pool    *concurrent.WorkerPool

	mu                      sync.Mutex
	hostLocations           []models.Location
	meetingsAtHostLocations []models.Meeting
	items                   agenda.ItemsMap
	anchor                  time.Time

	notifier notifier
}

// NewHostStore creates a host store backed by the given gateway.
func NewHostStore(gateway domain.RemoteGateway, alerter domain.Alerter) *HostStore {
	return &HostStore{
		gateway: gateway,
		alerter: alerter,
		pool:    concurrent.NewWorkerPool(2),
		anchor:  time.Now(),
	}
}

func (s *HostStore) ready() bool {
	return s.gateway != nil && s.alerter != nil
}

func (s *HostStore) fail(ctx context.Context, operation string, resp domain.Response, err error) {
	derr := domain.ClassifyCall(resp, err)
	slog.WarnContext(ctx, "remote call failed",
		"operation", operation,
		"status", derr.Status,
		logging.ErrKey, derr,
	)
	s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
}

// LoadUserData runs the independent initial loads of a fresh host session.
// The agenda is generated once here, anchored at from.
func (s *HostStore) LoadUserData(ctx context.Context, from time.Time) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	err := s.pool.Run(ctx,
		func() error {
			s.LoadHostLocations(ctx)
			return nil
		},
		func() error {
			s.GenerateItems(ctx, from)
			return nil
		},
	)
	if err != nil {
		slog.WarnContext(ctx, "initial load interrupted", logging.ErrKey, err)
	}
}

// LoadHostLocations fetches and replaces the locations the host operates.
func (s *HostStore) LoadHostLocations(ctx context.Context) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.GetHostLocations(ctx)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "load host locations", resp, err)
		return
	}
	var locations []models.Location
	if err := resp.Decode(&locations); err != nil {
		s.fail(ctx, "load host locations", nil, err)
		return
	}

	s.mu.Lock()
	s.hostLocations = models.CloneLocations(locations)
	s.mu.Unlock()
	s.notifier.notify()
}

// LoadReservations fetches and replaces the meetings reserved at the host's
// locations between the two dates.
func (s *HostStore) LoadReservations(ctx context.Context, from, to time.Time) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.GetReservations(ctx, from, to)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "load reservations", resp, err)
		return
	}
	var meetings []models.Meeting
	if err := resp.Decode(&meetings); err != nil {
		s.fail(ctx, "load reservations", nil, err)
		return
	}

	s.mu.Lock()
	s.meetingsAtHostLocations = models.CloneMeetings(meetings)
	s.mu.Unlock()
	s.notifier.notify()
}

// CreateLocation submits a draft lacking an id; the entity coming back with
// the server-assigned id is appended to the host's locations.
func (s *HostStore) CreateLocation(ctx context.Context, draft models.Location) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.CreateLocation(ctx, draft)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "create location", resp, err)
		return
	}
	var created models.Location
	if err := resp.Decode(&created); err != nil {
		s.fail(ctx, "create location", nil, err)
		return
	}

	s.mu.Lock()
	s.hostLocations = append(s.hostLocations, created.Clone())
	s.mu.Unlock()
	s.notifier.notify()

	s.alerter.Alert(domain.MsgSaved, domain.MsgLocationCreated)
}

// UpdateLocation replaces the cached location wholesale where the id matches.
func (s *HostStore) UpdateLocation(ctx context.Context, location models.Location) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.UpdateLocation(ctx, location)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "update location", resp, err)
		return
	}

	s.mu.Lock()
	ReplaceByID(s.hostLocations, location.ID, locationID, location.Clone())
	s.mu.Unlock()
	s.notifier.notify()
}

// DeleteLocation removes the location by id. Meetings reserved there may no
// longer be relevant, so the agenda is re-derived in the same update.
func (s *HostStore) DeleteLocation(ctx context.Context, locationToDeleteID string) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.DeleteLocation(ctx, locationToDeleteID)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "delete location", resp, err)
		return
	}

	s.mu.Lock()
	s.hostLocations = RemoveByID(s.hostLocations, locationToDeleteID, locationID)
	s.meetingsAtHostLocations = RemoveByLocation(s.meetingsAtHostLocations, locationToDeleteID)
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()
}

// GenerateItems loads the reservations over the agenda window anchored at
// from and derives the day buckets, remembering the anchor.
func (s *HostStore) GenerateItems(ctx context.Context, from time.Time) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	windowStart := agenda.StartOfDay(from)
	windowEnd := agenda.EndOfDay(from.AddDate(0, 0, agenda.WindowDays))
	resp, err := s.gateway.GetReservations(ctx, windowStart, windowEnd)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "generate agenda", resp, err)
		return
	}
	var meetings []models.Meeting
	if err := resp.Decode(&meetings); err != nil {
		s.fail(ctx, "generate agenda", nil, err)
		return
	}

	s.mu.Lock()
	s.meetingsAtHostLocations = models.CloneMeetings(meetings)
	s.anchor = from
	s.items = agenda.GenerateItems(s.meetingsAtHostLocations, from)
	s.mu.Unlock()
	s.notifier.notify()
}

// RegenerateItems re-derives the agenda from the cached reservations with
// the last anchor date supplied to GenerateItems.
func (s *HostStore) RegenerateItems() {
	s.mu.Lock()
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()
}

func (s *HostStore) regenerateLocked() {
	s.items = agenda.GenerateItems(s.meetingsAtHostLocations, s.anchor)
}

// HostLocations returns a copy of the locations the host operates.
func (s *HostStore) HostLocations() []models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneLocations(s.hostLocations)
}

// Reservations returns a copy of the meetings reserved at the host's
// locations.
func (s *HostStore) Reservations() []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneMeetings(s.meetingsAtHostLocations)
}

// Items returns a copy of the derived agenda buckets.
func (s *HostStore) Items() agenda.ItemsMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Subscribe registers a change listener. The channel receives one signal per
// atomic store update; the returned function unsubscribes.
func (s *HostStore) Subscribe() (<-chan struct{}, func()) {
	return s.notifier.subscribe()
}

// RemoveByLocation filters out the meetings located at the given location.
func RemoveByLocation(meetings []models.Meeting, removedLocationID string) []models.Meeting {
	filtered := make([]models.Meeting, 0, len(meetings))
	for _, meeting := range meetings {
		if meeting.LocationID != removedLocationID {
			filtered = append(filtered, meeting)
		}
	}
	return filtered
}
