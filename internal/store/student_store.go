// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package store owns the observable caches of the client. Each store
// orchestrates gateway calls, classifies failures, and applies every field
// write of an operation as one batched mutation followed by exactly one
// subscriber notification.
package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/amphitryon/amphitryon-client/internal/agenda"
	"github.com/amphitryon/amphitryon-client/internal/domain"
	"github.com/amphitryon/amphitryon-client/internal/domain/models"
	"github.com/amphitryon/amphitryon-client/internal/logging"
	"github.com/amphitryon/amphitryon-client/pkg/concurrent"
)

// StudentStore caches the meetings, locations, chat and host data the
// student-facing screens observe. Mutations are confirm-then-commit: the
// cache changes only after the remote service accepted the operation.
type StudentStore struct {
	gateway domain.RemoteGateway
	alerter domain.Alerter
	pool    *concurrent.WorkerPool

	mu                    sync.Mutex
	meetingsCreatedByUser []models.Meeting
	userMeetings          []models.Meeting
	searchMeetings        []models.Meeting
	chat                  Field[models.Chat]
	locations             Field[[]models.Location]
	locationToDisplay     Field[models.Location]
	hostToDisplay         Field[models.Host]
	items                 agenda.ItemsMap
	anchor                time.Time
	searchGen             uint64

	notifier notifier
}

// NewStudentStore creates a student store backed by the given gateway.
func NewStudentStore(gateway domain.RemoteGateway, alerter domain.Alerter) *StudentStore {
	return &StudentStore{
		gateway: gateway,
		alerter: alerter,
		pool:    concurrent.NewWorkerPool(2),
		anchor:  time.Now(),
	}
}

func (s *StudentStore) ready() bool {
	return s.gateway != nil && s.alerter != nil
}

// fail classifies a failed call and surfaces it to the user exactly once.
// The caches are left untouched; failures never propagate as errors.
func (s *StudentStore) fail(ctx context.Context, operation string, resp domain.Response, err error) {
	derr := domain.ClassifyCall(resp, err)
	slog.WarnContext(ctx, "remote call failed",
		"operation", operation,
		"status", derr.Status,
		logging.ErrKey, derr,
	)
	s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
}

// LoadUserData runs the independent initial loads of a fresh session. The
// agenda is generated once here, anchored at from.
func (s *StudentStore) LoadUserData(ctx context.Context, from time.Time) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	err := s.pool.Run(ctx,
		func() error {
			s.LoadCreatedMeetings(ctx)
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

// LoadCreatedMeetings fetches and replaces the meetings the user owns.
func (s *StudentStore) LoadCreatedMeetings(ctx context.Context) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.LoadMeetingsCreatedByUser(ctx)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "load created meetings", resp, err)
		return
	}
	var meetings []models.Meeting
	if err := resp.Decode(&meetings); err != nil {
		s.fail(ctx, "load created meetings", nil, err)
		return
	}

	s.mu.Lock()
	s.meetingsCreatedByUser = models.CloneMeetings(meetings)
	s.mu.Unlock()
	s.notifier.notify()
}

// LoadUserMeetings fetches and replaces the meetings the user is a member of
// between the two dates.
func (s *StudentStore) LoadUserMeetings(ctx context.Context, from, to time.Time) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.LoadUserMeetings(ctx, from, to)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "load user meetings", resp, err)
		return
	}
	var meetings []models.Meeting
	if err := resp.Decode(&meetings); err != nil {
		s.fail(ctx, "load user meetings", nil, err)
		return
	}

	s.mu.Lock()
	s.userMeetings = models.CloneMeetings(meetings)
	s.mu.Unlock()
	s.notifier.notify()
}

// JoinMeeting registers the user as a member. The server-updated meeting
// replaces the client's view and lands in the joined collection.
func (s *StudentStore) JoinMeeting(ctx context.Context, meeting models.Meeting) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.JoinMeeting(ctx, meeting.ID)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "join meeting", resp, err)
		return
	}
	var joined models.Meeting
	if err := resp.Decode(&joined); err != nil {
		s.fail(ctx, "join meeting", nil, err)
		return
	}

	s.mu.Lock()
	if ContainsID(s.userMeetings, joined.ID, meetingID) {
		ReplaceByID(s.userMeetings, joined.ID, meetingID, joined.Clone())
	} else {
		s.userMeetings = append(s.userMeetings, joined.Clone())
	}
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()

	s.alerter.Alert(domain.MsgSaved, domain.MsgMeetingJoined+meeting.Name)
}

// LeaveMeeting removes the meeting from the user's joined collection.
func (s *StudentStore) LeaveMeeting(ctx context.Context, meeting models.Meeting) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.LeaveMeeting(ctx, meeting.ID)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "leave meeting", resp, err)
		return
	}

	s.mu.Lock()
	s.userMeetings = RemoveByID(s.userMeetings, meeting.ID, meetingID)
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()
}

// LoadChat fetches and replaces the cached chat.
func (s *StudentStore) LoadChat(ctx context.Context, chatID string) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.LoadChat(ctx, chatID)
	if err != nil || !responseOK(resp) {
		derr := domain.ClassifyCall(resp, err)
		s.mu.Lock()
		s.chat = s.chat.Fail(derr)
		s.mu.Unlock()
		slog.WarnContext(ctx, "remote call failed", "operation", "load chat", "status", derr.Status, logging.ErrKey, derr)
		s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
		return
	}
	var chat models.Chat
	if err := resp.Decode(&chat); err != nil {
		s.fail(ctx, "load chat", nil, err)
		return
	}

	s.mu.Lock()
	s.chat = Loaded(chat.Clone())
	s.mu.Unlock()
	s.notifier.notify()
}

// SendMessage appends the message to the cached chat once the server has
// confirmed it. There is no optimistic copy: the round trip is the sole
// source of truth.
func (s *StudentStore) SendMessage(ctx context.Context, chatID string, message models.Message) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.SendMessage(ctx, chatID, message)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "send message", resp, err)
		return
	}

	s.mu.Lock()
	if chat, ok := s.chat.Value(); ok {
		updated := chat.Clone()
		updated.Messages = append(updated.Messages, message)
		s.chat = Loaded(updated)
	}
	s.mu.Unlock()
	s.notifier.notify()
}

// LoadLocations fetches the locations available between the two dates,
// excluding the given meeting's own reservation when updating one.
func (s *StudentStore) LoadLocations(ctx context.Context, from, to time.Time, excludeMeetingID string) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.GetAllLocationsAvailable(ctx, from, to, excludeMeetingID)
	s.finishLocationsLoad(ctx, "load available locations", resp, err)
}

// LoadAllLocations fetches every location.
func (s *StudentStore) LoadAllLocations(ctx context.Context) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.GetAllLocations(ctx)
	s.finishLocationsLoad(ctx, "load locations", resp, err)
}

func (s *StudentStore) finishLocationsLoad(ctx context.Context, operation string, resp domain.Response, err error) {
	if err != nil || !responseOK(resp) {
		derr := domain.ClassifyCall(resp, err)
		s.mu.Lock()
		s.locations = s.locations.Fail(derr)
		s.mu.Unlock()
		slog.WarnContext(ctx, "remote call failed", "operation", operation, "status", derr.Status, logging.ErrKey, derr)
		s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
		return
	}
	var locations []models.Location
	if err := resp.Decode(&locations); err != nil {
		s.fail(ctx, operation, nil, err)
		return
	}

	s.mu.Lock()
	s.locations = Loaded(models.CloneLocations(locations))
	s.mu.Unlock()
	s.notifier.notify()
}

// LoadLocationDetails fetches the location to display.
func (s *StudentStore) LoadLocationDetails(ctx context.Context, locationID string) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.GetLocationDetails(ctx, locationID)
	if err != nil || !responseOK(resp) {
		derr := domain.ClassifyCall(resp, err)
		s.mu.Lock()
		s.locationToDisplay = s.locationToDisplay.Fail(derr)
		s.mu.Unlock()
		slog.WarnContext(ctx, "remote call failed", "operation", "load location details", "status", derr.Status, logging.ErrKey, derr)
		s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
		return
	}
	var location models.Location
	if err := resp.Decode(&location); err != nil {
		s.fail(ctx, "load location details", nil, err)
		return
	}

	s.mu.Lock()
	s.locationToDisplay = Loaded(location.Clone())
	s.mu.Unlock()
	s.notifier.notify()
}

// LoadHostDetails fetches the host to display.
func (s *StudentStore) LoadHostDetails(ctx context.Context, hostID string) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.GetHostDetails(ctx, hostID)
	if err != nil || !responseOK(resp) {
		derr := domain.ClassifyCall(resp, err)
		s.mu.Lock()
		s.hostToDisplay = s.hostToDisplay.Fail(derr)
		s.mu.Unlock()
		slog.WarnContext(ctx, "remote call failed", "operation", "load host details", "status", derr.Status, logging.ErrKey, derr)
		s.alerter.Alert(domain.MsgErrorOccurred, derr.Message)
		return
	}
	var host models.Host
	if err := resp.Decode(&host); err != nil {
		s.fail(ctx, "load host details", nil, err)
		return
	}

	s.mu.Lock()
	s.hostToDisplay = Loaded(host.Clone())
	s.mu.Unlock()
	s.notifier.notify()
}

// CreateMeeting submits a draft lacking an id. The entity coming back with
// the server-assigned id lands in both the owned and the joined collections.
func (s *StudentStore) CreateMeeting(ctx context.Context, draft models.Meeting) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.CreateMeeting(ctx, draft)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "create meeting", resp, err)
		return
	}
	var created models.Meeting
	if err := resp.Decode(&created); err != nil {
		s.fail(ctx, "create meeting", nil, err)
		return
	}

	s.mu.Lock()
	s.userMeetings = append(s.userMeetings, created.Clone())
	s.meetingsCreatedByUser = append(s.meetingsCreatedByUser, created.Clone())
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()

	s.alerter.Alert(domain.MsgCreated, domain.MsgMeetingCreated)
}

// UpdateMeeting replaces the cached meeting wholesale in every collection
// holding the id.
func (s *StudentStore) UpdateMeeting(ctx context.Context, meeting models.Meeting) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.UpdateMeeting(ctx, meeting)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "update meeting", resp, err)
		return
	}

	s.mu.Lock()
	ReplaceByID(s.userMeetings, meeting.ID, meetingID, meeting.Clone())
	ReplaceByID(s.meetingsCreatedByUser, meeting.ID, meetingID, meeting.Clone())
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()
}

// DeleteMeeting removes the meeting from every collection that might hold it.
func (s *StudentStore) DeleteMeeting(ctx context.Context, meetingToDeleteID string) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	resp, err := s.gateway.DeleteMeeting(ctx, meetingToDeleteID)
	if err != nil || !responseOK(resp) {
		s.fail(ctx, "delete meeting", resp, err)
		return
	}

	s.mu.Lock()
	s.userMeetings = RemoveByID(s.userMeetings, meetingToDeleteID, meetingID)
	s.meetingsCreatedByUser = RemoveByID(s.meetingsCreatedByUser, meetingToDeleteID, meetingID)
	s.searchMeetings = RemoveByID(s.searchMeetings, meetingToDeleteID, meetingID)
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()
}

// SearchWithID looks a meeting up by id. The transient search collection is
// replaced, never merged; a failed search leaves it explicitly empty so stale
// results never outlive the query that produced them.
func (s *StudentStore) SearchWithID(ctx context.Context, searchID string) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	generation := s.nextSearchGeneration()
	resp, err := s.gateway.SearchMeetingWithID(ctx, searchID)
	if err != nil || !responseOK(resp) {
		s.storeSearchResults(generation, nil)
		return
	}
	var meeting models.Meeting
	if err := resp.Decode(&meeting); err != nil {
		s.storeSearchResults(generation, nil)
		return
	}

	s.storeSearchResults(generation, []models.Meeting{meeting})
}

// SearchWithFilter runs a filtered search with the same replace-not-merge
// semantics as SearchWithID.
func (s *StudentStore) SearchWithFilter(ctx context.Context, filter models.Filter) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	generation := s.nextSearchGeneration()
	resp, err := s.gateway.SearchMeeting(ctx, filter)
	if err != nil || !responseOK(resp) {
		s.storeSearchResults(generation, nil)
		return
	}
	var meetings []models.Meeting
	if err := resp.Decode(&meetings); err != nil {
		s.storeSearchResults(generation, nil)
		return
	}

	s.storeSearchResults(generation, meetings)
}

func (s *StudentStore) nextSearchGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchGen++
	return s.searchGen
}

// storeSearchResults commits a search outcome unless a newer search has
// started since, in which case the stale response is discarded.
func (s *StudentStore) storeSearchResults(generation uint64, meetings []models.Meeting) {
	s.mu.Lock()
	if generation != s.searchGen {
		s.mu.Unlock()
		return
	}
	s.searchMeetings = models.CloneMeetings(meetings)
	if s.searchMeetings == nil {
		s.searchMeetings = []models.Meeting{}
	}
	s.mu.Unlock()
	s.notifier.notify()
}

// GenerateItems loads the user's meetings over the agenda window anchored at
// from and derives the day buckets. The anchor is remembered so mutations can
// refresh the agenda without the caller re-specifying the window.
func (s *StudentStore) GenerateItems(ctx context.Context, from time.Time) {
	if !s.ready() {
		slog.ErrorContext(ctx, "store not initialized", logging.PriorityCritical())
		return
	}

	windowStart := agenda.StartOfDay(from)
	windowEnd := agenda.EndOfDay(from.AddDate(0, 0, agenda.WindowDays))
	resp, err := s.gateway.LoadUserMeetings(ctx, windowStart, windowEnd)
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
	s.userMeetings = models.CloneMeetings(meetings)
	s.anchor = from
	s.items = agenda.GenerateItems(s.userMeetings, from)
	s.mu.Unlock()
	s.notifier.notify()
}

// RegenerateItems re-derives the agenda from the cached meetings with the
// last anchor date supplied to GenerateItems.
func (s *StudentStore) RegenerateItems() {
	s.mu.Lock()
	s.regenerateLocked()
	s.mu.Unlock()
	s.notifier.notify()
}

// regenerateLocked recomputes the agenda buckets. Callers hold s.mu so the
// collection write and the derived view land in the same atomic update.
func (s *StudentStore) regenerateLocked() {
	s.items = agenda.GenerateItems(s.userMeetings, s.anchor)
}

// CreatedMeetings returns a copy of the meetings the user owns.
func (s *StudentStore) CreatedMeetings() []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneMeetings(s.meetingsCreatedByUser)
}

// UserMeetings returns a copy of the meetings the user is a member of.
func (s *StudentStore) UserMeetings() []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneMeetings(s.userMeetings)
}

// SearchResults returns a copy of the transient search collection.
func (s *StudentStore) SearchResults() []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneMeetings(s.searchMeetings)
}

// Chat returns the cached chat field.
func (s *StudentStore) Chat() Field[models.Chat] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if chat, ok := s.chat.Value(); ok {
		return Loaded(chat.Clone())
	}
	return s.chat
}

// Locations returns the cached locations field.
func (s *StudentStore) Locations() Field[[]models.Location] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if locations, ok := s.locations.Value(); ok {
		return Loaded(models.CloneLocations(locations))
	}
	return s.locations
}

// LocationToDisplay returns the cached location detail field.
func (s *StudentStore) LocationToDisplay() Field[models.Location] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if location, ok := s.locationToDisplay.Value(); ok {
		return Loaded(location.Clone())
	}
	return s.locationToDisplay
}

// HostToDisplay returns the cached host detail field.
func (s *StudentStore) HostToDisplay() Field[models.Host] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if host, ok := s.hostToDisplay.Value(); ok {
		return Loaded(host.Clone())
	}
	return s.hostToDisplay
}

// Items returns a copy of the derived agenda buckets.
func (s *StudentStore) Items() agenda.ItemsMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Subscribe registers a change listener. The channel receives one signal per
// atomic store update; the returned function unsubscribes.
func (s *StudentStore) Subscribe() (<-chan struct{}, func()) {
	return s.notifier.subscribe()
}

func responseOK(resp domain.Response) bool {
	return resp != nil && resp.OK()
}

func cloneItems(items agenda.ItemsMap) agenda.ItemsMap {
	if items == nil {
		return nil
	}
	out := make(agenda.ItemsMap, len(items))
	for key, bucket := range items {
		out[key] = slices.Clone(bucket)
	}
	return out
}
