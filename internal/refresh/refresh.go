// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package refresh periodically re-derives agenda views so day buckets stay
// aligned with the wall clock as the window slides past midnight.
package refresh

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Regenerator is any store able to re-derive its agenda from cached state.
type Regenerator interface {
	RegenerateItems()
}

// Scheduler drives RegenerateItems on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	stores  []Regenerator
	entries []cron.EntryID
}

// NewScheduler builds a scheduler over the given stores. The schedule uses
// the standard five-field cron syntax, e.g. "*/15 * * * *".
func NewScheduler(schedule string, stores ...Regenerator) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		stores: stores,
	}

	id, err := s.cron.AddFunc(schedule, s.regenerateAll)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	s.entries = append(s.entries, id)

	return s, nil
}

func (s *Scheduler) regenerateAll() {
	slog.Debug("regenerating agenda views", "stores", len(s.stores))
	for _, store := range s.stores {
		store.RegenerateItems()
	}
}

// Start begins running the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running regeneration to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
