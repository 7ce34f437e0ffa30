// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package refresh

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRegenerator struct {
	calls atomic.Int64
}

func (c *countingRegenerator) RegenerateItems() {
	c.calls.Add(1)
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := NewScheduler("not a schedule", &countingRegenerator{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh schedule")
}

func TestSchedulerRegeneratesEveryStore(t *testing.T) {
	first := &countingRegenerator{}
	second := &countingRegenerator{}

	s, err := NewScheduler("*/15 * * * *", first, second)
	require.NoError(t, err)

	s.regenerateAll()
	s.regenerateAll()

	assert.Equal(t, int64(2), first.calls.Load())
	assert.Equal(t, int64(2), second.calls.Load())
}

func TestSchedulerStartStop(t *testing.T) {
	s, err := NewScheduler("*/15 * * * *", &countingRegenerator{})
	require.NoError(t, err)

	s.Start()
	s.Stop()
}
