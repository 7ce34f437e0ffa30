// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkerPool(t *testing.T) {
	tests := []struct {
		name        string
		workerCount int
		expected    int
	}{
		{name: "positive count", workerCount: 4, expected: 4},
		{name: "zero defaults to one", workerCount: 0, expected: 1},
		{name: "negative defaults to one", workerCount: -3, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workerCount)
			assert.Equal(t, tt.expected, pool.workerCount)
		})
	}
}

func TestWorkerPool_Run(t *testing.T) {
	t.Run("runs all functions", func(t *testing.T) {
		pool := NewWorkerPool(2)
		var count atomic.Int32

		err := pool.Run(context.Background(),
			func() error { count.Add(1); return nil },
			func() error { count.Add(1); return nil },
			func() error { count.Add(1); return nil },
		)

		assert.NoError(t, err)
		assert.Equal(t, int32(3), count.Load())
	})

	t.Run("returns first error", func(t *testing.T) {
		pool := NewWorkerPool(1)
		wantErr := errors.New("boom")

		err := pool.Run(context.Background(),
			func() error { return wantErr },
		)

		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("no functions is a no-op", func(t *testing.T) {
		pool := NewWorkerPool(2)
		assert.NoError(t, pool.Run(context.Background()))
	})
}
