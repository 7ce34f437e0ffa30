// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldZeroValueIsNotLoaded(t *testing.T) {
	var f Field[string]

	assert.Equal(t, StateNotLoaded, f.State())
	_, ok := f.Value()
	assert.False(t, ok)
	assert.NoError(t, f.Err())
}

func TestFieldLoaded(t *testing.T) {
	f := Loaded(42)

	assert.Equal(t, StateLoaded, f.State())
	v, ok := f.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestFieldFailBeforeLoadRecordsError(t *testing.T) {
	cause := errors.New("indisponible")
	f := Loading[int]().Fail(cause)

	assert.Equal(t, StateFailed, f.State())
	assert.ErrorIs(t, f.Err(), cause)
	_, ok := f.Value()
	assert.False(t, ok)
}

func TestFieldFailAfterLoadKeepsValue(t *testing.T) {
	f := Loaded("fraîche").Fail(errors.New("échec du rafraîchissement"))

	assert.Equal(t, StateLoaded, f.State())
	v, ok := f.Value()
	require.True(t, ok)
	assert.Equal(t, "fraîche", v)
}
