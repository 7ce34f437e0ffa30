// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringPtr(t *testing.T) {
	p := StringPtr("salle")
	assert.NotNil(t, p)
	assert.Equal(t, "salle", *p)
}

func TestTimePtr(t *testing.T) {
	now := time.Now()
	p := TimePtr(now)
	assert.NotNil(t, p)
	assert.True(t, now.Equal(*p))
}

func TestCoalesceString(t *testing.T) {
	assert.Equal(t, "", CoalesceString())
	assert.Equal(t, "a", CoalesceString("", "a", "b"))
	assert.Equal(t, "", CoalesceString("", ""))
}
