// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockAlerter implements domain.Alerter for testing
type MockAlerter struct {
	mock.Mock
}

func (m *MockAlerter) Alert(title, message string) {
	m.Called(title, message)
}
