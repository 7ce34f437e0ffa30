// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"encoding/json"
)

// StubResponse is a canned domain.Response for store tests. Body is
// marshaled to JSON once and decoded on demand, mirroring a real wire
// round trip.
type StubResponse struct {
	StatusCode int
	Body       any
	Headers    map[string]string
	DecodeErr  error
}

func (r *StubResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *StubResponse) Status() int {
	return r.StatusCode
}

func (r *StubResponse) Header(name string) string {
	return r.Headers[name]
}

func (r *StubResponse) Decode(v any) error {
	if r.DecodeErr != nil {
		return r.DecodeErr
	}
	if r.Body == nil {
		return nil
	}
	data, err := json.Marshal(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
