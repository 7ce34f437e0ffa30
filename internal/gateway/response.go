// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package gateway

import (
	"encoding/json"
	"net/http"
)

// response adapts a settled HTTP exchange to the domain.Response surface.
// The body is read eagerly so Decode can be called after the connection is
// released.
type response struct {
	status int
	header http.Header
	body   []byte
}

func (r *response) OK() bool {
	return r.status >= 200 && r.status < 300
}

func (r *response) Status() int {
	return r.status
}

func (r *response) Header(name string) string {
	return r.header.Get(name)
}

func (r *response) Decode(v any) error {
	if len(r.body) == 0 {
		return nil
	}
	return json.Unmarshal(r.body, v)
}
