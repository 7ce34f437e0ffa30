// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package store

import "sync"

// notifier delivers one coalesced change signal per atomic store update.
// Channels are buffered with capacity one so a slow subscriber collapses
// consecutive updates instead of blocking a mutator.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

// subscribe registers a listener and returns its signal channel together
// with an unsubscribe function.
func (n *notifier) subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]chan struct{})
	}
	id := n.next
	n.next++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// notify signals every current subscriber without blocking.
func (n *notifier) notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
