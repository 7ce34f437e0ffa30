// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package store

// LoadState distinguishes a field that was never fetched from one that was
// fetched and came back empty, which a bare nil value conflates.
type LoadState int

const (
	StateNotLoaded LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Field wraps a cached value with its load state. The zero value is
// StateNotLoaded.
type Field[T any] struct {
	state LoadState
	value T
	err   error
}

// Loaded returns a field holding a successfully fetched value.
func Loaded[T any](value T) Field[T] {
	return Field[T]{state: StateLoaded, value: value}
}

// Loading returns a field for a fetch in flight.
func Loading[T any]() Field[T] {
	return Field[T]{state: StateLoading}
}

// Failed returns a field for a fetch that failed before any value was loaded.
func Failed[T any](err error) Field[T] {
	return Field[T]{state: StateFailed, err: err}
}

// State returns the load state.
func (f Field[T]) State() LoadState {
	return f.state
}

// Value returns the loaded value and whether one is present.
func (f Field[T]) Value() (T, bool) {
	if f.state == StateLoaded {
		return f.value, true
	}
	var zero T
	return zero, false
}

// Err returns the failure recorded on the field, if any.
func (f Field[T]) Err() error {
	return f.err
}

// Fail records a failed fetch. A field that already holds a loaded value
// keeps it: stale-but-present data is preferred over erasing a trusted view.
func (f Field[T]) Fail(err error) Field[T] {
	if f.state == StateLoaded {
		return f
	}
	return Failed[T](err)
}
