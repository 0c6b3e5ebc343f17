// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds an iterator from a slice to allow peeking at the next value.
package sliceiterator

// Iterator - iterator data
type Iterator[T any] struct {
	data []T
	idx  int
}

// New - builds an Iterator positioned before the first element.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{data: s, idx: -1}
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator[T]) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or the zero value when out of range.
func (a *Iterator[T]) Value() T {
	var zero T
	if a.idx < 0 || a.idx >= len(a.data) {
		return zero
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator[T]) PeekNextValue() (T, bool) {
	var zero T
	if a.idx+1 >= len(a.data) {
		return zero, false
	}
	return a.data[a.idx+1], true
}

// Rest - Consumes and returns all values after the current one.
func (a *Iterator[T]) Rest() []T {
	rest := []T{}
	for a.Next() {
		rest = append(rest, a.Value())
	}
	return rest
}
