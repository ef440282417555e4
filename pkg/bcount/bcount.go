// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package bcount provides Counted, a wrapper that counts how many times the
// value it holds has been accessed for writing.
//
// The count is a cheap change signal for caching expensive computations over
// values that are large or not comparable: if the count has not moved since the
// last computation, the value has not been written through the wrapper.
//
// The count is approximate. A write access that leaves the value unchanged
// still counts, and writes that bypass Mut are not seen at all. A payload that
// holds pointers, maps, slices, channels or atomics can be mutated through
// those inner references without the wrapper noticing.
//
// A Counted is not safe for concurrent use. Callers sharing one across
// goroutines must guard the whole wrapper with their own lock.
package bcount

// Counted owns a value of type T and counts write accesses to it.
//
// The zero value holds the zero T with a count of 0 and is ready to use.
// Copying a Counted copies both the count and the value. A Counted held by
// value formats and encodes as its value, like one held by pointer.
type Counted[T any] struct {
	counter uint
	value   T
}

// New returns a Counted holding value with a count of 0.
func New[T any](value T) *Counted[T] {
	return &Counted[T]{
		value: value,
	}
}

// Count returns the number of write accesses since creation or the last Reset.
//
// The count wraps around to 0 after math.MaxUint accesses.
func (c *Counted[T]) Count() uint {
	return c.counter
}

// Reset sets the count to 0. The value is not touched.
func (c *Counted[T]) Reset() {
	c.counter = 0
}

// Get returns the value for reading. It does not change the count.
func (c *Counted[T]) Get() T {
	return c.value
}

// Mut returns a pointer to the value for writing and increments the count by
// one, wrapping around to 0 on overflow.
//
// Each call counts exactly once, however many times the returned pointer is
// used or passed along. The pointer must not be kept and written through after
// the caller is done with this access; such writes are not counted.
func (c *Counted[T]) Mut() *T {
	c.counter++
	return &c.value
}

// Set replaces the value. It counts as one write access.
func (c *Counted[T]) Set(value T) {
	*c.Mut() = value
}

// Update calls f with a pointer to the value. The whole call counts as one
// write access, including any nested use of the pointer inside f.
func (c *Counted[T]) Update(f func(*T)) {
	f(c.Mut())
}

// Clone returns a new Counted holding a copy of the value and the same count.
func (c *Counted[T]) Clone() *Counted[T] {
	clone := *c
	return &clone
}
