// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package memo

import (
	"github.com/atomix/go-bcount/pkg/bcount"
	"github.com/atomix/runtime/sdk/pkg/errors"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// NewUnsafeValue returns a memo of f applied to the value held by source.
// The memo is not safe for concurrent use.
func NewUnsafeValue[T, R any](source *bcount.Counted[T], f Func[T, R]) (*UnsafeValue[T, R], error) {
	if source == nil {
		return nil, errors.NewInvalid("source must not be nil")
	}
	if f == nil {
		return nil, errors.NewInvalid("func must not be nil")
	}
	return &UnsafeValue[T, R]{
		id:     newID(),
		source: source,
		f:      f,
	}, nil
}

type UnsafeValue[T, R any] struct {
	id           string
	source       *bcount.Counted[T]
	f            Func[T, R]
	entry        *entry[R]
	computations uint64
}

// ID returns the unique identifier of the memo.
func (v *UnsafeValue[T, R]) ID() string {
	return v.id
}

func (v *UnsafeValue[T, R]) load() (R, bool) {
	var result R
	if v.entry != nil && v.entry.count == v.source.Count() {
		return v.entry.result, true
	}
	return result, false
}

// Get returns the memoized result, recomputing it if the source's count moved
// since the last computation. A failed computation is not cached.
func (v *UnsafeValue[T, R]) Get() (R, error) {
	if result, ok := v.load(); ok {
		return result, nil
	}

	count := v.source.Count()
	log.Debugf("Computing value %s at count %d", v.id, count)
	v.computations++
	result, err := v.f(v.source.Get())
	if err != nil {
		v.entry = nil
		return result, err
	}
	v.entry = &entry[R]{
		count:  count,
		result: result,
	}
	return result, nil
}

// Invalidate drops the memoized result.
func (v *UnsafeValue[T, R]) Invalidate() {
	if v.entry != nil {
		log.Debugf("Invalidating value %s", v.id)
	}
	v.entry = nil
}

// Computations returns the number of times the computation has run.
func (v *UnsafeValue[T, R]) Computations() uint64 {
	return v.computations
}

// NewUnsafeLRU returns a memo of f holding results for up to size keys.
// The memo is not safe for concurrent use.
func NewUnsafeLRU[K comparable, T, R any](size int, f Func[T, R]) (*UnsafeLRU[K, T, R], error) {
	if size <= 0 {
		return nil, errors.NewInvalid("size must be positive, got %d", size)
	}
	if f == nil {
		return nil, errors.NewInvalid("func must not be nil")
	}
	id := newID()
	cache, err := simplelru.NewLRU[K, entry[R]](size, func(key K, _ entry[R]) {
		log.Debugf("Dropped key %v from %s", key, id)
	})
	if err != nil {
		return nil, err
	}
	return &UnsafeLRU[K, T, R]{
		id:    id,
		f:     f,
		cache: cache,
	}, nil
}

type UnsafeLRU[K comparable, T, R any] struct {
	id           string
	f            Func[T, R]
	cache        *simplelru.LRU[K, entry[R]]
	computations uint64
}

// ID returns the unique identifier of the memo.
func (c *UnsafeLRU[K, T, R]) ID() string {
	return c.id
}

// Get returns the result memoized for key, recomputing it from source if
// the source's count moved since the last computation for key. The key must
// identify the source: two sources sharing a key also share a result.
func (c *UnsafeLRU[K, T, R]) Get(key K, source *bcount.Counted[T]) (R, error) {
	count := source.Count()
	if cached, ok := c.cache.Get(key); ok && cached.count == count {
		return cached.result, nil
	}

	log.Debugf("Computing key %v in %s at count %d", key, c.id, count)
	c.computations++
	result, err := c.f(source.Get())
	if err != nil {
		c.cache.Remove(key)
		return result, err
	}
	c.cache.Add(key, entry[R]{
		count:  count,
		result: result,
	})
	return result, nil
}

// Invalidate drops the result memoized for key, returning whether it was present.
func (c *UnsafeLRU[K, T, R]) Invalidate(key K) bool {
	return c.cache.Remove(key)
}

// Purge drops all memoized results.
func (c *UnsafeLRU[K, T, R]) Purge() {
	c.cache.Purge()
}

// Len returns the number of memoized results.
func (c *UnsafeLRU[K, T, R]) Len() int {
	return c.cache.Len()
}

// Computations returns the number of times the computation has run.
func (c *UnsafeLRU[K, T, R]) Computations() uint64 {
	return c.computations
}
