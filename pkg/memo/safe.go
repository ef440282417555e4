// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package memo

import (
	"github.com/atomix/go-bcount/pkg/bcount"
	"sync"
)

// NewValue returns a memo of f applied to the value held by source.
//
// The memo guards its own state, but not the source: callers writing to the
// source concurrently with Get must hold their own lock around both.
func NewValue[T, R any](source *bcount.Counted[T], f Func[T, R]) (*Value[T, R], error) {
	value, err := NewUnsafeValue(source, f)
	if err != nil {
		return nil, err
	}
	return &Value[T, R]{
		UnsafeValue: value,
	}, nil
}

type Value[T, R any] struct {
	*UnsafeValue[T, R]
	mu sync.RWMutex
}

func (v *Value[T, R]) Get() (R, error) {
	v.mu.RLock()
	result, ok := v.UnsafeValue.load()
	v.mu.RUnlock()
	if ok {
		return result, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	return v.UnsafeValue.Get()
}

func (v *Value[T, R]) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.UnsafeValue.Invalidate()
}

func (v *Value[T, R]) Computations() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.UnsafeValue.Computations()
}

// NewLRU returns a memo of f holding results for up to size keys. As with
// NewValue, sources are not guarded by the memo.
func NewLRU[K comparable, T, R any](size int, f Func[T, R]) (*LRU[K, T, R], error) {
	cache, err := NewUnsafeLRU[K, T, R](size, f)
	if err != nil {
		return nil, err
	}
	return &LRU[K, T, R]{
		UnsafeLRU: cache,
	}, nil
}

type LRU[K comparable, T, R any] struct {
	*UnsafeLRU[K, T, R]
	mu sync.Mutex
}

func (c *LRU[K, T, R]) Get(key K, source *bcount.Counted[T]) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.UnsafeLRU.Get(key, source)
}

func (c *LRU[K, T, R]) Invalidate(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.UnsafeLRU.Invalidate(key)
}

func (c *LRU[K, T, R]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UnsafeLRU.Purge()
}

func (c *LRU[K, T, R]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.UnsafeLRU.Len()
}

func (c *LRU[K, T, R]) Computations() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.UnsafeLRU.Computations()
}
