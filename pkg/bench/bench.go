// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package bench compares raw values against bcount.Counted values.
package bench

import (
	"encoding/binary"
	"github.com/atomix/go-bcount/pkg/bcount"
	"github.com/atomix/runtime/sdk/pkg/errors"
	"github.com/atomix/runtime/sdk/pkg/logging"
	"github.com/cespare/xxhash/v2"
	"testing"
)

var log = logging.GetLogger()

const (
	RawCase     = "raw"
	CountedCase = "counted"
)

// Result is the outcome of a single benchmark case.
type Result struct {
	Case       string `yaml:"case"`
	Size       int    `yaml:"size"`
	Iterations int    `yaml:"iterations"`
	NsPerOp    int64  `yaml:"nsPerOp"`
}

func newResult(name string, size int, result testing.BenchmarkResult) Result {
	return Result{
		Case:       name,
		Size:       size,
		Iterations: result.N,
		NsPerOp:    result.NsPerOp(),
	}
}

// Access times a summation loop of size steps run against a raw uint and
// against a Counted uint reached through Mut.
func Access(size int) ([]Result, error) {
	if size <= 0 {
		return nil, errors.NewInvalid("size must be positive, got %d", size)
	}

	log.Debugf("Running access benchmark with size %d", size)
	raw := testing.Benchmark(func(b *testing.B) {
		n := uint(size)
		for i := 0; i < b.N; i++ {
			Sum(&n)
		}
	})
	counted := testing.Benchmark(func(b *testing.B) {
		n := bcount.New(uint(size))
		for i := 0; i < b.N; i++ {
			Sum(n.Mut())
		}
	})
	return []Result{
		newResult(RawCase, size, raw),
		newResult(CountedCase, size, counted),
	}, nil
}

// Hash times hashing the full contents of a size element slice against
// hashing only the count of a Counted holding the same slice.
func Hash(size int) ([]Result, error) {
	if size <= 0 {
		return nil, errors.NewInvalid("size must be positive, got %d", size)
	}

	log.Debugf("Running hash benchmark with size %d", size)
	values := NewValues(size)
	raw := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			HashValues(values)
		}
	})
	counted := testing.Benchmark(func(b *testing.B) {
		c := bcount.New(values)
		for i := 0; i < b.N; i++ {
			HashCount(c)
		}
	})
	return []Result{
		newResult(RawCase, size, raw),
		newResult(CountedCase, size, counted),
	}, nil
}

// Sum adds the integers in [0, n).
//
//go:noinline
func Sum(n *uint) float64 {
	var s float64
	for i := uint(0); i < *n; i++ {
		s += float64(i)
	}
	return s
}

// NewValues returns size copies of 42.
func NewValues(size int) []uint64 {
	values := make([]uint64, size)
	for i := range values {
		values[i] = 42
	}
	return values
}

// HashValues hashes every element of values.
func HashValues(values []uint64) uint64 {
	digest := xxhash.New()
	var buf [8]byte
	for _, value := range values {
		binary.LittleEndian.PutUint64(buf[:], value)
		_, _ = digest.Write(buf[:])
	}
	return digest.Sum64()
}

// HashCount hashes the count of c in place of its value.
func HashCount[T any](c *bcount.Counted[T]) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Count()))
	return xxhash.Sum64(buf[:])
}
