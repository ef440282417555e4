// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package bcount

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func doWork(_ []int) {}

func doNothing(_ *float64) {}

func observe(_ float64) {}

func TestNewCount(t *testing.T) {
	assert.Equal(t, uint(0), New(5.0).Count())
	assert.Equal(t, uint(0), New("foo").Count())
	assert.Equal(t, uint(0), New([]int{1, 2, 3}).Count())
	assert.Equal(t, uint(0), New(struct{}{}).Count())

	var zero Counted[map[string]int]
	assert.Equal(t, uint(0), zero.Count())
	assert.Nil(t, zero.Get())
}

func TestCount(t *testing.T) {
	a := New(5.0)
	assert.Equal(t, uint(0), a.Count())

	*a.Mut() = 89.0
	assert.Equal(t, uint(1), a.Count())
	assert.Equal(t, 89.0, a.Get())

	doNothing(a.Mut())
	assert.Equal(t, uint(2), a.Count())

	for i := 0; i < 100; i++ {
		a.Mut()
	}
	assert.Equal(t, uint(102), a.Count())
}

func TestSliceScenario(t *testing.T) {
	a := New([]int{63, 67, 42})
	assert.Equal(t, uint(0), a.Count())

	doWork(*a.Mut())
	doWork(*a.Mut())
	doWork(*a.Mut())
	doWork(*a.Mut())
	assert.Equal(t, uint(4), a.Count())

	*a.Mut() = []int{3, 4, 5}
	assert.Equal(t, uint(5), a.Count())
	assert.Equal(t, []int{3, 4, 5}, a.Get())
}

func TestReset(t *testing.T) {
	a := New(3)
	assert.Equal(t, uint(0), a.Count())

	a.Set(18)
	a.Set(42)
	assert.Equal(t, uint(2), a.Count())

	a.Reset()
	assert.Equal(t, uint(0), a.Count())
	assert.Equal(t, 42, a.Get())

	a.Set(7)
	assert.Equal(t, uint(1), a.Count())
}

func TestOverflow(t *testing.T) {
	a := New(3)
	a.counter = math.MaxUint - 1

	a.Set(18)
	assert.Equal(t, uint(math.MaxUint), a.Count())
	assert.NotPanics(t, func() {
		a.Set(18)
	})
	assert.Equal(t, uint(0), a.Count())

	a.Set(18)
	assert.Equal(t, uint(1), a.Count())
}

func TestReadOnly(t *testing.T) {
	a := New(3.0)
	assert.Equal(t, uint(0), a.Count())

	observe(a.Get())
	assert.Equal(t, uint(0), a.Count())
	observe(a.Get())
	assert.Equal(t, uint(0), a.Count())
	observe(a.Get())
	assert.Equal(t, uint(0), a.Count())

	assert.Equal(t, "3", a.String())
	_, err := a.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, uint(0), a.Count())
}

func TestShallowCount(t *testing.T) {
	borrowMe := func(v *[]int) {
		*v = append(*v, 1)
	}
	borrowMeTwice := func(v *[]int) {
		borrowMe(v)
		borrowMe(v)
		(*v)[0] = 42
	}

	a := New([]int{})
	borrowMeTwice(a.Mut())
	assert.Equal(t, uint(1), a.Count())
	assert.Equal(t, []int{42, 1}, a.Get())

	a.Update(func(v *[]int) {
		borrowMeTwice(v)
		borrowMe(v)
	})
	assert.Equal(t, uint(2), a.Count())
	assert.Len(t, a.Get(), 5)
}

func TestUncountedInnerMutation(t *testing.T) {
	// The payload shares its backing array, so writes through Get are not seen.
	a := New([]int{1, 2, 3})
	a.Get()[0] = 100
	assert.Equal(t, uint(0), a.Count())
	assert.Equal(t, 100, a.Get()[0])

	type box struct {
		n *int
	}
	n := 1
	b := New(box{n: &n})
	*b.Get().n = 2
	assert.Equal(t, uint(0), b.Count())
	assert.Equal(t, 2, *b.Get().n)
}

func TestMethodForwarding(t *testing.T) {
	a := New(&point{x: 1, y: 2})
	assert.Equal(t, 3, a.Get().sum())
	assert.Equal(t, uint(0), a.Count())

	(*a.Mut()).x = 10
	assert.Equal(t, 12, a.Get().sum())
	assert.Equal(t, uint(1), a.Count())

	b := New(point{x: 1, y: 1})
	b.Mut().scale(3)
	assert.Equal(t, point{x: 3, y: 3}, b.Get())
	assert.Equal(t, uint(1), b.Count())
}

func TestClone(t *testing.T) {
	a := New(1)
	a.Set(2)
	a.Set(3)

	b := a.Clone()
	assert.Equal(t, uint(2), b.Count())
	assert.Equal(t, 3, b.Get())

	b.Set(4)
	assert.Equal(t, uint(3), b.Count())
	assert.Equal(t, uint(2), a.Count())
	assert.Equal(t, 3, a.Get())

	c := *a
	c.Reset()
	assert.Equal(t, uint(0), c.Count())
	assert.Equal(t, uint(2), a.Count())
}

type point struct {
	x, y int
}

func (p point) sum() int {
	return p.x + p.y
}

func (p *point) scale(n int) {
	p.x *= n
	p.y *= n
}
