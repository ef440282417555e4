// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package memo caches the results of expensive computations over
// bcount.Counted values.
//
// A cached result is reused for as long as the source's count equals the count
// observed when the result was computed. Because the count is approximate, a
// result may be recomputed when the value did not really change, and a write
// that bypasses the source's Mut is never seen. Resetting the source can bring
// its count back to a previously observed value, so callers that Reset a source
// must also Invalidate the results derived from it.
package memo

import (
	"github.com/atomix/runtime/sdk/pkg/logging"
	"github.com/google/uuid"
)

var log = logging.GetLogger()

// Func is a computation whose result is memoized.
type Func[T, R any] func(T) (R, error)

type entry[R any] struct {
	count  uint
	result R
}

func newID() string {
	return uuid.New().String()
}
