// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - concurrent counters for connection limits
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned count changed atomically
type Counter uint64

// Increment - add 1, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Acquire - increment only if the result does not exceed maximum
func (ic *Counter) Acquire(maximum uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(ic))
		if n >= maximum {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), n, n+1) {
			return true
		}
	}
}

// Uint64 - current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}
