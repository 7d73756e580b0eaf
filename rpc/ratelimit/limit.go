// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - throttle RPC requests
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/orderd/fault"
)

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	return LimitN(limiter, 1)
}

// LimitN - limiting for a request that touches count items
func LimitN(limiter *rate.Limiter, count int) error {
	if count <= 0 {
		count = 1
	}
	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
