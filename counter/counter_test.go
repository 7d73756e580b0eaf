// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong count after increment")

	assert.Equal(t, uint64(4), c.Decrement(), "wrong count after decrement")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	const maximum = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(maximum) {
				mu.Lock()
				acquired += 1
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, maximum, acquired, "wrong number acquired")
	assert.Equal(t, uint64(maximum), c.Uint64(), "wrong count")

	c.Decrement()
	assert.True(t, c.Acquire(maximum), "released slot not reusable")
	assert.False(t, c.Acquire(maximum), "acquired beyond maximum")
}
