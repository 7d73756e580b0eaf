// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/messagebus"
)

var items = []messagebus.Message{
	{
		Command:    "c1",
		Parameters: [][]byte{[]byte("p1")},
	},
	{
		Command:    "c2",
		Parameters: [][]byte{[]byte("p2"), []byte("p3")},
	},
	{
		Command:    "c3",
		Parameters: [][]byte{},
	},
}

func TestBroadcast(t *testing.T) {
	queue := messagebus.New()

	// nothing listening so these messages should be dropped
	for _, item := range items {
		queue.Send("ignored:" + item.Command)
	}

	// create some listeners
	const listeners = 5

	var l [listeners]int
	var wg sync.WaitGroup

	for i := 0; i < listeners; i += 1 {
		wg.Add(1)
		c := queue.Chan(0)
		go func(n int, c <-chan messagebus.Message) {
			defer wg.Done()
			for _, item := range items {
				received := <-c
				if received.Command != item.Command {
					t.Errorf("actual: %q  expected: %q", received.Command, item.Command)
				} else if len(received.Parameters) != len(item.Parameters) {
					t.Errorf("actual: %d  expected: %d parameters", len(received.Parameters), len(item.Parameters))
				} else {
					l[n] += 1
				}
			}
		}(i, c)
	}

	for _, item := range items {
		queue.Send(item.Command, item.Parameters...)
	}

	wg.Wait()
	for i, n := range l {
		if n != len(items) {
			t.Errorf("listener[%d] received: %d  expected: %d", i, n, len(items))
		}
	}
}

func TestFullListenerDrops(t *testing.T) {
	queue := messagebus.New()

	c := queue.Chan(2)
	for _, item := range items {
		queue.Send(item.Command, item.Parameters...)
	}

	assert.Equal(t, uint64(1), queue.Dropped(), "wrong drop count")
	assert.Equal(t, "c1", (<-c).Command, "wrong first message")
	assert.Equal(t, "c2", (<-c).Command, "wrong second message")

	select {
	case m := <-c:
		t.Errorf("unexpected message: %q", m.Command)
	default:
	}
}

func TestRelease(t *testing.T) {
	queue := messagebus.New()

	c1 := queue.Chan(10)
	c2 := queue.Chan(10)
	assert.Equal(t, 2, queue.Listeners(), "wrong listener count")

	queue.Release(c1)
	assert.Equal(t, 1, queue.Listeners(), "listener not removed")

	_, ok := <-c1
	assert.False(t, ok, "released channel still open")

	queue.Send("after")
	assert.Equal(t, "after", (<-c2).Command, "remaining listener missed message")

	// releasing twice is harmless
	queue.Release(c1)
	assert.Equal(t, 1, queue.Listeners(), "second release removed a listener")
}
