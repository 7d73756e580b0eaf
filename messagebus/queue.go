// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener queue size
const (
	defaultQueueSize = 1000
)

// Message - command and its multipart data
type Message struct {
	Command    string   // type of packet
	Parameters [][]byte // array of parameters
}

// BroadcastQueue - a queue delivering to every listener
type BroadcastQueue struct {
	sync.RWMutex
	out     []chan Message
	dropped uint64
}

// New - an empty broadcast queue
func New() *BroadcastQueue {
	return &BroadcastQueue{
		out: make([]chan Message, 0, 4),
	}
}

// Send - queue a message to all current listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	dropped := uint64(0)
	for _, out := range queue.out {
		select {
		case out <- m:
		default:
			dropped += 1
		}
	}
	queue.RUnlock()

	if dropped > 0 {
		queue.Lock()
		queue.dropped += dropped
		queue.Unlock()
	}
}

// Chan - a new listener
//
// size <= 0 selects the default queue size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, out := range queue.out {
		if (<-chan Message)(out) == c {
			queue.out = append(queue.out[:i], queue.out[i+1:]...)
			close(out)
			return
		}
	}
}

// Listeners - number of current listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.out)
}

// Dropped - count of messages lost by full listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.RLock()
	defer queue.RUnlock()
	return queue.dropped
}
