// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop long running loops
package background

import (
	"sync"
)

// Process - a loop that must return once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle of a running set of processes
type T struct {
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		t.wg.Add(1)
		go func(p Process) {
			defer t.wg.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for them to return
//
// calling Stop more than once is allowed
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.wg.Wait()
}
