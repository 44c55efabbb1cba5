// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long-lived goroutines with clean shutdown
package background

// Process - the interface for a background goroutine
//
// Run must return promptly once the shutdown channel closes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - the list of processes to start together
type Processes []Process

// T - handle to a started set of processes
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	count    int
}

// Start - launch each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}, len(processes)),
		count:    len(processes),
	}

	for _, p := range processes {
		go func(p Process) {
			p.Run(args, t.shutdown)
			t.finished <- struct{}{}
		}(p)
	}
	return t
}

// Stop - signal all processes and wait until every one has returned
func (t *T) Stop() {
	if nil == t {
		return
	}
	close(t.shutdown)
	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
