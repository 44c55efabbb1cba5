// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - injectable time source
//
// Every timed operation samples the clock exactly once and derives
// all of its decisions from that single reading, so a deadline can
// never be evaluated inconsistently within one operation.
package clock

import (
	"time"
)

// Clock - the time source used by all timed operations
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// New - the real system clock
func New() Clock {
	return systemClock{}
}
