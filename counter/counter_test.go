// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "new counter is not zero")

	c.Increment()
	c.Increment()
	assert.Equal(t, uint64(2), c.Uint64(), "wrong count after increments")

	c.Decrement()
	assert.Equal(t, uint64(1), c.Uint64(), "wrong count after decrement")

	c.Add(10)
	assert.Equal(t, uint64(11), c.Uint64(), "wrong count after add")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10000), c.Uint64(), "lost increments")
}
