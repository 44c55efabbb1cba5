// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/registryd/fault"
)

func TestRateLimit(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)
	assert.NoError(t, rateLimit(limiter))
}

func TestRateLimitN(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)

	assert.NoError(t, rateLimitN(limiter, 10, 100))

	// over the per-call maximum
	err := rateLimitN(limiter, 101, 100)
	assert.Equal(t, fault.InvalidCount, err)
}
