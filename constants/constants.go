// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// payment amounts are integer units
// 1 000 000 units represent one currency unit
const (
	UnitsPerCurrency = 1000000
)

// the per-day charge for extending a subscription
const (
	SubscriptionRatePerDay = UnitsPerCurrency / 10
)

// royalty rates are expressed in basis points of the sale price
const (
	RoyaltyRateDenominator = 10000
)

// a bid arriving inside the trailing window lengthens the auction
const (
	AuctionTrailingWindow = 10 * time.Minute
	AuctionExtension      = 10 * time.Minute
)

// caller-supplied durations are capped so expiry timestamps and the
// per-day payment computation stay inside the integer range
const (
	MaximumDurationDays    = 100 * 365
	MaximumAuctionDuration = 365 * 24 * time.Hour
)

// expiry notification threshold
const (
	ExpiryNotificationWindow = 7 * 24 * time.Hour
)

// access levels are small ordinals
const (
	MinimumAccessLevel = 1
	DefaultAccessLevel = 1
	MaximumAccessLevel = 3
)
