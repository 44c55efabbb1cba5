// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/constants"
	"github.com/bitmark-inc/registryd/fault"
)

func TestIsExpired(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.SetExpiry(alice, id, f.clock.now.Add(time.Hour).Unix())
	assert.Nil(t, err, "setExpiry error")

	expired, err := f.store.IsExpired(id)
	assert.Nil(t, err, "isExpired error")
	assert.False(t, expired, "expired before expiry")

	// false strictly before, true at and after the instant
	f.clock.advance(time.Hour - time.Second)
	expired, _ = f.store.IsExpired(id)
	assert.False(t, expired, "expired one second early")

	f.clock.advance(time.Second)
	expired, _ = f.store.IsExpired(id)
	assert.True(t, expired, "not expired at the expiry instant")

	f.clock.advance(time.Hour)
	expired, _ = f.store.IsExpired(id)
	assert.True(t, expired, "not expired after expiry")
}

func TestSetAccessLevel(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.SetAccessLevel(bob, id, bob, 2)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner set level")

	err = f.store.SetAccessLevel(alice, id, bob, 0)
	assert.Equal(t, fault.InvalidAccessLevel, err, "level zero accepted")
	err = f.store.SetAccessLevel(alice, id, bob, 4)
	assert.Equal(t, fault.InvalidAccessLevel, err, "level above maximum accepted")

	err = f.store.SetAccessLevel(alice, id, bob, 3)
	assert.Nil(t, err, "set level error")
	level, err := f.store.AccessLevelOf(id, bob)
	assert.Nil(t, err, "accessLevelOf error")
	assert.Equal(t, uint64(3), level, "stored level")

	// the setter is symmetric: lowering works the same way
	err = f.store.SetAccessLevel(alice, id, bob, 1)
	assert.Nil(t, err, "lower level error")
	level, _ = f.store.AccessLevelOf(id, bob)
	assert.Equal(t, uint64(1), level, "lowered level")
}

func TestUpgradeDowngrade(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.UpgradeSubscription(alice, id, 3)
	assert.Nil(t, err, "upgrade error")
	level, err := f.store.AccessLevelOf(id, alice)
	assert.Nil(t, err, "accessLevelOf error")
	assert.Equal(t, uint64(3), level, "level after upgrade")

	err = f.store.DowngradeSubscription(alice, id, 2)
	assert.Nil(t, err, "downgrade error")
	level, _ = f.store.AccessLevelOf(id, alice)
	assert.Equal(t, uint64(2), level, "level after downgrade")

	// re-raising through upgrade is allowed
	err = f.store.UpgradeSubscription(alice, id, 3)
	assert.Nil(t, err, "re-upgrade error")
}

// extension is additive to the current expiry, not to now
func TestExtendSubscription(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	expiry := f.clock.now.Add(5 * 24 * time.Hour).Unix()
	err := f.store.SetExpiry(alice, id, expiry)
	assert.Nil(t, err, "setExpiry error")

	err = f.store.ExtendSubscription(bob, id, 3, 3*constants.SubscriptionRatePerDay)
	assert.Nil(t, err, "extend error")

	countdown, err := f.store.ExpiryCountdown(id)
	assert.Nil(t, err, "countdown error")
	assert.Equal(t, uint64(8*24*3600), countdown, "extension not additive")

	// the payment went to the owner
	assert.Equal(t, uint64(3*constants.SubscriptionRatePerDay), f.payments.Balance(alice), "owner credit")
}

func TestExtendSubscriptionGuards(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.ExtendSubscription(bob, id, 0, constants.SubscriptionRatePerDay)
	assert.Equal(t, fault.InvalidDuration, err, "zero days accepted")

	// a day count chosen so the per-day rate multiplication wraps to
	// a tiny total must not slip past the payment guard
	err = f.store.ExtendSubscription(bob, id, 184467440737096, 48384)
	assert.Equal(t, fault.InvalidDuration, err, "wrapping day count accepted")
	assert.Equal(t, uint64(0), f.payments.Balance(alice), "owner credited for rejected extension")

	err = f.store.ExtendSubscription(bob, id, constants.MaximumDurationDays+1, 1<<63)
	assert.Equal(t, fault.InvalidDuration, err, "day count above limit accepted")

	err = f.store.ExtendSubscription(bob, id, 3, 3*constants.SubscriptionRatePerDay-1)
	assert.Equal(t, fault.InsufficientPayment, err, "underpayment accepted")

	err = f.store.ExtendSubscription(bob, 9999, 3, 3*constants.SubscriptionRatePerDay)
	assert.Equal(t, fault.AssetNotFound, err, "unknown asset extended")
}

func TestExpiryCountdown(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.SetExpiry(alice, id, f.clock.now.Add(100*time.Second).Unix())
	assert.Nil(t, err, "setExpiry error")

	countdown, err := f.store.ExpiryCountdown(id)
	assert.Nil(t, err, "countdown error")
	assert.Equal(t, uint64(100), countdown, "countdown")

	f.clock.advance(200 * time.Second)
	countdown, _ = f.store.ExpiryCountdown(id)
	assert.Equal(t, uint64(0), countdown, "countdown after expiry")
}

func TestExpiryNotification(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.SetExpiry(alice, id, f.clock.now.Add(30*24*time.Hour).Unix())
	assert.Nil(t, err, "setExpiry error")

	notify, err := f.store.CheckForExpiryNotification(id)
	assert.Nil(t, err, "notification error")
	assert.False(t, notify, "notified outside the window")

	// 23 days on: 7 days remain, exactly on the window edge
	f.clock.advance(23 * 24 * time.Hour)
	notify, _ = f.store.CheckForExpiryNotification(id)
	assert.True(t, notify, "not notified on the window edge")

	f.clock.advance(6 * 24 * time.Hour)
	notify, _ = f.store.CheckForExpiryNotification(id)
	assert.True(t, notify, "not notified inside the window")

	// never true once expired
	f.clock.advance(2 * 24 * time.Hour)
	notify, _ = f.store.CheckForExpiryNotification(id)
	assert.False(t, notify, "notified after expiry")
}

func TestIssueCertificate(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.SetExpiry(alice, id, f.clock.now.Add(time.Hour).Unix())
	assert.Nil(t, err, "setExpiry error")

	err = f.store.IssueCertificate(alice, id)
	assert.Equal(t, fault.SubscriptionNotExpired, err, "certificate before expiry")

	f.clock.advance(2 * time.Hour)

	err = f.store.IssueCertificate(bob, id)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner issued certificate")

	err = f.store.IssueCertificate(alice, id)
	assert.Nil(t, err, "issue error")

	// one shot
	err = f.store.IssueCertificate(alice, id)
	assert.Equal(t, fault.CertificateAlreadyIssued, err, "certificate issued twice")
}
