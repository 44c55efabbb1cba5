// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/principal"
)

func TestSetRoyalty(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.SetRoyalty(bob, id, carol, 500)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner set royalty")

	err = f.store.SetRoyalty(alice, id, carol, 10001)
	assert.Equal(t, fault.InvalidRoyaltyRate, err, "rate above denominator accepted")

	err = f.store.SetRoyalty(alice, id, principal.Nobody, 500)
	assert.Equal(t, fault.InvalidPrincipal, err, "empty recipient accepted")

	err = f.store.SetRoyalty(alice, id, carol, 500)
	assert.Nil(t, err, "setRoyalty error")

	recipient, amount, err := f.store.RoyaltyInfo(id, 2*unit)
	assert.Nil(t, err, "royaltyInfo error")
	assert.Equal(t, carol, recipient, "royalty recipient")
	assert.Equal(t, 2*unit*500/10000, amount, "royalty amount")
}

// the creator is its own recipient until a policy is set
func TestRoyaltyDefault(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	recipient, amount, err := f.store.RoyaltyInfo(id, unit)
	assert.Nil(t, err, "royaltyInfo error")
	assert.Equal(t, alice, recipient, "default recipient")
	assert.Equal(t, uint64(0), amount, "default rate")
}

// the split floors: 999 at 1 bps pays 0 royalty
func TestRoyaltyFloor(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.SetRoyalty(alice, id, carol, 1)
	assert.Nil(t, err, "setRoyalty error")

	_, amount, err := f.store.RoyaltyInfo(id, 9999)
	assert.Nil(t, err, "royaltyInfo error")
	assert.Equal(t, uint64(0), amount, "floored amount")

	_, amount, err = f.store.RoyaltyInfo(id, 10000)
	assert.Nil(t, err, "royaltyInfo error")
	assert.Equal(t, uint64(1), amount, "one-unit royalty")
}

// the split stays exact for prices near the integer limit
func TestRoyaltyLargePrice(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.SetRoyalty(alice, id, carol, 500)
	assert.Nil(t, err, "setRoyalty error")

	price := uint64(1) << 62
	_, amount, err := f.store.RoyaltyInfo(id, price)
	assert.Nil(t, err, "royaltyInfo error")
	assert.Equal(t, price/20, amount, "five percent of a large price")
}

// the policy in force at settlement applies, not the one at listing
func TestRoyaltyReadAtSettlement(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")

	err = f.store.SetRoyalty(alice, id, carol, 1000)
	assert.Nil(t, err, "setRoyalty error")

	err = f.store.Buy(bob, id, unit)
	assert.Nil(t, err, "buy error")

	assert.Equal(t, unit/10, f.payments.Balance(carol), "post-listing policy ignored")
}
