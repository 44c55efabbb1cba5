// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
)

func TestListDelist(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.ListForSale(bob, id, unit)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner listed")

	err = f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")

	listed, price, err := f.store.SaleInfo(id)
	assert.Nil(t, err, "saleInfo error")
	assert.True(t, listed, "not listed after list")
	assert.Equal(t, unit, price, "listing price")

	err = f.store.Delist(bob, id)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner delisted")

	err = f.store.Delist(alice, id)
	assert.Nil(t, err, "delist error")
	listed, _, err = f.store.SaleInfo(id)
	assert.Nil(t, err, "saleInfo error")
	assert.False(t, listed, "listed after delist")

	err = f.store.Delist(alice, id)
	assert.Equal(t, fault.NotForSale, err, "delisted twice")
}

func TestListWhileAuctionActive(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.StartAuction(alice, id, unit, 3600)
	assert.Nil(t, err, "start error")

	err = f.store.ListForSale(alice, id, unit)
	assert.Equal(t, fault.AssetLocked, err, "listed during auction")
}

func TestUpdatePrice(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.UpdatePrice(alice, id, 2*unit)
	assert.Equal(t, fault.NotForSale, err, "price updated with no listing")

	err = f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")
	err = f.store.UpdatePrice(bob, id, 2*unit)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner updated price")

	err = f.store.UpdatePrice(alice, id, 2*unit)
	assert.Nil(t, err, "update price error")
	_, price, err := f.store.SaleInfo(id)
	assert.Nil(t, err, "saleInfo error")
	assert.Equal(t, 2*unit, price, "price after update")
}

// the reference scenario: price 1.0, royalty 5% to a distinct
// recipient; the split is exactly 0.05 / 0.95
func TestBuy(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.SetRoyalty(alice, id, carol, 500)
	assert.Nil(t, err, "setRoyalty error")
	err = f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")

	err = f.store.Buy(bob, id, unit)
	assert.Nil(t, err, "buy error")

	owner, err := f.store.OwnerOf(id)
	assert.Nil(t, err, "ownerOf error")
	assert.Equal(t, bob, owner, "owner after buy")

	assert.Equal(t, 5*unit/100, f.payments.Balance(carol), "royalty credit")
	assert.Equal(t, 95*unit/100, f.payments.Balance(alice), "seller credit")
	assert.Equal(t, uint64(0), f.payments.Balance(bob), "buyer credited at exact price")

	listed, _, err := f.store.SaleInfo(id)
	assert.Nil(t, err, "saleInfo error")
	assert.False(t, listed, "listed after buy")
}

func TestBuyGuards(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.Buy(bob, id, unit)
	assert.Equal(t, fault.NotForSale, err, "bought unlisted asset")

	err = f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")
	err = f.store.Buy(bob, id, unit-1)
	assert.Equal(t, fault.InsufficientPayment, err, "underpayment accepted")
}

func TestBuyExcessRefund(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")

	err = f.store.Buy(bob, id, unit+12345)
	assert.Nil(t, err, "buy error")

	assert.Equal(t, uint64(12345), f.payments.Balance(bob), "excess refund")
	assert.Equal(t, unit, f.payments.Balance(alice), "seller credit")
}

// the two settlement legs sum to the price exactly for awkward
// price and rate combinations
func TestBuyExactSplit(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	prices := []uint64{1, 3, 999, 10001, 123456789}
	rates := []uint64{1, 333, 9999, 10000}

	for _, rate := range rates {
		for _, price := range prices {
			id := f.mint(t, alice)
			err := f.store.SetRoyalty(alice, id, carol, rate)
			assert.Nil(t, err, "setRoyalty error")
			err = f.store.ListForSale(alice, id, price)
			assert.Nil(t, err, "list error")

			before := f.payments.Balance(alice) + f.payments.Balance(carol)
			err = f.store.Buy(bob, id, price)
			assert.Nil(t, err, "buy error")
			after := f.payments.Balance(alice) + f.payments.Balance(carol)

			assert.Equal(t, price, after-before, "split does not sum to price")

			// return the asset so the next round lists it afresh
			err = f.store.Transfer(id, bob, alice)
			assert.Nil(t, err, "transfer error")
		}
	}
}

// with no distinct recipient the seller collects the whole price
// through two credits
func TestBuyDefaultRecipient(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")

	err = f.store.Buy(bob, id, unit)
	assert.Nil(t, err, "buy error")
	assert.Equal(t, unit, f.payments.Balance(alice), "seller total")
}
