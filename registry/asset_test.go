// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/mode"
)

func TestCreate(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	expiry := f.clock.now.Add(30 * 24 * time.Hour).Unix()

	// identifiers are dense and zero based
	id0, err := f.store.Create(admin, expiry, 1, "meta://0", "doc://0", 500)
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(0), id0, "first asset identifier")

	id1, err := f.store.Create(admin, expiry, 2, "", "", 0)
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(1), id1, "second asset identifier")

	owner, err := f.store.OwnerOf(id0)
	assert.Nil(t, err, "ownerOf error")
	assert.Equal(t, admin, owner, "initial owner")

	info, err := f.store.AssetInfo(id0)
	assert.Nil(t, err, "assetInfo error")
	assert.Equal(t, expiry, info.Expiry, "stored expiry")
	assert.Equal(t, "meta://0", info.MetadataURI, "stored metadata pointer")
}

func TestCreateGuards(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	expiry := f.clock.now.Add(time.Hour).Unix()

	_, err := f.store.Create(alice, expiry, 1, "", "", 0)
	assert.Equal(t, fault.NotAuthorised, err, "unlisted principal minted")

	_, err = f.store.Create(admin, expiry, 0, "", "", 0)
	assert.Equal(t, fault.InvalidAccessLevel, err, "level zero accepted")
	_, err = f.store.Create(admin, expiry, 4, "", "", 0)
	assert.Equal(t, fault.InvalidAccessLevel, err, "level above maximum accepted")

	_, err = f.store.Create(admin, expiry, 1, "", "", 10001)
	assert.Equal(t, fault.InvalidRoyaltyRate, err, "rate above denominator accepted")

	// banned minters are rejected before the role check
	err = f.roles.AddMinter(admin, alice)
	assert.Nil(t, err, "add minter error")
	err = f.roles.Ban(admin, alice)
	assert.Nil(t, err, "ban error")
	_, err = f.store.Create(alice, expiry, 1, "", "", 0)
	assert.Equal(t, fault.PrincipalBanned, err, "banned minter minted")

	// pause blocks minting entirely
	err = f.roles.Pause(admin)
	assert.Nil(t, err, "pause error")
	_, err = f.store.Create(admin, expiry, 1, "", "", 0)
	assert.Equal(t, fault.RegistrySuspended, err, "minted while suspended")
	mode.Set(mode.Normal)
}

func TestTransfer(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	other := f.mint(t, alice)

	err := f.store.Transfer(id, alice, bob)
	assert.Nil(t, err, "transfer error")

	owner, err := f.store.OwnerOf(id)
	assert.Nil(t, err, "ownerOf error")
	assert.Equal(t, bob, owner, "owner after transfer")

	// no other asset's owner changes
	owner, err = f.store.OwnerOf(other)
	assert.Nil(t, err, "ownerOf error")
	assert.Equal(t, alice, owner, "unrelated owner changed")
}

func TestTransferGuards(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.Transfer(9999, alice, bob)
	assert.Equal(t, fault.AssetNotFound, err, "unknown asset transferred")

	err = f.store.Transfer(id, bob, carol)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner transferred")

	// an active auction locks the asset
	err = f.store.StartAuction(alice, id, unit, 3600)
	assert.Nil(t, err, "start auction error")
	err = f.store.Transfer(id, alice, bob)
	assert.Equal(t, fault.AssetLocked, err, "transferred during auction")
}

func TestTransferClearsListing(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)
	err := f.store.ListForSale(alice, id, unit)
	assert.Nil(t, err, "list error")

	err = f.store.Transfer(id, alice, bob)
	assert.Nil(t, err, "transfer error")

	listed, _, err := f.store.SaleInfo(id)
	assert.Nil(t, err, "saleInfo error")
	assert.False(t, listed, "listing survived transfer")
}

func TestRevoke(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	id := f.mint(t, alice)

	err := f.store.Revoke(bob, id)
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner revoked")

	err = f.store.Revoke(alice, id)
	assert.Nil(t, err, "revoke error")

	_, err = f.store.OwnerOf(id)
	assert.Equal(t, fault.AssetNotFound, err, "revoked asset still readable")
	err = f.store.Transfer(id, alice, bob)
	assert.Equal(t, fault.AssetNotFound, err, "revoked asset transferred")

	// the identifier is never reissued
	next := f.mint(t, alice)
	assert.Equal(t, id+1, next, "identifier reissued after revoke")
}
