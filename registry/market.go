// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/principal"
)

// ListForSale - put an asset up at a fixed price
//
// an asset that was ever sold through an auction can never be listed
// again, by any owner
func (s *Store) ListForSale(caller principal.Principal, assetId uint64, price uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}
	if entry.SoldAtAuction {
		return fault.AlreadySoldAtAuction
	}
	if nil != entry.Auction {
		return fault.AssetLocked
	}

	entry.Listing = &listingState{
		Price: price,
	}
	s.save(assetId, entry)

	s.events.Record("market.list", assetId, caller, principal.Nobody, price, s.clock.Now())
	return nil
}

// Delist - withdraw a listing
func (s *Store) Delist(caller principal.Principal, assetId uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}
	if nil == entry.Listing {
		return fault.NotForSale
	}

	entry.Listing = nil
	s.save(assetId, entry)

	s.events.Record("market.delist", assetId, caller, principal.Nobody, 0, s.clock.Now())
	return nil
}

// UpdatePrice - change the price of a live listing
func (s *Store) UpdatePrice(caller principal.Principal, assetId uint64, newPrice uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}
	if nil == entry.Listing {
		return fault.NotForSale
	}

	entry.Listing.Price = newPrice
	s.save(assetId, entry)

	s.events.Record("market.price", assetId, caller, principal.Nobody, newPrice, s.clock.Now())
	return nil
}

// Buy - purchase a listed asset
//
// settlement, ownership change and listing removal are one atomic
// step: the royalty recipient gets floor(price*rate/10000), the
// seller the remainder, and anything paid above the price returns to
// the buyer
func (s *Store) Buy(caller principal.Principal, assetId uint64, paidAmount uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if nil == entry.Listing {
		return fault.NotForSale
	}
	price := entry.Listing.Price
	if paidAmount < price {
		return fault.InsufficientPayment
	}

	seller := entry.Owner
	s.settle(entry, seller, caller, price, paidAmount)
	entry.Owner = caller
	entry.Listing = nil
	s.save(assetId, entry)

	s.events.Record("market.buy", assetId, seller, caller, price, s.clock.Now())
	return nil
}

// SaleInfo - whether an asset is listed, and at what price
func (s *Store) SaleInfo(assetId uint64) (bool, uint64, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return false, 0, err
	}
	if nil == entry.Listing {
		return false, 0, nil
	}
	return true, entry.Listing.Price, nil
}
