// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"time"

	"github.com/bitmark-inc/registryd/constants"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/principal"
)

// AuctionInfo - external snapshot of a live auction
type AuctionInfo struct {
	Active        bool                `json:"active"`
	FloorBid      uint64              `json:"floorBid"`
	HighestBid    uint64              `json:"highestBid"`
	HighestBidder principal.Principal `json:"highestBidder,omitempty"`
	EndTime       int64               `json:"endTime"`
}

// StartAuction - open an auction on an asset
//
// the auction locks the asset: transfer and listing are rejected
// until the auction is ended
func (s *Store) StartAuction(caller principal.Principal, assetId uint64, floorBid uint64, duration uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	if 0 == duration || duration > uint64(constants.MaximumAuctionDuration/time.Second) {
		return fault.InvalidDuration
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}
	if nil != entry.Auction {
		return fault.AuctionAlreadyActive
	}
	if nil != entry.Listing {
		return fault.AssetLocked
	}

	now := s.clock.Now()
	entry.Auction = &auctionState{
		FloorBid:   floorBid,
		HighestBid: floorBid,
		EndTime:    now.Unix() + int64(duration),
	}
	s.save(assetId, entry)

	s.events.Record("auction.start", assetId, caller, principal.Nobody, floorBid, now)
	return nil
}

// PlaceBid - outbid the current highest bidder
//
// the previous highest bidder is refunded in full before the new bid
// is accepted, so no bidder's value is ever held alongside a higher
// one; a qualifying bid inside the trailing window lengthens the
// auction instead of letting it expire under contest
func (s *Store) PlaceBid(caller principal.Principal, assetId uint64, amount uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	now := s.clock.Now()
	if nil == entry.Auction || now.Unix() >= entry.Auction.EndTime {
		return fault.AuctionNotActive
	}
	if entry.Owner == caller {
		return fault.CannotBidOnOwnAuction
	}
	if amount <= entry.Auction.HighestBid {
		return fault.BidTooLow
	}

	if !entry.Auction.HighestBidder.IsNobody() {
		s.payments.Credit(entry.Auction.HighestBidder, entry.Auction.HighestBid)
	}
	entry.Auction.HighestBid = amount
	entry.Auction.HighestBidder = caller
	endTime := time.Unix(entry.Auction.EndTime, 0)
	if endTime.Sub(now) <= constants.AuctionTrailingWindow {
		entry.Auction.EndTime = endTime.Add(constants.AuctionExtension).Unix()
	}
	s.save(assetId, entry)

	s.events.Record("auction.bid", assetId, caller, entry.Owner, amount, now)
	return nil
}

// EndAuction - close an auction whose end time has passed
//
// with a recorded bidder the asset moves to that bidder through the
// royalty-split settlement path and is permanently barred from
// fixed-price listing; with no bids the asset simply unlocks
func (s *Store) EndAuction(caller principal.Principal, assetId uint64) error {
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
	if nil == entry.Auction {
		return fault.AuctionNotActive
	}
	now := s.clock.Now()
	if now.Unix() < entry.Auction.EndTime {
		return fault.AuctionTooEarly
	}

	auction := entry.Auction
	entry.Auction = nil

	if auction.HighestBidder.IsNobody() {
		s.save(assetId, entry)
		s.events.Record("auction.end", assetId, caller, principal.Nobody, 0, now)
		return nil
	}

	s.settle(entry, caller, auction.HighestBidder, auction.HighestBid, auction.HighestBid)
	entry.Owner = auction.HighestBidder
	entry.Listing = nil
	entry.SoldAtAuction = true
	s.save(assetId, entry)

	s.events.Record("auction.end", assetId, caller, auction.HighestBidder, auction.HighestBid, now)
	return nil
}

// GetAuction - external snapshot of the auction state of an asset
func (s *Store) GetAuction(assetId uint64) (AuctionInfo, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return AuctionInfo{}, err
	}
	if nil == entry.Auction {
		return AuctionInfo{}, nil
	}
	return AuctionInfo{
		Active:        true,
		FloorBid:      entry.Auction.FloorBid,
		HighestBid:    entry.Auction.HighestBid,
		HighestBidder: entry.Auction.HighestBidder,
		EndTime:       entry.Auction.EndTime,
	}, nil
}
