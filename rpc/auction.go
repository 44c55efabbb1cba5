// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/registry"
)

const (
	rateLimitAuction = 200
	rateBurstAuction = 100
)

// Auction - auction lifecycle operations
type Auction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *registry.Store
}

// NewAuction - create the service
func NewAuction(log *logger.L, dependencies *Dependencies) *Auction {
	return &Auction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAuction, rateBurstAuction),
		store:   dependencies.Registry,
	}
}

// ---

// StartArguments - open an auction
type StartArguments struct {
	Caller   string `json:"caller"`
	AssetId  uint64 `json:"assetId"`
	FloorBid uint64 `json:"floorBid"`
	Duration uint64 `json:"duration"`
}

// StartReply - empty confirmation
type StartReply struct {
}

// Start - open an auction on an asset
func (a *Auction) Start(arguments *StartArguments, reply *StartReply) error {
	if err := rateLimit(a.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return a.store.StartAuction(caller, arguments.AssetId, arguments.FloorBid, arguments.Duration)
}

// ---

// BidArguments - outbid the current highest bidder
type BidArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Amount  uint64 `json:"amount"`
}

// BidReply - empty confirmation
type BidReply struct {
}

// Bid - place a bid
func (a *Auction) Bid(arguments *BidArguments, reply *BidReply) error {
	if err := rateLimit(a.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return a.store.PlaceBid(caller, arguments.AssetId, arguments.Amount)
}

// ---

// EndArguments - close an auction
type EndArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
}

// EndReply - the final ownership
type EndReply struct {
	Owner string `json:"owner"`
}

// End - close an auction whose end time has passed
func (a *Auction) End(arguments *EndArguments, reply *EndReply) error {
	if err := rateLimit(a.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	if err := a.store.EndAuction(caller, arguments.AssetId); nil != err {
		return err
	}
	owner, err := a.store.OwnerOf(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Owner = owner.String()
	return nil
}

// ---

// GetArguments - select one asset
type GetArguments struct {
	AssetId uint64 `json:"assetId"`
}

// GetReply - auction snapshot
type GetReply struct {
	Auction registry.AuctionInfo `json:"auction"`
}

// Get - the auction state of an asset
func (a *Auction) Get(arguments *GetArguments, reply *GetReply) error {
	if err := rateLimit(a.Limiter); nil != err {
		return err
	}
	info, err := a.store.GetAuction(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Auction = info
	return nil
}
