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
	rateLimitMarket = 200
	rateBurstMarket = 100
)

// Market - fixed-price listing operations
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *registry.Store
}

// NewMarket - create the service
func NewMarket(log *logger.L, dependencies *Dependencies) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		store:   dependencies.Registry,
	}
}

// ---

// ListArguments - put an asset up for sale
type ListArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Price   uint64 `json:"price"`
}

// ListReply - empty confirmation
type ListReply struct {
}

// List - put an asset up at a fixed price
func (m *Market) List(arguments *ListArguments, reply *ListReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.ListForSale(caller, arguments.AssetId, arguments.Price)
}

// ---

// DelistArguments - withdraw a listing
type DelistArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
}

// DelistReply - empty confirmation
type DelistReply struct {
}

// Delist - withdraw a listing
func (m *Market) Delist(arguments *DelistArguments, reply *DelistReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.Delist(caller, arguments.AssetId)
}

// ---

// PriceArguments - change a listing price
type PriceArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Price   uint64 `json:"price"`
}

// PriceReply - empty confirmation
type PriceReply struct {
}

// UpdatePrice - change the price of a live listing
func (m *Market) UpdatePrice(arguments *PriceArguments, reply *PriceReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.UpdatePrice(caller, arguments.AssetId, arguments.Price)
}

// ---

// BuyArguments - purchase a listed asset
type BuyArguments struct {
	Caller     string `json:"caller"`
	AssetId    uint64 `json:"assetId"`
	PaidAmount uint64 `json:"paidAmount"`
}

// BuyReply - the new owner
type BuyReply struct {
	Owner string `json:"owner"`
}

// Buy - purchase a listed asset
func (m *Market) Buy(arguments *BuyArguments, reply *BuyReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	if err := m.store.Buy(caller, arguments.AssetId, arguments.PaidAmount); nil != err {
		return err
	}
	reply.Owner = caller.String()
	return nil
}

// ---

// SaleArguments - select one asset
type SaleArguments struct {
	AssetId uint64 `json:"assetId"`
}

// SaleReply - listing state
type SaleReply struct {
	Listed bool   `json:"listed"`
	Price  uint64 `json:"price"`
}

// Sale - whether an asset is listed, and at what price
func (m *Market) Sale(arguments *SaleArguments, reply *SaleReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	listed, price, err := m.store.SaleInfo(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Listed = listed
	reply.Price = price
	return nil
}
