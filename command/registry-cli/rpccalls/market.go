// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/rpc"
)

// StartAuction - open an auction on an asset
func (client *Client) StartAuction(arguments *rpc.StartArguments) error {
	var reply rpc.StartReply
	return client.client.Call("Auction.Start", arguments, &reply)
}

// PlaceBid - place a bid on a live auction
func (client *Client) PlaceBid(arguments *rpc.BidArguments) error {
	var reply rpc.BidReply
	return client.client.Call("Auction.Bid", arguments, &reply)
}

// EndAuction - close an auction whose end time has passed
func (client *Client) EndAuction(caller string, assetId uint64) (*rpc.EndReply, error) {
	var reply rpc.EndReply
	arguments := rpc.EndArguments{
		Caller:  caller,
		AssetId: assetId,
	}
	if err := client.client.Call("Auction.End", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetAuction - the auction state of an asset
func (client *Client) GetAuction(assetId uint64) (*rpc.GetReply, error) {
	var reply rpc.GetReply
	arguments := rpc.GetArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Auction.Get", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListForSale - put an asset up at a fixed price
func (client *Client) ListForSale(arguments *rpc.ListArguments) error {
	var reply rpc.ListReply
	return client.client.Call("Market.List", arguments, &reply)
}

// Delist - withdraw a listing
func (client *Client) Delist(caller string, assetId uint64) error {
	var reply rpc.DelistReply
	arguments := rpc.DelistArguments{
		Caller:  caller,
		AssetId: assetId,
	}
	return client.client.Call("Market.Delist", &arguments, &reply)
}

// UpdatePrice - change the price of a live listing
func (client *Client) UpdatePrice(arguments *rpc.PriceArguments) error {
	var reply rpc.PriceReply
	return client.client.Call("Market.UpdatePrice", arguments, &reply)
}

// Buy - purchase a listed asset
func (client *Client) Buy(arguments *rpc.BuyArguments) (*rpc.BuyReply, error) {
	var reply rpc.BuyReply
	if err := client.client.Call("Market.Buy", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetSale - whether an asset is listed, and at what price
func (client *Client) GetSale(assetId uint64) (*rpc.SaleReply, error) {
	var reply rpc.SaleReply
	arguments := rpc.SaleArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Market.Sale", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
