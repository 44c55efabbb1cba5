// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/rpc"
)

func runStartAuction(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	err = client.StartAuction(&rpc.StartArguments{
		Caller:   caller,
		AssetId:  assetId,
		FloorBid: c.Uint64("floor"),
		Duration: c.Uint64("duration"),
	})
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "auction started: %d\n", assetId)
	return nil
}

func runBid(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	err = client.PlaceBid(&rpc.BidArguments{
		Caller:  caller,
		AssetId: assetId,
		Amount:  c.Uint64("amount"),
	})
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "bid placed: %d\n", assetId)
	return nil
}

func runEndAuction(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.EndAuction(caller, assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAuctionInfo(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetAuction(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runList(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	err = client.ListForSale(&rpc.ListArguments{
		Caller:  caller,
		AssetId: assetId,
		Price:   c.Uint64("price"),
	})
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "listed: %d\n", assetId)
	return nil
}

func runDelist(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	if err := client.Delist(caller, assetId); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "delisted: %d\n", assetId)
	return nil
}

func runUpdatePrice(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	err = client.UpdatePrice(&rpc.PriceArguments{
		Caller:  caller,
		AssetId: assetId,
		Price:   c.Uint64("price"),
	})
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "price updated: %d\n", assetId)
	return nil
}

func runBuy(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.Buy(&rpc.BuyArguments{
		Caller:     caller,
		AssetId:    assetId,
		PaidAmount: c.Uint64("amount"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSale(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetSale(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
