// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/rpc"
)

func runCreate(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}

	reply, err := client.CreateAsset(&rpc.CreateArguments{
		Caller:             caller,
		Expiry:             c.Int64("expiry"),
		InitialAccessLevel: c.Uint64("level"),
		MetadataURI:        c.String("metadata"),
		DocumentURI:        c.String("document"),
		RoyaltyRate:        c.Uint64("royalty"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runTransfer(c *cli.Context) error {

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
	receiver := c.String("receiver")
	if "" == receiver {
		return fmt.Errorf("receiver is required, use the --receiver option")
	}

	reply, err := client.TransferAsset(&rpc.TransferArguments{
		AssetId: assetId,
		From:    caller,
		To:      receiver,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runRevoke(c *cli.Context) error {

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

	if err := client.RevokeAsset(caller, assetId); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "revoked: %d\n", assetId)
	return nil
}

func runAssetInfo(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetAssetInfo(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runOwner(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetOwner(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSetRoyalty(c *cli.Context) error {

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
	recipient := c.String("recipient")
	if "" == recipient {
		return fmt.Errorf("recipient is required, use the --recipient option")
	}

	err = client.SetRoyalty(&rpc.RoyaltyArguments{
		Caller:    caller,
		AssetId:   assetId,
		Recipient: recipient,
		RateBps:   c.Uint64("rate"),
	})
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "royalty set: %d\n", assetId)
	return nil
}

func runRoyaltyInfo(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetRoyaltyInfo(assetId, c.Uint64("price"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runBundle(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}

	args := c.Args()
	if 0 == len(args) {
		return fmt.Errorf("missing asset id arguments")
	}
	assetIds := make([]uint64, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if nil != err {
			return fmt.Errorf("invalid asset id: %q", a)
		}
		assetIds[i] = n
	}

	reply, err := client.CreateBundle(&rpc.BundleArguments{
		Caller:   caller,
		AssetIds: assetIds,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runMembers(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetBundleMembers(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
