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

func runSetAccess(c *cli.Context) error {

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
	p := c.String("principal")
	if "" == p {
		return fmt.Errorf("principal is required, use the --principal option")
	}

	err = client.SetAccessLevel(&rpc.AccessArguments{
		Caller:    caller,
		AssetId:   assetId,
		Principal: p,
		Level:     c.Uint64("level"),
	})
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "access level set: %d\n", assetId)
	return nil
}

func runUpgrade(c *cli.Context) error {
	return runLevelChange(c, true)
}

func runDowngrade(c *cli.Context) error {
	return runLevelChange(c, false)
}

func runLevelChange(c *cli.Context, up bool) error {

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

	arguments := &rpc.LevelArguments{
		Caller:  caller,
		AssetId: assetId,
		Level:   c.Uint64("level"),
	}
	if up {
		err = client.Upgrade(arguments)
	} else {
		err = client.Downgrade(arguments)
	}
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "level changed: %d\n", assetId)
	return nil
}

func runAccessLevel(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}
	p := c.String("principal")
	if "" == p {
		return fmt.Errorf("principal is required, use the --principal option")
	}

	reply, err := client.GetAccessLevel(assetId, p)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runExtend(c *cli.Context) error {

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

	reply, err := client.ExtendSubscription(&rpc.ExtendArguments{
		Caller:     caller,
		AssetId:    assetId,
		ExtraDays:  c.Uint64("days"),
		PaidAmount: c.Uint64("amount"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runStatus(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetStatus(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runCertificate(c *cli.Context) error {

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

	if err := client.IssueCertificate(caller, assetId); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "certificate issued: %d\n", assetId)
	return nil
}

func runLend(c *cli.Context) error {

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
	borrower := c.String("borrower")
	if "" == borrower {
		return fmt.Errorf("borrower is required, use the --borrower option")
	}

	reply, err := client.Lend(&rpc.LendArguments{
		Caller:   caller,
		AssetId:  assetId,
		Borrower: borrower,
		Days:     c.Uint64("days"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runLoan(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetLoan(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
