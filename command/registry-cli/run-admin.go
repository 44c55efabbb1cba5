// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAddMinter(c *cli.Context) error {
	return runRoleCommand(c, "minter added", func(client roleCaller, caller string, p string) error {
		return client.AddMinter(caller, p)
	})
}

func runRemoveMinter(c *cli.Context) error {
	return runRoleCommand(c, "minter removed", func(client roleCaller, caller string, p string) error {
		return client.RemoveMinter(caller, p)
	})
}

func runBan(c *cli.Context) error {
	return runRoleCommand(c, "banned", func(client roleCaller, caller string, p string) error {
		return client.Ban(caller, p)
	})
}

func runUnban(c *cli.Context) error {
	return runRoleCommand(c, "unbanned", func(client roleCaller, caller string, p string) error {
		return client.Unban(caller, p)
	})
}

func runTransferAdmin(c *cli.Context) error {
	return runRoleCommand(c, "administrator transferred", func(client roleCaller, caller string, p string) error {
		return client.TransferAdministrator(caller, p)
	})
}

// the role methods share one signature
type roleCaller interface {
	AddMinter(caller string, p string) error
	RemoveMinter(caller string, p string) error
	Ban(caller string, p string) error
	Unban(caller string, p string) error
	TransferAdministrator(caller string, p string) error
}

func runRoleCommand(c *cli.Context, message string, call func(client roleCaller, caller string, p string) error) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}
	p, err := principalArgument(c)
	if nil != err {
		return err
	}

	if err := call(client, caller, p); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s: %s\n", message, p)
	return nil
}

func runAddCoOwner(c *cli.Context) error {

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

	if err := client.AddCoOwner(caller, assetId, p); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "co-owner added: %s\n", p)
	return nil
}

func runCoOwners(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	assetId, err := assetIdRequired(c)
	if nil != err {
		return err
	}

	reply, err := client.GetCoOwners(assetId)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runPause(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}

	if err := client.Pause(caller); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "paused\n")
	return nil
}

func runUnpause(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerRequired(m)
	if nil != err {
		return err
	}

	if err := client.Unpause(caller); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "unpaused\n")
	return nil
}

func runNodeInfo(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runEvents(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetEvents(c.Uint64("since"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {

	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	p, err := principalArgument(c)
	if nil != err {
		return err
	}

	reply, err := client.GetBalance(p)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}
