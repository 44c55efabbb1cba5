// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
)

// connect to the registryd named by the global flags
func getClient(c *cli.Context) (*metadata, *rpccalls.Client, error) {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

// the acting principal must be supplied for state-changing commands
func callerRequired(m *metadata) (string, error) {
	if "" == m.caller {
		return "", fmt.Errorf("caller is required, use the --caller option")
	}
	return m.caller, nil
}

// asset id flag must be present
func assetIdRequired(c *cli.Context) (uint64, error) {
	if !c.IsSet("asset") {
		return 0, fmt.Errorf("asset id is required, use the --asset option")
	}
	return c.Uint64("asset"), nil
}

// the single positional argument of role commands
func principalArgument(c *cli.Context) (string, error) {
	p := c.Args().First()
	if "" == p {
		return "", fmt.Errorf("missing principal argument")
	}
	return p, nil
}
