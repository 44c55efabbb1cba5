// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "command line access to a registryd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " registryd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "caller, i",
			Value: "",
			Usage: " acting principal `NAME`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "mint a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "expiry, e",
					Usage: "*subscription expiry as a Unix timestamp `TIME`",
				},
				cli.Uint64Flag{
					Name:  "level, l",
					Value: 1,
					Usage: " initial access level `N` [1]",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Usage: " metadata `URI`",
				},
				cli.StringFlag{
					Name:  "document, d",
					Usage: " document `URI`",
				},
				cli.Uint64Flag{
					Name:  "royalty, r",
					Usage: " royalty rate in basis points `BPS`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.StringFlag{
					Name:  "receiver, r",
					Usage: "*receiving principal `NAME`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:   "revoke",
			Usage:  "burn an asset record",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runRevoke,
		},
		{
			Name:   "info",
			Usage:  "full asset snapshot",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runAssetInfo,
		},
		{
			Name:   "owner",
			Usage:  "current owner of an asset",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runOwner,
		},
		{
			Name:      "royalty",
			Usage:     "set the royalty split policy",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.StringFlag{
					Name:  "recipient, r",
					Usage: "*royalty recipient `NAME`",
				},
				cli.Uint64Flag{
					Name:  "rate",
					Usage: "*royalty rate in basis points `BPS`",
				},
			},
			Action: runSetRoyalty,
		},
		{
			Name:  "royalty-info",
			Usage: "the split a sale at a given price would produce",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*hypothetical sale price `UNITS`",
				},
			},
			Action: runRoyaltyInfo,
		},
		{
			Name:      "bundle",
			Usage:     "group owned assets under a new bundle asset",
			ArgsUsage: "ASSET-ID...",
			Action:    runBundle,
		},
		{
			Name:   "members",
			Usage:  "member list of a bundle",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runMembers,
		},
		{
			Name:      "auction",
			Usage:     "open an auction on an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "floor, f",
					Usage: "*floor bid `UNITS`",
				},
				cli.Uint64Flag{
					Name:  "duration, d",
					Usage: "*auction duration in `SECONDS`",
				},
			},
			Action: runStartAuction,
		},
		{
			Name:  "bid",
			Usage: "bid on a live auction",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*bid amount `UNITS`",
				},
			},
			Action: runBid,
		},
		{
			Name:   "end-auction",
			Usage:  "close an auction whose end time has passed",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runEndAuction,
		},
		{
			Name:   "auction-info",
			Usage:  "auction state of an asset",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runAuctionInfo,
		},
		{
			Name:  "list",
			Usage: "put an asset up at a fixed price",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*asking price `UNITS`",
				},
			},
			Action: runList,
		},
		{
			Name:   "delist",
			Usage:  "withdraw a listing",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runDelist,
		},
		{
			Name:  "price",
			Usage: "change the price of a live listing",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*new asking price `UNITS`",
				},
			},
			Action: runUpdatePrice,
		},
		{
			Name:  "buy",
			Usage: "purchase a listed asset",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*payment attached `UNITS`",
				},
			},
			Action: runBuy,
		},
		{
			Name:   "sale",
			Usage:  "listing state of an asset",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runSale,
		},
		{
			Name:  "access",
			Usage: "set a principal's access level (owner only)",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.StringFlag{
					Name:  "principal, p",
					Usage: "*principal `NAME`",
				},
				cli.Uint64Flag{
					Name:  "level, l",
					Usage: "*access level `N`",
				},
			},
			Action: runSetAccess,
		},
		{
			Name:  "upgrade",
			Usage: "raise the caller's own access level",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "level, l",
					Usage: "*access level `N`",
				},
			},
			Action: runUpgrade,
		},
		{
			Name:  "downgrade",
			Usage: "lower the caller's own access level",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "level, l",
					Usage: "*access level `N`",
				},
			},
			Action: runDowngrade,
		},
		{
			Name:  "level",
			Usage: "effective access level of a principal",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.StringFlag{
					Name:  "principal, p",
					Usage: "*principal `NAME`",
				},
			},
			Action: runAccessLevel,
		},
		{
			Name:  "extend",
			Usage: "extend a subscription by whole days",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.Uint64Flag{
					Name:  "days, d",
					Usage: "*extra days `N`",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*payment attached `UNITS`",
				},
			},
			Action: runExtend,
		},
		{
			Name:   "status",
			Usage:  "expiry state of an asset",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runStatus,
		},
		{
			Name:   "certificate",
			Usage:  "issue the one-shot certificate for a lapsed subscription",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runCertificate,
		},
		{
			Name:  "lend",
			Usage: "lend access to a borrower",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.StringFlag{
					Name:  "borrower, b",
					Usage: "*borrowing principal `NAME`",
				},
				cli.Uint64Flag{
					Name:  "days, d",
					Usage: "*loan period in days `N`",
				},
			},
			Action: runLend,
		},
		{
			Name:   "loan",
			Usage:  "current loan record of an asset",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runLoan,
		},
		{
			Name:      "minter",
			Usage:     "whitelist a principal for minting (administrator only)",
			ArgsUsage: "NAME",
			Action:    runAddMinter,
		},
		{
			Name:      "unminter",
			Usage:     "drop a principal from the minting whitelist (administrator only)",
			ArgsUsage: "NAME",
			Action:    runRemoveMinter,
		},
		{
			Name:      "ban",
			Usage:     "ban a principal (administrator only)",
			ArgsUsage: "NAME",
			Action:    runBan,
		},
		{
			Name:      "unban",
			Usage:     "readmit a banned principal (administrator only)",
			ArgsUsage: "NAME",
			Action:    runUnban,
		},
		{
			Name:      "transfer-admin",
			Usage:     "hand the administrator role over (administrator only)",
			ArgsUsage: "NAME",
			Action:    runTransferAdmin,
		},
		{
			Name:  "co-owner",
			Usage: "append a co-owner to an asset (owner only)",
			Flags: []cli.Flag{
				assetIdFlag,
				cli.StringFlag{
					Name:  "principal, p",
					Usage: "*principal `NAME`",
				},
			},
			Action: runAddCoOwner,
		},
		{
			Name:   "co-owners",
			Usage:  "co-owner list of an asset",
			Flags:  []cli.Flag{assetIdFlag},
			Action: runCoOwners,
		},
		{
			Name:   "pause",
			Usage:  "suspend every state-changing operation (administrator only)",
			Action: runPause,
		},
		{
			Name:   "unpause",
			Usage:  "resume normal operation (administrator only)",
			Action: runUnpause,
		},
		{
			Name:   "node",
			Usage:  "registryd status",
			Action: runNodeInfo,
		},
		{
			Name:  "events",
			Usage: "replay recorded events",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "since, s",
					Usage: " starting sequence number `N`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Usage: " maximum events to return `N`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "balance",
			Usage:     "outbound credits awaiting settlement",
			ArgsUsage: "NAME",
			Action:    runBalance,
		},
		{
			Name:   "version",
			Usage:  "display the version string",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				caller:  c.GlobalString("caller"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		cli.HandleExitCoder(cli.NewExitError(err.Error(), 1))
	}
}

// flag shared by most commands
var assetIdFlag = cli.Uint64Flag{
	Name:  "asset, a",
	Usage: "*asset identifier `ID`",
}
