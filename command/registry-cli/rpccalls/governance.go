// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/rpc"
)

func (client *Client) roleCall(method string, caller string, p string) error {
	var reply rpc.RoleReply
	arguments := rpc.RoleArguments{
		Caller:    caller,
		Principal: p,
	}
	return client.client.Call(method, &arguments, &reply)
}

// AddMinter - whitelist a principal for minting
func (client *Client) AddMinter(caller string, p string) error {
	return client.roleCall("Governance.AddMinter", caller, p)
}

// RemoveMinter - drop a principal from the whitelist
func (client *Client) RemoveMinter(caller string, p string) error {
	return client.roleCall("Governance.RemoveMinter", caller, p)
}

// Ban - exclude a principal from all interaction
func (client *Client) Ban(caller string, p string) error {
	return client.roleCall("Governance.Ban", caller, p)
}

// Unban - readmit a banned principal
func (client *Client) Unban(caller string, p string) error {
	return client.roleCall("Governance.Unban", caller, p)
}

// TransferAdministrator - hand the administrator role over
func (client *Client) TransferAdministrator(caller string, p string) error {
	return client.roleCall("Governance.TransferAdministrator", caller, p)
}

// AddCoOwner - owner-only append to an asset's co-owner list
func (client *Client) AddCoOwner(caller string, assetId uint64, p string) error {
	var reply rpc.CoOwnerReply
	arguments := rpc.CoOwnerArguments{
		Caller:    caller,
		AssetId:   assetId,
		Principal: p,
	}
	return client.client.Call("Governance.AddCoOwner", &arguments, &reply)
}

// GetCoOwners - the co-owner list of an asset
func (client *Client) GetCoOwners(assetId uint64) (*rpc.CoOwnersReply, error) {
	var reply rpc.CoOwnersReply
	arguments := rpc.CoOwnersArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Governance.CoOwners", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Pause - suspend every state-changing operation
func (client *Client) Pause(caller string) error {
	var reply rpc.PauseReply
	arguments := rpc.PauseArguments{
		Caller: caller,
	}
	return client.client.Call("Governance.Pause", &arguments, &reply)
}

// Unpause - resume normal operation
func (client *Client) Unpause(caller string) error {
	var reply rpc.PauseReply
	arguments := rpc.PauseArguments{
		Caller: caller,
	}
	return client.client.Call("Governance.Unpause", &arguments, &reply)
}
