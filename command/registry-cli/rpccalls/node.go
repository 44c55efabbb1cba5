// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/rpc"
)

// GetNodeInfo - request status from registryd
func (client *Client) GetNodeInfo() (*rpc.NodeInfoReply, error) {
	var reply rpc.NodeInfoReply
	if err := client.client.Call("Node.Info", rpc.InfoArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetEvents - replay recorded events starting at a sequence number
func (client *Client) GetEvents(since uint64, count int) (*rpc.EventsReply, error) {
	var reply rpc.EventsReply
	arguments := rpc.EventsArguments{
		Since: since,
		Count: count,
	}
	if err := client.client.Call("Node.Events", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetBalance - outbound credits awaiting settlement for a principal
func (client *Client) GetBalance(p string) (*rpc.BalanceReply, error) {
	var reply rpc.BalanceReply
	arguments := rpc.BalanceArguments{
		Principal: p,
	}
	if err := client.client.Call("Node.Balance", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
