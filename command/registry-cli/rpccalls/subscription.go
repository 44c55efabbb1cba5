// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/rpc"
)

// SetAccessLevel - owner-only access level setter
func (client *Client) SetAccessLevel(arguments *rpc.AccessArguments) error {
	var reply rpc.AccessReply
	return client.client.Call("Subscription.SetAccessLevel", arguments, &reply)
}

// Upgrade - raise the owner's own access level
func (client *Client) Upgrade(arguments *rpc.LevelArguments) error {
	var reply rpc.LevelReply
	return client.client.Call("Subscription.Upgrade", arguments, &reply)
}

// Downgrade - lower the owner's own access level
func (client *Client) Downgrade(arguments *rpc.LevelArguments) error {
	var reply rpc.LevelReply
	return client.client.Call("Subscription.Downgrade", arguments, &reply)
}

// GetAccessLevel - the effective level of a principal
func (client *Client) GetAccessLevel(assetId uint64, p string) (*rpc.QueryReply, error) {
	var reply rpc.QueryReply
	arguments := rpc.QueryArguments{
		AssetId:   assetId,
		Principal: p,
	}
	if err := client.client.Call("Subscription.AccessLevel", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ExtendSubscription - push the expiry out by whole days
func (client *Client) ExtendSubscription(arguments *rpc.ExtendArguments) (*rpc.ExtendReply, error) {
	var reply rpc.ExtendReply
	if err := client.client.Call("Subscription.Extend", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetStatus - expiry state of an asset
func (client *Client) GetStatus(assetId uint64) (*rpc.StatusReply, error) {
	var reply rpc.StatusReply
	arguments := rpc.StatusArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Subscription.Status", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// IssueCertificate - one-shot certificate for a lapsed subscription
func (client *Client) IssueCertificate(caller string, assetId uint64) error {
	var reply rpc.CertificateReply
	arguments := rpc.CertificateArguments{
		Caller:  caller,
		AssetId: assetId,
	}
	return client.client.Call("Subscription.IssueCertificate", &arguments, &reply)
}

// Lend - grant temporary access without transferring
func (client *Client) Lend(arguments *rpc.LendArguments) (*rpc.LendReply, error) {
	var reply rpc.LendReply
	if err := client.client.Call("Subscription.Lend", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetLoan - the current loan record
func (client *Client) GetLoan(assetId uint64) (*rpc.LoanReply, error) {
	var reply rpc.LoanReply
	arguments := rpc.StatusArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Subscription.Loan", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
