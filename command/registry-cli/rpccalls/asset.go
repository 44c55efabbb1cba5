// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/rpc"
)

// CreateAsset - mint a new asset record
func (client *Client) CreateAsset(arguments *rpc.CreateArguments) (*rpc.CreateReply, error) {
	var reply rpc.CreateReply
	if err := client.client.Call("Registry.Create", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// TransferAsset - move ownership of an asset
func (client *Client) TransferAsset(arguments *rpc.TransferArguments) (*rpc.TransferReply, error) {
	var reply rpc.TransferReply
	if err := client.client.Call("Registry.Transfer", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// RevokeAsset - burn an asset record
func (client *Client) RevokeAsset(caller string, assetId uint64) error {
	var reply rpc.RevokeReply
	arguments := rpc.AssetArguments{
		Caller:  caller,
		AssetId: assetId,
	}
	return client.client.Call("Registry.Revoke", &arguments, &reply)
}

// GetAssetInfo - the full asset snapshot
func (client *Client) GetAssetInfo(assetId uint64) (*rpc.InfoReply, error) {
	var reply rpc.InfoReply
	arguments := rpc.AssetArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Registry.Info", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetOwner - current ownership of an asset
func (client *Client) GetOwner(assetId uint64) (*rpc.OwnerReply, error) {
	var reply rpc.OwnerReply
	arguments := rpc.AssetArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Registry.Owner", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SetRoyalty - set the royalty split policy
func (client *Client) SetRoyalty(arguments *rpc.RoyaltyArguments) error {
	var reply rpc.RoyaltyReply
	return client.client.Call("Registry.SetRoyalty", arguments, &reply)
}

// GetRoyaltyInfo - the split a sale at a given price would produce
func (client *Client) GetRoyaltyInfo(assetId uint64, salePrice uint64) (*rpc.RoyaltyInfoReply, error) {
	var reply rpc.RoyaltyInfoReply
	arguments := rpc.RoyaltyInfoArguments{
		AssetId:   assetId,
		SalePrice: salePrice,
	}
	if err := client.client.Call("Registry.RoyaltyInfo", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// CreateBundle - group assets under a new parent asset
func (client *Client) CreateBundle(arguments *rpc.BundleArguments) (*rpc.BundleReply, error) {
	var reply rpc.BundleReply
	if err := client.client.Call("Registry.Bundle", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetBundleMembers - the member list of a bundle
func (client *Client) GetBundleMembers(assetId uint64) (*rpc.MembersReply, error) {
	var reply rpc.MembersReply
	arguments := rpc.AssetArguments{
		AssetId: assetId,
	}
	if err := client.client.Call("Registry.Members", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
