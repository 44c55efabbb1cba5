// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/registry"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - asset record operations
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *registry.Store
}

// NewRegistry - create the service
func NewRegistry(log *logger.L, dependencies *Dependencies) *Registry {
	return &Registry{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		store:   dependencies.Registry,
	}
}

// ---

// CreateArguments - parameters for minting
type CreateArguments struct {
	Caller             string `json:"caller"`
	Expiry             int64  `json:"expiry"`
	InitialAccessLevel uint64 `json:"initialAccessLevel"`
	MetadataURI        string `json:"metadataURI"`
	DocumentURI        string `json:"documentURI"`
	RoyaltyRate        uint64 `json:"royaltyRate"`
}

// CreateReply - the newly assigned identifier
type CreateReply struct {
	AssetId uint64 `json:"assetId"`
}

// Create - mint a new asset
func (r *Registry) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}

	assetId, err := r.store.Create(caller, arguments.Expiry, arguments.InitialAccessLevel, arguments.MetadataURI, arguments.DocumentURI, arguments.RoyaltyRate)
	if nil != err {
		return err
	}
	reply.AssetId = assetId
	return nil
}

// ---

// TransferArguments - parameters for an ownership change
type TransferArguments struct {
	AssetId uint64 `json:"assetId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// TransferReply - confirmation of the new owner
type TransferReply struct {
	Owner string `json:"owner"`
}

// Transfer - move ownership
func (r *Registry) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	from, err := principal.FromString(arguments.From)
	if nil != err {
		return err
	}
	to, err := principal.FromString(arguments.To)
	if nil != err {
		return err
	}

	if err := r.store.Transfer(arguments.AssetId, from, to); nil != err {
		return err
	}
	reply.Owner = to.String()
	return nil
}

// ---

// AssetArguments - select one asset
type AssetArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
}

// RevokeReply - empty confirmation
type RevokeReply struct {
}

// Revoke - burn an asset record
func (r *Registry) Revoke(arguments *AssetArguments, reply *RevokeReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return r.store.Revoke(caller, arguments.AssetId)
}

// ---

// OwnerReply - current ownership
type OwnerReply struct {
	Owner string `json:"owner"`
}

// Owner - who owns an asset
func (r *Registry) Owner(arguments *AssetArguments, reply *OwnerReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	owner, err := r.store.OwnerOf(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Owner = owner.String()
	return nil
}

// ---

// InfoReply - full asset snapshot
type InfoReply struct {
	Info registry.Info `json:"info"`
}

// Info - the full asset snapshot
func (r *Registry) Info(arguments *AssetArguments, reply *InfoReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	info, err := r.store.AssetInfo(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Info = info
	return nil
}

// ---

// RoyaltyArguments - set a split policy
type RoyaltyArguments struct {
	Caller    string `json:"caller"`
	AssetId   uint64 `json:"assetId"`
	Recipient string `json:"recipient"`
	RateBps   uint64 `json:"rateBps"`
}

// RoyaltyReply - empty confirmation
type RoyaltyReply struct {
}

// SetRoyalty - set the split policy
func (r *Registry) SetRoyalty(arguments *RoyaltyArguments, reply *RoyaltyReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	recipient, err := principal.FromString(arguments.Recipient)
	if nil != err {
		return err
	}
	return r.store.SetRoyalty(caller, arguments.AssetId, recipient, arguments.RateBps)
}

// ---

// RoyaltyInfoArguments - query a hypothetical split
type RoyaltyInfoArguments struct {
	AssetId   uint64 `json:"assetId"`
	SalePrice uint64 `json:"salePrice"`
}

// RoyaltyInfoReply - the split a sale would produce
type RoyaltyInfoReply struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

// RoyaltyInfo - the split a sale at the given price would produce
func (r *Registry) RoyaltyInfo(arguments *RoyaltyInfoArguments, reply *RoyaltyInfoReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	recipient, amount, err := r.store.RoyaltyInfo(arguments.AssetId, arguments.SalePrice)
	if nil != err {
		return err
	}
	reply.Recipient = recipient.String()
	reply.Amount = amount
	return nil
}

// ---

// BundleArguments - group assets under a new parent
type BundleArguments struct {
	Caller   string   `json:"caller"`
	AssetIds []uint64 `json:"assetIds"`
}

// BundleReply - the parent identifier
type BundleReply struct {
	AssetId uint64 `json:"assetId"`
}

// Bundle - mint a bundle asset
func (r *Registry) Bundle(arguments *BundleArguments, reply *BundleReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	assetId, err := r.store.Bundle(caller, arguments.AssetIds)
	if nil != err {
		return err
	}
	reply.AssetId = assetId
	return nil
}

// ---

// MembersReply - the member list of a bundle
type MembersReply struct {
	Members []uint64 `json:"members"`
}

// Members - the member list of a bundle
func (r *Registry) Members(arguments *AssetArguments, reply *MembersReply) error {
	if err := rateLimit(r.Limiter); nil != err {
		return err
	}
	members, err := r.store.BundleOf(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Members = members
	return nil
}
